package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/civiltime"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

var (
	// ErrLoad возвращается, когда файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrValidation возвращается, когда конфигурация не прошла проверку
	ErrValidation = errors.New("config: validation failed")
)

// Config конфигурация сервиса (config.toml + переменные окружения)
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Provider ProviderConfig `toml:"provider"`
	Schedule ScheduleConfig `toml:"schedule"`
	Cache    CacheConfig    `toml:"cache"`
	Prefetch PrefetchConfig `toml:"prefetch"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
	CORS     CORSConfig     `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url" validate:"required_if=Enabled true"`
	Password string `toml:"password"`
	PoolSize int    `toml:"pool_size" validate:"min=0"`
}

type ProviderConfig struct {
	URL               string  `toml:"url" validate:"required,url"`
	Token             string  `toml:"token"`
	Timeout           int     `toml:"timeout" validate:"min=1"`
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"min=0"`
	Burst             int     `toml:"burst" validate:"min=0"`
}

type ScheduleConfig struct {
	// ExcludedWeekdays дни недели, которые пропускаются при построении окна рабочих дней
	ExcludedWeekdays    []string            `toml:"excluded_weekdays" validate:"dive,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	SlotDurationMinutes int                 `toml:"slot_duration_minutes" validate:"min=5,max=480"`
	MaxCalendarDays     int                 `toml:"max_calendar_days" validate:"min=1,max=366"`
	Week                map[string][]string `toml:"week" validate:"dive,keys,oneof=sunday monday tuesday wednesday thursday friday saturday,endkeys"`
	Breaks              []BreakConfig       `toml:"breaks" validate:"dive"`
}

type BreakConfig struct {
	ID              string `toml:"id" validate:"required"`
	Title           string `toml:"title"`
	Rule            string `toml:"rule" validate:"required"`
	Since           string `toml:"since"`
	Start           string `toml:"start" validate:"required"`
	DurationMinutes int    `toml:"duration_minutes" validate:"min=1,max=1440"`
}

type CacheConfig struct {
	TTLSeconds int `toml:"ttl_seconds" validate:"min=0"`
}

type PrefetchConfig struct {
	Enabled bool `toml:"enabled"`
	// Spec cron-выражение (robfig/cron), например "@every 5m"
	Spec string `toml:"spec" validate:"required_if=Enabled true"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает .env (если есть), config.toml, применяет значения по умолчанию,
// переопределения из окружения и проверяет результат
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: .env: %v", ErrLoad, err)
	}

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Provider: ProviderConfig{
			Timeout: 10,
		},
		Schedule: ScheduleConfig{
			ExcludedWeekdays:    []string{"saturday"},
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			MaxCalendarDays:     domain.DefaultMaxCalendarDays,
		},
		Cache: CacheConfig{
			TTLSeconds: domain.DefaultCacheTTLSeconds,
		},
		Metrics: MetricsConfig{
			ServiceName: "smc_schedule_service",
			Path:        "/metrics",
		},
		Logs: LogsConfig{
			Level: "info",
		},
	}
}

// applyEnv секреты и часто меняемые значения берутся из окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("PROVIDER_TOKEN"); v != "" {
		c.Provider.Token = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = strings.ToLower(v)
	}
}

// Validate проверяет теги validate и семантику расписания
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := c.Schedule.Plan(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := c.Schedule.RecurringBreaks(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Excluded дни недели, пропускаемые резолвером окна рабочих дней
func (s ScheduleConfig) Excluded() []time.Weekday {
	out := make([]time.Weekday, 0, len(s.ExcludedWeekdays))
	for _, name := range s.ExcludedWeekdays {
		if wd, ok := weekdayNames[strings.ToLower(name)]; ok {
			out = append(out, wd)
		}
	}
	return out
}

// Plan недельное расписание: день недели -> окна "HH:MM-HH:MM"
func (s ScheduleConfig) Plan() (map[time.Weekday][]domain.TimeRange, error) {
	plan := make(map[time.Weekday][]domain.TimeRange, len(s.Week))
	for name, raw := range s.Week {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("schedule.week: unknown weekday %q", name)
		}
		for _, r := range raw {
			tr, err := domain.ParseTimeRange(r)
			if err != nil {
				return nil, fmt.Errorf("schedule.week.%s: %w", name, err)
			}
			plan[wd] = append(plan[wd], tr)
		}
	}
	return plan, nil
}

// RecurringBreaks перерывы из конфигурации в доменном виде
func (s ScheduleConfig) RecurringBreaks() ([]domain.RecurringBreak, error) {
	out := make([]domain.RecurringBreak, 0, len(s.Breaks))
	for _, b := range s.Breaks {
		start, err := types.NewTimeStringFromString(b.Start)
		if err != nil {
			return nil, fmt.Errorf("schedule.breaks.%s.start: %w", b.ID, err)
		}

		var since civiltime.Date
		if b.Since != "" {
			d, ok := civiltime.ParseDate(b.Since)
			if !ok {
				return nil, fmt.Errorf("schedule.breaks.%s.since: invalid date %q", b.ID, b.Since)
			}
			since = d
		}

		out = append(out, domain.RecurringBreak{
			ID:              b.ID,
			Title:           b.Title,
			Rule:            b.Rule,
			Since:           since,
			Start:           start,
			DurationMinutes: b.DurationMinutes,
		})
	}
	return out, nil
}

// CacheTTL время жизни записей кэша доступности
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}
