package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8090

[database]
host = "localhost"
port = 5432
user = "schedule"
password = "from-file"
dbname = "schedule"

[redis]
enabled = true
url = "redis://localhost:6379/0"

[provider]
url = "https://availability.example.com/api"
timeout = 5
requests_per_second = 2.5
burst = 3

[schedule]
excluded_weekdays = ["saturday"]
slot_duration_minutes = 45

[schedule.week]
monday = ["09:00-12:00", "13:00-18:00"]
friday = ["09:00-15:00"]

[[schedule.breaks]]
id = "lunch"
title = "Lunch"
rule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"
since = "2024-01-01"
start = "12:00"
duration_minutes = 60

[prefetch]
enabled = true
spec = "@every 5m"

[metrics]
enabled = true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("PROVIDER_TOKEN", "token")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "token", cfg.Provider.Token)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 120*time.Second, cfg.Cache.TTL())
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
	assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")

	assert.Equal(t, []time.Weekday{time.Saturday}, cfg.Schedule.Excluded())

	plan, err := cfg.Schedule.Plan()
	require.NoError(t, err)
	require.Len(t, plan[time.Monday], 2)
	assert.Equal(t, "13:00-18:00", plan[time.Monday][1].String())
	assert.Empty(t, plan[time.Sunday])

	breaks, err := cfg.Schedule.RecurringBreaks()
	require.NoError(t, err)
	require.Len(t, breaks, 1)
	assert.Equal(t, "12:00", breaks[0].Start.String())
	assert.Equal(t, "2024-01-01", breaks[0].Since.Key())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrLoad)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := defaults()
		cfg.Database.Host = "db"
		cfg.Database.Port = 5432
		cfg.Database.User = "u"
		cfg.Database.DBName = "d"
		cfg.Provider.URL = "http://provider"
		return cfg
	}

	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"provider url", func(c *Config) { c.Provider.URL = "" }},
		{"redis without url", func(c *Config) { c.Redis.Enabled = true }},
		{"unknown weekday", func(c *Config) { c.Schedule.ExcludedWeekdays = []string{"caturday"} }},
		{"unknown week key", func(c *Config) { c.Schedule.Week = map[string][]string{"funday": {"09:00-10:00"}} }},
		{"inverted window", func(c *Config) { c.Schedule.Week = map[string][]string{"monday": {"18:00-09:00"}} }},
		{"break start", func(c *Config) {
			c.Schedule.Breaks = []BreakConfig{{ID: "x", Rule: "FREQ=DAILY", Start: "noon", DurationMinutes: 10}}
		}},
		{"break since", func(c *Config) {
			c.Schedule.Breaks = []BreakConfig{{ID: "x", Rule: "FREQ=DAILY", Start: "12:00", Since: "yesterday", DurationMinutes: 10}}
		}},
		{"log level", func(c *Config) { c.Logs.Level = "verbose" }},
		{"prefetch without spec", func(c *Config) { c.Prefetch.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrValidation)
		})
	}
}
