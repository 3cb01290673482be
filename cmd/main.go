package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	deleteOverrideHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/delete_override"
	getCalendarOverviewHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_calendar_overview"
	getDayStatusHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_status"
	getDayTimelineHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_day_timeline"
	getOverrideHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_override"
	getRescheduleSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_reschedule_slots"
	listOverridesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_overrides"
	resolveWorkingWindowHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/resolve_working_window"
	setOverrideHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/set_override"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/cache"
	bookingRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/provider"
	"github.com/m04kA/SMC-ScheduleService/internal/jobs/prefetch"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule/hours"
	availabilityService "github.com/m04kA/SMC-ScheduleService/internal/service/availability"
	dayplanService "github.com/m04kA/SMC-ScheduleService/internal/service/dayplan"
	scheduleService "github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	getCalendarOverviewUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_calendar_overview"
	getDayStatusUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_status"
	getDayTimelineUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_day_timeline"
	getRescheduleSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_reschedule_slots"
	resolveWorkingWindowUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/resolve_working_window"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/selection"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Close() }()

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены). Методы nil-коллектора ничего не делают.
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	metricsCollector.RegisterDB(db, cfg.Database.DBName)

	// Инициализируем кэш свободных слотов
	var slotCache availabilityService.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(context.Background(), cache.RedisOptions{
			URL:      cfg.Redis.URL,
			Password: cfg.Redis.Password,
			PoolSize: cfg.Redis.PoolSize,
		})
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		slotCache = cache.NewRedisCache(redisClient)
		log.Info("Availability cache: redis")
	} else {
		slotCache = cache.NewMemoryCache(nil)
		log.Info("Availability cache: in-memory")
	}

	// Инициализируем клиента внешнего источника свободного времени
	providerClient := provider.NewClient(provider.Options{
		BaseURL:             cfg.Provider.URL,
		Token:               cfg.Provider.Token,
		Timeout:             time.Duration(cfg.Provider.Timeout) * time.Second,
		RequestsPerSecond:   cfg.Provider.RequestsPerSecond,
		Burst:               cfg.Provider.Burst,
		DefaultSlotDuration: time.Duration(cfg.Schedule.SlotDurationMinutes) * time.Minute,
	}, metricsCollector, log)
	log.Info("Availability provider client initialized (url=%s timeout=%ds)", cfg.Provider.URL, cfg.Provider.Timeout)

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)

	// Рабочие часы: недельное расписание + исключения из БД + повторяющиеся перерывы
	plan, err := cfg.Schedule.Plan()
	if err != nil {
		log.Fatal("Invalid weekly schedule: %v", err)
	}
	breaks, err := cfg.Schedule.RecurringBreaks()
	if err != nil {
		log.Fatal("Invalid recurring breaks: %v", err)
	}
	hoursSource, err := hours.NewSource(plan, scheduleRepository, breaks, log)
	if err != nil {
		log.Fatal("Failed to compile schedule: %v", err)
	}

	excluded := cfg.Schedule.Excluded()

	// Инициализируем сервисы
	dayplanSvc := dayplanService.NewService(hoursSource, bookingRepository, scheduleRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, cfg.Schedule.MaxCalendarDays, log)
	availabilitySvc := availabilityService.NewService(
		providerClient,
		slotCache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	getDayStatusUseCase := getDayStatusUC.NewUseCase(dayplanSvc, metricsCollector, log)
	getDayTimelineUseCase := getDayTimelineUC.NewUseCase(dayplanSvc, log)
	getCalendarOverviewUseCase := getCalendarOverviewUC.NewUseCase(
		dayplanSvc,
		metricsCollector,
		cfg.Schedule.MaxCalendarDays,
		log,
	)
	resolveWorkingWindowUseCase := resolveWorkingWindowUC.NewUseCase(excluded, metricsCollector, log)
	getRescheduleSlotsUseCase := getRescheduleSlotsUC.NewUseCase(
		bookingRepository,
		availabilitySvc,
		selection.NewTracker(),
		excluded,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getDayStatus := getDayStatusHandler.NewHandler(getDayStatusUseCase, log)
	getDayTimeline := getDayTimelineHandler.NewHandler(getDayTimelineUseCase, log)
	getCalendarOverview := getCalendarOverviewHandler.NewHandler(getCalendarOverviewUseCase, log)
	resolveWorkingWindow := resolveWorkingWindowHandler.NewHandler(resolveWorkingWindowUseCase, log)
	getRescheduleSlots := getRescheduleSlotsHandler.NewHandler(getRescheduleSlotsUseCase, log)
	getOverride := getOverrideHandler.NewHandler(scheduleSvc, log)
	listOverrides := listOverridesHandler.NewHandler(scheduleSvc, log)
	setOverride := setOverrideHandler.NewHandler(scheduleSvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Статус дня: open / partial / closed
	api.HandleFunc("/days/{date}/status", getDayStatus.Handle).Methods(http.MethodGet)

	// Таймлайн дня с позициями элементов
	api.HandleFunc("/days/{date}/timeline", getDayTimeline.Handle).Methods(http.MethodGet)

	// Статусы дней за месяц или диапазон
	api.HandleFunc("/calendar", getCalendarOverview.Handle).Methods(http.MethodGet)

	// Окно рабочих дней вокруг даты
	api.HandleFunc("/working-window", resolveWorkingWindow.Handle).Methods(http.MethodGet)

	// Особое расписание дат
	api.HandleFunc("/days/{date}/override", getOverride.Handle).Methods(http.MethodGet)
	api.HandleFunc("/overrides", listOverrides.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Свободные слоты для переноса бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule-slots", getRescheduleSlots.Handle).Methods(http.MethodGet)

	// Управление особым расписанием
	protected.HandleFunc("/days/{date}/override", setOverride.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/days/{date}/override", deleteOverride.Handle).Methods(http.MethodDelete)

	// CORS и восстановление после паник
	handler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.UserIDHeader, getRescheduleSlotsHandler.SelectionScopeHeader}),
	)(r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(false))(handler)

	// Прогрев кэша свободных слотов
	var prefetchJob *prefetch.Job
	if cfg.Prefetch.Enabled {
		prefetchJob = prefetch.NewJob(availabilitySvc, cfg.Prefetch.Spec, excluded, metricsCollector, log)
		prefetchJob.Start(context.Background())
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if prefetchJob != nil {
		prefetchJob.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
