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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	addHolidayHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/add_holiday"
	createBookingHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/create_booking"
	deleteScheduleHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/delete_schedule"
	exportSchedulesHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/export_schedules"
	getCalendarHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/get_calendar"
	getDayDetailHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/get_day_detail"
	getMyPageHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/get_my_page"
	getScheduleHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/get_schedule"
	getUserPageHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/get_user_page"
	healthHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/health"
	listStaffHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/list_staff"
	listStoresHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/list_stores"
	loginHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/login"
	updateScheduleHandler "github.com/m04kA/SMC-StaffBooking/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/config"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
	storeRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/store"
	userRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/user"
	accessService "github.com/m04kA/SMC-StaffBooking/internal/service/access"
	authService "github.com/m04kA/SMC-StaffBooking/internal/service/auth"
	directoryService "github.com/m04kA/SMC-StaffBooking/internal/service/directory"
	schedulesService "github.com/m04kA/SMC-StaffBooking/internal/service/schedules"
	addHolidayUC "github.com/m04kA/SMC-StaffBooking/internal/usecase/add_holiday"
	attemptBookingUC "github.com/m04kA/SMC-StaffBooking/internal/usecase/attempt_booking"
	buildWeekGridUC "github.com/m04kA/SMC-StaffBooking/internal/usecase/build_week_grid"
	getDayDetailUC "github.com/m04kA/SMC-StaffBooking/internal/usecase/get_day_detail"
	"github.com/m04kA/SMC-StaffBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/localtime"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
	"github.com/m04kA/SMC-StaffBooking/pkg/metrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/ratelimit"
	"github.com/m04kA/SMC-StaffBooking/pkg/txmanager"
)

const (
	calendarDateSuffix = "/{year:[0-9]+}/{month:[0-9]+}/{day:[0-9]+}"
	slotSuffix         = calendarDateSuffix + "/{hour:[0-9]+}"
	rateLimitPrefix    = "smc-staffbooking:booking"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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
	defer log.Close()

	log.Info("Starting SMC-StaffBooking...")
	log.Info("Configuration loaded from %s", configPath)

	clock, err := localtime.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone: %v", err)
	}
	log.Info("Local timezone: %s", clock.Location())

	// Инициализируем метрики (если включены). Выключенные метрики = nil, вызовы ничего не делают.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB, cfg.App.TxMaxRetries)

	// Redis (опционально): распределенный лимит частоты и проверка готовности
	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Address, err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Address)
		}
		cancel()
	}

	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		if rdb != nil {
			limiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window(), rateLimitPrefix)
			log.Info("Booking rate limit: %d per %s (redis)", cfg.RateLimit.Requests, cfg.RateLimit.Window())
		} else {
			limiter = ratelimit.NewLocalLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window())
			log.Info("Booking rate limit: %d per %s (in-process)", cfg.RateLimit.Requests, cfg.RateLimit.Window())
		}
	}

	// Инициализируем репозитории
	storeRepository := storeRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	accessChecker := accessService.NewChecker(staffRepository, scheduleRepository, userRepository, log)
	authSvc := authService.NewService(userRepository, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL(), log)
	directorySvc := directoryService.NewService(storeRepository, staffRepository, log)
	schedulesSvc := schedulesService.NewService(accessChecker, staffRepository, scheduleRepository, clock, log)

	// Инициализируем use cases
	buildWeekGridUseCase := buildWeekGridUC.NewUseCase(
		staffRepository,
		scheduleRepository,
		clock,
		cfg.App.PublicHolidays,
		log,
	)
	getDayDetailUseCase := getDayDetailUC.NewUseCase(staffRepository, scheduleRepository, clock, log)
	attemptBookingUseCase := attemptBookingUC.NewUseCase(
		staffRepository,
		scheduleRepository,
		txMgr,
		clock,
		metricsCollector,
		log,
	)
	addHolidayUseCase := addHolidayUC.NewUseCase(staffRepository, scheduleRepository, clock, log)

	// Инициализируем handlers
	listStores := listStoresHandler.NewHandler(directorySvc, log)
	listStaff := listStaffHandler.NewHandler(directorySvc, log)
	publicCalendar := getCalendarHandler.NewPublicHandler(buildWeekGridUseCase, log)
	privateCalendar := getCalendarHandler.NewPrivateHandler(buildWeekGridUseCase, accessChecker, log)
	createBooking := createBookingHandler.NewHandler(attemptBookingUseCase, log)
	addHoliday := addHolidayHandler.NewHandler(addHolidayUseCase, clock.Location(), log)
	getDayDetail := getDayDetailHandler.NewHandler(getDayDetailUseCase, accessChecker, clock.Location(), log)
	getMyPage := getMyPageHandler.NewHandler(schedulesSvc, log)
	getUserPage := getUserPageHandler.NewHandler(schedulesSvc, log)
	getSchedule := getScheduleHandler.NewHandler(schedulesSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(schedulesSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	exportSchedules := exportSchedulesHandler.NewHandler(schedulesSvc, log)
	login := loginHandler.NewHandler(authSvc, log)

	healthDeps := []healthHandler.Dependency{{Name: "postgres", Ping: wrappedDB.PingContext}}
	if rdb != nil {
		healthDeps = append(healthDeps, healthHandler.Dependency{
			Name: "redis",
			Ping: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	health := healthHandler.NewHandler(log, healthDeps...)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(mux.MiddlewareFunc(middleware.AccessLog(log, metricsCollector)))

	r.HandleFunc("/health", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/ready", health.Ready).Methods(http.MethodGet)

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)

	// Справочник
	api.HandleFunc("/stores", listStores.Handle).Methods(http.MethodGet)
	api.HandleFunc("/stores/{storeId:[0-9]+}/staff", listStaff.Handle).Methods(http.MethodGet)

	// Календарь сотрудника (неполная дата = сегодня)
	api.HandleFunc("/staff/{staffId:[0-9]+}/calendar", publicCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId:[0-9]+}/calendar"+calendarDateSuffix, publicCalendar.Handle).Methods(http.MethodGet)

	// Бронирование часа
	var booking http.Handler = http.HandlerFunc(createBooking.Handle)
	if limiter != nil {
		booking = middleware.RateLimit(limiter, log)(booking)
	}
	api.Handle("/staff/{staffId:[0-9]+}/booking"+slotSuffix, booking).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer)
	// ============================================================

	protected := api.PathPrefix("/mypage").Subrouter()
	protected.Use(mux.MiddlewareFunc(middleware.Auth(authSvc, log)))

	protected.HandleFunc("", getMyPage.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId:[0-9]+}", getUserPage.Handle).Methods(http.MethodGet)

	// --- Календарь и день сотрудника ---
	protected.HandleFunc("/staff/{staffId:[0-9]+}/calendar", privateCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId:[0-9]+}/calendar"+calendarDateSuffix, privateCalendar.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId:[0-9]+}/days"+calendarDateSuffix, getDayDetail.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId:[0-9]+}/schedules/export", exportSchedules.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId:[0-9]+}/holidays"+slotSuffix, addHoliday.Handle).Methods(http.MethodPost)

	// --- Расписания ---
	protected.HandleFunc("/schedules/{scheduleId:[0-9]+}", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedules/{scheduleId:[0-9]+}", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/schedules/{scheduleId:[0-9]+}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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
