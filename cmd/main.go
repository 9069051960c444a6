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

	cancelBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/cancel_booking"
	checkBlockConflictsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/check_block_conflicts"
	createBlockHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_block"
	createBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_booking"
	createOverrideHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/create_override"
	deactivateOverrideHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/deactivate_override"
	deleteBlockHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/delete_block"
	getBookingHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_booking"
	getDayAvailabilityHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_day_availability"
	getDayBookingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_day_bookings"
	getMonthAvailabilityHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_month_availability"
	getScheduleHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/get_user_bookings"
	updateBookingStatusHandler "github.com/m04kA/SMC-BarberService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-BarberService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberService/internal/config"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/schedule"
	userServiceClient "github.com/m04kA/SMC-BarberService/internal/integrations/userservice"
	bookingsService "github.com/m04kA/SMC-BarberService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-BarberService/internal/service/schedule"
	createBookingUC "github.com/m04kA/SMC-BarberService/internal/usecase/create_booking"
	getDayAvailabilityUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_day_availability"
	getMonthAvailabilityUC "github.com/m04kA/SMC-BarberService/internal/usecase/get_month_availability"
	"github.com/m04kA/SMC-BarberService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberService/pkg/logger"
	"github.com/m04kA/SMC-BarberService/pkg/metrics"
	"github.com/m04kA/SMC-BarberService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-BarberService/pkg/txmanager"
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
	defer log.Close()

	log.Info("Starting SMC-BarberService...")
	log.Info("Configuration loaded from config.toml")

	// Бизнес-настройки барбершопа
	baseSlots, err := cfg.Shop.BaseSlots()
	if err != nil {
		log.Fatal("Invalid slot grid in config: %v", err)
	}
	weekdayCapacities := cfg.Shop.WeekdayCapacities()
	log.Info("Shop configured: %d base slots, booking window %d days, cancellation cutoff %dh, %d admins",
		len(baseSlots), cfg.Shop.BookingWindowDays, cfg.Shop.CancellationCutoffHours, len(cfg.Shop.AdminIDs))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиент профилей клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		cfg.Shop,
		&bookingsService.RealTimeProvider{},
		cfg.Shop.CancellationCutoffHours,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		bookingRepository,
		cfg.Shop,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		userClient,
		txMgr,
		baseSlots,
		weekdayCapacities,
		cfg.Shop.BookingWindowDays,
		log,
	)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		baseSlots,
		weekdayCapacities,
		cfg.Shop.BookingWindowDays,
		log,
	)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		baseSlots,
		weekdayCapacities,
		cfg.Shop.BookingWindowDays,
		log,
	)

	// Инициализируем handlers
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	checkBlockConflicts := checkBlockConflictsHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	deleteBlock := deleteBlockHandler.NewHandler(scheduleSvc, log)
	createOverride := createOverrideHandler.NewHandler(scheduleSvc, log)
	deactivateOverride := deactivateOverrideHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

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

	// Календарная сетка месяца со статусами дней
	api.HandleFunc("/availability/month", getMonthAvailability.Handle).Methods(http.MethodGet)

	// Детализация дня по слотам
	api.HandleFunc("/availability/day", getDayAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи клиентов ---
	// Создание записи
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Администрирование (права проверяются в сервисах) ---
	// Записи на день
	protected.HandleFunc("/admin/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Смена статуса записи
	protected.HandleFunc("/admin/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Проверка затронутых записей перед блокировкой
	protected.HandleFunc("/admin/block-conflicts", checkBlockConflicts.Handle).Methods(http.MethodGet)

	// Блокировки слотов и дней
	protected.HandleFunc("/admin/blocks", createBlock.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/blocks/{blockId}", deleteBlock.Handle).Methods(http.MethodDelete)

	// Переопределения вместимости
	protected.HandleFunc("/admin/overrides", createOverride.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/overrides/{overrideId}/deactivate", deactivateOverride.Handle).Methods(http.MethodPatch)

	// Правки расписания за период
	protected.HandleFunc("/admin/schedule", getSchedule.Handle).Methods(http.MethodGet)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
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
