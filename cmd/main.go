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

	cancelBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_booking"
	getFacilityBookingsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_facility_bookings"
	getFacilityScheduleHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_facility_schedule"
	getSlotGridHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_slot_grid"
	getUserBookingsHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/get_user_bookings"
	updateFacilityScheduleHandler "github.com/quickcourt/QC-BookingService/internal/api/handlers/update_facility_schedule"
	"github.com/quickcourt/QC-BookingService/internal/api/middleware"
	"github.com/quickcourt/QC-BookingService/internal/config"
	bookingRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/booking"
	scheduleRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/schedule"
	facilityServiceClient "github.com/quickcourt/QC-BookingService/internal/integrations/facilityservice"
	bookingsService "github.com/quickcourt/QC-BookingService/internal/service/bookings"
	scheduleService "github.com/quickcourt/QC-BookingService/internal/service/schedule"
	checkAvailabilityUC "github.com/quickcourt/QC-BookingService/internal/usecase/check_availability"
	createBookingUC "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	getSlotGridUC "github.com/quickcourt/QC-BookingService/internal/usecase/get_slot_grid"
	"github.com/quickcourt/QC-BookingService/pkg/dbmetrics"
	"github.com/quickcourt/QC-BookingService/pkg/logger"
	"github.com/quickcourt/QC-BookingService/pkg/metrics"
	"github.com/quickcourt/QC-BookingService/pkg/simpletxmanager"
	"github.com/quickcourt/QC-BookingService/pkg/txmanager"
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

	log.Info("Starting QC-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем клиента FacilityService
	facilityClient := facilityServiceClient.NewClient(
		cfg.FacilityService.URL,
		time.Duration(cfg.FacilityService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (FacilityService=%s timeout=%ds)",
		cfg.FacilityService.URL, cfg.FacilityService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
		facilityClient,
		txMgr,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		facilityClient,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityClient,
		txMgr,
		log,
	)
	getSlotGridUseCase := getSlotGridUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getSlotGrid := getSlotGridHandler.NewHandler(getSlotGridUseCase, log)
	getFacilitySchedule := getFacilityScheduleHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	updateFacilitySchedule := updateFacilityScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности интервала
	api.HandleFunc("/courts/{courtId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Сетка слотов корта на дату
	api.HandleFunc("/facilities/{facilityId}/courts/{courtId}/slots",
		getSlotGrid.Handle).Methods(http.MethodGet)

	// Действующее расписание площадки или корта
	api.HandleFunc("/facilities/{facilityId}/schedule",
		getFacilitySchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для владельцев) ---
	// Список бронирований площадки
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

	// Настройка расписания площадки или корта
	protected.HandleFunc("/facilities/{facilityId}/schedule", updateFacilitySchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/facilities/{facilityId}/schedule", updateFacilitySchedule.HandleDelete).Methods(http.MethodDelete)

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
