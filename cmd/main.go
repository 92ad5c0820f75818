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

	cancelAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/cancel_appointment"
	confirmAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/confirm_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/create_appointment"
	getAppointmentsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_appointments"
	getPendingHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_pending_appointments"
	getSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/get_settings"
	rejectAppointmentHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/reject_appointment"
	sendRemindersHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/send_reminders"
	updateSettingsHandler "github.com/m04kA/SMC-SalonService/internal/api/handlers/update_settings"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	ledgerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/ledger"
	pendingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/pending"
	queueRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/queue"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	settingsRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/settings"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/integrations/reminderwebhook"
	appointmentsService "github.com/m04kA/SMC-SalonService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-SalonService/internal/service/availability"
	rotationService "github.com/m04kA/SMC-SalonService/internal/service/rotation"
	salesService "github.com/m04kA/SMC-SalonService/internal/service/sales"
	confirmAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/confirm_appointment"
	createAppointmentUC "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	sendRemindersUC "github.com/m04kA/SMC-SalonService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
	"github.com/m04kA/SMC-SalonService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
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

	log.Info("Starting SMC-SalonService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
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

	// Клиент вебхука напоминаний
	webhookClient := reminderwebhook.NewClient(time.Duration(cfg.Reminder.Timeout)*time.Second, log)
	log.Info("Reminder webhook client initialized (timeout=%ds)", cfg.Reminder.Timeout)

	// Интерфейс transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Репозитории с обёрткой метрик или без неё
	var dbExec appointmentRepo.DBExecutor = db
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExec = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	serviceRepository := serviceRepo.NewRepository(dbExec)
	staffRepository := staffRepo.NewRepository(dbExec)
	clientRepository := clientRepo.NewRepository(dbExec)
	scheduleRepository := scheduleRepo.NewRepository(dbExec)
	appointmentRepository := appointmentRepo.NewRepository(dbExec)
	pendingRepository := pendingRepo.NewRepository(dbExec)
	queueRepository := queueRepo.NewRepository(dbExec)
	ledgerRepository := ledgerRepo.NewRepository(dbExec)
	settingsRepository := settingsRepo.NewRepository(dbExec)

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(appointmentRepository, scheduleRepository, log)
	rotationSvc := rotationService.NewService(queueRepository, log)
	salesSvc := salesService.NewService(staffRepository, ledgerRepository, log)
	lifecycleSvc := appointmentsService.NewService(
		appointmentRepository,
		pendingRepository,
		serviceRepository,
		salesSvc,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		serviceRepository,
		staffRepository,
		clientRepository,
		pendingRepository,
		settingsRepository,
		availabilitySvc,
		rotationSvc,
		lifecycleSvc,
		txMgr,
		cfg.Rotation.RequeueOnManualAssign,
		log,
	)

	confirmAppointmentUseCase := confirmAppointmentUC.NewUseCase(
		pendingRepository,
		serviceRepository,
		staffRepository,
		availabilitySvc,
		rotationSvc,
		lifecycleSvc,
		txMgr,
		cfg.Rotation.RequeueOnManualAssign,
		log,
	)

	sendRemindersUseCase := sendRemindersUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		webhookClient,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(confirmAppointmentUseCase, log)
	rejectAppointment := rejectAppointmentHandler.NewHandler(lifecycleSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(lifecycleSvc, log)
	getPending := getPendingHandler.NewHandler(lifecycleSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(lifecycleSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsRepository, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsRepository, log)
	sendReminders := sendRemindersHandler.NewHandler(sendRemindersUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Создание записи (авто или ручной выбор мастера)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Ожидающие заявки ---
	protected.HandleFunc("/pending-appointments", getPending.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/pending-appointments/{pendingId}/confirm", confirmAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/pending-appointments/{pendingId}", rejectAppointment.Handle).Methods(http.MethodDelete)

	// --- Подтвержденные записи ---
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)

	// --- Настройки ---
	protected.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// --- Напоминания ---
	protected.HandleFunc("/reminders/dispatch", sendReminders.Handle).Methods(http.MethodPost)

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
