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

	backWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/back_wizard"
	cancelAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/cancel_appointment"
	confirmWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/confirm_wizard"
	createAppointmentHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_available_slots"
	getProfileHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_profile"
	getUnitAppointmentsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_unit_appointments"
	getUserAppointmentsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_user_appointments"
	getWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/get_wizard"
	listAllServicesHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_all_services"
	listUnitBarbersHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_unit_barbers"
	listUnitServicesHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_unit_services"
	listUnitsHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/list_units"
	nextWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/next_wizard"
	resetWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/reset_wizard"
	selectWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/select_wizard"
	signInHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/sign_up"
	startWizardHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/start_wizard"
	toggleAppointmentStatusHandler "github.com/m04kA/SMC-BarberBookingService/internal/api/handlers/toggle_appointment_status"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/config"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/infra/draftstore"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
	authServiceClient "github.com/m04kA/SMC-BarberBookingService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/n8n"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/trinks"
	appointmentsService "github.com/m04kA/SMC-BarberBookingService/internal/service/appointments"
	authService "github.com/m04kA/SMC-BarberBookingService/internal/service/auth"
	catalogService "github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
	bookingWizardUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
	createBookingUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarberBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/imageurl"
	"github.com/m04kA/SMC-BarberBookingService/pkg/logger"
	"github.com/m04kA/SMC-BarberBookingService/pkg/metrics"
	"github.com/m04kA/SMC-BarberBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-BarberBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-BarberBookingService...")
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

	// Инициализируем интеграционных клиентов
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	trinksClient := trinks.NewClient(
		cfg.Trinks.Enabled,
		cfg.Trinks.BaseURL,
		cfg.Trinks.APIToken,
		cfg.Trinks.EstablishmentID,
		time.Duration(cfg.Trinks.Timeout)*time.Second,
		log,
	)
	n8nDispatcher := n8n.NewDispatcher(
		cfg.N8N.Enabled,
		cfg.N8N.BaseURL,
		cfg.N8N.Webhooks,
		time.Duration(cfg.N8N.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s, Trinks enabled=%t, N8N enabled=%t)",
		cfg.AuthService.URL, cfg.Trinks.Enabled, cfg.N8N.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		catalogRepository     *catalogRepo.Repository
		appointmentRepository *appointmentRepo.Repository
		profileRepository     *profileRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		catalogRepository = catalogRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище черновиков мастера бронирования
	draftStore := draftstore.NewStore(time.Duration(cfg.Drafts.TTLMinutes) * time.Minute)
	log.Info("Draft store initialized (ttl=%dm)", cfg.Drafts.TTLMinutes)

	// Резолвер публичных URL изображений
	imageResolver := imageurl.NewResolver(cfg.Storage.PublicBaseURL, cfg.Storage.Bucket)

	// Рабочие часы сети
	hours := domain.BusinessHours{
		Start: cfg.App.BusinessHoursStart,
		End:   cfg.App.BusinessHoursEnd,
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogRepository, imageResolver, log)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		profileRepository,
		trinksClient,
		n8nDispatcher,
		log,
	)
	authSvc := authService.NewService(authClient, profileRepository, n8nDispatcher, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		hours,
		cfg.App.ClosedWeekdays,
		cfg.App.SlotIntervalMinutes,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		catalogRepository,
		appointmentRepository,
		profileRepository,
		trinksClient,
		n8nDispatcher,
		txMgr,
		hours,
		cfg.App.ClosedWeekdays,
		cfg.App.SlotIntervalMinutes,
		log,
	)

	bookingWizardUseCase := bookingWizardUC.NewUseCase(
		draftStore,
		catalogRepository,
		createBookingUseCase,
		cfg.App.ClosedWeekdays,
		log,
	)

	// Инициализируем handlers
	listUnits := listUnitsHandler.NewHandler(catalogSvc, log)
	listUnitServices := listUnitServicesHandler.NewHandler(catalogSvc, log)
	listAllServices := listAllServicesHandler.NewHandler(catalogSvc, log)
	listUnitBarbers := listUnitBarbersHandler.NewHandler(catalogSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	startWizard := startWizardHandler.NewHandler(bookingWizardUseCase, log)
	getWizard := getWizardHandler.NewHandler(bookingWizardUseCase, log)
	selectWizard := selectWizardHandler.NewHandler(bookingWizardUseCase, log)
	nextWizard := nextWizardHandler.NewHandler(bookingWizardUseCase, log)
	backWizard := backWizardHandler.NewHandler(bookingWizardUseCase, log)
	resetWizard := resetWizardHandler.NewHandler(bookingWizardUseCase, log)
	confirmWizard := confirmWizardHandler.NewHandler(bookingWizardUseCase, log)

	createAppointment := createAppointmentHandler.NewHandler(createBookingUseCase, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUnitAppointments := getUnitAppointmentsHandler.NewHandler(appointmentsSvc, log)
	toggleAppointmentStatus := toggleAppointmentStatusHandler.NewHandler(appointmentsSvc, log)

	signUp := signUpHandler.NewHandler(authSvc, log)
	signIn := signInHandler.NewHandler(authSvc, log)
	signOut := signOutHandler.NewHandler(authSvc, log)
	getProfile := getProfileHandler.NewHandler(authSvc, log)

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

	// --- Каталог ---
	api.HandleFunc("/units", listUnits.Handle).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitId}/services", listUnitServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/units/{unitId}/barbers", listUnitBarbers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)

	// Сетка слотов барбера на день
	api.HandleFunc("/units/{unitId}/barbers/{barberId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Мастер бронирования ---
	api.HandleFunc("/wizard", startWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{token}", getWizard.Handle).Methods(http.MethodGet)
	api.HandleFunc("/wizard/{token}/select", selectWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{token}/next", nextWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{token}/back", backWizard.Handle).Methods(http.MethodPost)
	api.HandleFunc("/wizard/{token}/reset", resetWizard.Handle).Methods(http.MethodPost)

	// Подтверждение: аутентификация опциональна, без нее сессия
	// приостанавливается и ждет входа пользователя
	confirmRoute := api.PathPrefix("/wizard/{token}/confirm").Subrouter()
	confirmRoute.Use(middleware.OptionalAuth(cfg.AuthService.JWTSecret))
	confirmRoute.HandleFunc("", confirmWizard.Handle).Methods(http.MethodPost)

	// --- Аутентификация ---
	api.HandleFunc("/auth/signup", signUp.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", signIn.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.AuthService.JWTSecret))

	protected.HandleFunc("/auth/signout", signOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/profile", getProfile.Handle).Methods(http.MethodGet)

	// --- Записи клиента ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel",
		cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Админ-панель (для сотрудников) ---
	protected.HandleFunc("/units/{unitId}/appointments",
		getUnitAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status/toggle",
		toggleAppointmentStatus.Handle).Methods(http.MethodPatch)

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

	log.Info("Server stopped")
}
