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

	cancelReservationHandler "github.com/islandbreeze/booking-service/internal/api/handlers/cancel_reservation"
	createProductHandler "github.com/islandbreeze/booking-service/internal/api/handlers/create_product"
	createReservationHandler "github.com/islandbreeze/booking-service/internal/api/handlers/create_reservation"
	deleteProductHandler "github.com/islandbreeze/booking-service/internal/api/handlers/delete_product"
	editReservationHandler "github.com/islandbreeze/booking-service/internal/api/handlers/edit_reservation"
	getAvailableTimesHandler "github.com/islandbreeze/booking-service/internal/api/handlers/get_available_times"
	getBookableDatesHandler "github.com/islandbreeze/booking-service/internal/api/handlers/get_bookable_dates"
	getProductHandler "github.com/islandbreeze/booking-service/internal/api/handlers/get_product"
	getReservationHandler "github.com/islandbreeze/booking-service/internal/api/handlers/get_reservation"
	importCatalogHandler "github.com/islandbreeze/booking-service/internal/api/handlers/import_catalog"
	listProductsHandler "github.com/islandbreeze/booking-service/internal/api/handlers/list_products"
	updateProductHandler "github.com/islandbreeze/booking-service/internal/api/handlers/update_product"
	"github.com/islandbreeze/booking-service/internal/api/middleware"
	"github.com/islandbreeze/booking-service/internal/config"
	productRepo "github.com/islandbreeze/booking-service/internal/infra/storage/product"
	reservationRepo "github.com/islandbreeze/booking-service/internal/infra/storage/reservation"
	"github.com/islandbreeze/booking-service/internal/integrations/notifier"
	catalogService "github.com/islandbreeze/booking-service/internal/service/catalog"
	reservationsService "github.com/islandbreeze/booking-service/internal/service/reservations"
	createReservationUC "github.com/islandbreeze/booking-service/internal/usecase/create_reservation"
	editReservationUC "github.com/islandbreeze/booking-service/internal/usecase/edit_reservation"
	getAvailableTimesUC "github.com/islandbreeze/booking-service/internal/usecase/get_available_times"
	getBookableDatesUC "github.com/islandbreeze/booking-service/internal/usecase/get_bookable_dates"
	importCatalogUC "github.com/islandbreeze/booking-service/internal/usecase/import_catalog"
	"github.com/islandbreeze/booking-service/pkg/dbmetrics"
	"github.com/islandbreeze/booking-service/pkg/logger"
	"github.com/islandbreeze/booking-service/pkg/metrics"
	"github.com/islandbreeze/booking-service/pkg/simpletxmanager"
	"github.com/islandbreeze/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Инициализируем диспетчер уведомлений
	var dispatcher createReservationUC.NotificationDispatcher
	if cfg.Notifier.Enabled {
		client, err := notifier.NewClient(
			cfg.Notifier.URL,
			cfg.Notifier.Exchange,
			cfg.Notifier.RoutingKey,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to connect to notification broker: %v", err)
		}
		defer client.Close()
		dispatcher = client
		log.Info("Notification dispatcher connected (exchange=%s, routing_key=%s)",
			cfg.Notifier.Exchange, cfg.Notifier.RoutingKey)
	} else {
		dispatcher = notifier.NewNoopDispatcher(log)
		log.Info("Notification dispatcher disabled, using noop")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		productRepository     *productRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		productRepository = productRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		productRepository = productRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(productRepository, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		productRepository,
		reservationRepository,
		dispatcher,
		txMgr,
		cfg.Notifier.TemplateKey,
		log,
	)

	editReservationUseCase := editReservationUC.NewUseCase(
		productRepository,
		reservationRepository,
		txMgr,
		log,
	)

	getAvailableTimesUseCase := getAvailableTimesUC.NewUseCase(
		productRepository,
		reservationRepository,
		log,
	)

	getBookableDatesUseCase := getBookableDatesUC.NewUseCase(
		productRepository,
		cfg.Booking.HorizonDays,
		log,
	)

	importCatalogUseCase := importCatalogUC.NewUseCase(catalogSvc, log)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	editReservation := editReservationHandler.NewHandler(editReservationUseCase, log)
	getAvailableTimes := getAvailableTimesHandler.NewHandler(getAvailableTimesUseCase, log)
	getBookableDates := getBookableDatesHandler.NewHandler(getBookableDatesUseCase, log)
	listProducts := listProductsHandler.NewHandler(catalogSvc, log)
	getProduct := getProductHandler.NewHandler(catalogSvc, log)
	createProduct := createProductHandler.NewHandler(catalogSvc, log)
	updateProduct := updateProductHandler.NewHandler(catalogSvc, log)
	deleteProduct := deleteProductHandler.NewHandler(catalogSvc, log)
	importCatalog := importCatalogHandler.NewHandler(importCatalogUseCase, log)

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
	// PUBLIC ROUTES
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{name}", getProduct.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{name}/available-times", getAvailableTimes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{name}/bookable-dates", getBookableDates.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}", editReservation.Handle).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{id}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.APIKey))

	// Управление каталогом
	admin.HandleFunc("/products", createProduct.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/products/import", importCatalog.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/products/{id:[0-9]+}", updateProduct.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/products/{id:[0-9]+}", deleteProduct.Handle).Methods(http.MethodDelete)

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
