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

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StudioBooking/internal/api"
	createBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_booking"
	exportBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking"
	getBookingWindowHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking_window"
	getLocationHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_location"
	getStudioHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_studio"
	listBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_bookings"
	listStudioTypesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_studio_types"
	searchStudiosHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/search_studios"
	suggestAreasHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/suggest_areas"
	watchAvailabilityHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/watch_availability"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/storage/blob"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/events"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/location"
	"github.com/m04kA/SMC-StudioBooking/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBooking/internal/session"
	createBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	searchStudiosUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/search_studios"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
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

	log.Info("Starting SMC-StudioBooking...")
	log.Info("Configuration loaded from config.toml (storage=%s)", cfg.Storage.Backend)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Открываем хранилище бронирований
	store, closeStore, err := openStore(cfg, metricsCollector, log)
	if err != nil {
		log.Fatal("Failed to open booking storage: %v", err)
	}
	defer closeStore()

	bookingRepository := bookingRepo.NewRepository(store, cfg.Booking.StorageKey)

	// Каталог студий
	studioCatalog, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load studio catalog: %v", err)
	}
	log.Info("Studio catalog loaded: %d studios", len(studioCatalog.List()))

	// Определение местоположения по IP (опционально)
	var locator *location.Locator
	if cfg.Location.URL != "" {
		timeout := time.Duration(cfg.Location.Timeout) * time.Second
		locator = location.NewLocator(
			location.NewClient(cfg.Location.URL, timeout, log),
			timeout,
			time.Duration(cfg.Location.MaxAge)*time.Second,
			log,
		)
		log.Info("Location provider initialized (url=%s timeout=%ds)", cfg.Location.URL, cfg.Location.Timeout)
	} else {
		log.Warn("Location provider is not configured, proximity search needs explicit coordinates")
	}

	// Публикация событий о новых бронированиях
	var publisher createBookingUC.EventPublisher = events.NopPublisher{}
	if cfg.Events.Enabled {
		publisher = events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Queue, log)
		log.Info("Booking events are published to queue %q", cfg.Events.Queue)
	}

	// Метрики передаются в use cases только как явный nil, чтобы не получить typed nil в интерфейсе
	var (
		bookingMetrics createBookingUC.MetricsRecorder
		slotMetrics    getAvailableSlotsUC.MetricsRecorder
		sessionMetrics session.MetricsRecorder
		routerOpts     = api.Options{Logger: log}
	)
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
		slotMetrics = metricsCollector
		sessionMetrics = metricsCollector
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHTTP = promhttp.Handler()
	}

	// Инициализируем сервисы
	availabilitySvc := availability.NewService(bookingRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	var searchLocator searchStudiosUC.LocationProvider
	var handlerLocator getLocationHandler.LocationProvider
	if locator != nil {
		searchLocator = locator
		handlerLocator = locator
	}
	searchStudiosUseCase := searchStudiosUC.NewUseCase(studioCatalog, searchLocator, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		studioCatalog,
		availabilitySvc,
		slotMetrics,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		studioCatalog,
		availabilitySvc,
		publisher,
		bookingMetrics,
		bookingRepo.GenerateID,
		log,
	)

	refreshInterval := cfg.RefreshInterval()
	newSession := func(studio *domain.Studio) *session.Session {
		return session.New(studio, availabilitySvc, createBookingUseCase, refreshInterval, sessionMetrics, log)
	}

	// Инициализируем handlers и роутер
	r := api.NewRouter(api.Handlers{
		SearchStudios:     searchStudiosHandler.NewHandler(searchStudiosUseCase, log),
		GetStudio:         getStudioHandler.NewHandler(studioCatalog, log),
		SuggestAreas:      suggestAreasHandler.NewHandler(studioCatalog, log),
		ListStudioTypes:   listStudioTypesHandler.NewHandler(studioCatalog),
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log),
		WatchAvailability: watchAvailabilityHandler.NewHandler(studioCatalog, newSession, log),
		CreateBooking:     createBookingHandler.NewHandler(createBookingUseCase, log),
		ListBookings:      listBookingsHandler.NewHandler(bookingSvc, log),
		GetBooking:        getBookingHandler.NewHandler(bookingSvc, log),
		ExportBookings:    exportBookingsHandler.NewHandler(bookingSvc, log),
		GetLocation:       getLocationHandler.NewHandler(handlerLocator, log),
		GetBookingWindow:  getBookingWindowHandler.NewHandler(),
	}, routerOpts)

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

// openStore открывает хранилище по cfg.Storage.Backend. Возвращаемая функция освобождает соединения.
func openStore(cfg *config.Config, metricsCollector *metrics.Metrics, log *logger.Logger) (blob.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warn("Using in-memory storage, bookings are lost on restart")
		return blob.NewMemoryStore(), noop, nil

	case config.BackendFile:
		store, err := blob.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		log.Info("Using file storage (dir=%s)", cfg.Storage.Dir)
		return store, noop, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("ping redis: %w", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)
		return blob.NewRedisStore(client, cfg.Redis.Prefix), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var store *blob.PostgresStore
		if metricsCollector != nil {
			store = blob.NewPostgresStore(dbmetrics.Wrap(db, metricsCollector))
			log.Info("Database metrics collection started")
		} else {
			store = blob.NewPostgresStore(db)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return store, func() { _ = db.Close() }, nil

	case config.BackendSQLite:
		db, err := blob.OpenSQLite(cfg.SQLite.DSN)
		if err != nil {
			return nil, noop, err
		}
		store, err := blob.NewSQLiteStore(db)
		if err != nil {
			return nil, noop, err
		}
		log.Info("Using sqlite storage (dsn=%s)", cfg.SQLite.DSN)
		closeDB := func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return store, closeDB, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown storage backend %q", config.ErrInvalidConfig, cfg.Storage.Backend)
	}
}
