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

	getHolidaysHandler "github.com/m04kA/SMC-PickerService/internal/api/handlers/get_holidays"
	getPickerHandler "github.com/m04kA/SMC-PickerService/internal/api/handlers/get_picker"
	getPickerDaysHandler "github.com/m04kA/SMC-PickerService/internal/api/handlers/get_picker_days"
	handlePickerEventHandler "github.com/m04kA/SMC-PickerService/internal/api/handlers/handle_picker_event"
	listPickersHandler "github.com/m04kA/SMC-PickerService/internal/api/handlers/list_pickers"
	"github.com/m04kA/SMC-PickerService/internal/api/middleware"
	"github.com/m04kA/SMC-PickerService/internal/config"
	"github.com/m04kA/SMC-PickerService/internal/domain"
	pickerRepo "github.com/m04kA/SMC-PickerService/internal/infra/storage/picker"
	holidaysClient "github.com/m04kA/SMC-PickerService/internal/integrations/holidaysjp"
	holidaysService "github.com/m04kA/SMC-PickerService/internal/service/holidays"
	pickersService "github.com/m04kA/SMC-PickerService/internal/service/pickers"
	pickerModels "github.com/m04kA/SMC-PickerService/internal/service/pickers/models"
	getPickerDaysUC "github.com/m04kA/SMC-PickerService/internal/usecase/get_picker_days"
	handlePickerEventUC "github.com/m04kA/SMC-PickerService/internal/usecase/handle_picker_event"
	"github.com/m04kA/SMC-PickerService/pkg/logger"
	"github.com/m04kA/SMC-PickerService/pkg/metrics"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
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

	log.Info("Starting SMC-PickerService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Старт прерывается по SIGINT/SIGTERM, в том числе во время загрузки праздников
	startCtx, stopStart := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopStart()

	// Загружаем каталог пикеров
	specs, err := loadPickerSpecs(startCtx, cfg, log)
	if err != nil {
		log.Fatal("Failed to load pickers: %v", err)
	}

	configs := make([]domain.PickerConfig, 0, len(specs))
	for i := range specs {
		pc, err := specs[i].ToDomain()
		if err != nil {
			log.Fatal("Invalid picker %q: %v", specs[i].ID, err)
		}
		configs = append(configs, pc)
	}

	tiers, err := pickerModels.TiersToDomain(cfg.TimeTiers)
	if err != nil {
		log.Fatal("Invalid time tiers: %v", err)
	}

	// Источник праздников
	holidayClient := holidaysClient.NewClient(cfg.HolidayAPI.BaseURL, cfg.HolidayAPI.Timeout, log)
	holidayDirectory := holidaysService.NewDirectory(holidayClient, metricsCollector, cfg.HolidayAPI.Timeout, log)
	log.Info("Holiday source initialized (url=%s, timeout=%s)", cfg.HolidayAPI.BaseURL, cfg.HolidayAPI.Timeout)

	// Строим экземпляры пикеров
	orchestrator, err := pickersService.NewOrchestrator(
		holidayDirectory,
		tiers,
		cfg.Calendar.Location,
		&pickersService.RealTimeProvider{},
		log,
	)
	if err != nil {
		log.Fatal("Failed to create orchestrator: %v", err)
	}

	if err := orchestrator.Build(startCtx, configs); err != nil {
		log.Fatal("Failed to build pickers: %v", err)
	}
	stopStart()

	// Инициализируем use cases
	getPickerDaysUseCase := getPickerDaysUC.NewUseCase(orchestrator, cfg.Calendar.MaxSpan, metricsCollector, log)
	handlePickerEventUseCase := handlePickerEventUC.NewUseCase(orchestrator, metricsCollector, log)

	// Инициализируем handlers
	listPickers := listPickersHandler.NewHandler(orchestrator, log)
	getPicker := getPickerHandler.NewHandler(orchestrator, log)
	getPickerDays := getPickerDaysHandler.NewHandler(getPickerDaysUseCase, cfg.Calendar.Location, log)
	handlePickerEvent := handlePickerEventHandler.NewHandler(handlePickerEventUseCase, cfg.Calendar.Location, log)
	getHolidays := getHolidaysHandler.NewHandler(orchestrator, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Настройки виджетов
	api.HandleFunc("/pickers", listPickers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pickers/{pickerId}", getPicker.Handle).Methods(http.MethodGet)

	// Хук render: решения по дням
	api.HandleFunc("/pickers/{pickerId}/days", getPickerDays.Handle).Methods(http.MethodGet)

	// Хуки change, close, ready
	api.HandleFunc("/pickers/{pickerId}/events", handlePickerEvent.Handle).Methods(http.MethodPost)

	// Загруженные праздники
	api.HandleFunc("/holidays", getHolidays.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.Wrap(r, log, cfg.CORS.AllowedOrigins),
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

// loadPickerSpecs читает каталог пикеров из TOML или из PostgreSQL
// Соединение с БД нужно только на старте и закрывается после чтения
func loadPickerSpecs(ctx context.Context, cfg *config.Config, log *logger.Logger) ([]pickerModels.PickerSpec, error) {
	if cfg.Pickers.Source == config.SourceFile {
		log.Info("Loaded %d pickers from config file", len(cfg.Pickers.Items))
		return cfg.Pickers.Items, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	repo := pickerRepo.NewRepository(db)

	if cfg.Pickers.SeedFromFile {
		for i, spec := range cfg.Pickers.Items {
			if err := repo.Upsert(ctx, i, spec); err != nil {
				return nil, fmt.Errorf("seed picker %s: %w", spec.ID, err)
			}
		}
		log.Info("Seeded %d pickers from config file", len(cfg.Pickers.Items))
	}

	specs, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Loaded %d pickers from database", len(specs))
	return specs, nil
}
