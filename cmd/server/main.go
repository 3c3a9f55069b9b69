package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "autorenta-backend/internal/api/http"
	"autorenta-backend/internal/config"
	"autorenta-backend/internal/logger"
	"autorenta-backend/internal/repository/postgres"
	"autorenta-backend/internal/security"
	"autorenta-backend/internal/service"
	"autorenta-backend/internal/storage"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AutoRenta Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	authMiddleware := httpapi.NewAuthMiddleware(tokenManager)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var mockStorage *storage.MockStorageService
	switch cfg.Storage.Type {
	case "", "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err = storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
	case "firebase":
		logger.Info("Using Firebase storage", "bucket", cfg.Storage.Bucket)
		storageService, err = storage.NewFirebaseStorageService(context.Background(), cfg.Storage.CredentialsFile, cfg.Storage.Bucket)
		if err != nil {
			logger.Error("Failed to initialize Firebase storage", "error", err)
			log.Fatalf("Failed to initialize Firebase storage: %v", err)
		}
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.From, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.VehicleRepository,
		store.BranchRepository,
		store.UserRepository,
		emailSvc,
	)
	reportSvc := service.NewReportService(store.VehicleRepository, store.ReservationRepository)
	imageSvc := service.NewImageStorageService(store.VehicleRepository, storageService)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.RouterConfig{
		Auth:         httpapi.NewAuthHandler(authSvc),
		Vehicles:     httpapi.NewVehicleHandler(vehicleSvc, imageSvc),
		Reservations: httpapi.NewReservationHandler(reservationSvc),
		Reports:      httpapi.NewReportHandler(reportSvc),
		Middleware:   authMiddleware,
		MockStorage:  mockStorage,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
