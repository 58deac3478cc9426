package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DoctorConsultas/recetalia-api-rest/config"
	deliveryHttp "github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/handler"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/delivery/http/middleware"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/infrastructure/cache"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/infrastructure/database"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/infrastructure/dnma"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/repository"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/service"
	"github.com/DoctorConsultas/recetalia-api-rest/internal/usecase"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/jwt"
	"github.com/DoctorConsultas/recetalia-api-rest/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const migrationsPath = "db/migrations"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	DnmaDB      *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(cfg.DB, migrationsPath); err != nil {
		return nil, err
	}

	// The DNMA drug catalog lives in an externally administered MySQL
	// instance. Enrichment degrades gracefully when it is unreachable, so
	// a failed connection here is fatal only at startup to surface
	// misconfiguration early.
	dnmaDB, err := dnma.NewDnmaConnection(cfg.DnmaDB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DNMA database: %w", err)
	}
	app.DnmaDB = dnmaDB

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, db, dnmaDB, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db, dnmaDB *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()
	log := logrus.StandardLogger()

	// Repositories
	prescriptionRepo := repository.NewPrescriptionRepository()
	medicRepo := repository.NewMedicRepository()
	providerRepo := repository.NewMedicalProviderRepository()
	patientRepo := repository.NewPatientRepository()
	countryRepo := repository.NewCountryRepository()
	localityRepo := repository.NewLocalityRepository()
	templateRepo := repository.NewNotificationTemplateRepository()

	// Services
	dnmaService := service.NewDnmaService(dnmaDB, log, cfg.DnmaDB.QueryTimeout)
	exportService := service.NewExportService(log)
	currentProvider := service.NewCurrentProviderService(db, providerRepo)

	// Usecases
	prescriptionUsecase := usecase.NewPrescriptionUsecase(db, log, prescriptionRepo, dnmaService)
	medicUsecase := usecase.NewMedicUsecase(db, log, medicRepo)
	providerUsecase := usecase.NewMedicalProviderUsecase(db, log, providerRepo, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	referenceUsecase := usecase.NewReferenceUsecase(db, log, countryRepo, localityRepo, templateRepo)

	// Handlers
	prescriptionHandler := handler.NewPrescriptionHandler(prescriptionUsecase, currentProvider, exportService, customValidator, log)
	medicHandler := handler.NewMedicHandler(medicUsecase, currentProvider, customValidator, log)
	providerHandler := handler.NewMedicalProviderHandler(providerUsecase, customValidator, log)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, log)
	referenceHandler := handler.NewReferenceHandler(referenceUsecase, customValidator, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := deliveryHttp.NewRouter(prescriptionHandler, medicHandler, providerHandler, patientHandler, referenceHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (databases, redis)
func (app *App) Close() {
	for _, db := range []*gorm.DB{app.DB, app.DnmaDB} {
		if db == nil {
			continue
		}
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
