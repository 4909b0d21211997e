package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/user/samadhi-tracker/docs" // Swagger docs
	"github.com/user/samadhi-tracker/internal/config"
	"github.com/user/samadhi-tracker/internal/handler"
	"github.com/user/samadhi-tracker/internal/repository"
	"github.com/user/samadhi-tracker/internal/service"
	"github.com/user/samadhi-tracker/pkg/database"
	fiberserver "github.com/user/samadhi-tracker/pkg/fiber"
	ginserver "github.com/user/samadhi-tracker/pkg/gin"
	"github.com/user/samadhi-tracker/pkg/logger"
)

// @title Samadhi Tracker API
// @version 1.0
// @description Mood tracking and meditation recommendation API.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := logger.New(cfg)
	appLog.Info().Str("env", cfg.AppEnv).Str("framework", cfg.ServerFramework).Msg("starting")

	// Update Swagger info based on config
	docs.SwaggerInfo.Host = cfg.SwaggerHost
	docs.SwaggerInfo.BasePath = cfg.SwaggerBasePath
	docs.SwaggerInfo.Schemes = cfg.SwaggerSchemes
	docs.SwaggerInfo.Title = cfg.AppName + " API"

	// Connect to database
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB()

	// Run migrations
	if err := database.MigrateDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	feelingRepo := repository.NewFeelingRepository(db)
	meditationRepo := repository.NewMeditationRepository(db)
	recordRepo := repository.NewRecordRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	activitySvc := service.NewActivityService(activityRepo, appLog)
	authSvc := service.NewAuthService(userRepo, activitySvc, cfg)
	catalogSvc := service.NewCatalogService(feelingRepo, meditationRepo, userRepo, recordRepo, activitySvc, cfg)
	recordSvc := service.NewRecordService(recordRepo, activitySvc)
	dashboardSvc := service.NewDashboardService(recordRepo)
	recommendationSvc := service.NewRecommendationService(meditationRepo)
	analyticsSvc := service.NewAnalyticsService(userRepo, feelingRepo, meditationRepo, recordRepo, activityRepo)

	// Handlers
	healthHandler := handler.NewHealthHandler(db)
	h := handler.NewHandler(
		authSvc,
		catalogSvc,
		recordSvc,
		dashboardSvc,
		recommendationSvc,
		analyticsSvc,
		activityRepo,
		healthHandler,
	)

	// Graceful shutdown channel
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the selected server
	switch cfg.ServerFramework {
	case "fiber":
		fiberApp := fiberserver.NewFiberServer(cfg, h)
		go func() {
			if err := fiberserver.StartFiberServer(fiberApp, cfg); err != nil {
				log.Fatalf("Failed to start Fiber server: %v", err)
			}
		}()
		<-quit
		log.Println("Shutting down Fiber server...")
		if err := fiberApp.Shutdown(); err != nil {
			log.Printf("Error during Fiber server shutdown: %v", err)
		}
	case "gin":
		ginEngine := ginserver.NewGinServer(cfg, h)
		httpServer, err := ginserver.StartGinServer(ginEngine, cfg)
		if err != nil {
			log.Fatalf("Failed to start GIN server: %v", err)
		}
		<-quit
		log.Println("Shutting down GIN server...")
		shutdownTimeout := 5 * time.Second
		ginserver.ShutdownGinServer(httpServer, shutdownTimeout)

	default:
		log.Fatalf("Unsupported server framework: %s. Supported: 'fiber', 'gin'", cfg.ServerFramework)
	}

	log.Println("Server gracefully stopped.")
}
