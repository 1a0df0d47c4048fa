package main

import (
	"context"
	"log"
	"net/http"
	"omerald-service/internal/app/config"
	"omerald-service/internal/app/delivery/http/middlewares"
	"omerald-service/internal/app/delivery/http/routers"
	"omerald-service/internal/app/drivers/database"
	"omerald-service/internal/app/drivers/logger"
	"omerald-service/internal/app/drivers/messaging"
	"omerald-service/internal/app/drivers/storage"
	"omerald-service/internal/app/services/core/analytics"
	"omerald-service/internal/app/services/core/diagnosticcenters"
	"omerald-service/internal/app/services/core/files"
	"omerald-service/internal/app/services/core/reports"
	"omerald-service/internal/app/services/shared/events"
	sharedredis "omerald-service/internal/app/services/shared/redis"
	sharedstorage "omerald-service/internal/app/services/shared/storage"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	logrusLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Redis
	redisRepository := sharedredis.NewRedisRepository(redisClient)

	// Storage
	minioStorage := sharedstorage.NewMinioStorage(minioClient)

	// Events
	eventPublisher, err := events.NewReportEventPublisher(rabbitMQ, internalConfig.App.RabbitMQReportEventQueue, zapLogger)
	if err != nil {
		log.Fatalf("Failed to set up report event publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(zapLogger, internalConfig, redisRepository)

	// Reports
	reportMongoRepository := reports.NewReportMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	reportUsecase := reports.NewReportUsecase(
		reportMongoRepository,
		minioStorage,
		eventPublisher,
		internalConfig,
		zapLogger,
	)
	reportController := reports.NewReportController(zapLogger, reportUsecase)

	// Diagnostic centers
	dcClient := diagnosticcenters.NewDiagnosticCenterClient(internalConfig.DiagnosticCenter.BaseUrl, zapLogger)
	dcUsecase := diagnosticcenters.NewDiagnosticCenterUsecase(dcClient, redisRepository, internalConfig, zapLogger)
	dcController := diagnosticcenters.NewDiagnosticCenterController(zapLogger, dcUsecase)

	// Files
	fileUsecase := files.NewFileUsecase(minioStorage, driverConfig, internalConfig, zapLogger)
	fileController := files.NewFileController(zapLogger, fileUsecase)

	// Analytics
	profileMongoRepository := analytics.NewProfileMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	analyticsUsecase := analytics.NewAnalyticsUsecase(profileMongoRepository, reportMongoRepository, zapLogger)
	analyticsController := analytics.NewAnalyticsController(zapLogger, analyticsUsecase)

	chiRouter.Use(appMiddlewares.RequestLogger(logrusLogger))
	routers.SetupRoutes(
		chiRouter,
		internalConfig,
		appMiddlewares,
		reportController,
		dcController,
		fileController,
		analyticsController,
	)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error closing application resources: %v", err)
	}

	log.Println("Server exiting")
}
