package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/0xzahra/gmn/internal/api"
	"github.com/0xzahra/gmn/internal/api/middleware"
	"github.com/0xzahra/gmn/internal/config"
	"github.com/0xzahra/gmn/internal/logger"
	"github.com/0xzahra/gmn/internal/repository"
	"github.com/0xzahra/gmn/internal/service"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger.SetDefaultLogger(logger.NewDefault())
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database: %v", err)
	}

	// Initialize repositories
	store := repository.NewRecordStore(db)
	historyRepo := repository.NewHistoryRepository(store)
	templateRepo := repository.NewTemplateRepository(store)
	profileRepo := repository.NewProfileRepository(store)

	// Warm the document repositories; corrupt documents log and start empty
	ctx := context.Background()
	if err := historyRepo.Load(ctx); err != nil {
		logger.Fatal("Failed to load history: %v", err)
	}
	if err := templateRepo.Load(ctx); err != nil {
		logger.Fatal("Failed to load templates: %v", err)
	}

	// Initialize generation provider and orchestrator
	generator, err := service.NewGenerator(&cfg.Generation)
	if err != nil {
		logger.Fatal("Failed to initialize generator: %v", err)
	}
	logger.Info("Generation provider ready: provider=%s", generator.Name())

	captionClient := service.NewCaptionClient(generator)
	seeder := service.NewSeeder(cfg.Seed.Engagement)
	signalService := service.NewSignalService(captionClient, historyRepo, seeder, cfg.Generation.Timeout)

	// Setup router
	router := api.SetupRouter(api.Deps{
		Signals:   signalService,
		History:   historyRepo,
		Templates: templateRepo,
		Profiles:  profileRepo,
	}, cfg.Server.Mode, middleware.CORSConfig{
		AllowedOrigins:  cfg.Server.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.Server.CORS.AllowAllOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting API server: port=%d, mode=%s", cfg.Server.Port, cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
