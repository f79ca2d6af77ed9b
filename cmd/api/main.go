package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastfood/internal/config"
	"fastfood/internal/database"
	"fastfood/internal/handler"
	"fastfood/internal/metrics"
	"fastfood/internal/repository"
	"fastfood/internal/router"
	"fastfood/internal/seed"
	"fastfood/internal/service"
	"fastfood/internal/validation"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting fastfood API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(logger)
	saleRepo := repository.NewSaleRepository(pool, logger)

	// Initialize services
	validator := validation.New()
	catalogService := service.NewCatalogService(productRepo, logger)
	adminService := service.NewAdminProductService(productRepo, validator, logger)
	orderService := service.NewOrderService(saleRepo, customerRepo, validator, logger)
	historyService := service.NewHistoryService(saleRepo, logger)

	// Import the initial menu into an empty catalogue
	if cfg.Seed.File != "" {
		seeder := seed.NewSeeder(newMenuLoader(ctx, cfg.S3, logger), catalogService, adminService, logger)
		if _, err := seeder.Seed(ctx, cfg.Seed.File); err != nil {
			return fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Products:      handler.NewProductHandler(catalogService, logger),
		AdminProducts: handler.NewAdminProductHandler(catalogService, adminService, logger),
		Sales:         handler.NewSaleHandler(orderService, historyService, logger),
		Rules:         handler.NewRulesHandler(logger),
	}

	// Initialize metrics
	registry := metrics.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(registry)

	if cfg.Auth.AdminAPIKey == "" {
		logger.Warn().Msg("ADMIN_API_KEY not set, admin endpoints are unauthenticated")
	}

	// Initialize router
	mux := router.New(handlers, serverMetrics, registry, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newMenuLoader returns the local file loader, preceded by S3 when enabled.
func newMenuLoader(ctx context.Context, cfg config.S3Config, logger zerolog.Logger) seed.Loader {
	fileLoader := seed.NewFileLoader(logger)
	if !cfg.Enabled {
		logger.Info().Msg("using local file system for the menu file (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := seed.NewS3Loader(ctx, cfg.Bucket, cfg.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return seed.NewFallbackLoader(s3Loader, fileLoader, cfg.Prefix, cfg.Enabled, logger)
}
