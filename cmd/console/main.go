package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avtoservice/admin-console/internal/api/handlers"
	"github.com/avtoservice/admin-console/internal/api/routes"
	"github.com/avtoservice/admin-console/internal/api/views"
	"github.com/avtoservice/admin-console/internal/infrastructure/clients/autoservice"
	"github.com/avtoservice/admin-console/internal/infrastructure/observability"
	"github.com/avtoservice/admin-console/internal/infrastructure/session"
	"github.com/avtoservice/admin-console/pkg/config"
	"github.com/avtoservice/admin-console/pkg/retry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)
	logger := observability.GetLogger()

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			logger.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	// Select the session backend
	var repo session.Repository
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		redisRepo, err := session.NewRedisRepository(&cfg.Redis)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to initialize Redis session backend")
		}
		repo = redisRepo
		logger.Info().Str("addr", cfg.Redis.RedisAddr()).Msg("Redis session backend initialized")
	default:
		repo = session.NewFileRepository(cfg.Session.FilePath)
		logger.Info().Str("path", cfg.Session.FilePath).Msg("File session backend initialized")
	}

	// Restore any persisted session; a corrupt or missing file just
	// means the operator signs in again
	store := session.NewStore(repo)
	store.Restore(ctx)

	// Initialize the auto-service API client
	api := autoservice.NewClient(cfg.API.BaseURL, store)

	// Probe the API before serving pages so a misconfigured base URL
	// fails at startup instead of on the first page load
	if err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		return api.Ping(ctx)
	}); err != nil {
		logger.Warn().Err(err).Str("base_url", cfg.API.BaseURL).Msg("Auto-service API is unreachable")
	}

	// Initialize views
	renderer, err := views.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to parse templates")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(api, store, renderer)

	clientsHandler := handlers.NewClientsHandler(api, store, renderer)
	carsHandler := handlers.NewCarsHandler(api, store, renderer)
	servicesHandler := handlers.NewServicesHandler(api, store, renderer)
	appointmentsHandler := handlers.NewAppointmentsHandler(api, store, renderer)
	employeesHandler := handlers.NewEmployeesHandler(api, store, renderer)
	partsHandler := handlers.NewPartsHandler(api, store, renderer)
	categoriesHandler := handlers.NewCategoriesHandler(api, store, renderer)
	reviewsHandler := handlers.NewReviewsHandler(api, store, renderer)

	// Set up router
	router := routes.NewRouter(
		store,
		authHandler,
		clientsHandler,
		carsHandler,
		servicesHandler,
		appointmentsHandler,
		employeesHandler,
		partsHandler,
		categoriesHandler,
		reviewsHandler,
		cfg.OTEL.Enabled,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Console.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("Console starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Console server failed")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down console")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}

	logger.Info().Msg("Console stopped")
}
