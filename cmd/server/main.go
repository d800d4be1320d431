// Package main is the entry point for the itinerary search service.
//
//	@title						Itinerary Search API
//	@version					1.0.0
//	@description				A flight itinerary search service that finds all legal multi-leg itineraries between two airports, sorted by total travel duration.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/skypath/itinerary-search-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/skypath/itinerary-search-service/docs"

	// Application layers
	"github.com/skypath/itinerary-search-service/internal/adapter/directory/memory"
	"github.com/skypath/itinerary-search-service/internal/adapter/directory/postgres"
	itineraryhttp "github.com/skypath/itinerary-search-service/internal/adapter/http"
	"github.com/skypath/itinerary-search-service/internal/adapter/http/middleware"
	"github.com/skypath/itinerary-search-service/internal/config"
	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/logger"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Data.Backend).
		Msg("Configuration loaded")

	// Build the flight directory for the configured backend
	directory, cleanup, err := buildDirectory(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize flight directory")
	}
	defer cleanup()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg, directory)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger initializes the global structured logger from config.
func setupLogger(cfg *config.Config) {
	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format

	logger.Init(logCfg)
	log.Logger = logger.Global.Logger
}

// buildDirectory constructs the configured flight directory backend.
// The returned cleanup releases any backend resources and is safe to defer.
func buildDirectory(cfg *config.Config) (domain.Directory, func(), error) {
	dirLog := logger.Global.WithBackend(cfg.Data.Backend).Logger

	switch cfg.Data.Backend {
	case config.BackendMemory:
		dir, err := memory.Load(cfg.Data.File, dirLog)
		if err != nil {
			return nil, nil, err
		}
		return dir, func() {}, nil

	case config.BackendPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()

		dir, err := postgres.New(ctx, cfg.Data.PostgresDSN, dirLog)
		if err != nil {
			return nil, nil, err
		}
		if err := seedPostgres(ctx, dir, cfg.Data.File, dirLog); err != nil {
			dir.Close()
			return nil, nil, err
		}
		return dir, dir.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown directory backend %q", cfg.Data.Backend)
	}
}

// seedPostgres ingests the dataset file into an empty database so a fresh
// postgres backend starts with the same data the memory backend loads.
// Populated databases are left untouched.
func seedPostgres(ctx context.Context, dir *postgres.Directory, dataFile string, lg zerolog.Logger) error {
	empty, err := dir.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	seed, err := memory.Load(dataFile, lg)
	if err != nil {
		return fmt.Errorf("load seed dataset: %w", err)
	}

	airports, flights := seed.Dataset()
	return dir.Ingest(ctx, airports, flights)
}

// setupRoutes configures the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, directory domain.Directory) {
	// Initialize the search engine with stop ceilings and layover rules from config
	searchConfig := &usecase.Config{
		DomesticMaxStops:      cfg.Search.DomesticMaxStops,
		InternationalMaxStops: cfg.Search.InternationalMaxStops,
		Rules: usecase.ConnectionRules{
			MinDomesticLayover:      cfg.Search.MinDomesticLayover,
			MinInternationalLayover: cfg.Search.MinInternationalLayover,
			MaxLayover:              cfg.Search.MaxLayover,
		},
	}
	searchUseCase := usecase.NewItinerarySearch(directory, searchConfig, log.Logger)

	// Initialize handler
	handler := itineraryhttp.NewItineraryHandler(searchUseCase, directory, timeutil.NewRealClock(), cfg.Search.Timeout)

	// Health check, API v1 routes
	itineraryhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
