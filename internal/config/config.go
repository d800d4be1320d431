// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Directory backend identifiers.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Search  SearchConfig
	Data    DataConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// SearchConfig holds settings for the itinerary search engine.
type SearchConfig struct {
	// Timeout bounds a single search request end to end.
	Timeout time.Duration `env:"TIMEOUT_SEARCH" envDefault:"5s"`

	// DomesticMaxStops is the intermediate-stop ceiling for domestic routes.
	DomesticMaxStops int `env:"SEARCH_DOMESTIC_MAX_STOPS" envDefault:"1"`

	// InternationalMaxStops is the intermediate-stop ceiling for international routes.
	InternationalMaxStops int `env:"SEARCH_INTERNATIONAL_MAX_STOPS" envDefault:"2"`

	// MinDomesticLayover is the minimum legal layover on domestic connections.
	MinDomesticLayover time.Duration `env:"SEARCH_MIN_DOMESTIC_LAYOVER" envDefault:"45m"`

	// MinInternationalLayover is the minimum legal layover on international connections.
	MinInternationalLayover time.Duration `env:"SEARCH_MIN_INTERNATIONAL_LAYOVER" envDefault:"90m"`

	// MaxLayover is the maximum legal layover on any connection.
	MaxLayover time.Duration `env:"SEARCH_MAX_LAYOVER" envDefault:"6h"`
}

// DataConfig holds flight directory settings.
type DataConfig struct {
	// Backend selects the directory implementation: memory or postgres.
	Backend string `env:"DATA_BACKEND" envDefault:"memory"`

	// File is the JSON dataset path used by the memory backend.
	File string `env:"DATA_FILE" envDefault:"data/flights.json"`

	// PostgresDSN is the connection string used by the postgres backend.
	PostgresDSN string `env:"POSTGRES_DSN"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Search.Timeout <= 0 {
		return fmt.Errorf("TIMEOUT_SEARCH must be positive")
	}

	// Validate search knobs
	if cfg.Search.DomesticMaxStops < 0 {
		return fmt.Errorf("SEARCH_DOMESTIC_MAX_STOPS must not be negative")
	}
	if cfg.Search.InternationalMaxStops < 0 {
		return fmt.Errorf("SEARCH_INTERNATIONAL_MAX_STOPS must not be negative")
	}
	if cfg.Search.MinDomesticLayover <= 0 || cfg.Search.MinInternationalLayover <= 0 {
		return fmt.Errorf("minimum layover durations must be positive")
	}
	if cfg.Search.MaxLayover < cfg.Search.MinInternationalLayover {
		return fmt.Errorf("SEARCH_MAX_LAYOVER must not be below SEARCH_MIN_INTERNATIONAL_LAYOVER")
	}

	// Validate directory backend
	switch cfg.Data.Backend {
	case BackendMemory:
		if cfg.Data.File == "" {
			return fmt.Errorf("DATA_FILE is required for the memory backend")
		}
	case BackendPostgres:
		if cfg.Data.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("DATA_BACKEND must be one of: memory, postgres; got %q", cfg.Data.Backend)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
