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

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Providers ProviderConfig
	Dashboard DashboardConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// ProviderConfig holds credentials and endpoints for the upstream data
// providers. Base URLs are overridable so tests can point the adapters at
// local doubles.
type ProviderConfig struct {
	FlightAPIKey     string        `env:"AVIATIONSTACK_API_KEY"`
	FlightBaseURL    string        `env:"AVIATIONSTACK_BASE_URL" envDefault:"http://api.aviationstack.com"`
	WeatherAPIKey    string        `env:"OPENWEATHER_API_KEY"`
	WeatherBaseURL   string        `env:"OPENWEATHER_BASE_URL" envDefault:"https://api.openweathermap.org"`
	WeatherTimeout   time.Duration `env:"WEATHER_TIMEOUT" envDefault:"10s"`
	GenerativeAPIKey string        `env:"GEMINI_API_KEY"`
	GenerativeURL    string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
}

// DashboardConfig holds dashboard aggregation settings.
type DashboardConfig struct {
	// DefaultAirport is the airport shown when none is requested.
	DefaultAirport string `env:"DEFAULT_AIRPORT" envDefault:"SYD"`

	// Cities are the cities of interest for the weather panel.
	Cities []string `env:"CITIES_OF_INTEREST" envSeparator:"," envDefault:"Sydney,Melbourne,Brisbane,Perth,Adelaide"`
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
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Providers.WeatherTimeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}

	if cfg.Dashboard.DefaultAirport == "" {
		return fmt.Errorf("DEFAULT_AIRPORT must not be empty")
	}
	if len(cfg.Dashboard.Cities) == 0 {
		return fmt.Errorf("CITIES_OF_INTEREST must list at least one city")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

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
