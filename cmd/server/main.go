// Package main is the entry point for the airline market demand dashboard service.
//
//	@title						Airline Market Demand API
//	@version					1.0.0
//	@description				Backend service that aggregates flight movements, city weather, and AI-generated market insights for Australian airports.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/avmarket/aviation-demand-dashboard/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/api
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
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/avmarket/aviation-demand-dashboard/docs"

	apihttp "github.com/avmarket/aviation-demand-dashboard/internal/adapter/http"
	"github.com/avmarket/aviation-demand-dashboard/internal/adapter/http/middleware"
	"github.com/avmarket/aviation-demand-dashboard/internal/adapter/provider/aviationstack"
	"github.com/avmarket/aviation-demand-dashboard/internal/adapter/provider/gemini"
	"github.com/avmarket/aviation-demand-dashboard/internal/adapter/provider/openweather"
	"github.com/avmarket/aviation-demand-dashboard/internal/config"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/timeutil"
	"github.com/avmarket/aviation-demand-dashboard/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "market-demand-dashboard",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("default_airport", cfg.Dashboard.DefaultAirport).
		Strs("cities", cfg.Dashboard.Cities).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	setupRoutes(e, cfg, log)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupRoutes wires the upstream adapters into the use case layer and
// registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	flights := aviationstack.NewAdapter(aviationstack.Config{
		BaseURL: cfg.Providers.FlightBaseURL,
		APIKey:  cfg.Providers.FlightAPIKey,
	}, log)

	weather := openweather.NewAdapter(openweather.Config{
		BaseURL: cfg.Providers.WeatherBaseURL,
		APIKey:  cfg.Providers.WeatherAPIKey,
		Timeout: cfg.Providers.WeatherTimeout,
	}, log)

	generator := gemini.NewClient(gemini.Config{
		BaseURL: cfg.Providers.GenerativeURL,
		APIKey:  cfg.Providers.GenerativeAPIKey,
	}, log)

	insights := usecase.NewInsightGenerator(generator, timeutil.NewRealClock(), log)
	builder := usecase.NewDashboardBuilder(flights, weather, insights, log)

	handler := apihttp.NewDashboardHandler(flights, builder, cfg.Dashboard.DefaultAirport, cfg.Dashboard.Cities, log)
	apihttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
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
