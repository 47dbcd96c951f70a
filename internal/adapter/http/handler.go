package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avmarket/aviation-demand-dashboard/internal/adapter/http/response"
	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
	"github.com/avmarket/aviation-demand-dashboard/internal/usecase"
)

// DashboardHandler handles HTTP requests for flight and dashboard
// endpoints.
type DashboardHandler struct {
	flights        domain.FlightSource
	builder        usecase.DashboardBuilder
	defaultAirport string
	cities         []string
	log            *logger.Logger
}

// NewDashboardHandler creates a DashboardHandler over the given flight
// source and dashboard builder. The cities list drives the weather
// fan-out for every dashboard request.
func NewDashboardHandler(flights domain.FlightSource, builder usecase.DashboardBuilder, defaultAirport string, cities []string, log *logger.Logger) *DashboardHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DashboardHandler{
		flights:        flights,
		builder:        builder,
		defaultAirport: defaultAirport,
		cities:         cities,
		log:            log,
	}
}

// GetFlights handles GET /api/flights
//
// @Summary List real-time arrivals for an airport
// @Description Fetches normalized real-time flight data for the given airport from the upstream provider
// @Tags flights
// @Produce json
// @Param airport query string false "IATA airport code" default(SYD)
// @Success 200 {object} FlightsResponse
// @Failure 400 {object} response.ErrorDetail "Invalid airport code"
// @Failure 500 {object} FlightsErrorResponse "Upstream provider failure"
// @Router /api/flights [get]
func (h *DashboardHandler) GetFlights(c echo.Context) error {
	airport, err := airportParam(c, h.defaultAirport)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	flights, err := h.flights.Fetch(c.Request().Context(), airport)
	if err != nil {
		h.log.Error().Err(err).Str("airport", airport).Msg("Flight fetch failed")
		return c.JSON(http.StatusInternalServerError, &FlightsErrorResponse{
			Message: response.MsgFlightFetchFailed,
			Flights: []domain.FlightRecord{},
		})
	}

	if flights == nil {
		flights = []domain.FlightRecord{}
	}
	return response.OK(c, &FlightsResponse{Flights: flights})
}

// GetDashboard handles GET /api/dashboard
//
// @Summary Build the consolidated market demand view for an airport
// @Description Aggregates flights, market insights, route analytics, price trends, and weather for the cities of interest
// @Tags dashboard
// @Produce json
// @Param airport query string false "IATA airport code" default(SYD)
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} response.ErrorDetail "Invalid airport code"
// @Router /api/dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	airport, err := airportParam(c, h.defaultAirport)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	view := h.builder.Build(c.Request().Context(), airport, h.cities)
	return response.OK(c, &DashboardResponse{AggregateView: view})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *DashboardHandler) Health(c echo.Context) error {
	return response.Health(c)
}
