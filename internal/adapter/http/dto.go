// Package http provides the HTTP handler layer for the market demand
// dashboard API. It handles request parsing, response formatting, and
// error mapping.
package http

import "github.com/avmarket/aviation-demand-dashboard/internal/domain"

// FlightsResponse is the success payload for GET /api/flights.
type FlightsResponse struct {
	Flights []domain.FlightRecord `json:"flights"`
}

// FlightsErrorResponse is the failure payload for GET /api/flights. The
// flights list is present but empty so clients can render unconditionally.
type FlightsErrorResponse struct {
	Message string                `json:"message"`
	Flights []domain.FlightRecord `json:"flights"`
}

// DashboardResponse is the payload for GET /api/dashboard: the full
// aggregate view for one airport.
type DashboardResponse struct {
	domain.AggregateView
}
