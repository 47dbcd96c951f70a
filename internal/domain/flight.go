// Package domain contains the core business entities and rules for the aviation
// market demand dashboard. These entities are provider-agnostic and form the
// foundation upon which all other components are built.
package domain

import "strings"

// FlightStatus is the normalized operational status of a flight.
type FlightStatus string

// Normalized flight statuses.
const (
	StatusScheduled FlightStatus = "Scheduled"
	StatusInFlight  FlightStatus = "In Flight"
	StatusArrived   FlightStatus = "Arrived"
	StatusCancelled FlightStatus = "Cancelled"
	StatusDisrupted FlightStatus = "Disrupted"
	StatusUnknown   FlightStatus = "Unknown"
)

// NormalizeStatus maps a provider's raw flight status to a FlightStatus.
// The mapping is total and case-insensitive: any unrecognized or empty
// input maps to StatusUnknown, never an error.
func NormalizeStatus(raw string) FlightStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "scheduled":
		return StatusScheduled
	case "active", "en-route":
		return StatusInFlight
	case "landed":
		return StatusArrived
	case "cancelled":
		return StatusCancelled
	case "incident", "diverted":
		return StatusDisrupted
	default:
		return StatusUnknown
	}
}

// FlightRecord represents a single normalized flight observation.
// Records are created fresh on every fetch and are never mutated afterwards;
// their lifetime is one request/response cycle.
type FlightRecord struct {
	// FlightNumber is the IATA flight number, or "N/A" when the provider
	// omits it
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline name, or "Unknown"
	Airline string `json:"airline"`

	// Departure describes the departure endpoint
	Departure FlightEndpoint `json:"departure"`

	// Arrival describes the arrival endpoint
	Arrival FlightEndpoint `json:"arrival"`

	// Aircraft is the aircraft model, or "N/A"
	Aircraft string `json:"aircraft"`

	// Status is the normalized flight status
	Status FlightStatus `json:"status"`

	// Price is always absent: no commercial pricing source is wired in
	Price *float64 `json:"price,omitempty"`
}

// FlightEndpoint is one side of a flight (departure or arrival).
type FlightEndpoint struct {
	// Airport is the IATA airport code, or "N/A"
	Airport string `json:"airport"`

	// City is the airport/city name as reported upstream, or "Unknown"
	City string `json:"city"`

	// Country is the country name when known, or "Unknown"
	Country string `json:"country"`

	// Time is the local time text, preferring the estimated time over the
	// scheduled time, or "N/A" when neither is available
	Time string `json:"time"`
}

// Route renders the ordered departure-arrival airport pair as "DEP-ARR".
func (f FlightRecord) Route() string {
	return f.Departure.Airport + "-" + f.Arrival.Airport
}
