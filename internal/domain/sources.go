package domain

import "context"

//go:generate mockgen -source=sources.go -destination=mock_sources.go -package=domain

// FlightSource fetches normalized flight records for one airport code from
// an upstream flight-data provider.
type FlightSource interface {
	// Fetch returns the flights currently arriving at the given airport.
	// It returns an UpstreamError when the provider call errors or returns
	// a non-success response.
	Fetch(ctx context.Context, airportCode string) ([]FlightRecord, error)
}

// WeatherSource fetches normalized current weather for one city from an
// upstream weather provider.
type WeatherSource interface {
	// Fetch returns the current weather for the given city. It returns an
	// UpstreamError when the call errors, times out, or the response lacks
	// the expected fields.
	Fetch(ctx context.Context, city string) (WeatherRecord, error)
}

// TextGenerator is the pluggable generative-text capability used for
// market insights. Implementations may call a hosted model or return
// canned text for tests.
type TextGenerator interface {
	// Generate submits a text prompt and returns the model's plain-text
	// reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
