// Package mock provides test doubles for the market demand dashboard.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
)

// FlightSource is a configurable mock implementation of domain.FlightSource.
// It supports configurable delays, errors, and responses for testing
// various scenarios including timeouts and upstream failures.
type FlightSource struct {
	flights   []domain.FlightRecord
	err       error
	delay     time.Duration
	callCount int
	airports  []string
	mu        sync.Mutex
}

// NewFlightSource creates a new mock flight source.
// The source is configured using the builder pattern methods.
func NewFlightSource() *FlightSource {
	return &FlightSource{}
}

// WithFlights configures the source to return the given flight records.
func (s *FlightSource) WithFlights(flights []domain.FlightRecord) *FlightSource {
	s.flights = flights
	return s
}

// WithError configures the source to return the given error.
func (s *FlightSource) WithError(err error) *FlightSource {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (s *FlightSource) WithDelay(d time.Duration) *FlightSource {
	s.delay = d
	return s
}

// Fetch implements domain.FlightSource.
// It respects context cancellation, applies configured delay,
// and returns configured flights or error.
func (s *FlightSource) Fetch(ctx context.Context, airportCode string) ([]domain.FlightRecord, error) {
	s.mu.Lock()
	s.callCount++
	s.airports = append(s.airports, airportCode)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if s.err != nil {
		return nil, s.err
	}

	return s.flights, nil
}

// CallCount returns the number of times Fetch was called.
func (s *FlightSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Airports returns the airport codes Fetch was called with, in order.
func (s *FlightSource) Airports() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.airports...)
}

var _ domain.FlightSource = (*FlightSource)(nil)

// WeatherSource is a configurable mock implementation of domain.WeatherSource.
// Per-city records, errors, and delays let tests exercise partial failures
// in the weather fan-out.
type WeatherSource struct {
	records   map[string]domain.WeatherRecord
	errs      map[string]error
	delays    map[string]time.Duration
	err       error
	callCount int
	mu        sync.Mutex
}

// NewWeatherSource creates a new mock weather source.
func NewWeatherSource() *WeatherSource {
	return &WeatherSource{
		records: make(map[string]domain.WeatherRecord),
		errs:    make(map[string]error),
		delays:  make(map[string]time.Duration),
	}
}

// WithRecord configures the record returned for a city.
func (s *WeatherSource) WithRecord(city string, rec domain.WeatherRecord) *WeatherSource {
	s.records[city] = rec
	return s
}

// WithCityError configures an error for a single city.
func (s *WeatherSource) WithCityError(city string, err error) *WeatherSource {
	s.errs[city] = err
	return s
}

// WithCityDelay configures a delay for a single city.
func (s *WeatherSource) WithCityDelay(city string, d time.Duration) *WeatherSource {
	s.delays[city] = d
	return s
}

// WithError configures an error returned for every city.
func (s *WeatherSource) WithError(err error) *WeatherSource {
	s.err = err
	return s
}

// Fetch implements domain.WeatherSource.
func (s *WeatherSource) Fetch(ctx context.Context, city string) (domain.WeatherRecord, error) {
	s.mu.Lock()
	s.callCount++
	delay := s.delays[city]
	s.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return domain.WeatherRecord{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	if s.err != nil {
		return domain.WeatherRecord{}, s.err
	}
	if err, ok := s.errs[city]; ok {
		return domain.WeatherRecord{}, err
	}
	if rec, ok := s.records[city]; ok {
		return rec, nil
	}
	return domain.WeatherRecord{
		Location:    city,
		Temperature: 21,
		Condition:   "clear sky",
		Impact:      domain.ImpactOptimal,
	}, nil
}

// CallCount returns the number of times Fetch was called.
func (s *WeatherSource) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

var _ domain.WeatherSource = (*WeatherSource)(nil)

// TextGenerator is a configurable mock implementation of domain.TextGenerator.
type TextGenerator struct {
	reply     string
	err       error
	callCount int
	prompts   []string
	mu        sync.Mutex
}

// NewTextGenerator creates a new mock text generator.
func NewTextGenerator() *TextGenerator {
	return &TextGenerator{}
}

// WithReply configures the text returned for every prompt.
func (g *TextGenerator) WithReply(reply string) *TextGenerator {
	g.reply = reply
	return g
}

// WithError configures the generator to return the given error.
func (g *TextGenerator) WithError(err error) *TextGenerator {
	g.err = err
	return g
}

// Generate implements domain.TextGenerator.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.callCount++
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()

	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

// CallCount returns the number of times Generate was called.
func (g *TextGenerator) CallCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.callCount
}

var _ domain.TextGenerator = (*TextGenerator)(nil)

// SampleFlights returns arrival records into the given airport with all
// fields populated the way the aviationstack adapter produces them.
// Routes cycle through a fixed set of origin airports so route analytics
// have multiple distinct routes to group.
func SampleFlights(arrivalAirport string, count int) []domain.FlightRecord {
	origins := []string{"MEL", "BNE", "PER", "ADL"}
	airlines := []string{"Qantas", "Virgin Australia", "Jetstar"}

	flights := make([]domain.FlightRecord, count)
	for i := 0; i < count; i++ {
		origin := origins[i%len(origins)]
		flights[i] = domain.FlightRecord{
			FlightNumber: fmt.Sprintf("QF%d", 400+i),
			Airline:      airlines[i%len(airlines)],
			Departure: domain.FlightEndpoint{
				Airport: origin,
				City:    origin,
				Country: "Australia",
				Time:    fmt.Sprintf("2025-06-01T%02d:00:00+00:00", 6+i%12),
			},
			Arrival: domain.FlightEndpoint{
				Airport: arrivalAirport,
				City:    arrivalAirport,
				Country: "Australia",
				Time:    fmt.Sprintf("2025-06-01T%02d:30:00+00:00", 7+i%12),
			},
			Aircraft: "B738",
			Status:   domain.StatusScheduled,
		}
	}
	return flights
}

// SampleInsightReply returns a well-formed generator reply with the
// pipe-delimited rows the insight parser expects.
func SampleInsightReply() string {
	return "Traffic Volume|Arrivals holding steady|up|42 flights|+5%\n" +
		"Route Coverage|Four active corridors|stable|4 routes|0%\n" +
		"Airline Diversity|Three carriers active|up|3 airlines|+1\n" +
		"Top Airline|Qantas leads arrivals|up|Qantas|+2%"
}
