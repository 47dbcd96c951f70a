package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
)

// MsgNoFlightData is the user-visible message set on the view when the
// primary flight fetch fails or returns nothing.
const MsgNoFlightData = "No real-time flight data available for this airport"

// DashboardBuilder assembles the consolidated market demand view for one
// airport.
type DashboardBuilder interface {
	// Build fetches flight data for the airport, derives insights and
	// route analytics, fans out weather fetches for the cities of
	// interest, and merges everything into one AggregateView. Only a
	// primary flight-fetch failure is fatal; every other source degrades
	// to an empty section.
	Build(ctx context.Context, airport string, cities []string) domain.AggregateView
}

// dashboardBuilder implements DashboardBuilder.
type dashboardBuilder struct {
	flights  domain.FlightSource
	weather  domain.WeatherSource
	insights InsightGenerator
	log      *logger.Logger
}

// NewDashboardBuilder creates a DashboardBuilder over the given sources.
func NewDashboardBuilder(flights domain.FlightSource, weather domain.WeatherSource, insights InsightGenerator, log *logger.Logger) DashboardBuilder {
	if log == nil {
		log = logger.Nop()
	}
	return &dashboardBuilder{
		flights:  flights,
		weather:  weather,
		insights: insights,
		log:      log,
	}
}

// Build implements DashboardBuilder.
//
// Failure policy: a flight-fetch failure (or empty batch) short-circuits
// with an all-empty view and a user-visible error, without touching any
// other source. Once flights exist, the weather fan-out and the
// flight-dependent chain run as two independent branches that join before
// assembly; a broken insight call or weather city never blanks the rest
// of the dashboard.
func (b *dashboardBuilder) Build(ctx context.Context, airport string, cities []string) domain.AggregateView {
	log := b.log.WithAirport(airport)

	flights, err := b.flights.Fetch(ctx, airport)
	if err != nil {
		log.Error().Err(err).Msg("Flight fetch failed, returning empty dashboard")
		return domain.EmptyAggregateView(airport, MsgNoFlightData)
	}
	if len(flights) == 0 {
		log.Warn().Msg("Flight fetch returned no records")
		return domain.EmptyAggregateView(airport, MsgNoFlightData)
	}

	// Weather branch: one goroutine per city, each failure confined to
	// its slot. Output order is fixed by the input city order, not by
	// completion order.
	results := make([]domain.WeatherResult, len(cities))
	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city string) {
			defer wg.Done()
			results[i] = b.fetchCityWeather(ctx, city)
		}(i, city)
	}

	// Flight-dependent branch runs while the weather fan-out is in
	// flight.
	insights, err := b.insights.Generate(ctx, flights)
	if err != nil {
		log.Warn().Err(err).Msg("Insight generation failed, leaving insights empty")
		insights = []domain.MarketInsight{}
	}

	routes := AnalyzeRoutes(flights)
	prices := AnalyzePrices(flights)

	wg.Wait()
	weather := domain.MergeWeatherResults(results)

	log.Info().
		Int("flights", len(flights)).
		Int("insights", len(insights)).
		Int("weather_cities", len(weather)).
		Int("routes", len(routes)).
		Msg("Dashboard assembled")

	return domain.AggregateView{
		Airport:  airport,
		Flights:  flights,
		Insights: insights,
		Weather:  weather,
		Routes:   routes,
		Prices:   prices,
	}
}

// fetchCityWeather fetches one city's weather, recovering from panics so a
// misbehaving source cannot take down the whole fan-out.
func (b *dashboardBuilder) fetchCityWeather(ctx context.Context, city string) (result domain.WeatherResult) {
	result.City = city

	defer func() {
		if r := recover(); r != nil {
			result.Err = domain.NewUpstreamError("weather", &panicError{value: r})
		}
	}()

	record, err := b.weather.Fetch(ctx, city)
	if err != nil {
		b.log.Warn().Err(err).Str("city", city).Msg("Weather fetch failed, omitting city")
		result.Err = err
		return result
	}

	result.Record = record
	return result
}

// panicError adapts a recovered panic value to the error interface.
type panicError struct {
	value interface{}
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

// Ensure dashboardBuilder implements DashboardBuilder at compile time.
var _ DashboardBuilder = (*dashboardBuilder)(nil)
