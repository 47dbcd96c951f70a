package integration

import (
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/test/mock"
)

func TestDashboard_FullView(t *testing.T) {
	flights := mock.NewFlightSource().WithFlights(mock.SampleFlights("SYD", 8))
	weather := mock.NewWeatherSource().
		WithRecord("Sydney", domain.WeatherRecord{Location: "Sydney", Temperature: 22, Condition: "clear sky", Impact: domain.ImpactOptimal}).
		WithRecord("Melbourne", domain.WeatherRecord{Location: "Melbourne", Temperature: 14, Condition: "light rain", Impact: domain.ImpactNormal})
	generator := mock.NewTextGenerator().WithReply(mock.SampleInsightReply())

	ts := NewTestServer(flights, weather, generator)
	resp := ts.DashboardRequest("SYD")

	require.Equal(t, http.StatusOK, resp.Code)

	view, err := resp.ParseDashboard()
	require.NoError(t, err)

	assert.Equal(t, "SYD", view.Airport)
	assert.Empty(t, view.Error)
	assert.Len(t, view.Flights, 8)
	assert.Len(t, view.Insights, 4)
	assert.Equal(t, "Traffic Volume", view.Insights[0].Title)

	// One weather record per configured city, in configuration order.
	require.Len(t, view.Weather, len(DefaultCities))
	assert.Equal(t, "Sydney", view.Weather[0].Location)
	assert.Equal(t, "Melbourne", view.Weather[1].Location)

	// 8 flights cycling 4 origins means 4 routes of 2 flights each.
	require.Len(t, view.Routes, 4)
	assert.Equal(t, "MEL-SYD", view.Routes[0].Route)
	assert.Equal(t, 2, view.Routes[0].Flights)
	assert.Equal(t, 20, view.Routes[0].Demand)
	assert.Equal(t, 16, view.Routes[0].Popularity)
	assert.Len(t, view.Prices, 4)
}

func TestDashboard_FlightFailureShortCircuits(t *testing.T) {
	flights := mock.NewFlightSource().
		WithError(domain.NewUpstreamError("aviationstack", errors.New("status 500")))
	weather := mock.NewWeatherSource()
	generator := mock.NewTextGenerator().WithReply(mock.SampleInsightReply())

	ts := NewTestServer(flights, weather, generator)
	resp := ts.DashboardRequest("SYD")

	// Dashboard failures surface in the payload, not the status code.
	require.Equal(t, http.StatusOK, resp.Code)

	view, err := resp.ParseDashboard()
	require.NoError(t, err)

	assert.Equal(t, "No real-time flight data available for this airport", view.Error)
	assert.Empty(t, view.Flights)
	assert.Empty(t, view.Insights)
	assert.Empty(t, view.Weather)
	assert.Empty(t, view.Routes)
	assert.Empty(t, view.Prices)

	assert.Zero(t, weather.CallCount(), "weather must not be fetched without flights")
	assert.Zero(t, generator.CallCount(), "insights must not be generated without flights")
}

func TestDashboard_DegradesWithoutWeatherAndInsights(t *testing.T) {
	flights := mock.NewFlightSource().WithFlights(mock.SampleFlights("SYD", 5))
	weather := mock.NewWeatherSource().WithError(errors.New("weather down"))
	generator := mock.NewTextGenerator().WithError(errors.New("model down"))

	ts := NewTestServer(flights, weather, generator)
	resp := ts.DashboardRequest("SYD")

	require.Equal(t, http.StatusOK, resp.Code)

	view, err := resp.ParseDashboard()
	require.NoError(t, err)

	assert.Empty(t, view.Error)
	assert.Len(t, view.Flights, 5)
	assert.Empty(t, view.Weather)
	assert.NotEmpty(t, view.Routes)
	assert.NotEmpty(t, view.Prices)

	// A dead model still yields the deterministic fallback set.
	assert.Len(t, view.Insights, 4)
}

func TestDashboard_PartialWeatherOmitsFailedCities(t *testing.T) {
	flights := mock.NewFlightSource().WithFlights(mock.SampleFlights("SYD", 3))
	weather := mock.NewWeatherSource().
		WithCityError("Melbourne", errors.New("city timeout")).
		WithCityError("Perth", errors.New("city timeout"))
	generator := mock.NewTextGenerator().WithReply(mock.SampleInsightReply())

	ts := NewTestServer(flights, weather, generator)
	resp := ts.DashboardRequest("SYD")

	require.Equal(t, http.StatusOK, resp.Code)

	view, err := resp.ParseDashboard()
	require.NoError(t, err)

	require.Len(t, view.Weather, 3)
	assert.Equal(t, "Sydney", view.Weather[0].Location)
	assert.Equal(t, "Brisbane", view.Weather[1].Location)
	assert.Equal(t, "Adelaide", view.Weather[2].Location)
}

func TestDashboard_WeatherOrderStableUnderSlowCity(t *testing.T) {
	flights := mock.NewFlightSource().WithFlights(mock.SampleFlights("SYD", 3))
	weather := mock.NewWeatherSource().
		WithCityDelay("Sydney", 80*time.Millisecond)
	generator := mock.NewTextGenerator().WithReply(mock.SampleInsightReply())

	ts := NewTestServer(flights, weather, generator)
	resp := ts.DashboardRequest("SYD")

	require.Equal(t, http.StatusOK, resp.Code)

	view, err := resp.ParseDashboard()
	require.NoError(t, err)

	// Sydney finished last but still leads the list.
	require.Len(t, view.Weather, len(DefaultCities))
	for i, city := range DefaultCities {
		assert.Equal(t, city, view.Weather[i].Location)
	}
}

func TestDashboard_ConcurrentRequests(t *testing.T) {
	flights := mock.NewFlightSource().WithFlights(mock.SampleFlights("SYD", 4))
	weather := mock.NewWeatherSource().WithCityDelay("Brisbane", 10*time.Millisecond)
	generator := mock.NewTextGenerator().WithReply(mock.SampleInsightReply())

	ts := NewTestServer(flights, weather, generator)

	const requests = 10
	var wg sync.WaitGroup
	codes := make([]int, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = ts.DashboardRequest("SYD").Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusOK, code, "request %d", i)
	}
	assert.Equal(t, requests, flights.CallCount())
	assert.Equal(t, requests*len(DefaultCities), weather.CallCount())
}

func TestDashboard_InvalidAirportCode(t *testing.T) {
	flights := mock.NewFlightSource()
	ts := NewTestServer(flights, mock.NewWeatherSource(), mock.NewTextGenerator())

	resp := ts.DashboardRequest("SYDNEY")

	require.Equal(t, http.StatusBadRequest, resp.Code)

	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "invalid_request", body["code"])
	assert.Zero(t, flights.CallCount())
}
