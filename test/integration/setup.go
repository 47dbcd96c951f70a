// Package integration provides helpers and integration tests for the market
// demand dashboard. Integration tests verify that components work together
// correctly, from the HTTP handlers down through the aggregation use case
// and the configured test doubles.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/avmarket/aviation-demand-dashboard/internal/adapter/http"
	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/usecase"
)

// DefaultCities is the weather fan-out list used by the test server.
var DefaultCities = []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"}

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.DashboardHandler
}

// NewTestServer creates a test server over the given sources. The insight
// generator runs against the provided text generator so tests control the
// model output without a network hop.
func NewTestServer(flights domain.FlightSource, weather domain.WeatherSource, generator domain.TextGenerator) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	insights := usecase.NewInsightGenerator(generator, nil, nil)
	builder := usecase.NewDashboardBuilder(flights, weather, insights, nil)

	handler := httpAdapter.NewDashboardHandler(flights, builder, "SYD", DefaultCities, nil)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the test server.
func (ts *TestServer) Get(path string) Response {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// FlightsRequest makes a GET /api/flights request for the given airport.
// An empty airport omits the query parameter.
func (ts *TestServer) FlightsRequest(airport string) Response {
	path := "/api/flights"
	if airport != "" {
		path += "?airport=" + airport
	}
	return ts.Get(path)
}

// DashboardRequest makes a GET /api/dashboard request for the given airport.
func (ts *TestServer) DashboardRequest(airport string) Response {
	path := "/api/dashboard"
	if airport != "" {
		path += "?airport=" + airport
	}
	return ts.Get(path)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseFlights parses the response body as a flights payload.
func (r *Response) ParseFlights() (*httpAdapter.FlightsResponse, error) {
	var resp httpAdapter.FlightsResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseDashboard parses the response body as an aggregate view.
func (r *Response) ParseDashboard() (*domain.AggregateView, error) {
	var view domain.AggregateView
	if err := json.Unmarshal(r.Body, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}
