package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
)

func newTestAdapter(serverURL string, timeout time.Duration) *Adapter {
	return NewAdapter(Config{BaseURL: serverURL, APIKey: "test-key", Timeout: timeout}, logger.Nop())
}

func TestFetch_Success(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"appid": r.URL.Query().Get("appid"),
			"q":     r.URL.Query().Get("q"),
			"units": r.URL.Query().Get("units"),
		}
		w.Write([]byte(`{"name": "Sydney", "main": {"temp": 21.6}, "weather": [{"description": "clear sky"}]}`))
	}))
	defer server.Close()

	record, err := newTestAdapter(server.URL, 0).Fetch(context.Background(), "Sydney")
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotQuery["appid"])
	assert.Equal(t, "Sydney", gotQuery["q"])
	assert.Equal(t, "metric", gotQuery["units"])

	assert.Equal(t, "Sydney", record.Location)
	assert.Equal(t, 22, record.Temperature) // 21.6 rounds up
	assert.Equal(t, "clear sky", record.Condition)
	assert.Equal(t, domain.ImpactOptimal, record.Impact)
}

func TestFetch_ImpactUsesRawTemperature(t *testing.T) {
	// 30.4 rounds down to 30 but the raw value still exceeds the 30C
	// peak-season threshold.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Perth", "main": {"temp": 30.4}, "weather": [{"description": "few clouds"}]}`))
	}))
	defer server.Close()

	record, err := newTestAdapter(server.URL, 0).Fetch(context.Background(), "Perth")
	require.NoError(t, err)

	assert.Equal(t, 30, record.Temperature)
	assert.Equal(t, domain.ImpactPeakSeason, record.Impact)
}

func TestFetch_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing main block", body: `{"name": "Sydney", "weather": [{"description": "clear sky"}]}`},
		{name: "missing weather block", body: `{"name": "Sydney", "main": {"temp": 20}}`},
		{name: "empty weather list", body: `{"name": "Sydney", "main": {"temp": 20}, "weather": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestAdapter(server.URL, 0).Fetch(context.Background(), "Sydney")
			require.Error(t, err)
			assert.True(t, domain.IsUpstreamError(err))
		})
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL, 0).Fetch(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"name": "Sydney", "main": {"temp": 20}, "weather": [{"description": "clear sky"}]}`))
	}))
	defer server.Close()

	_, err := newTestAdapter(server.URL, 50*time.Millisecond).Fetch(context.Background(), "Sydney")
	require.Error(t, err)
	assert.True(t, domain.IsUpstreamError(err))
}

func TestFetch_LocationFallsBackToRequestedCity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 15}, "weather": [{"description": "mist"}]}`))
	}))
	defer server.Close()

	record, err := newTestAdapter(server.URL, 0).Fetch(context.Background(), "Hobart")
	require.NoError(t, err)
	assert.Equal(t, "Hobart", record.Location)
}

func TestNewAdapter_DefaultTimeout(t *testing.T) {
	a := NewAdapter(Config{BaseURL: "http://example.com", APIKey: "k"}, nil)
	assert.Equal(t, DefaultTimeout, a.cfg.Timeout)
}
