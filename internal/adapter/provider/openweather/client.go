// Package openweather implements the weather source against the
// OpenWeatherMap current weather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
)

// SourceName is the unique identifier for this provider.
const SourceName = "openweather"

// DefaultTimeout bounds each weather call. A timed-out city counts as a
// per-city failure, never a system failure.
const DefaultTimeout = 10 * time.Second

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the provider endpoint root (no trailing slash)
	BaseURL string

	// APIKey is the access credential sent with every call
	APIKey string

	// Timeout bounds each call; DefaultTimeout when zero
	Timeout time.Duration
}

// Adapter fetches current weather for one city. It implements
// domain.WeatherSource.
type Adapter struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// NewAdapter creates an OpenWeatherMap weather source.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		log:    log.WithSource(SourceName),
	}
}

// currentWeatherResponse is the subset of the provider payload the
// dashboard needs.
type currentWeatherResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Fetch returns the current weather for the given city in metric units.
// The response must carry both the temperature and a condition; anything
// less is a domain.UpstreamError.
func (a *Adapter) Fetch(ctx context.Context, city string) (domain.WeatherRecord, error) {
	endpoint := fmt.Sprintf("%s/data/2.5/weather", strings.TrimRight(a.cfg.BaseURL, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherRecord{}, domain.NewUpstreamError(SourceName, err)
	}

	q := url.Values{}
	q.Set("appid", a.cfg.APIKey)
	q.Set("q", city)
	q.Set("units", "metric")
	req.URL.RawQuery = q.Encode()

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Warn().Err(err).Str("city", city).Msg("Weather fetch failed")
		return domain.WeatherRecord{}, domain.NewUpstreamError(SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.log.Warn().Int("status", resp.StatusCode).Str("city", city).Msg("Weather fetch returned non-success status")
		return domain.WeatherRecord{}, domain.NewUpstreamError(SourceName, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, city))
	}

	var payload currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.WeatherRecord{}, domain.NewUpstreamError(SourceName, fmt.Errorf("decode response: %w", err))
	}

	if payload.Main == nil || len(payload.Weather) == 0 {
		return domain.WeatherRecord{}, domain.NewUpstreamError(SourceName, fmt.Errorf("no weather data available for %s", city))
	}

	location := payload.Name
	if location == "" {
		location = city
	}

	condition := payload.Weather[0].Description
	if condition == "" {
		condition = "Unknown"
	}

	return domain.WeatherRecord{
		Location:    location,
		Temperature: int(math.Round(payload.Main.Temp)),
		Condition:   condition,
		Impact:      domain.AnalyzeWeatherImpact(payload.Main.Temp, condition),
	}, nil
}

// Ensure Adapter implements domain.WeatherSource at compile time.
var _ domain.WeatherSource = (*Adapter)(nil)
