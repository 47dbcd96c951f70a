// Package aviationstack implements the flight source against the
// AviationStack real-time flights API.
package aviationstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
)

// SourceName is the unique identifier for this provider.
const SourceName = "aviationstack"

// resultLimit caps the number of flights requested per call.
const resultLimit = 30

// defaultTimeout bounds the outbound call when the caller's context
// carries no deadline.
const defaultTimeout = 15 * time.Second

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the provider endpoint root (no trailing slash)
	BaseURL string

	// APIKey is the access credential sent with every call
	APIKey string
}

// Adapter fetches arriving flights for one airport. It implements
// domain.FlightSource.
type Adapter struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// NewAdapter creates an AviationStack flight source.
func NewAdapter(cfg Config, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log.WithSource(SourceName),
	}
}

// Fetch returns the normalized flights currently arriving at the given
// airport. The provider is queried once with the arrival-airport filter
// and a fixed result limit; any transport error or non-success response
// becomes a domain.UpstreamError.
func (a *Adapter) Fetch(ctx context.Context, airportCode string) ([]domain.FlightRecord, error) {
	endpoint := fmt.Sprintf("%s/v1/flights", strings.TrimRight(a.cfg.BaseURL, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError(SourceName, err)
	}

	q := url.Values{}
	q.Set("access_key", a.cfg.APIKey)
	q.Set("arr_iata", airportCode)
	q.Set("limit", strconv.Itoa(resultLimit))
	req.URL.RawQuery = q.Encode()

	resp, err := a.client.Do(req)
	if err != nil {
		a.log.Error().Err(err).Str("airport", airportCode).Msg("Flight fetch failed")
		return nil, domain.NewUpstreamError(SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errResp); decodeErr == nil && errResp.Error.Message != "" {
			msg = fmt.Sprintf("%s: %s", msg, errResp.Error.Message)
		}
		a.log.Error().Int("status", resp.StatusCode).Str("airport", airportCode).Msg("Flight fetch returned non-success status")
		return nil, domain.NewUpstreamError(SourceName, fmt.Errorf("%s", msg))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, domain.NewUpstreamError(SourceName, fmt.Errorf("decode response: %w", err))
	}

	flights := normalize(payload.Data)
	a.log.Debug().Str("airport", airportCode).Int("count", len(flights)).Msg("Flights fetched")
	return flights, nil
}

// Ensure Adapter implements domain.FlightSource at compile time.
var _ domain.FlightSource = (*Adapter)(nil)
