package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the aggregation pipeline.
var (
	// ErrNoFlightData indicates an operation that requires flight records
	// received an empty batch.
	ErrNoFlightData = errors.New("no flight data available for analysis")

	// ErrMalformedInsights indicates the generative output did not contain
	// any usable pipe-delimited rows. It never escapes the insight
	// generator: callers receive the deterministic fallback instead.
	ErrMalformedInsights = errors.New("generative output did not match the expected schema")
)

// UpstreamError wraps a failure from an external data provider, carrying
// the provider name for logging and error responses.
type UpstreamError struct {
	// Provider is the name of the upstream source (e.g., "aviationstack")
	Provider string

	// Err is the underlying error
	Err error
}

// NewUpstreamError creates an UpstreamError for the given provider.
func NewUpstreamError(provider string, err error) *UpstreamError {
	return &UpstreamError{Provider: provider, Err: err}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsUpstreamError reports whether err is (or wraps) an UpstreamError.
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
