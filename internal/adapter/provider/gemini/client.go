// Package gemini implements the generative-text capability against the
// Google Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
)

// SourceName is the unique identifier for this provider.
const SourceName = "gemini"

// Model is the hosted model used for insight generation.
const Model = "gemini-1.5-flash"

// defaultTimeout bounds each generation call.
const defaultTimeout = 30 * time.Second

// Config holds the adapter settings.
type Config struct {
	// BaseURL is the API endpoint root (no trailing slash)
	BaseURL string

	// APIKey is the access credential sent with every call
	APIKey string
}

// Client submits text prompts to the hosted model. It implements
// domain.TextGenerator.
type Client struct {
	cfg    Config
	client *http.Client
	log    *logger.Logger
}

// NewClient creates a Gemini text generator.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: defaultTimeout},
		log:    log.WithSource(SourceName),
	}
}

// generateRequest is the request envelope for generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the subset of the reply the dashboard needs.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Generate submits a single text prompt and returns the model's plain-text
// reply. Callers treat any error as "no usable output" and fall back to
// deterministic insights, so this method never needs to be retried.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(c.cfg.BaseURL, "/"), Model, c.cfg.APIKey)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", domain.NewUpstreamError(SourceName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", domain.NewUpstreamError(SourceName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Msg("Generation call failed")
		return "", domain.NewUpstreamError(SourceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("Generation call returned non-success status")
		return "", domain.NewUpstreamError(SourceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var payload generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", domain.NewUpstreamError(SourceName, fmt.Errorf("decode response: %w", err))
	}

	if len(payload.Candidates) == 0 || len(payload.Candidates[0].Content.Parts) == 0 {
		return "", domain.NewUpstreamError(SourceName, fmt.Errorf("empty candidate list"))
	}

	return payload.Candidates[0].Content.Parts[0].Text, nil
}

// Ensure Client implements domain.TextGenerator at compile time.
var _ domain.TextGenerator = (*Client)(nil)
