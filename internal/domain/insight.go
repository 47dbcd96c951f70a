package domain

// Trend is the direction of a market insight.
type Trend string

// Available insight trends.
const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// IsValid checks if the trend is a recognized value.
func (t Trend) IsValid() bool {
	switch t {
	case TrendUp, TrendDown, TrendStable:
		return true
	default:
		return false
	}
}

// MarketInsight is one piece of human-readable market commentary derived
// from a batch of flight records, either by the generative capability or
// by the deterministic fallback.
type MarketInsight struct {
	// Title is a short headline (e.g., "Traffic Volume")
	Title string `json:"title"`

	// Description explains what the insight measures
	Description string `json:"description"`

	// Trend is the direction: up, down, or stable
	Trend Trend `json:"trend"`

	// Value is a free-text metric (e.g., "27 flights")
	Value string `json:"value"`

	// Change is free-text context for the metric
	Change string `json:"change"`
}
