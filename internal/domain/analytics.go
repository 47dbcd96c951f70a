package domain

// RouteStat holds per-route aggregate statistics derived from flight
// frequency.
type RouteStat struct {
	// Route is the ordered airport pair rendered "DEP-ARR"
	Route string `json:"route"`

	// Demand is a heuristic 0-100 demand score derived from frequency
	Demand int `json:"demand"`

	// AveragePrice is always 0: real pricing requires a commercial API
	AveragePrice float64 `json:"averagePrice"`

	// Flights is the number of flights observed on this route
	Flights int `json:"flights"`

	// Popularity is a heuristic 0-100 popularity score
	Popularity int `json:"popularity"`
}

// PriceDirection is the direction of a route's price trend.
type PriceDirection string

// Available price trend directions.
const (
	PriceIncreasing PriceDirection = "increasing"
	PriceDecreasing PriceDirection = "decreasing"
	PriceStable     PriceDirection = "stable"
)

// PriceTrend holds the per-route trend classification. All price fields are
// fixed at 0 because no pricing source is available; the trend is inferred
// from flight frequency alone.
type PriceTrend struct {
	// Route is the ordered airport pair rendered "DEP-ARR"
	Route string `json:"route"`

	// CurrentPrice is always 0
	CurrentPrice float64 `json:"currentPrice"`

	// HistoricalAverage is always 0
	HistoricalAverage float64 `json:"historicalAverage"`

	// Trend is the frequency-inferred direction
	Trend PriceDirection `json:"trend"`

	// Forecast is always 0
	Forecast float64 `json:"forecast"`
}
