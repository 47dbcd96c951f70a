package domain

// AggregateView is the consolidated dashboard state assembled by the
// aggregation orchestrator for one airport.
//
// Invariant: when Flights is empty, all derived lists are empty and Error
// describes the missing data.
type AggregateView struct {
	// Airport is the IATA code the view was built for
	Airport string `json:"airport"`

	// Flights are the normalized flight records from the primary source
	Flights []FlightRecord `json:"flights"`

	// Insights is the market commentary, empty when insight generation
	// failed
	Insights []MarketInsight `json:"insights"`

	// Weather holds one record per city of interest that resolved
	// successfully, in the requested city order
	Weather []WeatherRecord `json:"weather"`

	// Routes are the per-route aggregate statistics
	Routes []RouteStat `json:"routes"`

	// Prices are the per-route trend classifications
	Prices []PriceTrend `json:"prices"`

	// Error is set only when the primary flight fetch failed or returned
	// no data
	Error string `json:"error,omitempty"`
}

// EmptyAggregateView builds the all-empty view returned when the primary
// flight fetch fails, carrying the user-visible message.
func EmptyAggregateView(airport, message string) AggregateView {
	return AggregateView{
		Airport:  airport,
		Flights:  []FlightRecord{},
		Insights: []MarketInsight{},
		Weather:  []WeatherRecord{},
		Routes:   []RouteStat{},
		Prices:   []PriceTrend{},
		Error:    message,
	}
}

// WeatherResult is the per-city outcome of the weather fan-out. Failures
// are carried as values so the orchestrator's degrade-gracefully merge is
// an explicit, testable step.
type WeatherResult struct {
	// City is the requested city name
	City string

	// Record is the weather record, valid only when Err is nil
	Record WeatherRecord

	// Err is set when the fetch for this city failed
	Err error
}

// IsSuccess returns true if the weather fetch for this city succeeded.
func (r WeatherResult) IsSuccess() bool {
	return r.Err == nil
}

// MergeWeatherResults keeps the successful records, preserving the order
// in which the cities were requested. Failed cities are simply omitted.
func MergeWeatherResults(results []WeatherResult) []WeatherRecord {
	records := make([]WeatherRecord, 0, len(results))
	for _, r := range results {
		if r.IsSuccess() {
			records = append(records, r.Record)
		}
	}
	return records
}
