package usecase

import "github.com/avmarket/aviation-demand-dashboard/internal/domain"

// maxRoutes caps how many distinct routes the analyzers report.
const maxRoutes = 5

// Frequency multipliers for the heuristic demand and popularity scores.
const (
	demandPerFlight     = 10
	popularityPerFlight = 8
	maxScore            = 100
)

// routeGroup is one distinct route with its flight count.
type routeGroup struct {
	route string
	count int
}

// groupByRoute groups flights by the ordered departure-arrival pair,
// preserving first-seen route order and keeping at most the first
// maxRoutes distinct routes. Counts cover the whole batch, including
// flights on routes seen after the cap.
func groupByRoute(flights []domain.FlightRecord) []routeGroup {
	var order []string
	counts := make(map[string]int)

	for _, f := range flights {
		route := f.Route()
		if counts[route] == 0 {
			order = append(order, route)
		}
		counts[route]++
	}

	if len(order) > maxRoutes {
		order = order[:maxRoutes]
	}

	groups := make([]routeGroup, 0, len(order))
	for _, route := range order {
		groups = append(groups, routeGroup{route: route, count: counts[route]})
	}
	return groups
}

// AnalyzeRoutes derives per-route aggregate statistics from flight
// frequency. It is pure and never fails: an empty batch yields an empty
// list.
func AnalyzeRoutes(flights []domain.FlightRecord) []domain.RouteStat {
	groups := groupByRoute(flights)

	stats := make([]domain.RouteStat, 0, len(groups))
	for _, g := range groups {
		stats = append(stats, domain.RouteStat{
			Route:        g.route,
			Demand:       capScore(g.count * demandPerFlight),
			AveragePrice: 0, // real pricing requires a commercial API
			Flights:      g.count,
			Popularity:   capScore(g.count * popularityPerFlight),
		})
	}
	return stats
}

// AnalyzePrices derives per-route trend classifications from flight
// frequency. All price fields are fixed at 0; only the direction is
// meaningful. It is pure and never fails.
func AnalyzePrices(flights []domain.FlightRecord) []domain.PriceTrend {
	groups := groupByRoute(flights)

	trends := make([]domain.PriceTrend, 0, len(groups))
	for _, g := range groups {
		trends = append(trends, domain.PriceTrend{
			Route:             g.route,
			CurrentPrice:      0,
			HistoricalAverage: 0,
			Trend:             classifyTrend(g.count),
			Forecast:          0,
		})
	}
	return trends
}

// classifyTrend maps a route's flight count to a price direction.
func classifyTrend(count int) domain.PriceDirection {
	switch {
	case count > 5:
		return domain.PriceIncreasing
	case count > 2:
		return domain.PriceStable
	default:
		return domain.PriceDecreasing
	}
}

// capScore clamps a heuristic score to the 0-100 range.
func capScore(score int) int {
	if score > maxScore {
		return maxScore
	}
	return score
}
