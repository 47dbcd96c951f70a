// Package usecase contains the business logic for the market demand
// dashboard: insight generation, route analytics, and the aggregation
// orchestrator that assembles the consolidated view.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/logger"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/timeutil"
)

// maxInsights is the number of insights produced per batch, both by the
// generative path and the fallback.
const maxInsights = 4

// maxPromptRoutes caps the distinct routes listed in the prompt context.
const maxPromptRoutes = 10

// InsightGenerator derives market insights from a batch of flight records.
type InsightGenerator interface {
	// Generate returns insights for a non-empty batch. It fails with
	// domain.ErrNoFlightData on an empty batch; a generative-call failure
	// or malformed output silently degrades to deterministic fallback
	// insights, never an error.
	Generate(ctx context.Context, flights []domain.FlightRecord) ([]domain.MarketInsight, error)
}

// insightGenerator implements InsightGenerator on top of a pluggable
// text-generation capability.
type insightGenerator struct {
	generator domain.TextGenerator
	clock     timeutil.Clock
	log       *logger.Logger
}

// NewInsightGenerator creates an InsightGenerator backed by the given
// text generator. A nil clock defaults to the system clock.
func NewInsightGenerator(generator domain.TextGenerator, clock timeutil.Clock, log *logger.Logger) InsightGenerator {
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &insightGenerator{
		generator: generator,
		clock:     clock,
		log:       log,
	}
}

// flightSummary is the compact context extracted from a flight batch for
// prompting and for the deterministic fallback.
type flightSummary struct {
	total        int
	routes       []string       // distinct, first-seen order
	airlines     []string       // distinct, first-seen order
	statusOrder  []domain.FlightStatus
	statusCounts map[domain.FlightStatus]int
	airlineFreq  map[string]int
}

// summarize extracts the flight summary, preserving first-seen order for
// routes, airlines, and statuses so the output is deterministic.
func summarize(flights []domain.FlightRecord) flightSummary {
	s := flightSummary{
		total:        len(flights),
		statusCounts: make(map[domain.FlightStatus]int),
		airlineFreq:  make(map[string]int),
	}

	seenRoutes := make(map[string]bool)
	for _, f := range flights {
		route := f.Route()
		if !seenRoutes[route] {
			seenRoutes[route] = true
			s.routes = append(s.routes, route)
		}

		if f.Airline != "" {
			if s.airlineFreq[f.Airline] == 0 {
				s.airlines = append(s.airlines, f.Airline)
			}
			s.airlineFreq[f.Airline]++
		}

		if s.statusCounts[f.Status] == 0 {
			s.statusOrder = append(s.statusOrder, f.Status)
		}
		s.statusCounts[f.Status]++
	}

	return s
}

// Generate implements InsightGenerator.
func (g *insightGenerator) Generate(ctx context.Context, flights []domain.FlightRecord) ([]domain.MarketInsight, error) {
	if len(flights) == 0 {
		return nil, domain.ErrNoFlightData
	}

	summary := summarize(flights)

	text, err := g.generator.Generate(ctx, g.buildPrompt(summary))
	if err != nil {
		g.log.Warn().Err(err).Msg("Insight generation failed, using fallback")
		return fallbackInsights(summary), nil
	}

	insights := parseInsights(text)
	if len(insights) == 0 {
		g.log.Warn().Err(domain.ErrMalformedInsights).Msg("Using fallback insights")
		return fallbackInsights(summary), nil
	}

	return insights, nil
}

// buildPrompt renders the prompt sent to the generative capability. The
// reply must be plain text with up to 4 pipe-delimited rows.
func (g *insightGenerator) buildPrompt(s flightSummary) string {
	topRoutes := s.routes
	if len(topRoutes) > maxPromptRoutes {
		topRoutes = topRoutes[:maxPromptRoutes]
	}

	statuses := make([]string, 0, len(s.statusOrder))
	for _, st := range s.statusOrder {
		statuses = append(statuses, fmt.Sprintf("%s: %d", st, s.statusCounts[st]))
	}

	var b strings.Builder
	b.WriteString("Analyze this REAL-TIME airline flight data from the last 24 hours and provide exactly 4 specific aviation market insights:\n\n")
	b.WriteString("FLIGHT DATA:\n")
	fmt.Fprintf(&b, "- Total flights tracked: %d\n", s.total)
	fmt.Fprintf(&b, "- Active airlines: %s\n", strings.Join(s.airlines, ", "))
	fmt.Fprintf(&b, "- Top routes: %s\n", strings.Join(topRoutes, ", "))
	fmt.Fprintf(&b, "- Flight statuses: %s\n", strings.Join(statuses, ", "))
	fmt.Fprintf(&b, "- Timestamp: %s\n\n", g.clock.Now().UTC().Format(time.RFC3339))
	b.WriteString("FORMAT: Title|Description|Trend|Value|Change")

	return b.String()
}

// parseInsights extracts up to maxInsights pipe-delimited rows from the
// generative reply. Rows without the delimiter are ignored; an unusable
// reply yields an empty slice, signalling the caller to fall back.
func parseInsights(text string) []domain.MarketInsight {
	insights := make([]domain.MarketInsight, 0, maxInsights)

	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, "|") {
			continue
		}
		if len(insights) == maxInsights {
			break
		}

		parts := strings.Split(line, "|")
		insights = append(insights, domain.MarketInsight{
			Title:       fieldAt(parts, 0),
			Description: fieldAt(parts, 1),
			Trend:       normalizeTrend(fieldAt(parts, 2)),
			Value:       fieldAt(parts, 3),
			Change:      fieldAt(parts, 4),
		})
	}

	return insights
}

// fieldAt returns the trimmed field at index i, or "" past the end.
func fieldAt(parts []string, i int) string {
	if i >= len(parts) {
		return ""
	}
	return strings.TrimSpace(parts[i])
}

// normalizeTrend lowercases the raw trend and coerces unknown values to
// stable.
func normalizeTrend(raw string) domain.Trend {
	t := domain.Trend(strings.ToLower(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return domain.TrendStable
	}
	return t
}

// fallbackInsights produces the deterministic 4-insight table used when
// the generative call fails or returns nothing usable.
func fallbackInsights(s flightSummary) []domain.MarketInsight {
	topAirline, topCount := topAirline(s)

	trafficTrend := domain.TrendDown
	if s.total > 20 {
		trafficTrend = domain.TrendUp
	}

	routeTrend := domain.TrendStable
	if len(s.routes) > 10 {
		routeTrend = domain.TrendUp
	}

	airlineTrend := domain.TrendDown
	if len(s.airlines) > 5 {
		airlineTrend = domain.TrendUp
	}

	var topTrend domain.Trend
	switch {
	case topCount > 5:
		topTrend = domain.TrendUp
	case topCount > 2:
		topTrend = domain.TrendStable
	default:
		topTrend = domain.TrendDown
	}

	return []domain.MarketInsight{
		{
			Title:       "Traffic Volume",
			Description: "Total operations in last 24 hours",
			Trend:       trafficTrend,
			Value:       fmt.Sprintf("%d flights", s.total),
			Change:      "Compared to average",
		},
		{
			Title:       "Route Coverage",
			Description: "Unique routes in operation",
			Trend:       routeTrend,
			Value:       fmt.Sprintf("%d routes", len(s.routes)),
			Change:      "Dynamic network",
		},
		{
			Title:       "Airline Diversity",
			Description: "Active carriers currently operating",
			Trend:       airlineTrend,
			Value:       fmt.Sprintf("%d airlines", len(s.airlines)),
			Change:      "Varied operator mix",
		},
		{
			Title:       "Top Airline Activity",
			Description: "Most active carrier based on real-time data",
			Trend:       topTrend,
			Value:       fmt.Sprintf("%s (%d flights)", topAirline, topCount),
			Change:      "Leading carrier across multiple routes",
		},
	}
}

// topAirline returns the airline with the highest flight count. Ties are
// broken by first-encountered order; an empty batch yields "Unknown".
func topAirline(s flightSummary) (string, int) {
	if len(s.airlines) == 0 {
		return "Unknown", 0
	}

	ranked := make([]string, len(s.airlines))
	copy(ranked, s.airlines)
	sort.SliceStable(ranked, func(i, j int) bool {
		return s.airlineFreq[ranked[i]] > s.airlineFreq[ranked[j]]
	})

	return ranked[0], s.airlineFreq[ranked[0]]
}

// Ensure insightGenerator implements InsightGenerator at compile time.
var _ InsightGenerator = (*insightGenerator)(nil)
