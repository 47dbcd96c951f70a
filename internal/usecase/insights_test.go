package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avmarket/aviation-demand-dashboard/internal/domain"
	"github.com/avmarket/aviation-demand-dashboard/internal/infrastructure/timeutil"
)

// flightWithAirline creates a flight for the given airline and route.
func flightWithAirline(airline, dep, arr string) domain.FlightRecord {
	return domain.FlightRecord{
		FlightNumber: "N/A",
		Airline:      airline,
		Departure:    domain.FlightEndpoint{Airport: dep},
		Arrival:      domain.FlightEndpoint{Airport: arr},
		Status:       domain.StatusScheduled,
	}
}

func fixedClock() timeutil.Clock {
	return timeutil.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
}

func TestGenerate_EmptyBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := domain.NewMockTextGenerator(ctrl)
	// The generative call must not happen for an empty batch.
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Times(0)

	g := NewInsightGenerator(gen, fixedClock(), nil)

	_, err := g.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrNoFlightData)
}

func TestGenerate_WellFormedReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reply := `Traffic Volume|Strong arrivals|up|27 flights|+12%
Route Coverage | Broad network | STABLE | 8 routes | steady
no delimiter here
Airline Mix|Concentrated|down|3 airlines|-1
Peak Hours|Morning bank|up|07:00-09:00|shifting
Extra Row|Ignored past four|up|x|y`

	gen := domain.NewMockTextGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(reply, nil)

	g := NewInsightGenerator(gen, fixedClock(), nil)

	insights, err := g.Generate(context.Background(), []domain.FlightRecord{flightWithAirline("Qantas", "MEL", "SYD")})
	require.NoError(t, err)
	require.Len(t, insights, 4)

	assert.Equal(t, "Traffic Volume", insights[0].Title)
	assert.Equal(t, "Strong arrivals", insights[0].Description)
	assert.Equal(t, domain.TrendUp, insights[0].Trend)
	assert.Equal(t, "27 flights", insights[0].Value)
	assert.Equal(t, "+12%", insights[0].Change)

	// Fields are trimmed and trends case-normalized.
	assert.Equal(t, "Route Coverage", insights[1].Title)
	assert.Equal(t, domain.TrendStable, insights[1].Trend)

	// The non-delimited line is skipped, so the fifth row fills slot 4.
	assert.Equal(t, "Peak Hours", insights[3].Title)
}

func TestGenerate_UnknownTrendCoercedToStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := domain.NewMockTextGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("Title|Desc|sideways|v|c", nil)

	g := NewInsightGenerator(gen, fixedClock(), nil)

	insights, err := g.Generate(context.Background(), []domain.FlightRecord{flightWithAirline("Qantas", "MEL", "SYD")})
	require.NoError(t, err)
	require.Len(t, insights, 1)
	assert.Equal(t, domain.TrendStable, insights[0].Trend)
}

func TestGenerate_FallbackPaths(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "generative call fails", err: errors.New("quota exceeded")},
		{name: "reply has no delimited lines", reply: "Sorry, I cannot analyze this data."},
		{name: "empty reply", reply: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gen := domain.NewMockTextGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.reply, tt.err)

			g := NewInsightGenerator(gen, fixedClock(), nil)

			insights, err := g.Generate(context.Background(), []domain.FlightRecord{flightWithAirline("Qantas", "MEL", "SYD")})
			require.NoError(t, err, "generative failures must never propagate")
			require.Len(t, insights, 4)
			assert.Equal(t, "Traffic Volume", insights[0].Title)
			assert.Equal(t, "Route Coverage", insights[1].Title)
			assert.Equal(t, "Airline Diversity", insights[2].Title)
			assert.Equal(t, "Top Airline Activity", insights[3].Title)
		})
	}
}

func TestFallbackInsights_ExactlyFourAndDeterministic(t *testing.T) {
	tests := []struct {
		name    string
		flights []domain.FlightRecord
	}{
		{name: "single flight", flights: []domain.FlightRecord{flightWithAirline("Rex Airlines", "ADL", "SYD")}},
		{name: "large batch", flights: func() []domain.FlightRecord {
			var out []domain.FlightRecord
			for i := 0; i < 1000; i++ {
				out = append(out, flightWithAirline(fmt.Sprintf("Airline %d", i%7), "MEL", "SYD"))
			}
			return out
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := fallbackInsights(summarize(tt.flights))
			second := fallbackInsights(summarize(tt.flights))

			assert.Len(t, first, 4)
			assert.Equal(t, first, second, "same input must yield identical output")
		})
	}
}

func TestFallbackInsights_Thresholds(t *testing.T) {
	// 21 flights, 1 airline, 1 route: traffic up, routes stable,
	// airlines down, top airline up (21 > 5).
	flights := make([]domain.FlightRecord, 0, 21)
	for i := 0; i < 21; i++ {
		flights = append(flights, flightWithAirline("Qantas", "MEL", "SYD"))
	}

	insights := fallbackInsights(summarize(flights))
	require.Len(t, insights, 4)

	assert.Equal(t, domain.TrendUp, insights[0].Trend)
	assert.Equal(t, "21 flights", insights[0].Value)
	assert.Equal(t, domain.TrendStable, insights[1].Trend)
	assert.Equal(t, "1 routes", insights[1].Value)
	assert.Equal(t, domain.TrendDown, insights[2].Trend)
	assert.Equal(t, domain.TrendUp, insights[3].Trend)
	assert.Equal(t, "Qantas (21 flights)", insights[3].Value)
}

func TestTopAirline_TieBrokenByFirstEncounter(t *testing.T) {
	flights := []domain.FlightRecord{
		flightWithAirline("Jetstar", "MEL", "SYD"),
		flightWithAirline("Qantas", "BNE", "SYD"),
		flightWithAirline("Jetstar", "PER", "SYD"),
		flightWithAirline("Qantas", "ADL", "SYD"),
	}

	airline, count := topAirline(summarize(flights))
	assert.Equal(t, "Jetstar", airline)
	assert.Equal(t, 2, count)
}

func TestBuildPrompt_ContainsContextAndSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotPrompt string
	gen := domain.NewMockTextGenerator(ctrl)
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "T|D|up|V|C", nil
		},
	)

	g := NewInsightGenerator(gen, fixedClock(), nil)

	flights := []domain.FlightRecord{
		flightWithAirline("Qantas", "MEL", "SYD"),
		flightWithAirline("Virgin Australia", "BNE", "SYD"),
	}
	_, err := g.Generate(context.Background(), flights)
	require.NoError(t, err)

	assert.Contains(t, gotPrompt, "Total flights tracked: 2")
	assert.Contains(t, gotPrompt, "Qantas, Virgin Australia")
	assert.Contains(t, gotPrompt, "MEL-SYD, BNE-SYD")
	assert.Contains(t, gotPrompt, "Scheduled: 2")
	assert.Contains(t, gotPrompt, "2025-06-01T12:00:00Z")
	assert.Contains(t, gotPrompt, "Title|Description|Trend|Value|Change")
}

func TestBuildPrompt_CapsRoutesAtTen(t *testing.T) {
	flights := make([]domain.FlightRecord, 0, 12)
	for i := 0; i < 12; i++ {
		flights = append(flights, flightWithAirline("Qantas", fmt.Sprintf("A%02d", i), "SYD"))
	}

	g := &insightGenerator{clock: fixedClock()}
	prompt := g.buildPrompt(summarize(flights))

	assert.Contains(t, prompt, "A09-SYD")
	assert.NotContains(t, prompt, "A10-SYD")
	assert.NotContains(t, prompt, "A11-SYD")
}
