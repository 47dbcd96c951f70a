package domain

import "strings"

// WeatherRecord represents normalized current weather for one city.
type WeatherRecord struct {
	// Location is the resolved location name
	Location string `json:"location"`

	// Temperature is the current temperature in degrees Celsius, rounded
	// to the nearest integer
	Temperature int `json:"temperature"`

	// Condition is the free-text weather description
	Condition string `json:"condition"`

	// Impact is the travel impact assessment derived from temperature and
	// condition
	Impact string `json:"impact"`
}

// Travel impact assessments.
const (
	ImpactDelaysLikely = "Flight delays likely"
	ImpactPeakSeason   = "Peak travel season"
	ImpactOffPeak      = "Off-peak season"
	ImpactOptimal      = "Optimal travel conditions"
	ImpactNormal       = "Normal travel conditions"
)

// AnalyzeWeatherImpact derives the travel impact from the raw temperature
// (degrees Celsius, before rounding) and the condition text. Rules are
// evaluated in precedence order and exactly one fires:
//
//  1. condition contains "storm" or "heavy rain" -> delays likely
//  2. temperature above 30C                      -> peak season
//  3. temperature below 10C                      -> off-peak season
//  4. condition contains "clear" or "sunny"      -> optimal conditions
//  5. otherwise                                  -> normal conditions
func AnalyzeWeatherImpact(temperature float64, condition string) string {
	cond := strings.ToLower(condition)

	switch {
	case strings.Contains(cond, "storm") || strings.Contains(cond, "heavy rain"):
		return ImpactDelaysLikely
	case temperature > 30:
		return ImpactPeakSeason
	case temperature < 10:
		return ImpactOffPeak
	case strings.Contains(cond, "clear") || strings.Contains(cond, "sunny"):
		return ImpactOptimal
	default:
		return ImpactNormal
	}
}
