package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"
)

// airportCodePattern matches valid IATA airport codes (3 letters).
var airportCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

// airportParam extracts and validates the "airport" query parameter,
// falling back to the configured default when absent. Codes are
// case-insensitive on the wire and upcased before use.
func airportParam(c echo.Context, defaultAirport string) (string, error) {
	airport := strings.ToUpper(strings.TrimSpace(c.QueryParam("airport")))
	if airport == "" {
		airport = defaultAirport
	}

	if !airportCodePattern.MatchString(airport) {
		return "", fmt.Errorf("airport must be a 3-letter IATA code, got %q", airport)
	}

	return airport, nil
}
