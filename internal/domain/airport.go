package domain

// Airport holds reference details for a known airport.
type Airport struct {
	// IATA is the 3-letter IATA code (e.g., "SYD")
	IATA string `json:"iata"`

	// ICAO is the 4-letter ICAO code (e.g., "YSSY")
	ICAO string `json:"icao"`

	// City is the city the airport serves
	City string `json:"city"`

	// Country is the airport's country
	Country string `json:"country"`

	// Name is the full airport name
	Name string `json:"name"`
}

// australianAirports is the reference table for the major Australian
// airports the dashboard tracks.
var australianAirports = map[string]Airport{
	"SYD": {IATA: "SYD", ICAO: "YSSY", City: "Sydney", Country: "Australia", Name: "Kingsford Smith Airport"},
	"MEL": {IATA: "MEL", ICAO: "YMML", City: "Melbourne", Country: "Australia", Name: "Tullamarine Airport"},
	"BNE": {IATA: "BNE", ICAO: "YBBN", City: "Brisbane", Country: "Australia", Name: "Brisbane Airport"},
	"PER": {IATA: "PER", ICAO: "YPPH", City: "Perth", Country: "Australia", Name: "Perth Airport"},
	"ADL": {IATA: "ADL", ICAO: "YPAD", City: "Adelaide", Country: "Australia", Name: "Adelaide Airport"},
	"DRW": {IATA: "DRW", ICAO: "YPDN", City: "Darwin", Country: "Australia", Name: "Darwin Airport"},
	"CNS": {IATA: "CNS", ICAO: "YBCS", City: "Cairns", Country: "Australia", Name: "Cairns Airport"},
	"HBA": {IATA: "HBA", ICAO: "YMHB", City: "Hobart", Country: "Australia", Name: "Hobart Airport"},
	"CBR": {IATA: "CBR", ICAO: "YSCB", City: "Canberra", Country: "Australia", Name: "Canberra Airport"},
	"TSV": {IATA: "TSV", ICAO: "YBTL", City: "Townsville", Country: "Australia", Name: "Townsville Airport"},
}

// LookupAirport returns the reference details for a known IATA code.
// The second return value is false for codes outside the reference table.
func LookupAirport(iata string) (Airport, bool) {
	a, ok := australianAirports[iata]
	return a, ok
}

// CountryForAirport returns the country for a known IATA code, or
// "Unknown" for codes outside the reference table. Upstream flight
// payloads omit the country entirely, so this is the only country source.
func CountryForAirport(iata string) string {
	if a, ok := australianAirports[iata]; ok {
		return a.Country
	}
	return "Unknown"
}
