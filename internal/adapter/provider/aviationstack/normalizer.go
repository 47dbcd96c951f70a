package aviationstack

import "github.com/avmarket/aviation-demand-dashboard/internal/domain"

// Placeholder values for fields the provider omits.
const (
	placeholderNA      = "N/A"
	placeholderUnknown = "Unknown"
)

// normalize converts raw provider flight items to domain FlightRecords.
// Normalization is total: every input item yields a record, with
// placeholders standing in for missing fields.
func normalize(payloads []flightPayload) []domain.FlightRecord {
	records := make([]domain.FlightRecord, 0, len(payloads))
	for _, p := range payloads {
		records = append(records, normalizeFlight(p))
	}
	return records
}

// normalizeFlight converts a single raw flight item to a FlightRecord.
func normalizeFlight(p flightPayload) domain.FlightRecord {
	flightNumber := placeholderNA
	if p.Flight != nil && p.Flight.IATA != "" {
		flightNumber = p.Flight.IATA
	}

	airline := placeholderUnknown
	if p.Airline != nil && p.Airline.Name != "" {
		airline = p.Airline.Name
	}

	aircraft := placeholderNA
	if p.Aircraft != nil && p.Aircraft.Model != "" {
		aircraft = p.Aircraft.Model
	}

	return domain.FlightRecord{
		FlightNumber: flightNumber,
		Airline:      airline,
		Departure:    normalizeEndpoint(p.Departure),
		Arrival:      normalizeEndpoint(p.Arrival),
		Aircraft:     aircraft,
		Status:       domain.NormalizeStatus(p.FlightStatus),
	}
}

// normalizeEndpoint converts one side of a raw flight to a FlightEndpoint.
// The time text prefers the estimated time, falling back to the scheduled
// time, falling back to "N/A".
func normalizeEndpoint(p *endpointPayload) domain.FlightEndpoint {
	if p == nil {
		return domain.FlightEndpoint{
			Airport: placeholderNA,
			City:    placeholderUnknown,
			Country: placeholderUnknown,
			Time:    placeholderNA,
		}
	}

	airport := placeholderNA
	if p.IATA != "" {
		airport = p.IATA
	}

	city := placeholderUnknown
	if p.Airport != "" {
		city = p.Airport
	}

	timeText := placeholderNA
	switch {
	case p.Estimated != "":
		timeText = p.Estimated
	case p.Scheduled != "":
		timeText = p.Scheduled
	}

	return domain.FlightEndpoint{
		Airport: airport,
		City:    city,
		Country: domain.CountryForAirport(p.IATA),
		Time:    timeText,
	}
}
