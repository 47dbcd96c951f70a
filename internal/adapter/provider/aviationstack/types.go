package aviationstack

// searchResponse is the envelope returned by the flights endpoint.
type searchResponse struct {
	Data []flightPayload `json:"data"`
}

// flightPayload is one raw flight item as the provider reports it.
// All nested objects are optional; the normalizer supplies defaults.
type flightPayload struct {
	FlightStatus string           `json:"flight_status"`
	Departure    *endpointPayload `json:"departure"`
	Arrival      *endpointPayload `json:"arrival"`
	Airline      *airlinePayload  `json:"airline"`
	Flight       *numberPayload   `json:"flight"`
	Aircraft     *aircraftPayload `json:"aircraft"`
}

// endpointPayload describes the departure or arrival side of a flight.
type endpointPayload struct {
	Airport   string `json:"airport"`
	IATA      string `json:"iata"`
	Scheduled string `json:"scheduled"`
	Estimated string `json:"estimated"`
}

// airlinePayload describes the operating airline.
type airlinePayload struct {
	Name string `json:"name"`
	IATA string `json:"iata"`
}

// numberPayload carries the flight identifiers.
type numberPayload struct {
	Number string `json:"number"`
	IATA   string `json:"iata"`
}

// aircraftPayload describes the airframe, when reported.
type aircraftPayload struct {
	Model        string `json:"model"`
	IATA         string `json:"iata"`
	Registration string `json:"registration"`
}

// errorResponse is the provider's error envelope for non-success calls.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
