package domain

// Layover type classifications for a connection between two segments.
const (
	// LayoverDomestic marks a connection where all airports touched by the
	// arriving and departing legs share one country.
	LayoverDomestic = "domestic"

	// LayoverInternational marks any connection that is not domestic,
	// including connections whose airports could not be resolved.
	LayoverInternational = "international"
)

// Itinerary represents a complete journey from origin to destination.
// It is constructed once by the assembler and never mutated afterwards.
type Itinerary struct {
	// ID is a unique identifier for this itinerary (generated internally)
	ID string `json:"id"`

	// Segments are the flights that make up the itinerary, in travel order
	Segments []Segment `json:"segments"`

	// Layovers describes the connection between each adjacent segment pair.
	// An N-segment itinerary has exactly N-1 layovers.
	Layovers []Layover `json:"layovers"`

	// Stops is the number of intermediate airports (segments - 1)
	Stops int `json:"stops"`

	// TotalDurationMinutes is the end-to-end travel time on the instant axis:
	// last arrival instant minus first departure instant
	TotalDurationMinutes int64 `json:"totalDurationMinutes"`

	// TotalDuration is a human-readable form of the total travel time (e.g., "7h 35m")
	TotalDuration string `json:"totalDuration"`

	// TotalPrice is the sum of segment prices, rounded to 2 decimal places
	TotalPrice float64 `json:"totalPrice"`
}

// Segment is one scheduled flight within an itinerary, enriched with airport
// names and cities for display.
type Segment struct {
	// FlightNumber is the airline's flight number
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline name
	Airline string `json:"airline"`

	// OriginCode is the IATA code of the departure airport
	OriginCode string `json:"originCode"`

	// OriginName is the full name of the departure airport
	OriginName string `json:"originName"`

	// OriginCity is the city of the departure airport
	OriginCity string `json:"originCity"`

	// DestinationCode is the IATA code of the arrival airport
	DestinationCode string `json:"destinationCode"`

	// DestinationName is the full name of the arrival airport
	DestinationName string `json:"destinationName"`

	// DestinationCity is the city of the arrival airport
	DestinationCity string `json:"destinationCity"`

	// DepartureTime is the local wall-clock departure time, ISO 8601 formatted
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is the local wall-clock arrival time, ISO 8601 formatted
	ArrivalTime string `json:"arrivalTime"`

	// DurationMinutes is the segment duration on the instant axis
	DurationMinutes int64 `json:"durationMinutes"`

	// Aircraft is the aircraft type
	Aircraft string `json:"aircraft"`
}

// Layover describes the gap between an arriving segment and the next
// departing segment at a connection airport.
type Layover struct {
	// AirportCode is the IATA code of the connection airport
	AirportCode string `json:"airportCode"`

	// AirportName is the full name of the connection airport
	AirportName string `json:"airportName"`

	// AirportCity is the city of the connection airport
	AirportCity string `json:"airportCity"`

	// DurationMinutes is the layover duration on the instant axis
	DurationMinutes int64 `json:"durationMinutes"`

	// Type is either "domestic" or "international"
	Type string `json:"type"`
}

// FormatMinutes renders a minute count as a human-readable duration
// string such as "2h 30m", "3h", or "45m".
func FormatMinutes(totalMinutes int64) string {
	hours := totalMinutes / 60
	mins := totalMinutes % 60

	switch {
	case hours > 0 && mins > 0:
		return intToString(hours) + "h " + intToString(mins) + "m"
	case hours > 0:
		return intToString(hours) + "h"
	default:
		return intToString(mins) + "m"
	}
}

// intToString converts a non-negative integer to a string without importing strconv.
func intToString(n int64) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
