package domain

import (
	"regexp"
	"time"
)

// DateLayout is the calendar-date format used throughout the API.
const DateLayout = "2006-01-02"

// SearchQuery defines the parameters for an itinerary search.
// The search core assumes a validated query: known airport codes and a valid
// date. Use Validate before handing the query to the engine.
type SearchQuery struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `json:"destination"`

	// Date is the requested departure date (calendar date; time component ignored)
	Date time.Time `json:"date"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// ValidAirportCode reports whether code has the shape of an IATA airport code.
func ValidAirportCode(code string) bool {
	return airportCodeRegex.MatchString(code)
}

// Validate checks the structural validity of the query: IATA-shaped codes,
// distinct endpoints, and a non-zero date. Known-airport checks are the
// caller's responsibility since they require directory access.
// Returns a wrapped ErrInvalidQuery error if validation fails.
func (q *SearchQuery) Validate() error {
	if q.Origin == "" {
		return WrapInvalidQuery("origin is required")
	}
	if !ValidAirportCode(q.Origin) {
		return WrapInvalidQuery("origin must be a valid 3-letter IATA code, got %q", q.Origin)
	}

	if q.Destination == "" {
		return WrapInvalidQuery("destination is required")
	}
	if !ValidAirportCode(q.Destination) {
		return WrapInvalidQuery("destination must be a valid 3-letter IATA code, got %q", q.Destination)
	}

	if q.Origin == q.Destination {
		return WrapInvalidQuery("origin and destination must be different")
	}

	if q.Date.IsZero() {
		return WrapInvalidQuery("date is required")
	}

	return nil
}
