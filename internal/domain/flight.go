package domain

import "time"

// Flight represents a single scheduled flight. Local times come straight from
// the dataset and carry no timezone; the UTC instants are derived once during
// data loading using the origin and destination airport timezones.
//
// A Flight must be normalized (instants populated) before it is used in any
// duration or layover comparison. ArrivalInstant is always after
// DepartureInstant for a physically valid schedule, even when the local
// arrival clock time appears earlier than the local departure clock time
// (westbound date-line crossings).
type Flight struct {
	// FlightNumber is the airline's flight number (e.g., "SP101")
	FlightNumber string `json:"flightNumber"`

	// Airline is the operating airline name
	Airline string `json:"airline"`

	// Origin is the IATA code of the departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport
	Destination string `json:"destination"`

	// LocalDeparture is the wall-clock departure time at the origin airport
	LocalDeparture time.Time `json:"departureTime"`

	// LocalArrival is the wall-clock arrival time at the destination airport
	LocalArrival time.Time `json:"arrivalTime"`

	// Price is the ticket price for this flight
	Price float64 `json:"price"`

	// Aircraft is the aircraft type (e.g., "Boeing 737")
	Aircraft string `json:"aircraft"`

	// DepartureInstant is the departure time on the absolute UTC axis.
	// Derived during data loading; zero until the flight is normalized.
	DepartureInstant time.Time `json:"-"`

	// ArrivalInstant is the arrival time on the absolute UTC axis.
	// Derived during data loading; zero until the flight is normalized.
	ArrivalInstant time.Time `json:"-"`
}

// Normalized reports whether both UTC instants have been populated.
func (f *Flight) Normalized() bool {
	return !f.DepartureInstant.IsZero() && !f.ArrivalInstant.IsZero()
}

// Duration returns the flight duration on the instant axis.
// The result is only meaningful for a normalized flight.
func (f *Flight) Duration() time.Duration {
	return f.ArrivalInstant.Sub(f.DepartureInstant)
}

// DurationMinutes returns the flight duration in whole minutes.
func (f *Flight) DurationMinutes() int64 {
	return int64(f.Duration() / time.Minute)
}
