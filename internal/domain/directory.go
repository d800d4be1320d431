package domain

//go:generate mockgen -source=directory.go -destination=mock_directory.go -package=domain

import (
	"context"
	"time"
)

// Directory is the abstract read interface over flight and airport records.
//
// The search core depends only on this interface; implementations can back to
// an in-memory index, a relational database, an external API, or any
// combination. Implementations must guarantee build-then-freeze semantics:
// once a Directory is handed to the search layer its contents never mutate in
// place, so any number of searches may run against it concurrently. Every
// Flight returned by a Directory must already be normalized (UTC instants
// populated).
//
// Date parameters are local calendar dates: a flight matches when its local
// departure date falls within [dateFrom, dateTo], both inclusive.
type Directory interface {
	// FlightsDeparting returns all flights departing from an airport whose
	// local departure date falls within the inclusive date range.
	FlightsDeparting(ctx context.Context, airportCode string, dateFrom, dateTo time.Time) ([]Flight, error)

	// DirectFlights returns flights from origin to destination whose local
	// departure date falls within the inclusive date range.
	DirectFlights(ctx context.Context, origin, destination string, dateFrom, dateTo time.Time) ([]Flight, error)

	// FlightsInInstantWindow returns flights departing from an airport whose
	// departure instant falls within [earliest, latest], both inclusive.
	// This supports instant-window traversal strategies that pre-compute the
	// legal departure window from the previous leg.
	FlightsInInstantWindow(ctx context.Context, airportCode string, earliest, latest time.Time) ([]Flight, error)

	// Airport looks up an airport by IATA code. It returns a wrapped
	// ErrUnknownAirport when the code is not known.
	Airport(ctx context.Context, code string) (Airport, error)

	// AllAirports returns every known airport.
	AllAirports(ctx context.Context) ([]Airport, error)

	// AirportExists reports whether an airport with the given code exists.
	// Implementations that cannot answer (e.g., a backend error) return false,
	// which pushes callers towards the stricter international rules.
	AirportExists(ctx context.Context, code string) bool
}
