// Package usecase contains the business logic for itinerary search: timezone
// normalization, connection validation, route classification, the bounded-depth
// graph traversal, and itinerary assembly.
package usecase

import (
	"fmt"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
)

// Normalizer converts local wall-clock flight times into instants on a single
// absolute time axis (UTC). All duration and ordering comparisons in the
// engine operate on that axis, which keeps them correct across timezone and
// date-line boundaries.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize attaches the origin airport's timezone to the flight's local
// departure time and the destination airport's timezone to its local arrival
// time, then stores both as UTC instants on the flight.
//
// It must be invoked exactly once per flight, at data-ingestion time, before
// the flight enters any index used by search.
func (n *Normalizer) Normalize(f *domain.Flight, origin, destination domain.Airport) error {
	depLoc, err := timeutil.GetLocation(origin.Timezone)
	if err != nil {
		return fmt.Errorf("flight %s origin %s: %w", f.FlightNumber, origin.Code, err)
	}

	arrLoc, err := timeutil.GetLocation(destination.Timezone)
	if err != nil {
		return fmt.Errorf("flight %s destination %s: %w", f.FlightNumber, destination.Code, err)
	}

	f.DepartureInstant = rezone(f.LocalDeparture, depLoc).UTC()
	f.ArrivalInstant = rezone(f.LocalArrival, arrLoc).UTC()
	return nil
}

// Layover returns the gap between an arriving flight's landing and a
// departing flight's takeoff on the instant axis. A negative result means the
// departure precedes the arrival; downstream logic treats that as an invalid
// connection.
func (n *Normalizer) Layover(arriving, departing *domain.Flight) time.Duration {
	return departing.DepartureInstant.Sub(arriving.ArrivalInstant)
}

// rezone reinterprets the wall-clock components of t in the given location.
// Dataset times are parsed without zone information, so their components are
// the local schedule and their nominal location is meaningless.
func rezone(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
