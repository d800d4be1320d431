// Package memory provides the in-memory Directory implementation.
// It loads a JSON dataset once at startup, normalizes every flight, and
// indexes the data for efficient querying. After Load returns the directory
// is frozen: nothing mutates its indices, so any number of searches may run
// against it concurrently.
package memory

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/usecase"
)

// Directory is an immutable in-memory index of airports and flights.
type Directory struct {
	airports     map[string]domain.Airport
	airportOrder []string
	byOrigin     map[string][]domain.Flight
	byRoute      map[string][]domain.Flight
}

// Load reads a JSON dataset file and builds a frozen Directory from it.
//
// Malformed records never abort the load: flights referencing unknown
// airports, with unparsable times, or with timezones that fail to resolve
// are skipped with a logged warning. Prices may appear as JSON numbers or
// numeric strings; both coerce.
func Load(path string, log zerolog.Logger) (*Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	ds, err := parseDataset(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	return build(ds, log)
}

// build converts raw dataset records to domain values and indexes them.
func build(ds *dataset, log zerolog.Logger) (*Directory, error) {
	airports := make([]domain.Airport, 0, len(ds.Airports))
	for _, a := range ds.Airports {
		airports = append(airports, a.toAirport())
	}

	flights := make([]domain.Flight, 0, len(ds.Flights))
	for _, r := range ds.Flights {
		f, err := r.toFlight()
		if err != nil {
			log.Warn().Str("flight", r.FlightNumber).Err(err).Msg("Skipping flight with malformed times")
			continue
		}
		flights = append(flights, f)
	}

	return New(airports, flights, log)
}

// New builds a frozen Directory from already-constructed domain values.
// Flights are normalized during the build; records that cannot be resolved
// against the airport set are skipped with a warning. This is the entry
// point for tests and for callers that source data elsewhere.
func New(airports []domain.Airport, flights []domain.Flight, log zerolog.Logger) (*Directory, error) {
	d := &Directory{
		airports: make(map[string]domain.Airport, len(airports)),
		byOrigin: make(map[string][]domain.Flight),
		byRoute:  make(map[string][]domain.Flight),
	}

	for _, a := range airports {
		if _, dup := d.airports[a.Code]; dup {
			log.Warn().Str("code", a.Code).Msg("Duplicate airport code, keeping first")
			continue
		}
		d.airports[a.Code] = a
		d.airportOrder = append(d.airportOrder, a.Code)
	}

	normalizer := usecase.NewNormalizer()
	skipped := 0

	for _, f := range flights {
		origin, originKnown := d.airports[f.Origin]
		destination, destinationKnown := d.airports[f.Destination]

		// Handles dataset typos such as a flight referencing "JKF".
		if !originKnown || !destinationKnown {
			log.Warn().
				Str("flight", f.FlightNumber).
				Str("origin", f.Origin).
				Str("destination", f.Destination).
				Msg("Skipping flight with unknown airport(s)")
			skipped++
			continue
		}

		if err := normalizer.Normalize(&f, origin, destination); err != nil {
			log.Warn().Str("flight", f.FlightNumber).Err(err).Msg("Skipping flight that failed normalization")
			skipped++
			continue
		}

		d.byOrigin[f.Origin] = append(d.byOrigin[f.Origin], f)
		d.byRoute[routeKey(f.Origin, f.Destination)] = append(d.byRoute[routeKey(f.Origin, f.Destination)], f)
	}

	if skipped > 0 {
		log.Warn().Int("count", skipped).Msg("Skipped flights during directory build")
	}

	total := 0
	for _, fs := range d.byOrigin {
		total += len(fs)
	}
	log.Info().
		Int("airports", len(d.airports)).
		Int("flights", total).
		Int("routes", len(d.byRoute)).
		Msg("Flight directory loaded")

	return d, nil
}

func routeKey(origin, destination string) string {
	return origin + ":" + destination
}

// Dataset returns the loaded airports and their normalized flights in load
// order. Other backends seed themselves from it so they start with the same
// data a memory directory would serve from the same file.
func (d *Directory) Dataset() ([]domain.Airport, []domain.Flight) {
	airports := make([]domain.Airport, 0, len(d.airportOrder))
	var flights []domain.Flight
	for _, code := range d.airportOrder {
		airports = append(airports, d.airports[code])
		flights = append(flights, d.byOrigin[code]...)
	}
	return airports, flights
}

// FlightsDeparting implements domain.Directory.
func (d *Directory) FlightsDeparting(ctx context.Context, airportCode string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return filterByDateRange(d.byOrigin[airportCode], dateFrom, dateTo), nil
}

// DirectFlights implements domain.Directory.
func (d *Directory) DirectFlights(ctx context.Context, origin, destination string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return filterByDateRange(d.byRoute[routeKey(origin, destination)], dateFrom, dateTo), nil
}

// FlightsInInstantWindow implements domain.Directory.
func (d *Directory) FlightsInInstantWindow(ctx context.Context, airportCode string, earliest, latest time.Time) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	flights := d.byOrigin[airportCode]
	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if !f.DepartureInstant.Before(earliest) && !f.DepartureInstant.After(latest) {
			result = append(result, f)
		}
	}
	return result, nil
}

// Airport implements domain.Directory.
func (d *Directory) Airport(ctx context.Context, code string) (domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return domain.Airport{}, err
	}

	airport, ok := d.airports[code]
	if !ok {
		return domain.Airport{}, domain.NewUnknownAirportError(code)
	}
	return airport, nil
}

// AllAirports implements domain.Directory. Airports are returned in dataset order.
func (d *Directory) AllAirports(ctx context.Context) ([]domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make([]domain.Airport, 0, len(d.airportOrder))
	for _, code := range d.airportOrder {
		result = append(result, d.airports[code])
	}
	return result, nil
}

// AirportExists implements domain.Directory.
func (d *Directory) AirportExists(ctx context.Context, code string) bool {
	_, ok := d.airports[code]
	return ok
}

// filterByDateRange keeps flights whose local departure date falls within
// [dateFrom, dateTo], both inclusive. Only calendar-date components are
// compared; the range endpoints' time-of-day is ignored.
func filterByDateRange(flights []domain.Flight, dateFrom, dateTo time.Time) []domain.Flight {
	from := dateOnly(dateFrom)
	to := dateOnly(dateTo)

	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		depDate := dateOnly(f.LocalDeparture)
		if !depDate.Before(from) && !depDate.After(to) {
			result = append(result, f)
		}
	}
	return result
}

// dateOnly strips the time-of-day and location from t.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Ensure Directory implements domain.Directory at compile time.
var _ domain.Directory = (*Directory)(nil)
