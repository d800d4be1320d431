package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// testAirports is the airport universe shared by the usecase tests.
var testAirports = map[string]domain.Airport{
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "USA", Timezone: "America/New_York"},
	"LAX": {Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "USA", Timezone: "America/Los_Angeles"},
	"ORD": {Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "USA", Timezone: "America/Chicago"},
	"SFO": {Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "USA", Timezone: "America/Los_Angeles"},
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "USA", Timezone: "America/New_York"},
	"LHR": {Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "UK", Timezone: "Europe/London"},
	"NRT": {Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
	"HND": {Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan", Timezone: "Asia/Tokyo"},
}

const fixtureTimeLayout = "2006-01-02T15:04:05"

// newTestFlight builds a normalized flight between two fixture airports.
// Departure and arrival are local wall-clock times in the respective
// airports' timezones.
func newTestFlight(t *testing.T, number, origin, destination, departure, arrival string, price float64) domain.Flight {
	t.Helper()

	dep, err := time.Parse(fixtureTimeLayout, departure)
	require.NoError(t, err)
	arr, err := time.Parse(fixtureTimeLayout, arrival)
	require.NoError(t, err)

	f := domain.Flight{
		FlightNumber:   number,
		Airline:        "Test Air",
		Origin:         origin,
		Destination:    destination,
		LocalDeparture: dep,
		LocalArrival:   arr,
		Price:          price,
		Aircraft:       "Boeing 737",
	}

	originAirport, ok := testAirports[origin]
	require.True(t, ok, "fixture airport %s missing", origin)
	destinationAirport, ok := testAirports[destination]
	require.True(t, ok, "fixture airport %s missing", destination)

	require.NoError(t, NewNormalizer().Normalize(&f, originAirport, destinationAirport))
	return f
}

// fixtureDirectory is a minimal in-package Directory over fixed slices. It
// mirrors the date-filtering semantics of the production backends.
type fixtureDirectory struct {
	airports map[string]domain.Airport
	flights  []domain.Flight
}

func newFixtureDirectory(flights ...domain.Flight) *fixtureDirectory {
	return &fixtureDirectory{airports: testAirports, flights: flights}
}

func (d *fixtureDirectory) FlightsDeparting(ctx context.Context, airportCode string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result []domain.Flight
	for _, f := range d.flights {
		if f.Origin == airportCode && localDateWithin(f.LocalDeparture, dateFrom, dateTo) {
			result = append(result, f)
		}
	}
	return result, nil
}

func (d *fixtureDirectory) DirectFlights(ctx context.Context, origin, destination string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	flights, err := d.FlightsDeparting(ctx, origin, dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	var result []domain.Flight
	for _, f := range flights {
		if f.Destination == destination {
			result = append(result, f)
		}
	}
	return result, nil
}

func (d *fixtureDirectory) FlightsInInstantWindow(ctx context.Context, airportCode string, earliest, latest time.Time) ([]domain.Flight, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var result []domain.Flight
	for _, f := range d.flights {
		if f.Origin == airportCode && !f.DepartureInstant.Before(earliest) && !f.DepartureInstant.After(latest) {
			result = append(result, f)
		}
	}
	return result, nil
}

func (d *fixtureDirectory) Airport(ctx context.Context, code string) (domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return domain.Airport{}, err
	}

	airport, ok := d.airports[code]
	if !ok {
		return domain.Airport{}, domain.NewUnknownAirportError(code)
	}
	return airport, nil
}

func (d *fixtureDirectory) AllAirports(ctx context.Context) ([]domain.Airport, error) {
	result := make([]domain.Airport, 0, len(d.airports))
	for _, a := range d.airports {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Code < result[j].Code })
	return result, nil
}

func (d *fixtureDirectory) AirportExists(ctx context.Context, code string) bool {
	_, ok := d.airports[code]
	return ok
}

func localDateWithin(t, from, to time.Time) bool {
	day := func(x time.Time) time.Time {
		return time.Date(x.Year(), x.Month(), x.Day(), 0, 0, 0, 0, time.UTC)
	}
	d := day(t)
	return !d.Before(day(from)) && !d.After(day(to))
}

var _ domain.Directory = (*fixtureDirectory)(nil)
