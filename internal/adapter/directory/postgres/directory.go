// Package postgres provides a PostgreSQL-backed Directory implementation.
// It serves the same read contract as the in-memory directory from two
// tables, with UTC instants stored as columns so flights come back
// normalized. Data is written once by Ingest; the query paths never mutate
// anything, preserving build-then-freeze semantics for concurrent searches.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/retry"
)

// Directory is a PostgreSQL-backed implementation of domain.Directory.
type Directory struct {
	db  *pgxpool.Pool
	log zerolog.Logger
}

// New connects to PostgreSQL and returns a Directory. The initial ping is
// retried with backoff to ride out container start-up races.
func New(ctx context.Context, dsn string, log zerolog.Logger) (*Directory, error) {
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx pool config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	err = retry.Do(ctx, func() error {
		return pool.Ping(ctx)
	}, retry.DatabaseConfig)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return &Directory{db: pool, log: log}, nil
}

// Close releases the connection pool.
func (d *Directory) Close() {
	d.db.Close()
}

const flightColumns = `
	flight_number,
	airline,
	origin,
	destination,
	local_departure,
	local_arrival,
	price,
	aircraft,
	departure_instant,
	arrival_instant
`

// FlightsDeparting implements domain.Directory.
func (d *Directory) FlightsDeparting(ctx context.Context, airportCode string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE origin = $1
		  AND local_departure::date BETWEEN $2::date AND $3::date
		ORDER BY departure_instant
	`

	rows, err := d.db.Query(ctx, query, airportCode, dateFrom, dateTo)
	if err != nil {
		return nil, unavailable(err, "query flights departing %s", airportCode)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// DirectFlights implements domain.Directory.
func (d *Directory) DirectFlights(ctx context.Context, origin, destination string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE origin = $1
		  AND destination = $2
		  AND local_departure::date BETWEEN $3::date AND $4::date
		ORDER BY departure_instant
	`

	rows, err := d.db.Query(ctx, query, origin, destination, dateFrom, dateTo)
	if err != nil {
		return nil, unavailable(err, "query direct flights %s-%s", origin, destination)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// FlightsInInstantWindow implements domain.Directory.
func (d *Directory) FlightsInInstantWindow(ctx context.Context, airportCode string, earliest, latest time.Time) ([]domain.Flight, error) {
	query := `
		SELECT ` + flightColumns + `
		FROM flights
		WHERE origin = $1
		  AND departure_instant BETWEEN $2 AND $3
		ORDER BY departure_instant
	`

	rows, err := d.db.Query(ctx, query, airportCode, earliest, latest)
	if err != nil {
		return nil, unavailable(err, "query instant window for %s", airportCode)
	}
	defer rows.Close()

	return scanFlights(rows)
}

// Airport implements domain.Directory.
func (d *Directory) Airport(ctx context.Context, code string) (domain.Airport, error) {
	const query = `
		SELECT code, name, city, country, timezone
		FROM airports
		WHERE code = $1
	`

	var a domain.Airport
	err := d.db.QueryRow(ctx, query, code).Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Timezone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Airport{}, domain.NewUnknownAirportError(code)
		}
		return domain.Airport{}, unavailable(err, "query airport %s", code)
	}
	return a, nil
}

// AllAirports implements domain.Directory.
func (d *Directory) AllAirports(ctx context.Context) ([]domain.Airport, error) {
	const query = `
		SELECT code, name, city, country, timezone
		FROM airports
		ORDER BY code
	`

	rows, err := d.db.Query(ctx, query)
	if err != nil {
		return nil, unavailable(err, "query airports")
	}
	defer rows.Close()

	var airports []domain.Airport
	for rows.Next() {
		var a domain.Airport
		if err := rows.Scan(&a.Code, &a.Name, &a.City, &a.Country, &a.Timezone); err != nil {
			return nil, fmt.Errorf("scan airport: %w", err)
		}
		airports = append(airports, a)
	}
	return airports, rows.Err()
}

// AirportExists implements domain.Directory. Backend errors report false,
// pushing callers towards the stricter international rules.
func (d *Directory) AirportExists(ctx context.Context, code string) bool {
	const query = `SELECT EXISTS (SELECT 1 FROM airports WHERE code = $1)`

	var exists bool
	if err := d.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		d.log.Warn().Str("code", code).Err(err).Msg("Airport existence check failed")
		return false
	}
	return exists
}

// unavailable marks a backend failure with ErrDirectoryUnavailable so the
// transport layer can map it to a 503, keeping the driver error in the chain.
func unavailable(err error, format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w: %w", append(args, domain.ErrDirectoryUnavailable, err)...)
}

// scanFlights reads flight rows into domain entities.
func scanFlights(rows pgx.Rows) ([]domain.Flight, error) {
	var flights []domain.Flight
	for rows.Next() {
		var f domain.Flight
		err := rows.Scan(
			&f.FlightNumber,
			&f.Airline,
			&f.Origin,
			&f.Destination,
			&f.LocalDeparture,
			&f.LocalArrival,
			&f.Price,
			&f.Aircraft,
			&f.DepartureInstant,
			&f.ArrivalInstant,
		)
		if err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// Ensure Directory implements domain.Directory at compile time.
var _ domain.Directory = (*Directory)(nil)
