package postgres

import (
	"context"
	"fmt"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// Empty reports whether the database holds no airports yet. Callers use it
// to decide whether a fresh backend needs seeding from the dataset file.
func (d *Directory) Empty(ctx context.Context) (bool, error) {
	var populated bool
	if err := d.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM airports)`).Scan(&populated); err != nil {
		return false, fmt.Errorf("check dataset presence: %w", err)
	}
	return !populated, nil
}

// Ingest loads airports and flights into the database inside a single
// transaction, replacing any previous dataset. Flights must already carry
// their UTC instants; un-normalized flights are rejected so the query
// paths never have to re-derive timezone data.
func (d *Directory) Ingest(ctx context.Context, airports []domain.Airport, flights []domain.Flight) error {
	for i := range flights {
		if !flights[i].Normalized() {
			return domain.NewNotNormalizedError(flights[i].FlightNumber)
		}
	}

	tx, err := d.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin ingest transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE flights, airports`); err != nil {
		return fmt.Errorf("truncate dataset: %w", err)
	}

	const insertAirport = `
		INSERT INTO airports (code, name, city, country, timezone)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, a := range airports {
		if _, err := tx.Exec(ctx, insertAirport, a.Code, a.Name, a.City, a.Country, a.Timezone); err != nil {
			return fmt.Errorf("insert airport %s: %w", a.Code, err)
		}
	}

	const insertFlight = `
		INSERT INTO flights (
			flight_number, airline, origin, destination,
			local_departure, local_arrival, price, aircraft,
			departure_instant, arrival_instant
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	for _, f := range flights {
		_, err := tx.Exec(ctx, insertFlight,
			f.FlightNumber, f.Airline, f.Origin, f.Destination,
			f.LocalDeparture, f.LocalArrival, f.Price, f.Aircraft,
			f.DepartureInstant, f.ArrivalInstant,
		)
		if err != nil {
			return fmt.Errorf("insert flight %s: %w", f.FlightNumber, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit ingest transaction: %w", err)
	}

	d.log.Info().
		Int("airports", len(airports)).
		Int("flights", len(flights)).
		Msg("Dataset ingested into postgres")
	return nil
}
