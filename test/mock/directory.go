// Package mock provides test doubles for the itinerary search system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific datasets).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// Directory is a configurable domain.Directory double. It delegates queries
// to a wrapped directory (typically the in-memory backend built from a test
// dataset) and layers configurable delays and errors on top, for testing
// timeout and backend-failure scenarios.
type Directory struct {
	inner     domain.Directory
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewDirectory wraps a directory with configurable failure behavior.
// The double is configured using the builder pattern methods.
func NewDirectory(inner domain.Directory) *Directory {
	return &Directory{inner: inner}
}

// WithError configures every flight query to return the given error.
func (d *Directory) WithError(err error) *Directory {
	d.err = err
	return d
}

// WithDelay configures every flight query to wait the given duration
// before responding. This is useful for testing timeout behavior.
func (d *Directory) WithDelay(delay time.Duration) *Directory {
	d.delay = delay
	return d
}

// intercept applies the configured delay and error before a query runs.
// It respects context cancellation during the delay.
func (d *Directory) intercept(ctx context.Context) error {
	d.mu.Lock()
	d.callCount++
	d.mu.Unlock()

	if d.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.delay):
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return d.err
}

// FlightsDeparting implements domain.Directory.
func (d *Directory) FlightsDeparting(ctx context.Context, airportCode string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	if err := d.intercept(ctx); err != nil {
		return nil, err
	}
	return d.inner.FlightsDeparting(ctx, airportCode, dateFrom, dateTo)
}

// DirectFlights implements domain.Directory.
func (d *Directory) DirectFlights(ctx context.Context, origin, destination string, dateFrom, dateTo time.Time) ([]domain.Flight, error) {
	if err := d.intercept(ctx); err != nil {
		return nil, err
	}
	return d.inner.DirectFlights(ctx, origin, destination, dateFrom, dateTo)
}

// FlightsInInstantWindow implements domain.Directory.
func (d *Directory) FlightsInInstantWindow(ctx context.Context, airportCode string, earliest, latest time.Time) ([]domain.Flight, error) {
	if err := d.intercept(ctx); err != nil {
		return nil, err
	}
	return d.inner.FlightsInInstantWindow(ctx, airportCode, earliest, latest)
}

// Airport implements domain.Directory. Airport lookups are metadata reads
// used by route classification, so they bypass the configured delay and
// error: a test simulating a slow flight query should not also stall
// classification.
func (d *Directory) Airport(ctx context.Context, code string) (domain.Airport, error) {
	return d.inner.Airport(ctx, code)
}

// AllAirports implements domain.Directory.
func (d *Directory) AllAirports(ctx context.Context) ([]domain.Airport, error) {
	return d.inner.AllAirports(ctx)
}

// AirportExists implements domain.Directory.
func (d *Directory) AirportExists(ctx context.Context, code string) bool {
	return d.inner.AirportExists(ctx, code)
}

// CallCount returns the number of flight queries intercepted.
// This is useful for verifying directory interactions.
func (d *Directory) CallCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.callCount
}

// Reset resets the call count to zero.
func (d *Directory) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callCount = 0
}

// Ensure Directory implements domain.Directory at compile time.
var _ domain.Directory = (*Directory)(nil)
