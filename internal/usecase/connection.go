package usecase

import (
	"context"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// Default layover bounds.
const (
	// DefaultMinDomesticLayover is the minimum legal layover when the
	// connection is classified domestic.
	DefaultMinDomesticLayover = 45 * time.Minute

	// DefaultMinInternationalLayover is the minimum legal layover when the
	// connection is classified international.
	DefaultMinInternationalLayover = 90 * time.Minute

	// DefaultMaxLayover is the maximum legal layover regardless of
	// classification.
	DefaultMaxLayover = 6 * time.Hour
)

// ConnectionRules holds the layover bounds applied by the validator.
type ConnectionRules struct {
	MinDomesticLayover      time.Duration
	MinInternationalLayover time.Duration
	MaxLayover              time.Duration
}

// DefaultConnectionRules returns the standard layover bounds.
func DefaultConnectionRules() ConnectionRules {
	return ConnectionRules{
		MinDomesticLayover:      DefaultMinDomesticLayover,
		MinInternationalLayover: DefaultMinInternationalLayover,
		MaxLayover:              DefaultMaxLayover,
	}
}

// ConnectionValidator decides whether two consecutive flights form a legal
// connection. It encapsulates all connection rules: same airport, temporal
// ordering, minimum and maximum layover durations, and the per-connection
// domestic vs. international classification.
type ConnectionValidator struct {
	directory  domain.Directory
	normalizer *Normalizer
	rules      ConnectionRules
}

// NewConnectionValidator creates a ConnectionValidator with the given rules.
func NewConnectionValidator(directory domain.Directory, normalizer *Normalizer, rules ConnectionRules) *ConnectionValidator {
	return &ConnectionValidator{
		directory:  directory,
		normalizer: normalizer,
		rules:      rules,
	}
}

// IsValidConnection reports whether arriving followed by departing is a legal
// connection. Rules are evaluated in order and short-circuit on the first
// failure:
//
//  1. Airport continuity: the arriving flight's destination must be the
//     departing flight's origin. No airport changes mid-layover (e.g., JFK→LGA).
//  2. Non-negative layover: the departing flight cannot leave before the
//     arriving flight lands.
//  3. Maximum layover, regardless of classification.
//  4. Minimum layover, depending on the per-connection domestic/international
//     classification.
func (v *ConnectionValidator) IsValidConnection(ctx context.Context, arriving, departing *domain.Flight) bool {
	if arriving.Destination != departing.Origin {
		return false
	}

	layover := v.normalizer.Layover(arriving, departing)
	if layover < 0 {
		return false
	}

	if layover > v.rules.MaxLayover {
		return false
	}

	minLayover := v.rules.MinInternationalLayover
	if v.IsDomesticConnection(ctx, arriving, departing) {
		minLayover = v.rules.MinDomesticLayover
	}

	return layover >= minLayover
}

// IsDomesticConnection classifies a connection as domestic when all three
// airports touched by the pair (arriving origin, connection point, departing
// destination) share one country. This is a stricter, per-connection notion
// than the whole-route classification: a connection on an international route
// can still be domestic, and vice versa.
//
// If any airport lookup fails, the connection is classified international,
// which applies the stricter minimum layover.
func (v *ConnectionValidator) IsDomesticConnection(ctx context.Context, arriving, departing *domain.Flight) bool {
	arrOrigin, err := v.directory.Airport(ctx, arriving.Origin)
	if err != nil {
		return false
	}

	connection, err := v.directory.Airport(ctx, arriving.Destination)
	if err != nil {
		return false
	}

	depDestination, err := v.directory.Airport(ctx, departing.Destination)
	if err != nil {
		return false
	}

	return arrOrigin.SameCountry(connection) && connection.SameCountry(depDestination)
}

// LayoverMinutes returns the layover between two flights in whole minutes.
// Negative values mean the departing flight leaves before the arriving one lands.
func (v *ConnectionValidator) LayoverMinutes(arriving, departing *domain.Flight) int64 {
	return int64(v.normalizer.Layover(arriving, departing) / time.Minute)
}
