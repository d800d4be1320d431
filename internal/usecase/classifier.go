package usecase

import (
	"context"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// Default stop ceilings per route classification.
const (
	// DefaultDomesticMaxStops is the intermediate-stop ceiling for routes
	// whose endpoints share a country.
	DefaultDomesticMaxStops = 1

	// DefaultInternationalMaxStops is the intermediate-stop ceiling for
	// routes that cross a country border.
	DefaultInternationalMaxStops = 2
)

// RouteClass is the outcome of classifying a whole search route.
type RouteClass struct {
	// IsDomestic reports whether origin and destination share a country.
	IsDomestic bool

	// MaxStops is the intermediate-stop ceiling derived from the classification.
	MaxStops int

	// Country is the shared country for a domestic route; empty otherwise.
	// The search core uses it to prune foreign intermediate airports early.
	Country string
}

// RouteClassifier decides whether a whole search is domestic or international
// and derives the stop-count ceiling. It is a pure function of directory state.
type RouteClassifier struct {
	directory             domain.Directory
	domesticMaxStops      int
	internationalMaxStops int
}

// NewRouteClassifier creates a RouteClassifier with the given stop ceilings.
func NewRouteClassifier(directory domain.Directory, domesticMaxStops, internationalMaxStops int) *RouteClassifier {
	return &RouteClassifier{
		directory:             directory,
		domesticMaxStops:      domesticMaxStops,
		internationalMaxStops: internationalMaxStops,
	}
}

// Classify looks up both endpoints and returns the route classification.
// If either airport is unknown the route is classified international, the
// stricter rule set, as the safe default under uncertainty.
func (c *RouteClassifier) Classify(ctx context.Context, originCode, destinationCode string) RouteClass {
	international := RouteClass{IsDomestic: false, MaxStops: c.internationalMaxStops}

	origin, err := c.directory.Airport(ctx, originCode)
	if err != nil {
		return international
	}

	destination, err := c.directory.Airport(ctx, destinationCode)
	if err != nil {
		return international
	}

	if !origin.SameCountry(destination) {
		return international
	}

	return RouteClass{
		IsDomestic: true,
		MaxStops:   c.domesticMaxStops,
		Country:    origin.Country,
	}
}
