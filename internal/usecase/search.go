package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
)

// ItinerarySearch defines the interface for itinerary search operations.
type ItinerarySearch interface {
	// Search returns all legal itineraries from origin to destination
	// departing on the query date, sorted ascending by total travel
	// duration. An empty slice is a valid, non-error result.
	Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) ([]domain.Itinerary, error)
}

// Config contains configuration options for the search engine.
type Config struct {
	// DomesticMaxStops is the intermediate-stop ceiling for domestic routes.
	DomesticMaxStops int

	// InternationalMaxStops is the intermediate-stop ceiling for international routes.
	InternationalMaxStops int

	// Rules are the layover bounds applied to every connection.
	Rules ConnectionRules
}

// DefaultConfig returns the default search configuration.
func DefaultConfig() Config {
	return Config{
		DomesticMaxStops:      DefaultDomesticMaxStops,
		InternationalMaxStops: DefaultInternationalMaxStops,
		Rules:                 DefaultConnectionRules(),
	}
}

// itinerarySearch implements ItinerarySearch as a depth-bounded DFS over the
// flight graph. The traversal queries the directory lazily per visited
// airport using local-date windows, and judges every candidate connection
// with the per-connection domestic/international classification in the
// ConnectionValidator.
type itinerarySearch struct {
	directory  domain.Directory
	classifier *RouteClassifier
	validator  *ConnectionValidator
	assembler  *Assembler
	log        zerolog.Logger
}

// NewItinerarySearch creates an ItinerarySearch over the given directory.
// If config is nil, default stop ceilings and layover rules are used.
func NewItinerarySearch(directory domain.Directory, config *Config, log zerolog.Logger) ItinerarySearch {
	cfg := DefaultConfig()
	if config != nil {
		if config.DomesticMaxStops > 0 {
			cfg.DomesticMaxStops = config.DomesticMaxStops
		}
		if config.InternationalMaxStops > 0 {
			cfg.InternationalMaxStops = config.InternationalMaxStops
		}
		if config.Rules != (ConnectionRules{}) {
			cfg.Rules = config.Rules
		}
	}

	normalizer := NewNormalizer()
	validator := NewConnectionValidator(directory, normalizer, cfg.Rules)

	return &itinerarySearch{
		directory:  directory,
		classifier: NewRouteClassifier(directory, cfg.DomesticMaxStops, cfg.InternationalMaxStops),
		validator:  validator,
		assembler:  NewAssembler(directory, validator),
		log:        log,
	}
}

// Search implements ItinerarySearch.Search.
//
// Algorithm outline:
//  1. Reject structurally invalid queries with ErrInvalidQuery.
//  2. Classify the route to derive the stop ceiling and, for domestic
//     routes, the country used to prune foreign intermediates.
//  3. Fetch all flights departing the origin on the search date. Direct
//     flights to the destination complete immediately.
//  4. Remaining flights seed the recursive exploration, grouped by
//     intermediate airport so country and visited checks run once per
//     airport rather than once per flight.
//  5. Sort results ascending by total duration; ties keep discovery order.
func (s *itinerarySearch) Search(ctx context.Context, query domain.SearchQuery, opts SearchOptions) ([]domain.Itinerary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	route := s.classifier.Classify(ctx, query.Origin, query.Destination)

	// The option may only tighten the classified ceiling, never raise it
	// past what the route allows.
	maxStops := route.MaxStops
	if opts.MaxStops != nil && *opts.MaxStops >= 0 && *opts.MaxStops < maxStops {
		maxStops = *opts.MaxStops
	}

	s.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Str("date", timeutil.FormatDate(query.Date)).
		Bool("domestic", route.IsDomestic).
		Int("max_stops", maxStops).
		Msg("Searching itineraries")

	searchDate := timeutil.StartOfDay(query.Date)

	// Itineraries accumulate here across the whole traversal. Empty is a
	// valid result, so keep the slice non-nil.
	results := []domain.Itinerary{}

	// Single directory call for the root node; direct legs and DFS seeds
	// are partitioned from it.
	originFlights, err := s.directory.FlightsDeparting(ctx, query.Origin, searchDate, searchDate)
	if err != nil {
		return nil, fmt.Errorf("fetch departures from %s: %w", query.Origin, err)
	}

	if err := requireNormalized(originFlights); err != nil {
		return nil, err
	}

	// Direct flights complete a path on their own; no connection to validate.
	for _, direct := range flightsTo(originFlights, query.Destination) {
		itinerary, err := s.assembler.Assemble(ctx, []domain.Flight{direct})
		if err != nil {
			return nil, err
		}
		results = append(results, itinerary)
	}

	if maxStops > 0 {
		byAirport := groupByDestination(originFlights, query.Destination)
		visited := map[string]struct{}{query.Origin: {}}

		for _, next := range sortedKeys(byAirport) {
			// Domestic searches never route through a foreign airport.
			if route.IsDomestic && !s.inCountry(ctx, next, route.Country) {
				continue
			}

			visited[next] = struct{}{}
			for _, flight := range byAirport[next] {
				// First leg: no previous flight to validate against.
				err := s.explore(ctx, query.Destination, visited, []domain.Flight{flight}, flight, maxStops-1, route, &results)
				if err != nil {
					return nil, err
				}
			}
			delete(visited, next)
		}
	}

	// Stable: equal durations keep discovery order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalDurationMinutes < results[j].TotalDurationMinutes
	})

	s.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("results", len(results)).
		Msg("Search complete")

	return results, nil
}

// explore is the recursive DFS step. It runs the same three phases at every
// node: try to finish the path with a direct leg to the destination, stop if
// the stop budget is exhausted, then expand through unvisited intermediate
// airports. The visited set is mutated add-before-recurse and restored
// after, so sibling branches can reconsider an airport reached by a
// different path; the path slice itself is copied on every extension and is
// never shared across branches.
func (s *itinerarySearch) explore(ctx context.Context, destination string, visited map[string]struct{},
	path []domain.Flight, last domain.Flight, remainingStops int, route RouteClass,
	results *[]domain.Itinerary) error {

	if err := ctx.Err(); err != nil {
		return err
	}

	current := last.Destination

	// Connections may depart the same local day as the arrival or the next
	// day, to allow overnight layovers. Anything outside that window cannot
	// satisfy the maximum-layover bound anyway.
	windowFrom := timeutil.StartOfDay(last.LocalArrival)
	windowTo := windowFrom.AddDate(0, 0, 1)

	candidates, err := s.directory.FlightsDeparting(ctx, current, windowFrom, windowTo)
	if err != nil {
		return fmt.Errorf("fetch departures from %s: %w", current, err)
	}

	if err := requireNormalized(candidates); err != nil {
		return err
	}

	// Phase 1: direct continuation to the destination. This runs even with
	// zero remaining stops, because a direct leg adds no intermediate stop.
	for _, flight := range flightsTo(candidates, destination) {
		if !s.validator.IsValidConnection(ctx, &last, &flight) {
			continue
		}

		itinerary, err := s.assembler.Assemble(ctx, extendPath(path, flight))
		if err != nil {
			return err
		}
		*results = append(*results, itinerary)
	}

	// Phase 2: stop budget exhausted.
	if remainingStops == 0 {
		return nil
	}

	// Phase 3: recurse through intermediates.
	byAirport := groupByDestination(candidates, destination)
	for _, next := range sortedKeys(byAirport) {
		if _, seen := visited[next]; seen {
			continue
		}
		if route.IsDomestic && !s.inCountry(ctx, next, route.Country) {
			continue
		}

		visited[next] = struct{}{}
		for _, flight := range byAirport[next] {
			if !s.validator.IsValidConnection(ctx, &last, &flight) {
				continue
			}

			err := s.explore(ctx, destination, visited, extendPath(path, flight), flight, remainingStops-1, route, results)
			if err != nil {
				return err
			}
		}
		delete(visited, next)
	}

	return nil
}

// inCountry reports whether the airport with the given code is in country.
// Unknown airports report false, which prunes them from domestic searches.
func (s *itinerarySearch) inCountry(ctx context.Context, airportCode, country string) bool {
	airport, err := s.directory.Airport(ctx, airportCode)
	if err != nil {
		return false
	}
	return airport.Country == country
}

// requireNormalized fails fast when the directory hands out a flight without
// precomputed instants, instead of silently producing wrong durations.
func requireNormalized(flights []domain.Flight) error {
	for i := range flights {
		if !flights[i].Normalized() {
			return domain.NewNotNormalizedError(flights[i].FlightNumber)
		}
	}
	return nil
}

// extendPath returns a new path with flight appended. The copy keeps sibling
// branches from ever sharing a backing array.
func extendPath(path []domain.Flight, flight domain.Flight) []domain.Flight {
	extended := make([]domain.Flight, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, flight)
}

// flightsTo filters flights by destination airport.
func flightsTo(flights []domain.Flight, destination string) []domain.Flight {
	result := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if f.Destination == destination {
			result = append(result, f)
		}
	}
	return result
}

// groupByDestination groups flights by destination airport, excluding the
// final destination (those are handled by the direct-continuation phase).
func groupByDestination(flights []domain.Flight, finalDestination string) map[string][]domain.Flight {
	groups := make(map[string][]domain.Flight)
	for _, f := range flights {
		if f.Destination == finalDestination {
			continue
		}
		groups[f.Destination] = append(groups[f.Destination], f)
	}
	return groups
}

// sortedKeys returns map keys in lexical order so traversal order, and with
// it the discovery order of equal-duration itineraries, is deterministic.
func sortedKeys(groups map[string][]domain.Flight) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ensure itinerarySearch implements ItinerarySearch at compile time.
var _ ItinerarySearch = (*itinerarySearch)(nil)
