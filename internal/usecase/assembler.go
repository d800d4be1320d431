package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
)

// Assembler turns a validated chain of flights into the final itinerary
// record: display-ready segments, one layover per adjacent pair, and the
// end-to-end totals. Itineraries are constructed once and never mutated.
type Assembler struct {
	directory domain.Directory
	validator *ConnectionValidator
}

// NewAssembler creates an Assembler.
func NewAssembler(directory domain.Directory, validator *ConnectionValidator) *Assembler {
	return &Assembler{
		directory: directory,
		validator: validator,
	}
}

// Assemble builds an Itinerary from a non-empty path of flights. Segment
// records carry airport names and cities from the directory for display, not
// just codes. The total duration is computed end-to-end on the instant axis
// (first departure to last arrival), which for legal paths equals the sum of
// segment durations plus layovers.
func (a *Assembler) Assemble(ctx context.Context, path []domain.Flight) (domain.Itinerary, error) {
	if len(path) == 0 {
		return domain.Itinerary{}, fmt.Errorf("assemble: empty flight path")
	}

	segments := make([]domain.Segment, 0, len(path))
	layovers := make([]domain.Layover, 0, len(path)-1)
	var totalPrice float64

	for i := range path {
		flight := &path[i]
		if !flight.Normalized() {
			return domain.Itinerary{}, domain.NewNotNormalizedError(flight.FlightNumber)
		}

		origin, err := a.directory.Airport(ctx, flight.Origin)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("assemble flight %s: %w", flight.FlightNumber, err)
		}

		destination, err := a.directory.Airport(ctx, flight.Destination)
		if err != nil {
			return domain.Itinerary{}, fmt.Errorf("assemble flight %s: %w", flight.FlightNumber, err)
		}

		segments = append(segments, domain.Segment{
			FlightNumber:    flight.FlightNumber,
			Airline:         flight.Airline,
			OriginCode:      origin.Code,
			OriginName:      origin.Name,
			OriginCity:      origin.City,
			DestinationCode: destination.Code,
			DestinationName: destination.Name,
			DestinationCity: destination.City,
			DepartureTime:   timeutil.FormatDateTime(flight.LocalDeparture),
			ArrivalTime:     timeutil.FormatDateTime(flight.LocalArrival),
			DurationMinutes: flight.DurationMinutes(),
			Aircraft:        flight.Aircraft,
		})

		totalPrice += flight.Price

		// Layover entry for every adjacent pair; the connection airport is
		// the arriving flight's destination.
		if i < len(path)-1 {
			next := &path[i+1]
			layoverType := domain.LayoverInternational
			if a.validator.IsDomesticConnection(ctx, flight, next) {
				layoverType = domain.LayoverDomestic
			}

			layovers = append(layovers, domain.Layover{
				AirportCode:     destination.Code,
				AirportName:     destination.Name,
				AirportCity:     destination.City,
				DurationMinutes: a.validator.LayoverMinutes(flight, next),
				Type:            layoverType,
			})
		}
	}

	first := &path[0]
	last := &path[len(path)-1]
	totalMinutes := int64(last.ArrivalInstant.Sub(first.DepartureInstant).Minutes())

	return domain.Itinerary{
		ID:                   uuid.New().String(),
		Segments:             segments,
		Layovers:             layovers,
		Stops:                len(path) - 1,
		TotalDurationMinutes: totalMinutes,
		TotalDuration:        domain.FormatMinutes(totalMinutes),
		TotalPrice:           roundPrice(totalPrice),
	}, nil
}

// roundPrice rounds to 2 decimal places using standard half-away-from-zero
// rounding, not truncation.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
