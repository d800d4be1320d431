package http

import (
	"strconv"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/usecase"
)

// ToDomainQuery converts a validated SearchItinerariesRequest to a
// domain.SearchQuery. Call Validate first; the date is assumed parseable.
func ToDomainQuery(req *SearchItinerariesRequest) domain.SearchQuery {
	date, _ := time.Parse(domain.DateLayout, req.Date)

	return domain.SearchQuery{
		Origin:      req.Origin,
		Destination: req.Destination,
		Date:        date,
	}
}

// ToSearchOptions converts request fields to usecase.SearchOptions.
func ToSearchOptions(req *SearchItinerariesRequest) usecase.SearchOptions {
	opts := usecase.DefaultSearchOptions()

	if req.MaxStops != "" {
		if stops, err := strconv.Atoi(req.MaxStops); err == nil && stops >= 0 {
			opts.MaxStops = &stops
		}
	}

	return opts
}

// ToSearchResponseDTO wraps search results in the response envelope.
func ToSearchResponseDTO(req *SearchItinerariesRequest, itineraries []domain.Itinerary, searchTimeMs int64) *SearchResponseDTO {
	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:      req.Origin,
			Destination: req.Destination,
			Date:        req.Date,
		},
		Metadata: MetadataDTO{
			ResultCount:  len(itineraries),
			SearchTimeMs: searchTimeMs,
		},
		Itineraries: itineraries,
	}
}
