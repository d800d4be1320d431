package http

import (
	"github.com/skypath/itinerary-search-service/internal/domain"
)

// SearchResponseDTO is the data transfer object for search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO  `json:"search_criteria"`
	Metadata       MetadataDTO        `json:"metadata"`
	Itineraries    []domain.Itinerary `json:"itineraries"`
}

// SearchCriteriaDTO echoes the validated search criteria in the response.
type SearchCriteriaDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	ResultCount  int   `json:"result_count"`
	SearchTimeMs int64 `json:"search_time_ms"`
}

// AirportsResponseDTO is the data transfer object for the airport listing.
type AirportsResponseDTO struct {
	Count    int              `json:"count"`
	Airports []domain.Airport `json:"airports"`
}
