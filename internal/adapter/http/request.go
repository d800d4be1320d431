// Package http provides the HTTP handler layer for the itinerary search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// SearchItinerariesRequest represents the query parameters for itinerary search.
type SearchItinerariesRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `query:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "LAX")
	Destination string `query:"destination"`

	// Date is the desired departure date in YYYY-MM-DD format
	Date string `query:"date"`

	// MaxStops optionally caps the number of intermediate stops. When
	// empty, the route classification decides the ceiling.
	MaxStops string `query:"maxStops"`
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationErrors holds multiple field-level validation errors.
type ValidationErrors struct {
	Errors []domain.ValidationError
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, *domain.NewValidationError(field, message))
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate validates the search request and returns any validation errors.
// Airport codes are normalized to uppercase in place.
func (r *SearchItinerariesRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validateOrigin(errs)
	r.validateDestination(errs)
	r.validateOriginDestinationDifferent(errs)
	r.validateDate(errs)
	r.validateMaxStops(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchItinerariesRequest) validateOrigin(errs *ValidationErrors) {
	if r.Origin == "" {
		errs.Add("origin", "origin is required")
		return
	}

	origin := strings.ToUpper(r.Origin)
	if !domain.ValidAirportCode(origin) {
		errs.Add("origin", "origin must be a valid 3-letter IATA airport code")
		return
	}
	r.Origin = origin
}

func (r *SearchItinerariesRequest) validateDestination(errs *ValidationErrors) {
	if r.Destination == "" {
		errs.Add("destination", "destination is required")
		return
	}

	dest := strings.ToUpper(r.Destination)
	if !domain.ValidAirportCode(dest) {
		errs.Add("destination", "destination must be a valid 3-letter IATA airport code")
		return
	}
	r.Destination = dest
}

func (r *SearchItinerariesRequest) validateOriginDestinationDifferent(errs *ValidationErrors) {
	if r.Origin != "" && r.Destination != "" &&
		strings.EqualFold(r.Origin, r.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}
}

func (r *SearchItinerariesRequest) validateDate(errs *ValidationErrors) {
	if r.Date == "" {
		errs.Add("date", "date is required")
		return
	}

	if !datePattern.MatchString(r.Date) {
		errs.Add("date", "date must be in YYYY-MM-DD format")
		return
	}

	if _, err := time.Parse(domain.DateLayout, r.Date); err != nil {
		errs.Add("date", "date is not a valid calendar date")
	}
}

func (r *SearchItinerariesRequest) validateMaxStops(errs *ValidationErrors) {
	if r.MaxStops == "" {
		return
	}

	stops, err := strconv.Atoi(r.MaxStops)
	if err != nil || stops < 0 {
		errs.Add("maxStops", "maxStops must be a non-negative number")
	}
}
