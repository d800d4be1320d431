package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skypath/itinerary-search-service/internal/adapter/http/response"
	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search-service/internal/usecase"
)

// ItineraryHandler handles HTTP requests for itinerary-related endpoints.
type ItineraryHandler struct {
	useCase       usecase.ItinerarySearch
	directory     domain.Directory
	clock         timeutil.Clock
	searchTimeout time.Duration
}

// NewItineraryHandler creates a new ItineraryHandler.
// A non-positive searchTimeout disables the per-request deadline.
func NewItineraryHandler(uc usecase.ItinerarySearch, directory domain.Directory, clock timeutil.Clock, searchTimeout time.Duration) *ItineraryHandler {
	return &ItineraryHandler{
		useCase:       uc,
		directory:     directory,
		clock:         clock,
		searchTimeout: searchTimeout,
	}
}

// SearchItineraries handles GET /api/v1/itineraries/search
//
// @Summary Search for itineraries
// @Description Search for all legal itineraries between two airports on a date, sorted by total travel duration
// @Tags itineraries
// @Produce json
// @Param origin query string true "Origin IATA airport code" example(JFK)
// @Param destination query string true "Destination IATA airport code" example(LAX)
// @Param date query string true "Departure date (YYYY-MM-DD)" example(2024-03-15)
// @Param maxStops query int false "Maximum intermediate stops" example(1)
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Search timeout"
// @Router /api/v1/itineraries/search [get]
func (h *ItineraryHandler) SearchItineraries(c echo.Context) error {
	req := SearchItinerariesRequest{
		Origin:      c.QueryParam("origin"),
		Destination: c.QueryParam("destination"),
		Date:        c.QueryParam("date"),
		MaxStops:    c.QueryParam("maxStops"),
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	// Unknown airports are a client error, caught before the search runs.
	ctx := c.Request().Context()
	if errs := h.checkAirportsKnown(ctx, &req); errs != nil {
		return response.ValidationError(c, errs.ToMap())
	}

	if h.searchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.searchTimeout)
		defer cancel()
	}

	started := h.clock.Now()
	itineraries, err := h.useCase.Search(ctx, ToDomainQuery(&req), ToSearchOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}
	elapsed := h.clock.Now().Sub(started)

	return response.OK(c, ToSearchResponseDTO(&req, itineraries, elapsed.Milliseconds()))
}

// Airports handles GET /api/v1/airports
//
// @Summary List known airports
// @Description List all airports in the flight directory
// @Tags airports
// @Produce json
// @Success 200 {object} AirportsResponseDTO
// @Router /api/v1/airports [get]
func (h *ItineraryHandler) Airports(c echo.Context) error {
	airports, err := h.directory.AllAirports(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, &AirportsResponseDTO{
		Count:    len(airports),
		Airports: airports,
	})
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}

// checkAirportsKnown verifies both endpoints exist in the directory.
func (h *ItineraryHandler) checkAirportsKnown(ctx context.Context, req *SearchItinerariesRequest) *ValidationErrors {
	errs := &ValidationErrors{}

	if !h.directory.AirportExists(ctx, req.Origin) {
		errs.Add("origin", "unknown airport code: "+req.Origin)
	}
	if !h.directory.AirportExists(ctx, req.Destination) {
		errs.Add("destination", "unknown airport code: "+req.Destination)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrDirectoryUnavailable) {
		return response.ServiceUnavailable(c)
	}

	if domain.IsInvalidQuery(err) || domain.IsUnknownAirport(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}
