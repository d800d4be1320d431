// Package integration provides helpers and integration tests for the
// itinerary search system. Integration tests verify that components work
// together correctly: the HTTP handler, the search use case, and the
// in-memory flight directory built from a real dataset file.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/skypath/itinerary-search-service/internal/adapter/directory/memory"
	httpAdapter "github.com/skypath/itinerary-search-service/internal/adapter/http"
	"github.com/skypath/itinerary-search-service/internal/adapter/http/response"
	"github.com/skypath/itinerary-search-service/internal/domain"
	"github.com/skypath/itinerary-search-service/internal/infrastructure/timeutil"
	"github.com/skypath/itinerary-search-service/internal/usecase"
	"github.com/skypath/itinerary-search-service/test/testutil"
)

// SearchDate is the departure date every dataset flight is anchored to.
const SearchDate = "2024-03-15"

// LoadDirectory builds a frozen in-memory directory from the shared
// test dataset.
func LoadDirectory(t *testing.T) *memory.Directory {
	t.Helper()

	dir, err := memory.Load(testutil.TestDataPath(t, "flights.json"), zerolog.Nop())
	if err != nil {
		t.Fatalf("Failed to load test dataset: %v", err)
	}
	return dir
}

// CreateSearch creates an itinerary search use case over the given directory
// with default configuration.
func CreateSearch(directory domain.Directory) usecase.ItinerarySearch {
	return usecase.NewItinerarySearch(directory, nil, zerolog.Nop())
}

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a test server over the given directory.
// A non-positive timeout disables the per-request search deadline.
func NewTestServer(directory domain.Directory, searchTimeout time.Duration) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(
		CreateSearch(directory),
		directory,
		timeutil.NewRealClock(),
		searchTimeout,
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the test server.
func (ts *TestServer) Get(path string, query url.Values) Response {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest executes an itinerary search with the given parameters.
// An empty maxStops leaves the route-derived ceiling in effect.
func (ts *TestServer) SearchRequest(origin, destination, date, maxStops string) Response {
	query := url.Values{}
	query.Set("origin", origin)
	query.Set("destination", destination)
	query.Set("date", date)
	if maxStops != "" {
		query.Set("maxStops", maxStops)
	}
	return ts.Get("/api/v1/itineraries/search", query)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health", nil)
}

// ParseSearchResponse parses a successful response body into the search DTO.
func (r *Response) ParseSearchResponse(t *testing.T) *httpAdapter.SearchResponseDTO {
	t.Helper()

	var dto httpAdapter.SearchResponseDTO
	if err := json.Unmarshal(r.Body, &dto); err != nil {
		t.Fatalf("Failed to parse search response: %v", err)
	}
	return &dto
}

// ParseError parses a failure response body and returns the error detail.
func (r *Response) ParseError(t *testing.T) *response.ErrorDetail {
	t.Helper()

	var detail response.ErrorDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		t.Fatalf("Failed to parse error response: %v", err)
	}
	if detail.Code == "" {
		t.Fatalf("Expected error detail, got: %s", string(r.Body))
	}
	return &detail
}

// FlightNumbers flattens an itinerary into its segment flight numbers.
func FlightNumbers(it domain.Itinerary) []string {
	numbers := make([]string, 0, len(it.Segments))
	for _, s := range it.Segments {
		numbers = append(numbers, s.FlightNumber)
	}
	return numbers
}
