package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/skypath/itinerary-search-service/internal/domain"
)

// searchFixture builds the flight network shared by the search tests. All
// flights depart on or around 2024-03-15.
func searchFixture(t *testing.T) *fixtureDirectory {
	t.Helper()

	return newFixtureDirectory(
		// Domestic network.
		newTestFlight(t, "AA100", "JFK", "LAX", "2024-03-15T08:00:00", "2024-03-15T11:30:00", 350),
		newTestFlight(t, "UA200", "JFK", "ORD", "2024-03-15T07:00:00", "2024-03-15T08:45:00", 180),
		newTestFlight(t, "UA201", "ORD", "LAX", "2024-03-15T10:30:00", "2024-03-15T12:45:00", 210),
		// 30 minute layover after UA200, below the domestic minimum.
		newTestFlight(t, "UA202", "ORD", "LAX", "2024-03-15T09:15:00", "2024-03-15T11:30:00", 195),
		// Returns to the origin; the traversal must never route through it.
		newTestFlight(t, "UA999", "ORD", "JFK", "2024-03-15T10:00:00", "2024-03-15T13:00:00", 150),
		newTestFlight(t, "UA300", "ORD", "SFO", "2024-03-15T10:45:00", "2024-03-15T13:15:00", 230),

		// Transatlantic; a foreign intermediate for domestic searches.
		newTestFlight(t, "BA300", "JFK", "LHR", "2024-03-15T19:00:00", "2024-03-16T07:00:00", 620),
		newTestFlight(t, "BA301", "LHR", "LAX", "2024-03-16T10:00:00", "2024-03-16T13:30:00", 580),

		// Transpacific network.
		newTestFlight(t, "JL005", "JFK", "NRT", "2024-03-15T11:00:00", "2024-03-16T14:25:00", 1200),
		newTestFlight(t, "NH9", "LAX", "NRT", "2024-03-15T13:30:00", "2024-03-16T17:30:00", 900),
		// 8.5 hour layover after AA100, above the maximum.
		newTestFlight(t, "NH10", "LAX", "NRT", "2024-03-15T20:00:00", "2024-03-17T00:05:00", 880),
		newTestFlight(t, "NH7", "SFO", "NRT", "2024-03-15T15:00:00", "2024-03-16T19:10:00", 950),
	)
}

func newTestSearch(dir domain.Directory) ItinerarySearch {
	return NewItinerarySearch(dir, nil, zerolog.Nop())
}

func searchDate() time.Time {
	return time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
}

// flightNumbers flattens an itinerary to its flight number sequence.
func flightNumbers(itinerary domain.Itinerary) []string {
	numbers := make([]string, 0, len(itinerary.Segments))
	for _, s := range itinerary.Segments {
		numbers = append(numbers, s.FlightNumber)
	}
	return numbers
}

func TestSearch_DomesticRoute(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Sorted ascending by total duration: direct first.
	assert.Equal(t, []string{"AA100"}, flightNumbers(results[0]))
	assert.Equal(t, 0, results[0].Stops)
	assert.EqualValues(t, 390, results[0].TotalDurationMinutes)

	assert.Equal(t, []string{"UA200", "UA201"}, flightNumbers(results[1]))
	assert.Equal(t, 1, results[1].Stops)
	assert.EqualValues(t, 525, results[1].TotalDurationMinutes)
}

func TestSearch_DomesticPrunesForeignIntermediates(t *testing.T) {
	// BA300 to LHR and BA301 onward to LAX form a time-legal path, but a
	// domestic search never routes through a foreign airport.
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)

	for _, itinerary := range results {
		for _, segment := range itinerary.Segments {
			assert.NotEqual(t, "LHR", segment.OriginCode)
			assert.NotEqual(t, "LHR", segment.DestinationCode)
		}
	}
}

func TestSearch_RejectsShortLayover(t *testing.T) {
	// UA202 departs 30 minutes after UA200 lands; below the domestic minimum.
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)

	for _, itinerary := range results {
		assert.NotContains(t, flightNumbers(itinerary), "UA202")
	}
}

func TestSearch_InternationalRoute(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"JL005"}, flightNumbers(results[0]))
	assert.Equal(t, 0, results[0].Stops)
	assert.EqualValues(t, 865, results[0].TotalDurationMinutes)

	assert.Equal(t, []string{"AA100", "NH9"}, flightNumbers(results[1]))
	assert.Equal(t, 1, results[1].Stops)
	assert.EqualValues(t, 1230, results[1].TotalDurationMinutes)

	// Two stops: domestic hops to the West Coast, then transpacific.
	assert.Equal(t, []string{"UA200", "UA300", "NH7"}, flightNumbers(results[2]))
	assert.Equal(t, 2, results[2].Stops)
	assert.EqualValues(t, 1390, results[2].TotalDurationMinutes)

	// Mixed layover classification along the two-stop path.
	require.Len(t, results[2].Layovers, 2)
	assert.Equal(t, domain.LayoverDomestic, results[2].Layovers[0].Type)
	assert.Equal(t, domain.LayoverInternational, results[2].Layovers[1].Type)
}

func TestSearch_RejectsLongLayover(t *testing.T) {
	// NH10 departs 8.5 hours after AA100 lands; above the maximum layover.
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)

	for _, itinerary := range results {
		assert.NotContains(t, flightNumbers(itinerary), "NH10")
	}
}

func TestSearch_CycleFree(t *testing.T) {
	// UA999 flies back to the origin; no itinerary may touch an airport twice.
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for _, itinerary := range results {
		seen := map[string]struct{}{itinerary.Segments[0].OriginCode: {}}
		for _, segment := range itinerary.Segments {
			_, dup := seen[segment.DestinationCode]
			assert.False(t, dup, "airport %s visited twice", segment.DestinationCode)
			seen[segment.DestinationCode] = struct{}{}
		}
	}
}

func TestSearch_EmptyResultIsNotAnError(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "LAX", Destination: "JFK", Date: searchDate()}

	results, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearch_Idempotent(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	first, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)
	second, err := search.Search(context.Background(), query, DefaultSearchOptions())
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, flightNumbers(first[i]), flightNumbers(second[i]))
		assert.Equal(t, first[i].TotalDurationMinutes, second[i].TotalDurationMinutes)
	}
}

func TestSearch_MaxStopsOverride(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	directOnly := 0
	results, err := search.Search(context.Background(), query, SearchOptions{MaxStops: &directOnly})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, []string{"JL005"}, flightNumbers(results[0]))
}

func TestSearch_MaxStopsCannotExceedRouteCeiling(t *testing.T) {
	// A chain of three legal domestic legs is the only path JFK->LAX.
	// Domestic routes allow one stop, so even an explicit maxStops of 2
	// must not surface the two-stop itinerary.
	dir := newFixtureDirectory(
		newTestFlight(t, "TA10", "JFK", "ORD", "2024-03-15T08:00:00", "2024-03-15T09:30:00", 150.00),
		newTestFlight(t, "TA20", "ORD", "SFO", "2024-03-15T10:30:00", "2024-03-15T12:30:00", 180.00),
		newTestFlight(t, "TA30", "SFO", "LAX", "2024-03-15T13:30:00", "2024-03-15T14:45:00", 90.00),
	)
	search := newTestSearch(dir)
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	twoStops := 2
	results, err := search.Search(context.Background(), query, SearchOptions{MaxStops: &twoStops})
	require.NoError(t, err)

	assert.Empty(t, results)
}

func TestSearch_RejectsInvalidQuery(t *testing.T) {
	search := newTestSearch(searchFixture(t))

	cases := []struct {
		name  string
		query domain.SearchQuery
	}{
		{"missing origin", domain.SearchQuery{Destination: "LAX", Date: searchDate()}},
		{"lowercase code", domain.SearchQuery{Origin: "jfk", Destination: "LAX", Date: searchDate()}},
		{"same endpoints", domain.SearchQuery{Origin: "JFK", Destination: "JFK", Date: searchDate()}},
		{"zero date", domain.SearchQuery{Origin: "JFK", Destination: "LAX"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := search.Search(context.Background(), tc.query, DefaultSearchOptions())
			assert.ErrorIs(t, err, domain.ErrInvalidQuery)
		})
	}
}

func TestSearch_ContextCancelled(t *testing.T) {
	search := newTestSearch(searchFixture(t))
	query := domain.SearchQuery{Origin: "JFK", Destination: "NRT", Date: searchDate()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := search.Search(ctx, query, DefaultSearchOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_DirectoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := domain.NewMockDirectory(ctrl)

	backendErr := errors.New("backend unavailable")
	dir.EXPECT().Airport(gomock.Any(), gomock.Any()).Return(domain.Airport{}, backendErr).AnyTimes()
	dir.EXPECT().FlightsDeparting(gomock.Any(), "JFK", gomock.Any(), gomock.Any()).Return(nil, backendErr)

	search := newTestSearch(dir)
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	_, err := search.Search(context.Background(), query, DefaultSearchOptions())
	assert.ErrorIs(t, err, backendErr)
}

func TestSearch_RejectsUnnormalizedFlights(t *testing.T) {
	raw := domain.Flight{
		FlightNumber:   "XX100",
		Origin:         "JFK",
		Destination:    "LAX",
		LocalDeparture: time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC),
		LocalArrival:   time.Date(2024, time.March, 15, 11, 30, 0, 0, time.UTC),
	}
	search := newTestSearch(newFixtureDirectory(raw))
	query := domain.SearchQuery{Origin: "JFK", Destination: "LAX", Date: searchDate()}

	_, err := search.Search(context.Background(), query, DefaultSearchOptions())
	assert.True(t, domain.IsFlightNotNormalized(err))
}
