package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlight_Normalized(t *testing.T) {
	dep := time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)
	arr := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		flight Flight
		want   bool
	}{
		{
			name:   "both instants populated",
			flight: Flight{DepartureInstant: dep, ArrivalInstant: arr},
			want:   true,
		},
		{
			name:   "no instants",
			flight: Flight{},
			want:   false,
		},
		{
			name:   "only departure instant",
			flight: Flight{DepartureInstant: dep},
			want:   false,
		},
		{
			name:   "only arrival instant",
			flight: Flight{ArrivalInstant: arr},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.flight.Normalized())
		})
	}
}

func TestFlight_Duration(t *testing.T) {
	f := Flight{
		DepartureInstant: time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
		ArrivalInstant:   time.Date(2024, 3, 15, 19, 15, 0, 0, time.UTC),
	}

	assert.Equal(t, 6*time.Hour+15*time.Minute, f.Duration())
	assert.Equal(t, int64(375), f.DurationMinutes())
}

// Duration must be computed on the instant axis, not from local clock times.
// NRT 17:00 → LAX 10:25 the same local day looks negative on the wall clock
// but is a normal eastbound Pacific crossing.
func TestFlight_DurationCrossingDateLine(t *testing.T) {
	f := Flight{
		FlightNumber:     "SP860",
		Origin:           "NRT",
		Destination:      "LAX",
		LocalDeparture:   time.Date(2024, 3, 15, 17, 0, 0, 0, time.UTC),
		LocalArrival:     time.Date(2024, 3, 15, 10, 25, 0, 0, time.UTC),
		DepartureInstant: time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),   // 17:00 JST
		ArrivalInstant:   time.Date(2024, 3, 15, 17, 25, 0, 0, time.UTC), // 10:25 PDT
	}

	assert.True(t, f.LocalArrival.Before(f.LocalDeparture), "fixture should look backwards on the wall clock")
	assert.Greater(t, f.DurationMinutes(), int64(0))
	assert.Equal(t, int64(565), f.DurationMinutes())
}
