package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "UTC", timezone: UTC, wantErr: false},
		{name: "US Eastern", timezone: EasternUS, wantErr: false},
		{name: "US Central", timezone: CentralUS, wantErr: false},
		{name: "US Pacific", timezone: PacificUS, wantErr: false},
		{name: "London", timezone: London, wantErr: false},
		{name: "Paris", timezone: Paris, wantErr: false},
		{name: "Tokyo", timezone: Tokyo, wantErr: false},
		{name: "Singapore", timezone: Singapore, wantErr: false},
		{name: "invalid timezone", timezone: "Not/AZone", wantErr: true},
		{name: "empty string is UTC", timezone: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := GetLocation(tt.timezone)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to load timezone")
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, loc)
		})
	}
}

func TestGetLocation_Caching(t *testing.T) {
	ClearLocationCache()

	first, err := GetLocation(Tokyo)
	require.NoError(t, err)

	second, err := GetLocation(Tokyo)
	require.NoError(t, err)

	// The cached lookup must return the identical location instance.
	assert.Same(t, first, second)
}

func TestMustGetLocation(t *testing.T) {
	t.Run("known timezone", func(t *testing.T) {
		loc := MustGetLocation(EasternUS)
		assert.Equal(t, EasternUS, loc.String())
	})

	t.Run("panics on unknown timezone", func(t *testing.T) {
		assert.Panics(t, func() {
			MustGetLocation("Not/AZone")
		})
	})
}

func TestInTimezone(t *testing.T) {
	// 2024-03-15 16:00 UTC is noon in New York (EDT) and 01:00 next day in Tokyo.
	instant := time.Date(2024, 3, 15, 16, 0, 0, 0, time.UTC)

	t.Run("converts to New York", func(t *testing.T) {
		got, err := InTimezone(instant, EasternUS)
		require.NoError(t, err)

		assert.Equal(t, 12, got.Hour())
		assert.Equal(t, 15, got.Day())
		assert.True(t, got.Equal(instant))
	})

	t.Run("converts to Tokyo across the date line", func(t *testing.T) {
		got, err := InTimezone(instant, Tokyo)
		require.NoError(t, err)

		assert.Equal(t, 1, got.Hour())
		assert.Equal(t, 16, got.Day())
		assert.True(t, got.Equal(instant))
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := InTimezone(instant, "Not/AZone")
		assert.Error(t, err)
	})
}

func TestParseInTimezone(t *testing.T) {
	t.Run("parses wall clock in location", func(t *testing.T) {
		got, err := ParseInTimezone("2006-01-02T15:04:05", "2024-03-15T08:00:00", EasternUS)
		require.NoError(t, err)

		// 08:00 EDT is 12:00 UTC.
		assert.Equal(t, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), got.UTC())
	})

	t.Run("unknown timezone", func(t *testing.T) {
		_, err := ParseInTimezone("2006-01-02T15:04:05", "2024-03-15T08:00:00", "Not/AZone")
		assert.Error(t, err)
	})

	t.Run("malformed value", func(t *testing.T) {
		_, err := ParseInTimezone("2006-01-02T15:04:05", "not-a-time", UTC)
		assert.Error(t, err)
	})
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-15", FormatDate(ts))
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 8, 5, 9, 0, time.UTC)
	assert.Equal(t, "2024-03-15T08:05:09", FormatDateTime(ts))
}

func TestStartOfDay(t *testing.T) {
	loc := MustGetLocation(Tokyo)
	ts := time.Date(2024, 3, 15, 18, 30, 45, 123, loc)

	got := StartOfDay(ts)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestEndOfDay(t *testing.T) {
	ts := time.Date(2024, 3, 15, 6, 0, 0, 0, time.UTC)

	got := EndOfDay(ts)

	assert.Equal(t, time.Date(2024, 3, 15, 23, 59, 59, 999999999, time.UTC), got)
}

func TestSameLocalDate(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want bool
	}{
		{
			name: "same date different hours",
			a:    time.Date(2024, 3, 15, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "consecutive days",
			a:    time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 16, 0, 1, 0, 0, time.UTC),
			want: false,
		},
		{
			name: "same wall date in different zones",
			a:    time.Date(2024, 3, 15, 9, 0, 0, 0, MustGetLocation(Tokyo)),
			b:    time.Date(2024, 3, 15, 9, 0, 0, 0, MustGetLocation(EasternUS)),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameLocalDate(tt.a, tt.b))
		})
	}
}
