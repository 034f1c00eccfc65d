package services

import (
	"eta-projector/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDepartureRoundTrips(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		ny = time.FixedZone("EST", -5*3600)
	}

	arrivals := []time.Time{
		time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 8, 3, 30, 0, 0, ny),
		time.Date(2026, 12, 31, 23, 59, 59, 999, time.Local),
	}

	for _, arrival := range arrivals {
		for _, m := range []int{0, 1, 25, 165, 24 * 60} {
			departure := ComputeDeparture(arrival, m)
			if !departure.Add(time.Duration(m) * time.Minute).Equal(arrival) {
				t.Fatalf("departure %v + %d min != %v", departure, m, arrival)
			}
			if departure.Location() != arrival.Location() {
				t.Fatalf("location changed: %v -> %v", arrival.Location(), departure.Location())
			}
		}
	}
}

func TestParseDisplayMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"42 mins", 42},
		{"1 min", 1},
		{"165 mins", 165},
		// Hour-bearing strings read only the first token.
		{"1 hour 5 mins", 1},
	}

	for _, tt := range tests {
		got, err := ParseDisplayMinutes(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "   ", "about 5 mins", "1,5 Std."} {
		_, err := ParseDisplayMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestTrafficMinutes(t *testing.T) {
	info := domain.RouteInfo{DurationInTraffic: "1 hour 5 mins", DurationInTrafficSeconds: 3900}

	got, err := TrafficMinutes(info, DurationFromSeconds)
	require.NoError(t, err)
	assert.Equal(t, 65, got)

	got, err = TrafficMinutes(info, DurationFromDisplay)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	_, err = TrafficMinutes(info, DurationSource("bogus"))
	assert.Error(t, err)
}

func TestMinutesFromSeconds(t *testing.T) {
	assert.Equal(t, 165, MinutesFromSeconds(9900))
	assert.Equal(t, 1, MinutesFromSeconds(89))
	assert.Equal(t, 2, MinutesFromSeconds(90))
	assert.Equal(t, 0, MinutesFromSeconds(0))
}

func TestParseDurationSource(t *testing.T) {
	src, err := ParseDurationSource("")
	require.NoError(t, err)
	assert.Equal(t, DurationFromSeconds, src)

	src, err = ParseDurationSource(" Display ")
	require.NoError(t, err)
	assert.Equal(t, DurationFromDisplay, src)

	_, err = ParseDurationSource("hours")
	assert.Error(t, err)
}
