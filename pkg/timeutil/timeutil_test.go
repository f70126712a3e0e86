package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)
	night := time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}

func TestSameDay_CrossLocation(t *testing.T) {
	// 23:00 UTC on Mar 9 is Mar 10 in UTC+2, but comparison happens in
	// the first argument's location.
	utc := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
	plus2 := utc.In(time.FixedZone("EET", 2*3600))

	assert.True(t, SameDay(utc, plus2))
}

func TestMidnight(t *testing.T) {
	ts := time.Date(2026, 3, 9, 15, 42, 7, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Midnight(ts))
}

func TestMinutesFromMidnight(t *testing.T) {
	ts := time.Date(2026, 3, 9, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, 570, MinutesFromMidnight(ts))
}

func TestMinutesBetween(t *testing.T) {
	a := time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 13, 0, 0, 0, time.UTC)

	assert.Equal(t, 120, MinutesBetween(a, b))
	assert.Equal(t, -120, MinutesBetween(b, a))
}

func TestRoundToHalf(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.0, 1.0},
		{1.2, 1.0},
		{1.25, 1.5},
		{1.3, 1.5},
		{1.74, 1.5},
		{1.75, 2.0},
		{0.1, 0.0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoundToHalf(tt.in), "RoundToHalf(%v)", tt.in)
	}
}
