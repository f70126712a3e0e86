package crew

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaborHours(t *testing.T) {
	assert.Equal(t, 6.0, LaborHours(2, 3))
	assert.Equal(t, 2.0, LaborHours(2, 1))
}

func TestLaborHours_ClampsCrew(t *testing.T) {
	assert.Equal(t, 2.0, LaborHours(2, 0))
	assert.Equal(t, 2.0, LaborHours(2, -4))
}

func TestResolve_PreservesLaborHours(t *testing.T) {
	// 4h solo job, second worker joins: 2h.
	assert.Equal(t, 2.0, Resolve(4, 1, 2))

	// 2h with two workers, down to one: 4h.
	assert.Equal(t, 4.0, Resolve(2, 2, 1))
}

func TestResolve_RoundsToHalfHour(t *testing.T) {
	// 2h x 2 = 4 labor-hours over 3 workers = 1.33h -> 1.5h.
	assert.Equal(t, 1.5, Resolve(2, 2, 3))
}

func TestResolve_FloorsAtHalfHour(t *testing.T) {
	assert.Equal(t, MinDurationHours, Resolve(0.5, 1, 6))
}

func TestResolve_ClampsInvalidCrewSizes(t *testing.T) {
	// Crew of zero behaves as one worker on both sides.
	assert.Equal(t, Resolve(3, 1, 1), Resolve(3, 0, 0))
	assert.Equal(t, Resolve(3, 1, 2), Resolve(3, -1, 2))
}

func TestResolve_RoundTripWithinHalfHour(t *testing.T) {
	// Durations below 1h can hit the MinDurationHours floor on the way
	// out, which loses more than rounding on the way back.
	durations := []float64{1, 1.5, 2, 3, 4.5, 8}
	for _, d := range durations {
		for n := 1; n <= 3; n++ {
			for m := 1; m <= 3; m++ {
				there := Resolve(d, n, m)
				back := Resolve(there, m, n)
				assert.LessOrEqual(t, math.Abs(back-d), 0.5,
					"round trip %vh crew %d->%d->%d drifted to %vh", d, n, m, n, back)
			}
		}
	}
}
