// Package crew recomputes job durations when crew size changes,
// treating labor-hours (duration times crew size) as conserved.
package crew

import (
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// MinDurationHours is the shortest duration Resolve will produce.
const MinDurationHours = 0.5

// LaborHours returns duration times crew size, the quantity preserved
// across crew changes. Crew sizes below 1 are clamped to 1.
func LaborHours(durationHours float64, crewSize int) float64 {
	return durationHours * float64(clamp(crewSize))
}

// Resolve returns the duration a job should take after its crew changes
// from originalCrew to newCrew workers, preserving labor-hours. The
// result is rounded to the nearest half hour and never drops below
// MinDurationHours.
func Resolve(originalDurationHours float64, originalCrew, newCrew int) float64 {
	labor := LaborHours(originalDurationHours, originalCrew)
	resolved := timeutil.RoundToHalf(labor / float64(clamp(newCrew)))
	if resolved < MinDurationHours {
		return MinDurationHours
	}
	return resolved
}

// Crew sizes of zero or below are treated as a single worker rather
// than rejected. Whether invalid sizes should instead be an error is an
// open question; callers wanting strictness must validate first.
func clamp(crewSize int) int {
	if crewSize < 1 {
		return 1
	}
	return crewSize
}
