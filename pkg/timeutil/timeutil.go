// Package timeutil holds the small calendar helpers shared by the
// conflict, cascade, and layout packages.
package timeutil

import (
	"math"
	"time"
)

// SameDay reports whether a and b fall on the same calendar day.
// b is evaluated in a's location so a snapshot mixing locations still
// compares against one calendar.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight returns the start of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MinutesFromMidnight returns how many whole minutes into its calendar
// day t is.
func MinutesFromMidnight(t time.Time) int {
	return int(t.Sub(Midnight(t)) / time.Minute)
}

// MinutesBetween returns the whole minutes from a to b, negative when b
// is earlier.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// RoundToHalf rounds fractional hours to the nearest half hour.
// Exact quarters round away from zero, so 1.25 becomes 1.5.
func RoundToHalf(hours float64) float64 {
	return math.Round(hours*2) / 2
}
