package schedule

import (
	"fmt"
	"time"

	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// RecurringVisit is a standing appointment that is not stored as
// individual jobs. Materialize projects its occurrences onto a day so
// they appear in snapshots and layouts next to one-off jobs.
type RecurringVisit struct {
	Slug          string
	ClientLabel   string
	DurationHours float64
	Team          []string
	Schedule      Schedule
}

// Materialize returns one placeholder job per occurrence of the visit
// on day's calendar day. IDs are deterministic ("recurring/<slug>/<RFC3339>")
// so repeated materializations of the same day agree; the jobs are
// never persisted.
func (v RecurringVisit) Materialize(day time.Time) []core.Job {
	if v.Schedule == nil {
		return nil
	}

	var jobs []core.Job
	cursor := timeutil.Midnight(day).Add(-time.Minute)
	for {
		next := v.Schedule.Next(cursor)
		if !next.After(cursor) {
			// Non-advancing schedule, e.g. Every(0). Bail rather than loop.
			return jobs
		}
		cursor = next
		if !timeutil.SameDay(day, next) {
			if next.After(day) {
				return jobs
			}
			continue
		}
		start := next
		jobs = append(jobs, core.Job{
			ID:            fmt.Sprintf("recurring/%s/%s", v.Slug, start.Format(time.RFC3339)),
			ClientLabel:   v.ClientLabel,
			Start:         &start,
			DurationHours: v.DurationHours,
			Team:          v.Team,
		})
	}
}

// MaterializeAll projects every visit onto the given day.
func MaterializeAll(visits []RecurringVisit, day time.Time) []core.Job {
	var jobs []core.Job
	for _, v := range visits {
		jobs = append(jobs, v.Materialize(day)...)
	}
	return jobs
}
