// Package conflict finds and classifies double-bookings for a proposed
// job placement.
//
// Detection is advisory: the result is the full list of overlaps, never
// a verdict. Blocking, overriding, or re-proposing is the caller's
// decision.
package conflict

import (
	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// Detect compares a candidate placement against a snapshot of sibling
// jobs and returns one Conflict per overlapping sibling on the same
// calendar day. The job being moved (placement.JobID) and unscheduled
// siblings are skipped. Intervals are half-open, so a job ending at
// 11:00 never conflicts with one starting at 11:00.
//
// An overlap counts as TeamOverlap when the proposed team shares at
// least one worker with the sibling, otherwise TimeOverlap.
func Detect(placement core.CandidatePlacement, siblings []core.Job) ([]core.Conflict, error) {
	if err := placement.Validate(); err != nil {
		return nil, err
	}

	end := placement.End()
	var conflicts []core.Conflict
	for _, sib := range siblings {
		if sib.ID == placement.JobID || !sib.Scheduled() {
			continue
		}
		if !timeutil.SameDay(placement.Start, *sib.Start) {
			continue
		}
		if !placement.Start.Before(sib.End()) || !sib.Start.Before(end) {
			continue
		}
		kind := core.TimeOverlap
		if sharesWorker(placement.Team, sib.Team) {
			kind = core.TeamOverlap
		}
		conflicts = append(conflicts, core.Conflict{
			OtherJobID:  sib.ID,
			ClientLabel: sib.ClientLabel,
			Kind:        kind,
		})
	}
	return conflicts, nil
}

// sharesWorker reports whether the two teams have a worker in common.
// Names match exactly; order is irrelevant.
func sharesWorker(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	names := make(map[string]struct{}, len(a))
	for _, w := range a {
		names[w] = struct{}{}
	}
	for _, w := range b {
		if _, ok := names[w]; ok {
			return true
		}
	}
	return false
}
