// Package cascade plans how one job's schedule change ripples through
// the rest of its day.
//
// The model treats a day's crew as a single-file queue: stretching or
// delaying one visit pushes every visit originally queued after it on
// that day forward by the same amount. A day is an isolated unit;
// overruns never cross midnight. Plans are advisory and are applied,
// if at all, by the caller through a core.Storage.
package cascade

import (
	"fmt"
	"sort"
	"time"

	"github.com/crewdeck/crewdeck/pkg/conflict"
	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// Plan computes the full cascade for moving job to the accepted
// placement, given a snapshot of its sibling jobs.
//
// Downstream candidates are siblings on the job's original calendar day
// whose start is at or after the job's original end. When the move
// finishes no later than before (deltaMinutes <= 0) there are no
// downstream changes; only forward overruns cascade. Each downstream
// job keeps its duration and shifts forward by exactly deltaMinutes.
//
// Conflicts are detected at the primary job's new placement only.
// Downstream candidates are excluded from that check: they shift to
// start+delta, which is at or past the primary's new end, so they can
// never collide with it once the plan is applied. Downstream shifts
// preserve relative spacing by construction and are not re-checked
// either.
func Plan(job core.Job, placement core.CandidatePlacement, siblings []core.Job) (core.CascadeResult, error) {
	if err := placement.Validate(); err != nil {
		return core.CascadeResult{}, err
	}
	if !job.Scheduled() {
		return core.CascadeResult{}, core.ErrUnscheduledJob
	}

	originalEnd := job.End()
	delta := timeutil.MinutesBetween(originalEnd, placement.End())

	primary := core.CascadeChange{
		JobID:                 job.ID,
		ClientLabel:           job.ClientLabel,
		OriginalStart:         *job.Start,
		NewStart:              placement.Start,
		OriginalDurationHours: job.EffectiveDurationHours(),
		NewDurationHours:      placement.DurationHours,
		DeltaMinutes:          delta,
	}

	var downstream []core.CascadeChange
	if delta > 0 {
		shift := time.Duration(delta) * time.Minute
		reason := fmt.Sprintf("shifted due to %s's schedule change", job.ClientLabel)
		for _, sib := range siblings {
			if sib.ID == job.ID || !sib.Scheduled() {
				continue
			}
			if !timeutil.SameDay(*job.Start, *sib.Start) {
				continue
			}
			if sib.Start.Before(originalEnd) {
				continue
			}
			dur := sib.EffectiveDurationHours()
			downstream = append(downstream, core.CascadeChange{
				JobID:                 sib.ID,
				ClientLabel:           sib.ClientLabel,
				OriginalStart:         *sib.Start,
				NewStart:              sib.Start.Add(shift),
				OriginalDurationHours: dur,
				NewDurationHours:      dur,
				DeltaMinutes:          delta,
				Reason:                reason,
			})
		}
		sort.Slice(downstream, func(i, j int) bool {
			if !downstream[i].OriginalStart.Equal(downstream[j].OriginalStart) {
				return downstream[i].OriginalStart.Before(downstream[j].OriginalStart)
			}
			return downstream[i].JobID < downstream[j].JobID
		})
	}

	shifted := make(map[string]struct{}, len(downstream))
	for _, ch := range downstream {
		shifted[ch.JobID] = struct{}{}
	}
	stationary := make([]core.Job, 0, len(siblings))
	for _, sib := range siblings {
		if _, ok := shifted[sib.ID]; !ok {
			stationary = append(stationary, sib)
		}
	}

	conflicts, err := conflict.Detect(placement, stationary)
	if err != nil {
		return core.CascadeResult{}, err
	}

	return core.CascadeResult{
		Primary:         primary,
		Downstream:      downstream,
		Conflicts:       conflicts,
		Summary:         summarize(primary, downstream),
		AffectedClients: affectedClients(primary, downstream),
	}, nil
}

func summarize(primary core.CascadeChange, downstream []core.CascadeChange) string {
	s := fmt.Sprintf("%s moves from %s to %s (%s)",
		primary.ClientLabel,
		primary.OriginalStart.Format("Mon Jan 2 15:04"),
		primary.NewStart.Format("Mon Jan 2 15:04"),
		signedMinutes(primary.DeltaMinutes))
	if n := len(downstream); n > 0 {
		noun := "jobs"
		if n == 1 {
			noun = "job"
		}
		s += fmt.Sprintf("; %d later %s shifted %s total",
			n, noun, signedMinutes(n*primary.DeltaMinutes))
	}
	return s
}

func signedMinutes(m int) string {
	return fmt.Sprintf("%+d min", m)
}

// affectedClients deduplicates client labels across the primary and
// downstream changes, primary first, downstream in shift order.
func affectedClients(primary core.CascadeChange, downstream []core.CascadeChange) []string {
	seen := map[string]struct{}{primary.ClientLabel: {}}
	clients := []string{primary.ClientLabel}
	for _, ch := range downstream {
		if _, ok := seen[ch.ClientLabel]; ok {
			continue
		}
		seen[ch.ClientLabel] = struct{}{}
		clients = append(clients, ch.ClientLabel)
	}
	return clients
}
