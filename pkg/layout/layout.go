// Package layout arranges one day's jobs into columns so overlapping
// visits render side by side without collision.
//
// Overlapping jobs are grouped into maximal clusters (connected
// components of the overlap graph) and columns are assigned greedily
// within each cluster. Interval graphs are perfect, so the greedy
// first-fit assignment over start-sorted jobs uses the minimum number
// of columns: a cluster's ColumnCount equals the largest number of
// jobs active at any one instant inside it.
package layout

import (
	"sort"

	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// MinVisualMinutes is the shortest span a slot renders at. Jobs shorter
// than this keep their real duration in storage; only the slot is
// stretched.
const MinVisualMinutes = 30

// Arrange assigns a LayoutSlot to every scheduled job in the list. The
// input is treated as one calendar day; jobs without a start time get
// no slot. Offsets are minutes from each job's own midnight. Slots come
// back ordered by start, ties broken by job ID.
func Arrange(jobs []core.Job) []core.LayoutSlot {
	slots := make([]core.LayoutSlot, 0, len(jobs))
	for _, j := range jobs {
		if !j.Scheduled() {
			continue
		}
		start := timeutil.MinutesFromMidnight(*j.Start)
		span := int(j.EffectiveDurationHours() * 60)
		if span < MinVisualMinutes {
			span = MinVisualMinutes
		}
		slots = append(slots, core.LayoutSlot{
			JobID:                 j.ID,
			StartOffsetMinutes:    start,
			VisualDurationMinutes: span,
		})
	}

	sort.Slice(slots, func(i, j int) bool {
		if slots[i].StartOffsetMinutes != slots[j].StartOffsetMinutes {
			return slots[i].StartOffsetMinutes < slots[j].StartOffsetMinutes
		}
		return slots[i].JobID < slots[j].JobID
	})

	for lo := 0; lo < len(slots); {
		hi := clusterEnd(slots, lo)
		packColumns(slots[lo:hi])
		lo = hi
	}
	return slots
}

// clusterEnd returns the index one past the maximal overlap cluster
// starting at lo. The cluster extends while the next slot starts before
// the running max end, which links jobs that only overlap through an
// intermediate one.
func clusterEnd(slots []core.LayoutSlot, lo int) int {
	maxEnd := slotEnd(slots[lo])
	hi := lo + 1
	for hi < len(slots) && slots[hi].StartOffsetMinutes < maxEnd {
		if e := slotEnd(slots[hi]); e > maxEnd {
			maxEnd = e
		}
		hi++
	}
	return hi
}

// packColumns greedily assigns columns within one cluster: each slot
// reuses the first column freed by its start, else opens a new one.
func packColumns(cluster []core.LayoutSlot) {
	var columnEnds []int
	for i := range cluster {
		assigned := -1
		for c, end := range columnEnds {
			if end <= cluster[i].StartOffsetMinutes {
				assigned = c
				break
			}
		}
		if assigned == -1 {
			assigned = len(columnEnds)
			columnEnds = append(columnEnds, 0)
		}
		columnEnds[assigned] = slotEnd(cluster[i])
		cluster[i].ColumnIndex = assigned
	}
	for i := range cluster {
		cluster[i].ColumnCount = len(columnEnds)
	}
}

func slotEnd(s core.LayoutSlot) int {
	return s.StartOffsetMinutes + s.VisualDurationMinutes
}
