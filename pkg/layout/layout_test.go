package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/pkg/core"
)

func job(id string, start time.Time, hours float64) core.Job {
	return core.Job{ID: id, ClientLabel: id, Start: &start, DurationHours: hours}
}

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.UTC)
}

func bySlotID(slots []core.LayoutSlot) map[string]core.LayoutSlot {
	m := make(map[string]core.LayoutSlot, len(slots))
	for _, s := range slots {
		m[s.JobID] = s
	}
	return m
}

func TestArrange_ChainedOverlapsFormOneCluster(t *testing.T) {
	// A 9-11 and C 11:30-12:30 never touch, but B 10-12 links them:
	// one cluster, two columns.
	slots := Arrange([]core.Job{
		job("a", at(9, 0), 2),
		job("b", at(10, 0), 2),
		job("c", at(11, 30), 1),
	})

	require.Len(t, slots, 3)
	m := bySlotID(slots)
	assert.Equal(t, 2, m["a"].ColumnCount)
	assert.Equal(t, 2, m["b"].ColumnCount)
	assert.Equal(t, 2, m["c"].ColumnCount)

	assert.NotEqual(t, m["a"].ColumnIndex, m["b"].ColumnIndex)
	assert.NotEqual(t, m["b"].ColumnIndex, m["c"].ColumnIndex)
}

func TestArrange_DisjointJobsStayInOwnClusters(t *testing.T) {
	slots := Arrange([]core.Job{
		job("a", at(9, 0), 1),
		job("b", at(11, 0), 1),
	})

	m := bySlotID(slots)
	for _, s := range m {
		assert.Equal(t, 0, s.ColumnIndex)
		assert.Equal(t, 1, s.ColumnCount)
	}
}

func TestArrange_ColumnCountIsPeakConcurrency(t *testing.T) {
	// Three jobs active at once between 10:00 and 10:30.
	slots := Arrange([]core.Job{
		job("a", at(9, 0), 2),
		job("b", at(10, 0), 2),
		job("c", at(10, 0), 0.5),
		job("d", at(11, 0), 1), // only overlaps b
	})

	m := bySlotID(slots)
	for id := range m {
		assert.Equal(t, 3, m[id].ColumnCount, "job %s", id)
	}
}

func TestArrange_OverlappingSlotsNeverShareColumn(t *testing.T) {
	slots := Arrange([]core.Job{
		job("a", at(8, 0), 3),
		job("b", at(8, 30), 1),
		job("c", at(9, 0), 2),
		job("d", at(9, 30), 0.5),
		job("e", at(10, 15), 2),
	})

	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			a, b := slots[i], slots[j]
			overlaps := a.StartOffsetMinutes < b.StartOffsetMinutes+b.VisualDurationMinutes &&
				b.StartOffsetMinutes < a.StartOffsetMinutes+a.VisualDurationMinutes
			if overlaps {
				assert.NotEqual(t, a.ColumnIndex, b.ColumnIndex,
					"%s and %s overlap but share column %d", a.JobID, b.JobID, a.ColumnIndex)
			}
		}
	}
}

func TestArrange_MinimumVisualFloor(t *testing.T) {
	// A 15 minute job still renders at the visual floor.
	slots := Arrange([]core.Job{job("a", at(9, 0), 0.25)})

	require.Len(t, slots, 1)
	assert.Equal(t, MinVisualMinutes, slots[0].VisualDurationMinutes)
}

func TestArrange_FallbackDurationForMissing(t *testing.T) {
	slots := Arrange([]core.Job{job("a", at(9, 0), 0)})

	require.Len(t, slots, 1)
	assert.Equal(t, int(core.DefaultDurationHours*60), slots[0].VisualDurationMinutes)
}

func TestArrange_SkipsUnscheduledJobs(t *testing.T) {
	slots := Arrange([]core.Job{
		{ID: "backlog", ClientLabel: "Patel"},
		job("a", at(9, 0), 1),
	})

	require.Len(t, slots, 1)
	assert.Equal(t, "a", slots[0].JobID)
}

func TestArrange_OffsetsAreMinutesFromMidnight(t *testing.T) {
	slots := Arrange([]core.Job{job("a", at(9, 30), 1)})

	require.Len(t, slots, 1)
	assert.Equal(t, 570, slots[0].StartOffsetMinutes)
	assert.Equal(t, 60, slots[0].VisualDurationMinutes)
}

func TestArrange_OrderedAndDeterministic(t *testing.T) {
	jobs := []core.Job{
		job("b", at(10, 0), 1),
		job("a", at(9, 0), 1),
		job("c", at(9, 0), 1),
	}

	first := Arrange(jobs)
	second := Arrange(jobs)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "a", first[0].JobID, "ties broken by job ID")
	assert.Equal(t, "c", first[1].JobID)
	assert.Equal(t, "b", first[2].JobID)
}
