package core

import (
	"time"
)

// DefaultDurationHours is assumed for jobs with no recorded duration.
// It is used only when computing overlaps and layout; it is never
// written back to storage.
const DefaultDurationHours = 1.0

// Job is one scheduled (or not yet scheduled) visit for a client.
type Job struct {
	ID            string     `gorm:"primaryKey;size:36" json:"id"`
	ClientLabel   string     `gorm:"index;size:255;not null" json:"clientLabel"`
	Start         *time.Time `gorm:"index" json:"start,omitempty"`
	DurationHours float64    `json:"durationHours,omitempty"`
	Team          []string   `gorm:"serializer:json" json:"team"`
	Notes         string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Scheduled reports whether the job has a start time.
func (j *Job) Scheduled() bool {
	return j.Start != nil
}

// EffectiveDurationHours returns the recorded duration, or
// DefaultDurationHours when none is set.
func (j *Job) EffectiveDurationHours() float64 {
	if j.DurationHours > 0 {
		return j.DurationHours
	}
	return DefaultDurationHours
}

// End returns the end of the job's effective interval. The interval is
// half-open: [start, end). Jobs without a start have no end and return
// the zero time.
func (j *Job) End() time.Time {
	if j.Start == nil {
		return time.Time{}
	}
	return j.Start.Add(DurationToTime(j.EffectiveDurationHours()))
}

// DurationToTime converts fractional hours to a time.Duration.
func DurationToTime(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// CandidatePlacement is a proposed new start, duration, and team for an
// existing job. It is input to conflict detection and cascade planning;
// nothing is applied until the caller commits through a Storage.
type CandidatePlacement struct {
	JobID         string    `json:"jobId"`
	Start         time.Time `json:"newStart"`
	DurationHours float64   `json:"newDurationHours"`
	Team          []string  `json:"newTeam"`
}

// Validate rejects placements the engines refuse to reason about:
// a zero start or a non-positive duration.
func (p CandidatePlacement) Validate() error {
	if p.Start.IsZero() {
		return ErrMissingStart
	}
	if p.DurationHours <= 0 {
		return ErrNonPositiveDuration
	}
	return nil
}

// End returns the half-open end of the proposed interval.
func (p CandidatePlacement) End() time.Time {
	return p.Start.Add(DurationToTime(p.DurationHours))
}

// LayoutSlot places one job in a day column layout. ColumnIndex and
// ColumnCount are relative to the slot's overlap cluster, so
// ColumnIndex/ColumnCount and 1/ColumnCount give the renderer a
// fractional x-offset and width.
type LayoutSlot struct {
	JobID                 string `json:"jobId"`
	StartOffsetMinutes    int    `json:"startOffsetMinutes"`
	VisualDurationMinutes int    `json:"visualDurationMinutes"`
	ColumnIndex           int    `json:"columnIndex"`
	ColumnCount           int    `json:"columnCount"`
}
