package core

import "time"

// ConflictKind classifies why two jobs collide.
type ConflictKind string

const (
	// TimeOverlap means the intervals intersect but no worker is
	// double-booked.
	TimeOverlap ConflictKind = "time_overlap"

	// TeamOverlap means the intervals intersect and at least one worker
	// is assigned to both jobs.
	TeamOverlap ConflictKind = "team_overlap"
)

// Conflict records one overlap between a candidate placement and a
// sibling job. Conflicts are advisory data; blocking or overriding is
// the caller's decision.
type Conflict struct {
	OtherJobID  string       `json:"otherJobId"`
	ClientLabel string       `json:"clientLabel"`
	Kind        ConflictKind `json:"kind"`
}

// CascadeChange is one job's before/after within a cascade plan.
type CascadeChange struct {
	JobID                 string    `json:"jobId"`
	ClientLabel           string    `json:"clientLabel"`
	OriginalStart         time.Time `json:"originalStart"`
	NewStart              time.Time `json:"newStart"`
	OriginalDurationHours float64   `json:"originalDurationHours"`
	NewDurationHours      float64   `json:"newDurationHours"`
	DeltaMinutes          int       `json:"deltaMinutes"`
	Reason                string    `json:"reason,omitempty"`
}

// CascadeResult is the full advisory plan for one reschedule: the
// primary change, the forward shifts it forces on jobs queued later the
// same day, and any conflicts at the primary's new placement. The
// engine never applies a plan; callers re-check and commit through a
// Storage.
type CascadeResult struct {
	Primary         CascadeChange   `json:"primaryChange"`
	Downstream      []CascadeChange `json:"downstreamChanges"`
	Conflicts       []Conflict      `json:"conflicts"`
	Summary         string          `json:"summary"`
	AffectedClients []string        `json:"affectedClients"`
}
