// Package crewdeck is the scheduling engine behind a day-view
// dispatch dashboard for small service crews.
//
// This is the main package users should import. It re-exports the
// public types and entry points from the internal pkg/ packages for a
// clean API surface.
//
// Basic usage:
//
//	// Open storage
//	db, _ := gorm.Open(sqlite.Open("crewdeck.db"), &gorm.Config{})
//	store := crewdeck.NewGormStorage(db)
//	store.Migrate(context.Background())
//
//	// Load a day and lay it out
//	jobs, _ := store.ListDay(ctx, day)
//	slots := crewdeck.Arrange(jobs)
//
//	// Plan a reschedule and apply the accepted parts
//	plan, _ := crewdeck.PlanCascade(job, placement, jobs)
//	store.ApplyCascade(ctx, plan.Primary, plan.Downstream)
//
// All engine entry points are pure functions over the snapshot you
// hand them; nothing is persisted until you commit through a Storage.
package crewdeck

import (
	"gorm.io/gorm"

	"github.com/crewdeck/crewdeck/pkg/cascade"
	"github.com/crewdeck/crewdeck/pkg/conflict"
	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/crew"
	"github.com/crewdeck/crewdeck/pkg/layout"
	"github.com/crewdeck/crewdeck/pkg/notify"
	"github.com/crewdeck/crewdeck/pkg/schedule"
	"github.com/crewdeck/crewdeck/pkg/storage"
)

// Type aliases re-exported from pkg/core and friends.
type (
	// Job is one scheduled (or backlog) visit for a client.
	Job = core.Job

	// CandidatePlacement is a proposed new start/duration/team for a job.
	CandidatePlacement = core.CandidatePlacement

	// Conflict records one overlap between a placement and a sibling job.
	Conflict = core.Conflict

	// ConflictKind classifies why two jobs collide.
	ConflictKind = core.ConflictKind

	// CascadeChange is one job's before/after within a cascade plan.
	CascadeChange = core.CascadeChange

	// CascadeResult is the advisory plan for one reschedule.
	CascadeResult = core.CascadeResult

	// LayoutSlot places one job in a day column layout.
	LayoutSlot = core.LayoutSlot

	// Storage defines the persistence layer for jobs.
	Storage = core.Storage

	// Schedule defines when a recurring visit next happens.
	Schedule = schedule.Schedule

	// RecurringVisit is a standing appointment projected onto days.
	RecurringVisit = schedule.RecurringVisit

	// Notifier delivers reschedule notices.
	Notifier = notify.Notifier
)

// Conflict kinds.
const (
	TimeOverlap = core.TimeOverlap
	TeamOverlap = core.TeamOverlap
)

// DetectConflicts compares a candidate placement against a day
// snapshot. See pkg/conflict.
func DetectConflicts(placement CandidatePlacement, siblings []Job) ([]Conflict, error) {
	return conflict.Detect(placement, siblings)
}

// PlanCascade computes the advisory plan for moving job to the given
// placement. See pkg/cascade.
func PlanCascade(job Job, placement CandidatePlacement, siblings []Job) (CascadeResult, error) {
	return cascade.Plan(job, placement, siblings)
}

// ResolveDuration recomputes a duration for a crew-size change,
// preserving labor-hours. See pkg/crew.
func ResolveDuration(originalDurationHours float64, originalCrew, newCrew int) float64 {
	return crew.Resolve(originalDurationHours, originalCrew, newCrew)
}

// Arrange assigns layout slots to one day's jobs. See pkg/layout.
func Arrange(jobs []Job) []LayoutSlot {
	return layout.Arrange(jobs)
}

// NewGormStorage creates a GORM-backed Storage.
func NewGormStorage(db *gorm.DB) *storage.GormStorage {
	return storage.NewGormStorage(db)
}

// Schedules.
var (
	// Every creates a fixed-interval schedule.
	Every = schedule.Every

	// Daily creates a same-time-each-day schedule.
	Daily = schedule.Daily

	// Weekly creates a fixed weekday-and-time schedule.
	Weekly = schedule.Weekly

	// Cron creates a schedule from a five-field cron expression.
	Cron = schedule.Cron
)

// RenderNotice renders the client-facing message for a change.
func RenderNotice(change CascadeChange) string {
	return notify.Message(change)
}
