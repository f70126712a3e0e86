package core

import (
	"context"
	"time"
)

// Storage defines the persistence layer for jobs. Implementations are
// injected explicitly; the engine packages never touch storage
// themselves and only ever see snapshots loaded through it.
type Storage interface {
	// CreateJob persists a new job, assigning an ID if empty.
	CreateJob(ctx context.Context, job *Job) error

	// GetJob fetches a job by ID, or ErrJobNotFound.
	GetJob(ctx context.Context, id string) (*Job, error)

	// UpdateJob persists changes to an existing job.
	UpdateJob(ctx context.Context, job *Job) error

	// DeleteJob removes a job by ID.
	DeleteJob(ctx context.Context, id string) error

	// ListDay returns every job scheduled on the calendar day containing
	// day, ordered by start. This is the snapshot the engines run over.
	ListDay(ctx context.Context, day time.Time) ([]Job, error)

	// ListUnscheduled returns jobs with no start time, oldest first.
	ListUnscheduled(ctx context.Context) ([]Job, error)

	// ApplyCascade writes the primary change and the accepted downstream
	// changes in one transaction. Either every change lands or none do.
	ApplyCascade(ctx context.Context, primary CascadeChange, downstream []CascadeChange) error
}
