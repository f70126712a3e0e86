// Package storage provides storage implementations for crewdeck.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// GormStorage implements core.Storage using GORM.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage creates a new GORM-backed storage.
func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

// DB exposes the underlying gorm handle for callers that need to
// compose queries, e.g. reporting.
func (s *GormStorage) DB() *gorm.DB {
	return s.db
}

// Migrate creates the necessary tables.
func (s *GormStorage) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&core.Job{})
}

// CreateJob persists a new job, assigning a UUID if the ID is empty.
func (s *GormStorage) CreateJob(ctx context.Context, job *core.Job) error {
	if job.ClientLabel == "" {
		return core.ErrMissingClientLabel
	}
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	return s.db.WithContext(ctx).Create(job).Error
}

// GetJob fetches a job by ID.
func (s *GormStorage) GetJob(ctx context.Context, id string) (*core.Job, error) {
	var job core.Job
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob saves changes to an existing job.
func (s *GormStorage) UpdateJob(ctx context.Context, job *core.Job) error {
	res := s.db.WithContext(ctx).Model(&core.Job{}).
		Where("id = ?", job.ID).
		Select("client_label", "start", "duration_hours", "team", "notes").
		Updates(job)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return core.ErrJobNotFound
	}
	return nil
}

// DeleteJob removes a job by ID.
func (s *GormStorage) DeleteJob(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&core.Job{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return core.ErrJobNotFound
	}
	return nil
}

// ListDay returns every job scheduled on the calendar day containing
// day, ordered by start then ID for a stable snapshot.
func (s *GormStorage) ListDay(ctx context.Context, day time.Time) ([]core.Job, error) {
	dayStart := timeutil.Midnight(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var jobs []core.Job
	err := s.db.WithContext(ctx).
		Where("start >= ? AND start < ?", dayStart, dayEnd).
		Order("start ASC, id ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListUnscheduled returns jobs with no start time, oldest first.
func (s *GormStorage) ListUnscheduled(ctx context.Context) ([]core.Job, error) {
	var jobs []core.Job
	err := s.db.WithContext(ctx).
		Where("start IS NULL").
		Order("created_at ASC, id ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ApplyCascade writes the primary change and the accepted downstream
// changes in one transaction. A change whose job has disappeared rolls
// the whole batch back with core.ErrJobNotFound.
func (s *GormStorage) ApplyCascade(ctx context.Context, primary core.CascadeChange, downstream []core.CascadeChange) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyChange(tx, primary); err != nil {
			return fmt.Errorf("apply primary change %s: %w", primary.JobID, err)
		}
		for _, ch := range downstream {
			if err := applyChange(tx, ch); err != nil {
				return fmt.Errorf("apply downstream change %s: %w", ch.JobID, err)
			}
		}
		return nil
	})
}

func applyChange(tx *gorm.DB, ch core.CascadeChange) error {
	res := tx.Model(&core.Job{}).
		Where("id = ?", ch.JobID).
		Updates(map[string]any{
			"start":          ch.NewStart,
			"duration_hours": ch.NewDurationHours,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return core.ErrJobNotFound
	}
	return nil
}
