package ui

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/crewdeck/crewdeck/pkg/cascade"
	"github.com/crewdeck/crewdeck/pkg/conflict"
	"github.com/crewdeck/crewdeck/pkg/core"
	"github.com/crewdeck/crewdeck/pkg/crew"
	"github.com/crewdeck/crewdeck/pkg/layout"
	"github.com/crewdeck/crewdeck/pkg/schedule"
	"github.com/crewdeck/crewdeck/pkg/timeutil"
)

// service wires the pure engines to storage, notification, and
// recurring visits for the HTTP layer.
type service struct {
	store core.Storage
	cfg   *config
}

func newService(store core.Storage, cfg *config) *service {
	return &service{store: store, cfg: cfg}
}

func (s *service) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var job core.Job
	if err := decode(r, &job); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := s.store.CreateJob(r.Context(), &job); err != nil {
		s.cfg.logger.Error().Err(err).Msg("create job")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (s *service) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.store.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *service) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	var job core.Job
	if err := decode(r, &job); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	job.ID = r.PathValue("id")
	if err := s.store.UpdateJob(r.Context(), &job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *service) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteJob(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *service) handleListUnscheduled(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.store.ListUnscheduled(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

// dayResponse is one rendered calendar day: the job snapshot (stored
// plus materialized recurring visits) and its layout slots.
type dayResponse struct {
	Date  string            `json:"date"`
	Jobs  []core.Job        `json:"jobs"`
	Slots []core.LayoutSlot `json:"slots"`
}

func (s *service) handleDay(w http.ResponseWriter, r *http.Request) {
	date := r.PathValue("date")
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("bad date %q: want YYYY-MM-DD", date)})
		return
	}

	jobs, err := s.store.ListDay(r.Context(), day)
	if err != nil {
		writeError(w, err)
		return
	}
	jobs = append(jobs, schedule.MaterializeAll(s.cfg.recurring, day)...)

	writeJSON(w, http.StatusOK, dayResponse{
		Date:  date,
		Jobs:  jobs,
		Slots: layout.Arrange(jobs),
	})
}

// rescheduleRequest carries a proposed move. NewDurationHours may be
// omitted: with AutoAdjustDuration set and a team size change, the
// duration is resolved to preserve labor-hours, otherwise the job keeps
// its current duration.
type rescheduleRequest struct {
	JobID              string    `json:"jobId"`
	NewStart           time.Time `json:"newStart"`
	NewDurationHours   float64   `json:"newDurationHours,omitempty"`
	NewTeam            []string  `json:"newTeam,omitempty"`
	AutoAdjustDuration bool      `json:"autoAdjustDuration,omitempty"`

	// Apply only. AcceptDownstream lists the downstream job IDs the user
	// agreed to shift; Force commits despite conflicts.
	AcceptDownstream []string `json:"acceptDownstream,omitempty"`
	Force            bool     `json:"force,omitempty"`
}

// previewResponse is the advisory plan plus the labor-hours accounting
// behind the resolved duration.
type previewResponse struct {
	core.CascadeResult
	ResolvedDurationHours float64 `json:"resolvedDurationHours"`
	LaborHours            float64 `json:"laborHours"`
}

// plan loads the job and the snapshots its move touches, resolves the
// duration, and computes the cascade. Both the original day and the
// target day feed the snapshot so cross-day moves see both calendars.
func (s *service) plan(ctx context.Context, req rescheduleRequest) (*core.Job, previewResponse, error) {
	job, err := s.store.GetJob(ctx, req.JobID)
	if err != nil {
		return nil, previewResponse{}, err
	}

	team := req.NewTeam
	if team == nil {
		team = job.Team
	}

	duration := req.NewDurationHours
	if duration <= 0 {
		duration = job.EffectiveDurationHours()
		if req.AutoAdjustDuration && len(team) != len(job.Team) {
			duration = crew.Resolve(job.EffectiveDurationHours(), len(job.Team), len(team))
		}
	}

	placement := core.CandidatePlacement{
		JobID:         req.JobID,
		Start:         req.NewStart,
		DurationHours: duration,
		Team:          team,
	}

	siblings, err := s.snapshot(ctx, job, placement)
	if err != nil {
		return nil, previewResponse{}, err
	}

	var result core.CascadeResult
	if job.Scheduled() {
		result, err = cascade.Plan(*job, placement, siblings)
	} else {
		result, err = scheduleBacklog(*job, placement, siblings)
	}
	if err != nil {
		return nil, previewResponse{}, err
	}

	return job, previewResponse{
		CascadeResult:         result,
		ResolvedDurationHours: duration,
		LaborHours:            crew.LaborHours(duration, len(team)),
	}, nil
}

// scheduleBacklog plans the first placement of a job with no start
// time: a plain conflict-checked placement. There is nothing queued
// behind an unscheduled job, so no downstream shifts exist.
func scheduleBacklog(job core.Job, placement core.CandidatePlacement, siblings []core.Job) (core.CascadeResult, error) {
	conflicts, err := conflict.Detect(placement, siblings)
	if err != nil {
		return core.CascadeResult{}, err
	}
	return core.CascadeResult{
		Primary: core.CascadeChange{
			JobID:                 job.ID,
			ClientLabel:           job.ClientLabel,
			NewStart:              placement.Start,
			OriginalDurationHours: job.EffectiveDurationHours(),
			NewDurationHours:      placement.DurationHours,
		},
		Conflicts: conflicts,
		Summary: fmt.Sprintf("%s scheduled for %s",
			job.ClientLabel, placement.Start.Format("Mon Jan 2 15:04")),
		AffectedClients: []string{job.ClientLabel},
	}, nil
}

// snapshot merges the job's original day with the placement's target
// day, deduplicated by job ID. Recurring visits are display-only and
// stay out of reschedule snapshots.
func (s *service) snapshot(ctx context.Context, job *core.Job, placement core.CandidatePlacement) ([]core.Job, error) {
	siblings, err := s.store.ListDay(ctx, placement.Start)
	if err != nil {
		return nil, err
	}
	if job.Scheduled() && !timeutil.SameDay(*job.Start, placement.Start) {
		originalDay, err := s.store.ListDay(ctx, *job.Start)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]struct{}, len(siblings))
		for _, sib := range siblings {
			seen[sib.ID] = struct{}{}
		}
		for _, sib := range originalDay {
			if _, ok := seen[sib.ID]; !ok {
				siblings = append(siblings, sib)
			}
		}
	}
	return siblings, nil
}

func (s *service) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	_, resp, err := s.plan(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// conflictResponse is returned with 409 when an apply is blocked.
type conflictResponse struct {
	Error     string          `json:"error"`
	Conflicts []core.Conflict `json:"conflicts"`
}

// handleApply recomputes the plan against the current snapshot, refuses
// on conflicts unless forced, and commits the primary change plus the
// accepted downstream shifts in one transaction. The recompute narrows
// the advisory window but another writer can still slip in between
// check and commit; the storage layer, not this handler, is the
// authority on what landed.
func (s *service) handleApply(w http.ResponseWriter, r *http.Request) {
	var req rescheduleRequest
	if err := decode(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	_, resp, err := s.plan(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(resp.Conflicts) > 0 && !req.Force {
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error:     "placement conflicts with existing jobs",
			Conflicts: resp.Conflicts,
		})
		return
	}

	accepted := filterAccepted(resp.Downstream, req.AcceptDownstream)
	if err := s.store.ApplyCascade(r.Context(), resp.Primary, accepted); err != nil {
		s.cfg.logger.Error().Err(err).Str("job_id", req.JobID).Msg("apply cascade")
		writeError(w, err)
		return
	}

	s.notifyApplied(r.Context(), resp.Primary, accepted)

	resp.Downstream = accepted
	writeJSON(w, http.StatusOK, resp)
}

// filterAccepted keeps the downstream changes whose job IDs the caller
// accepted, preserving plan order.
func filterAccepted(downstream []core.CascadeChange, accepted []string) []core.CascadeChange {
	if len(accepted) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(accepted))
	for _, id := range accepted {
		want[id] = struct{}{}
	}
	var kept []core.CascadeChange
	for _, ch := range downstream {
		if _, ok := want[ch.JobID]; ok {
			kept = append(kept, ch)
		}
	}
	return kept
}

func (s *service) notifyApplied(ctx context.Context, primary core.CascadeChange, downstream []core.CascadeChange) {
	if s.cfg.notifier == nil {
		return
	}
	for _, ch := range append([]core.CascadeChange{primary}, downstream...) {
		if err := s.cfg.notifier.NotifyReschedule(ctx, ch); err != nil {
			s.cfg.logger.Warn().Err(err).Str("job_id", ch.JobID).Msg("notify reschedule")
		}
	}
}
