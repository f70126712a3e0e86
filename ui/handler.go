package ui

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/crewdeck/crewdeck/pkg/core"
)

// Handler creates an http.Handler serving the dashboard JSON API.
//
// Usage:
//
//	mux.Handle("/api/", ui.Handler(store, ui.WithLogger(log)))
//
// Routes:
//
//	POST   /api/jobs                 create a job
//	GET    /api/jobs/unscheduled     list backlog jobs
//	GET    /api/jobs/{id}            fetch a job
//	PUT    /api/jobs/{id}            update a job
//	DELETE /api/jobs/{id}            delete a job
//	GET    /api/day/{date}           day snapshot + layout slots
//	POST   /api/reschedule/preview   advisory cascade plan
//	POST   /api/reschedule/apply     re-check and commit a plan
func Handler(store core.Storage, opts ...Option) http.Handler {
	cfg := &config{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt.apply(cfg)
	}

	svc := newService(store, cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/jobs", svc.handleCreateJob)
	mux.HandleFunc("GET /api/jobs/unscheduled", svc.handleListUnscheduled)
	mux.HandleFunc("GET /api/jobs/{id}", svc.handleGetJob)
	mux.HandleFunc("PUT /api/jobs/{id}", svc.handleUpdateJob)
	mux.HandleFunc("DELETE /api/jobs/{id}", svc.handleDeleteJob)
	mux.HandleFunc("GET /api/day/{date}", svc.handleDay)
	mux.HandleFunc("POST /api/reschedule/preview", svc.handlePreview)
	mux.HandleFunc("POST /api/reschedule/apply", svc.handleApply)
	return mux
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrJobNotFound):
		status = http.StatusNotFound
	case errors.Is(err, core.ErrMissingStart),
		errors.Is(err, core.ErrNonPositiveDuration),
		errors.Is(err, core.ErrUnscheduledJob),
		errors.Is(err, core.ErrMissingClientLabel):
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
