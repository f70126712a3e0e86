// Package ui provides the embeddable HTTP JSON API for the scheduling
// dashboard: day snapshots with layout slots, reschedule previews, and
// cascade application.
package ui

import (
	"github.com/rs/zerolog"

	"github.com/crewdeck/crewdeck/pkg/notify"
	"github.com/crewdeck/crewdeck/pkg/schedule"
)

// Option configures the UI handler.
type Option interface {
	apply(*config)
}

type optionFunc func(*config)

func (f optionFunc) apply(c *config) { f(c) }

type config struct {
	logger    zerolog.Logger
	notifier  notify.Notifier
	recurring []schedule.RecurringVisit
}

// WithLogger sets the structured logger for request handling. The
// default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return optionFunc(func(c *config) {
		c.logger = log
	})
}

// WithNotifier sets the notifier that receives every applied change.
// Without one, applied cascades are silent.
func WithNotifier(n notify.Notifier) Option {
	return optionFunc(func(c *config) {
		c.notifier = n
	})
}

// WithRecurring adds standing visits that are materialized into day
// views. They render in layouts but are not persisted jobs, so
// reschedule plans ignore them.
func WithRecurring(visits []schedule.RecurringVisit) Option {
	return optionFunc(func(c *config) {
		c.recurring = visits
	})
}
