// Package notify renders cascade changes into client-facing messages.
//
// Delivery is out of scope: a Notifier implementation owns the channel
// (SMS, email, carrier pigeon) and crewdeck only hands it rendered
// text.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/crewdeck/crewdeck/pkg/core"
)

// Notifier delivers a reschedule notice for one change. Implementations
// must be safe for concurrent use.
type Notifier interface {
	NotifyReschedule(ctx context.Context, change core.CascadeChange) error
}

// Message renders the client-facing notice for a change.
func Message(change core.CascadeChange) string {
	reasonClause := ""
	if change.Reason != "" {
		reasonClause = " (" + change.Reason + ")"
	}
	return fmt.Sprintf(
		"Hi %s, your appointment moved to %s at %s%s. Reply if you need a different time.",
		change.ClientLabel,
		change.NewStart.Format("Monday, January 2"),
		change.NewStart.Format("3:04 PM"),
		reasonClause,
	)
}

// LogNotifier writes rendered messages to a structured log instead of
// delivering them. It backs local development and is the default in
// crewdeckd until a real channel is configured.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a LogNotifier writing to log.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// NotifyReschedule logs the rendered message. It never fails.
func (n *LogNotifier) NotifyReschedule(ctx context.Context, change core.CascadeChange) error {
	n.log.Info().
		Str("job_id", change.JobID).
		Str("client", change.ClientLabel).
		Time("new_start", change.NewStart).
		Int("delta_minutes", change.DeltaMinutes).
		Msg(Message(change))
	return nil
}
