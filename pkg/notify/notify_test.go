package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewdeck/crewdeck/pkg/core"
)

func TestMessage_WithReason(t *testing.T) {
	change := core.CascadeChange{
		JobID:       "c",
		ClientLabel: "Patel",
		NewStart:    time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC),
		Reason:      "shifted due to Okafor's schedule change",
	}

	assert.Equal(t,
		"Hi Patel, your appointment moved to Monday, March 9 at 2:30 PM "+
			"(shifted due to Okafor's schedule change). Reply if you need a different time.",
		Message(change))
}

func TestMessage_WithoutReason(t *testing.T) {
	change := core.CascadeChange{
		ClientLabel: "Okafor",
		NewStart:    time.Date(2026, 3, 9, 11, 0, 0, 0, time.UTC),
	}

	assert.Equal(t,
		"Hi Okafor, your appointment moved to Monday, March 9 at 11:00 AM. "+
			"Reply if you need a different time.",
		Message(change))
}

func TestLogNotifier_LogsRenderedMessage(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(zerolog.New(&buf))

	change := core.CascadeChange{
		JobID:        "c",
		ClientLabel:  "Patel",
		NewStart:     time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC),
		DeltaMinutes: 180,
	}
	require.NoError(t, n.NotifyReschedule(context.Background(), change))

	out := buf.String()
	assert.Contains(t, out, `"client":"Patel"`)
	assert.Contains(t, out, "your appointment moved to Monday, March 9")
}
