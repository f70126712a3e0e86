package core

import "errors"

// Validation errors
var (
	ErrMissingStart        = errors.New("crewdeck: placement has no start time")
	ErrNonPositiveDuration = errors.New("crewdeck: placement duration must be positive")
	ErrUnscheduledJob      = errors.New("crewdeck: job has no start time to move from")
	ErrJobNotFound         = errors.New("crewdeck: job not found")
	ErrMissingClientLabel  = errors.New("crewdeck: job has no client label")
)
