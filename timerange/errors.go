package timerange

import "errors"

var (
	// ErrNegativeStart reports a resolved start time below zero.
	ErrNegativeStart = errors.New("timerange: start time must be positive")

	// ErrStartNotBeforeEnd reports a resolved start at or past the end.
	ErrStartNotBeforeEnd = errors.New("timerange: start time must be less than end time")

	// ErrEndBeyondDuration reports a resolved end past the total duration.
	ErrEndBeyondDuration = errors.New("timerange: end time exceeds audio duration")
)
