package life

import "errors"

// Domain errors for engine operations.
var (
	// ErrInvalidDimensions indicates a zero or negative board dimension at
	// construction.
	ErrInvalidDimensions = errors.New("life: invalid board dimensions")

	// ErrOutOfBounds indicates coordinates outside [0,W)x[0,H). This is a
	// caller bug (typically a bad coordinate mapping); engine state is
	// never modified.
	ErrOutOfBounds = errors.New("life: cell coordinates out of bounds")

	// ErrEditWhileRunning indicates a cell edit attempted while the
	// simulation is running. This is an expected refusal, not a fault:
	// a running board is only meaningful as a consistent generation.
	ErrEditWhileRunning = errors.New("life: cannot edit cells while running")
)
