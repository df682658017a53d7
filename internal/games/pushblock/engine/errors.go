package engine

import "errors"

var (
	// ErrOutOfBounds is returned for any cell access outside the grid.
	ErrOutOfBounds = errors.New("engine: coordinate out of bounds")

	// ErrNoCandidatesLeft is returned by Sampler.Take when no empty,
	// non-target cell is left. The session treats it as game over.
	ErrNoCandidatesLeft = errors.New("engine: no placement candidates left")

	// ErrInvariantViolation reports a broken grid invariant, such as the
	// cached player position disagreeing with the occupancy layer.
	ErrInvariantViolation = errors.New("engine: invariant violation")

	// ErrTargetsFrozen is returned when the target mask is captured twice.
	ErrTargetsFrozen = errors.New("engine: target mask already frozen")
)
