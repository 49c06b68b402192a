package spiral

import "errors"

// Construction errors returned by NewFiller and Generate.
var (
	// ErrInvalidSize is returned when the grid size is below 1.
	ErrInvalidSize = errors.New("spiral: grid size must be >= 1")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("spiral: invalid option supplied")
)

// Blocked-step signals. They drive rotation and termination inside Fill and
// are never returned by a public operation; OnTurn receives them as cause.
var (
	// ErrCursorOverflow means the candidate position lies outside the grid.
	ErrCursorOverflow = errors.New("spiral: cursor overflow")

	// ErrPositionNotEmpty means the candidate position is already filled.
	ErrPositionNotEmpty = errors.New("spiral: position not empty")
)
