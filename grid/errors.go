package grid

import "errors"

// Every message is prefixed with "grid: ". Methods wrap these sentinels with
// call-site context via fmt.Errorf("...: %w", ErrX); match with errors.Is.
var (
	// ErrBadShape is returned when the requested size is not positive.
	ErrBadShape = errors.New("grid: size must be > 0")

	// ErrOutOfRange indicates that a row or column is outside [0, N).
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNegativeValue indicates an attempt to store a value below zero.
	ErrNegativeValue = errors.New("grid: cell values must be non-negative")

	// ErrBadWidth is returned when a render field width is not positive.
	ErrBadWidth = errors.New("grid: render width must be > 0")
)
