// Package spiral defines the direction cycle, the cursor, and the functional
// options used by Filler.
package spiral

import "fmt"

// Direction is one of the four rotation states of the cursor.
// The declaration order is the clockwise rotation order.
type Direction int

const (
	// Right moves along a row towards higher columns: (0,+1).
	Right Direction = iota
	// Down moves along a column towards higher rows: (+1,0).
	Down
	// Left moves along a row towards lower columns: (0,-1).
	Left
	// Up moves along a column towards lower rows: (-1,0).
	Up

	numDirections = 4
)

// offsets[d] is the (row-delta, col-delta) pair of direction d.
var offsets = [numDirections][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

var directionNames = [numDirections]string{"Right", "Down", "Left", "Up"}

// Offset returns the row and column deltas applied by one step in d.
func (d Direction) Offset() (dRow, dCol int) {
	o := offsets[d.normalize()]

	return o[0], o[1]
}

// Next returns the direction after d in the cycle Right → Down → Left → Up → Right.
func (d Direction) Next() Direction {
	return (d.normalize() + 1) % numDirections
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d < 0 || d >= numDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// normalize wraps any integer onto the four valid directions.
func (d Direction) normalize() Direction {
	return ((d % numDirections) + numDirections) % numDirections
}

// Cursor is a (row, column) position in the grid.
type Cursor struct {
	Row, Col int
}

// Step returns the candidate position one step away from c in direction d.
// It does not check bounds.
func (c Cursor) Step(d Direction) Cursor {
	dr, dc := d.Offset()

	return Cursor{Row: c.Row + dr, Col: c.Col + dc}
}

// Option configures a Filler via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewFiller.
type Option func(*Options)

// Options holds the callbacks invoked while the spiral is being filled.
type Options struct {
	// OnFill is called right after value has been written at the cursor.
	OnFill func(value int, at Cursor)

	// OnTurn is called when a blocked step rotates the direction from → to
	// while the cursor sits at at. cause is ErrCursorOverflow or
	// ErrPositionNotEmpty.
	OnTurn func(at Cursor, from, to Direction, cause error)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnFill: func(int, Cursor) {},
		OnTurn: func(Cursor, Direction, Direction, error) {},
	}
}

// WithOnFill registers a callback run after each cell assignment.
// A nil fn is an option violation.
func WithOnFill(fn func(value int, at Cursor)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnFill hook is nil", ErrOptionViolation)

			return
		}
		o.OnFill = fn
	}
}

// WithOnTurn registers a callback run on every direction switch.
// A nil fn is an option violation.
func WithOnTurn(fn func(at Cursor, from, to Direction, cause error)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnTurn hook is nil", ErrOptionViolation)

			return
		}
		o.OnTurn = fn
	}
}
