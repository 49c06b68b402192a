package spiral

import (
	"fmt"

	"github.com/katalvlaran/lvspiral/grid"
)

// Filler owns a square grid, the cursor, the current direction and the
// fill counter, and writes a clockwise inward spiral starting at (0,0).
// A Filler is not safe for concurrent use.
type Filler struct {
	grid   *grid.Grid
	cursor Cursor
	dir    Direction
	count  int
	done   bool
	opts   Options
}

// NewFiller prepares an n×n spiral: empty grid, cursor at (0,0), direction
// Right, counter at 0.
// Returns ErrInvalidSize when n < 1 and ErrOptionViolation for bad options.
func NewFiller(n int, opts ...Option) (*Filler, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g, err := grid.New(n)
	if err != nil {
		return nil, fmt.Errorf("spiral: allocate grid: %w", err)
	}

	return &Filler{grid: g, dir: Right, opts: o}, nil
}

// Generate builds and fills an n×n spiral and returns the finished grid.
func Generate(n int, opts ...Option) (*grid.Grid, error) {
	f, err := NewFiller(n, opts...)
	if err != nil {
		return nil, err
	}
	f.Fill()

	return f.grid, nil
}

// Fill runs the traversal to completion. Each step writes the next counter
// value at the cursor and tries to move on; a blocked move rotates the
// direction once and retries, and a second block ends the run.
// The loop performs at most n² steps. Calling Fill again is a no-op.
func (f *Filler) Fill() {
	if f.done {
		return
	}
	for {
		f.count++
		f.place()
		if err := f.advance(); err != nil {
			f.turn(err)
			if err = f.advance(); err != nil {
				break
			}
		}
	}
	f.done = true
}

// place writes the counter at the cursor.
func (f *Filler) place() {
	// the cursor only ever moves onto validated in-bounds cells
	if err := f.grid.Set(f.cursor.Row, f.cursor.Col, f.count); err != nil {
		panic(fmt.Sprintf("spiral: cursor escaped the grid: %v", err))
	}
	f.opts.OnFill(f.count, f.cursor)
}

// advance moves the cursor one step in the current direction, or reports
// why it cannot: ErrCursorOverflow outside [0,n) and ErrPositionNotEmpty
// on a filled cell. The cursor is unchanged on failure.
func (f *Filler) advance() error {
	next := f.cursor.Step(f.dir)
	if !f.grid.InBounds(next.Row, next.Col) {
		return ErrCursorOverflow
	}
	if empty, _ := f.grid.IsEmpty(next.Row, next.Col); !empty {
		return ErrPositionNotEmpty
	}
	f.cursor = next

	return nil
}

// turn rotates the direction clockwise and notifies OnTurn.
func (f *Filler) turn(cause error) {
	from := f.dir
	f.dir = f.dir.Next()
	f.opts.OnTurn(f.cursor, from, f.dir, cause)
}

// Grid returns a copy of the grid in its current state.
func (f *Filler) Grid() *grid.Grid {
	return f.grid.Clone()
}

// Cursor returns the current cursor position.
func (f *Filler) Cursor() Cursor {
	return f.cursor
}

// Direction returns the current direction.
func (f *Filler) Direction() Direction {
	return f.dir
}

// Count returns the last value written, 0 before Fill.
func (f *Filler) Count() int {
	return f.count
}

// Done reports whether Fill has terminated.
func (f *Filler) Done() bool {
	return f.done
}
