// Package spiral fills a square grid with 1, 2, …, N² along a clockwise
// inward spiral that starts at the top-left cell.
//
// What
//
//   - A cursor starts at (0,0) heading Right and writes an increasing counter.
//   - After each write it tries one step forward. A step is blocked when the
//     target is outside the grid (ErrCursorOverflow) or already filled
//     (ErrPositionNotEmpty).
//   - A blocked step rotates the direction once (Right → Down → Left → Up → Right)
//     and retries. If the retry is blocked too, the spiral is complete.
//
// A single rotation per blocked step is enough for square grids; the package
// does not handle rectangular or irregular shapes.
//
// Determinism
//
//	Fill is synchronous and performs no I/O. The same N always yields the
//	same grid, and the run ends after exactly N² writes.
//
// Complexity
//
//   - Time:   O(N²)
//   - Memory: O(N²) for the grid
//
// Usage
//
//	g, err := spiral.Generate(10)
//	if err != nil {
//	    // ErrInvalidSize or ErrOptionViolation
//	}
//	_ = g.Render(os.Stdout, 4)
//
//	// Observing the walk:
//	f, _ := spiral.NewFiller(3,
//	    spiral.WithOnFill(func(v int, at spiral.Cursor) { /* ... */ }),
//	    spiral.WithOnTurn(func(at spiral.Cursor, from, to spiral.Direction, cause error) { /* ... */ }),
//	)
//	f.Fill()
//
// Errors
//
//   - ErrInvalidSize      if N < 1.
//   - ErrOptionViolation  if a hook option is given a nil function.
//   - ErrCursorOverflow, ErrPositionNotEmpty are internal blocked-step signals,
//     visible only through the OnTurn hook.
package spiral
