// Package grid provides the square integer grid that the spiral filler
// writes into, plus its fixed-width text rendering.
//
// What:
//
//   - Grid is an N×N store of non-negative ints kept in one flat, row-major slice.
//   - A zero cell means "empty"; any positive value marks the cell as filled.
//   - At/Set/IsEmpty are bounds-checked and never panic on user input.
//   - Render writes one line per row, every cell right-aligned in a fixed field.
//
// Why:
//
//   - Traversal algorithms need O(1) "in bounds?" and "occupied?" checks.
//   - Deep copies (Rows, Clone) let owners hand the grid out without losing
//     exclusive control of the backing storage.
//
// Complexity:
//
//   - New, Rows, Clone, Filled, Render: O(N²) time and memory.
//   - InBounds, At, Set, IsEmpty:       O(1).
//
// Errors:
//
//   - ErrBadShape:      requested size is < 1.
//   - ErrOutOfRange:    row or column outside [0, N).
//   - ErrNegativeValue: Set called with a value < 0.
//   - ErrBadWidth:      Render called with a field width < 1.
package grid
