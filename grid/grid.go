package grid

import "fmt"

// DefaultCellWidth is the field width used by String.
const DefaultCellWidth = 4

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a square matrix of non-negative ints.
// n is the side length and data holds n*n cells in row-major order.
type Grid struct {
	n    int   // side length
	data []int // flat backing storage, length == n*n
}

// New creates an n×n Grid with every cell empty (zero).
// Returns ErrBadShape when n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("grid.New(%d): %w", n, ErrBadShape)
	}

	return &Grid{n: n, data: make([]int, n*n)}, nil
}

// Size returns the side length N.
func (g *Grid) Size() int {
	return g.n
}

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.n && col >= 0 && col < g.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.n + col, nil
}

// At returns the value stored at (row, col).
// Complexity: O(1).
func (g *Grid) At(row, col int) (int, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set stores v at (row, col). Negative values are rejected with
// ErrNegativeValue so that zero stays the only "empty" marker.
// Complexity: O(1).
func (g *Grid) Set(row, col, v int) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v < 0 {
		return gridErrorf("Set", row, col, fmt.Errorf("%w: got %d", ErrNegativeValue, v))
	}
	g.data[idx] = v

	return nil
}

// IsEmpty reports whether the cell at (row, col) still holds zero.
func (g *Grid) IsEmpty(row, col int) (bool, error) {
	idx, err := g.indexOf("IsEmpty", row, col)
	if err != nil {
		return false, err
	}

	return g.data[idx] == 0, nil
}

// Filled counts the non-zero cells.
// Complexity: O(n²).
func (g *Grid) Filled() int {
	var count int
	for _, v := range g.data {
		if v != 0 {
			count++
		}
	}

	return count
}

// Rows returns the contents as freshly allocated nested slices,
// rows[r][c] being the value at (r, c).
// Complexity: O(n²) time and memory.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for r := 0; r < g.n; r++ {
		rows[r] = make([]int, g.n)
		copy(rows[r], g.data[r*g.n:(r+1)*g.n])
	}

	return rows
}

// Clone returns a deep copy of the grid.
// Complexity: O(n²) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]int, len(g.data))
	copy(data, g.data)

	return &Grid{n: g.n, data: data}
}
