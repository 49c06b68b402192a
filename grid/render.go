package grid

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the grid to w as N lines. Each cell is right-aligned in a
// field of width characters with no other separator, and every row ends
// with a newline. Values wider than the field are printed in full.
// Returns ErrBadWidth when width < 1; writer failures are wrapped.
// Complexity: O(n²).
func (g *Grid) Render(w io.Writer, width int) error {
	if width < 1 {
		return fmt.Errorf("Grid.Render(width=%d): %w", width, ErrBadWidth)
	}
	if _, err := io.WriteString(w, g.format(width)); err != nil {
		return fmt.Errorf("Grid.Render: write: %w", err)
	}

	return nil
}

// String implements fmt.Stringer using DefaultCellWidth.
func (g *Grid) String() string {
	return g.format(DefaultCellWidth)
}

// format builds the whole rendering in memory so that Render issues one write.
func (g *Grid) format(width int) string {
	var sb strings.Builder
	sb.Grow(g.n * (g.n*width + 1))
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			fmt.Fprintf(&sb, "%*d", width, g.data[r*g.n+c])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
