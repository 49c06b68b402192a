package spiral_test

import (
	"testing"

	"github.com/katalvlaran/lvspiral/spiral"
	"github.com/stretchr/testify/assert"
)

// TestDirection_Offset pins the (row, col) delta of every direction.
func TestDirection_Offset(t *testing.T) {
	cases := []struct {
		dir        spiral.Direction
		dRow, dCol int
	}{
		{spiral.Right, 0, 1},
		{spiral.Down, 1, 0},
		{spiral.Left, 0, -1},
		{spiral.Up, -1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dr, dc := tc.dir.Offset()
			assert.Equal(t, tc.dRow, dr, "row delta")
			assert.Equal(t, tc.dCol, dc, "col delta")
		})
	}
}

// TestDirection_NextCycle verifies the clockwise order and wrap-around.
func TestDirection_NextCycle(t *testing.T) {
	assert.Equal(t, spiral.Down, spiral.Right.Next())
	assert.Equal(t, spiral.Left, spiral.Down.Next())
	assert.Equal(t, spiral.Up, spiral.Left.Next())
	assert.Equal(t, spiral.Right, spiral.Up.Next())

	d := spiral.Right
	for i := 0; i < 4; i++ {
		d = d.Next()
	}
	assert.Equal(t, spiral.Right, d, "four rotations return to the start")
}

// TestDirection_String covers named and out-of-range values.
func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Right", spiral.Right.String())
	assert.Equal(t, "Up", spiral.Up.String())
	assert.Equal(t, "Direction(7)", spiral.Direction(7).String())
}

// TestCursor_Step checks that Step applies the offset without bounds checks.
func TestCursor_Step(t *testing.T) {
	c := spiral.Cursor{Row: 0, Col: 0}
	assert.Equal(t, spiral.Cursor{Row: 0, Col: 1}, c.Step(spiral.Right))
	assert.Equal(t, spiral.Cursor{Row: 1, Col: 0}, c.Step(spiral.Down))
	assert.Equal(t, spiral.Cursor{Row: 0, Col: -1}, c.Step(spiral.Left))
	assert.Equal(t, spiral.Cursor{Row: -1, Col: 0}, c.Step(spiral.Up))
}
