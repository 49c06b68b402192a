// Package lvspiral generates square grids filled with 1..N² along a
// clockwise inward spiral that starts at the top-left cell.
//
// Subpackages:
//
//	grid/       square, bounds-checked int store + fixed-width rendering
//	spiral/     Direction cycle, Cursor, Filler (the traversal) and hooks
//	cmd/spiral/ prints the 10×10 spiral with 4-character fields
//
// Quick ASCII example (N=3):
//
//	   1   2   3
//	   8   9   4
//	   7   6   5
//
//	go run github.com/katalvlaran/lvspiral/cmd/spiral
package lvspiral
