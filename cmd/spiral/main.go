// Command spiral prints a 10×10 grid filled with 1..100 along a clockwise
// inward spiral from the top-left corner.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvspiral/spiral"
)

const (
	gridSize  = 10
	cellWidth = 4
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("spiral: %v", err)
	}
}

// run renders the spiral to w followed by an empty line.
func run(w io.Writer) error {
	g, err := spiral.Generate(gridSize)
	if err != nil {
		return err
	}
	if err = g.Render(w, cellWidth); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)

	return err
}
