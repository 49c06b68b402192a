package spiral

// Test bridge: exposes the single-step kernel to spiral_test.

// Advance runs one move attempt in the current direction.
func (f *Filler) Advance() error { return f.advance() }

// Turn rotates the direction as a blocked step would.
func (f *Filler) Turn(cause error) { f.turn(cause) }

// Place writes the next counter value at the cursor.
func (f *Filler) Place() {
	f.count++
	f.place()
}
