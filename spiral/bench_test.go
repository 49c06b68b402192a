package spiral_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvspiral/spiral"
)

// BenchmarkGenerate measures a full spiral fill for several sizes.
// Complexity: O(N²)
func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := spiral.Generate(n); err != nil {
					b.Fatalf("Generate(%d): %v", n, err)
				}
			}
		})
	}
}

// BenchmarkGenerate_HookOverhead compares a fill with and without an OnFill hook.
func BenchmarkGenerate_HookOverhead(b *testing.B) {
	const n = 300
	var sink int
	hook := spiral.WithOnFill(func(v int, at spiral.Cursor) { sink += v + at.Row })

	b.Run("NoHook", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = spiral.Generate(n)
		}
	})
	b.Run("OnFill", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = spiral.Generate(n, hook)
		}
	})
	_ = sink
}
