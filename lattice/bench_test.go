package lattice_test

import (
	"testing"

	"github.com/katalvlaran/isingmc/lattice"
)

// BenchmarkEnergy measures Energy on a 256×256 all-up configuration.
// Complexity: O(rows×cols)
func BenchmarkEnergy(b *testing.B) {
	g, err := lattice.New(256, 256)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	conf := make([]int8, g.Size())
	for i := range conf {
		conf[i] = lattice.Up
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Energy(conf)
	}
}

// BenchmarkNeighbors measures neighbor enumeration over every site.
func BenchmarkNeighbors(b *testing.B) {
	g, err := lattice.New(256, 256)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < g.Size(); idx++ {
			_, _ = g.Neighbors(idx)
		}
	}
}
