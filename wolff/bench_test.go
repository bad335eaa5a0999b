package wolff_test

import (
	"testing"

	"github.com/katalvlaran/isingmc/exact"
	"github.com/katalvlaran/isingmc/lattice"
	"github.com/katalvlaran/isingmc/wolff"
)

// BenchmarkStep_Critical measures one cluster update on a 64×64 lattice at β_c,
// where clusters span a large fraction of the lattice.
func BenchmarkStep_Critical(b *testing.B) {
	g, err := lattice.New(64, 64)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	ws, err := wolff.NewSampler(g, exact.CriticalBeta, wolff.WithSeed(42))
	if err != nil {
		b.Fatalf("setup NewSampler failed: %v", err)
	}
	ws.Randomize()
	_ = ws.Run(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ws.Step()
	}
}
