package wolff_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/isingmc/lattice"
	"github.com/katalvlaran/isingmc/wolff"
)

// ExampleSampler walks the sampler lifecycle on a 4×4 lattice.
func ExampleSampler() {
	g, _ := lattice.New(4, 4)
	ws, _ := wolff.NewSampler(g, 1.0, wolff.WithSeed(7))

	err := ws.Step()
	fmt.Println("before Randomize:", errors.Is(err, wolff.ErrNotInitialized))

	ws.Randomize()
	_ = ws.Run(100)
	conf, _ := ws.Configuration()
	fmt.Println("spins:", len(conf))
	fmt.Printf("p = %.4f\n", ws.AcceptProbability())

	// Output:
	// before Randomize: true
	// spins: 16
	// p = 0.8647
}
