package lattice

import "fmt"

// AllBonds enumerates every nearest-neighbor bond exactly once: first the
// horizontal bonds (i,j)–(i,j+1) row by row, then the vertical bonds
// (i,j)–(i+1,j). Periodic wraparound bonds are never included.
// The slice is built fresh on every call.
//
// Time:   O(rows×cols).
// Memory: O(rows*(cols-1) + cols*(rows-1)).
func (g *Grid) AllBonds() []Bond {
	bonds := make([]Bond, 0, g.rows*(g.cols-1)+g.cols*(g.rows-1))
	for i := 0; i < g.rows; i++ {
		for j := 0; j+1 < g.cols; j++ {
			bonds = append(bonds, Bond{A: g.index(i, j), B: g.index(i, j+1)})
		}
	}
	for i := 0; i+1 < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			bonds = append(bonds, Bond{A: g.index(i, j), B: g.index(i+1, j)})
		}
	}

	return bonds
}

// Energy returns Σ over AllBonds of −conf[a]·conf[b].
// Returns ErrShapeMismatch if len(conf) != Size().
// Complexity: O(rows×cols).
func (g *Grid) Energy(conf []int8) (float64, error) {
	if err := g.checkShape(conf); err != nil {
		return 0, err
	}
	var sum int
	for _, b := range g.AllBonds() {
		sum -= int(conf[b.A]) * int(conf[b.B])
	}

	return float64(sum), nil
}

// Magnetization returns the sum of all spin values.
// Returns ErrShapeMismatch if len(conf) != Size().
// Complexity: O(rows×cols).
func (g *Grid) Magnetization(conf []int8) (float64, error) {
	if err := g.checkShape(conf); err != nil {
		return 0, err
	}
	var sum int
	for _, s := range conf {
		sum += int(s)
	}

	return float64(sum), nil
}

func (g *Grid) checkShape(conf []int8) error {
	if len(conf) != g.Size() {
		return fmt.Errorf("%w: got %d spins, want %d", ErrShapeMismatch, len(conf), g.Size())
	}

	return nil
}
