package exact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mathext"
)

// CriticalBeta is the exact inverse critical temperature ln(1+√2)/2 of the
// infinite square lattice with unit coupling.
var CriticalBeta = math.Log(1+math.Sqrt2) / 2

// OnsagerEnergy returns the energy per site of the infinite square-lattice
// Ising model at beta:
//
//	u(β) = −coth(2β)·[1 + (2/π)(2tanh²(2β) − 1)·K(m)],  m = 4k/(1+k)²,  k = 1/sinh²(2β)
//
// where K is the complete elliptic integral of the first kind in parameter
// form. At m = 1 the K term vanishes and u = −√2.
//
// Returns ErrInvalidBeta for β ≤ 0 or non-finite β.
func OnsagerEnergy(beta float64) (float64, error) {
	if !(beta > 0) || math.IsInf(beta, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidBeta, beta)
	}
	t := math.Tanh(2 * beta)
	sh := math.Sinh(2 * beta)
	k := 1 / (sh * sh)
	m := 4 * k / ((1 + k) * (1 + k))
	if m >= 1 {
		return -math.Sqrt2, nil
	}

	return -(1 / t) * (1 + 2/math.Pi*(2*t*t-1)*mathext.CompleteK(m)), nil
}
