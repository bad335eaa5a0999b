package measure

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/isingmc/lattice"
	"github.com/katalvlaran/isingmc/wolff"
)

var (
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("measure: no samples")
	// ErrInvalidCount indicates a negative burn-in or sample count.
	ErrInvalidCount = errors.New("measure: counts must be non-negative")
	// ErrSiteOutOfRange indicates a correlation site outside the configuration.
	ErrSiteOutOfRange = errors.New("measure: site out of range")
)

// Summary reduces a sample set. Energy and magnetization figures are lattice
// totals; SpecificHeat and Susceptibility are per site. Variances are the
// unbiased sample variances.
type Summary struct {
	Samples              int
	MeanEnergy           float64
	EnergyVariance       float64
	MeanAbsMagnetization float64
	AbsMagnetizationVar  float64
	SpecificHeat         float64 // β²·Var(E)/N
	Susceptibility       float64 // β·Var(|M|)/N
}

// Collect draws n configurations from s. If s has not been randomized yet it
// is randomized first; then burnIn Steps are discarded and n snapshots are
// taken, each followed by one Step. ctx is checked before every Step.
func Collect(ctx context.Context, s *wolff.Sampler, burnIn, n int) ([][]int8, error) {
	if burnIn < 0 || n < 0 {
		return nil, fmt.Errorf("%w: burnIn=%d n=%d", ErrInvalidCount, burnIn, n)
	}
	if !s.Ready() {
		s.Randomize()
	}
	for i := 0; i < burnIn; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.Step(); err != nil {
			return nil, err
		}
	}

	samples := make([][]int8, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		conf, err := s.Configuration()
		if err != nil {
			return nil, err
		}
		samples = append(samples, conf)
		if err := s.Step(); err != nil {
			return nil, err
		}
	}
	return samples, nil
}

// Energies evaluates model.Energy for every sample.
// Returns lattice.ErrShapeMismatch if any sample has the wrong length.
func Energies(model lattice.Model, samples [][]int8) ([]float64, error) {
	if err := checkShapes(model, samples); err != nil {
		return nil, err
	}
	return lo.Map(samples, func(conf []int8, _ int) float64 {
		e, _ := model.Energy(conf)
		return e
	}), nil
}

// Magnetizations evaluates model.Magnetization for every sample.
// Returns lattice.ErrShapeMismatch if any sample has the wrong length.
func Magnetizations(model lattice.Model, samples [][]int8) ([]float64, error) {
	if err := checkShapes(model, samples); err != nil {
		return nil, err
	}
	return lo.Map(samples, func(conf []int8, _ int) float64 {
		m, _ := model.Magnetization(conf)
		return m
	}), nil
}

// Summarize reduces samples drawn at beta into a Summary.
// Returns ErrNoSamples for an empty set.
func Summarize(model lattice.Model, beta float64, samples [][]int8) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}
	energies, err := Energies(model, samples)
	if err != nil {
		return Summary{}, err
	}
	mags, err := Magnetizations(model, samples)
	if err != nil {
		return Summary{}, err
	}
	absMags := lo.Map(mags, func(m float64, _ int) float64 { return math.Abs(m) })

	sum := Summary{Samples: len(samples)}
	sum.MeanEnergy, sum.EnergyVariance = meanVariance(energies)
	sum.MeanAbsMagnetization, sum.AbsMagnetizationVar = meanVariance(absMags)
	n := float64(model.Size())
	sum.SpecificHeat = beta * beta * sum.EnergyVariance / n
	sum.Susceptibility = beta * sum.AbsMagnetizationVar / n

	return sum, nil
}

// Correlation returns the connected two-point function ⟨s_i·s_j⟩ − ⟨s_i⟩⟨s_j⟩.
func Correlation(samples [][]int8, i, j int) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	var two, one0, one1 int
	for _, conf := range samples {
		if i < 0 || j < 0 || i >= len(conf) || j >= len(conf) {
			return 0, fmt.Errorf("%w: (%d,%d) on %d sites", ErrSiteOutOfRange, i, j, len(conf))
		}
		two += int(conf[i]) * int(conf[j])
		one0 += int(conf[i])
		one1 += int(conf[j])
	}
	n := float64(len(samples))

	return float64(two)/n - float64(one0)/n*float64(one1)/n, nil
}

// meanVariance returns a zero variance for a single sample instead of NaN.
func meanVariance(x []float64) (mean, variance float64) {
	if len(x) == 1 {
		return x[0], 0
	}
	return stat.MeanVariance(x, nil)
}

func checkShapes(model lattice.Model, samples [][]int8) error {
	n := model.Size()
	if bad, ok := lo.Find(samples, func(conf []int8) bool { return len(conf) != n }); ok {
		return fmt.Errorf("%w: sample of length %d, want %d", lattice.ErrShapeMismatch, len(bad), n)
	}
	return nil
}
