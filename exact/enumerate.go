package exact

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/isingmc/lattice"
)

// MaxSites bounds the lattice size accepted by enumeration (2^20 states).
const MaxSites = 20

var (
	// ErrTooLarge indicates a lattice or configuration too large to enumerate or encode.
	ErrTooLarge = errors.New("exact: too many sites")
	// ErrInvalidSpin indicates a spin value other than +1 or -1.
	ErrInvalidSpin = errors.New("exact: spin must be +1 or -1")
	// ErrInvalidBeta indicates β ≤ 0 or non-finite β.
	ErrInvalidBeta = errors.New("exact: beta must be a finite positive number")
	// ErrNilModel indicates a nil lattice.Model.
	ErrNilModel = errors.New("exact: model is nil")
)

// Thermal holds exact Boltzmann averages over every configuration.
// Energy and magnetization moments are lattice totals; SpecificHeat and
// Susceptibility are per site.
type Thermal struct {
	Energy           float64 // ⟨E⟩
	EnergySq         float64 // ⟨E²⟩
	AbsMagnetization float64 // ⟨|M|⟩
	MagnetizationSq  float64 // ⟨M²⟩
	SpecificHeat     float64 // β²(⟨E²⟩ − ⟨E⟩²)/N
	Susceptibility   float64 // β(⟨M²⟩ − ⟨|M|⟩²)/N
}

// SpinsFromBits decodes state index k into n spins: bit i set ⇒ Down.
func SpinsFromBits(n int, k uint64) []int8 {
	conf := make([]int8, n)
	fill(conf, k)
	return conf
}

// BitsFromSpins encodes conf back into its state index.
// Returns ErrTooLarge for more than 64 spins, ErrInvalidSpin for values outside ±1.
func BitsFromSpins(conf []int8) (uint64, error) {
	if len(conf) > 64 {
		return 0, fmt.Errorf("%w: %d spins do not fit in 64 bits", ErrTooLarge, len(conf))
	}
	var k uint64
	for i, s := range conf {
		switch s {
		case lattice.Up:
		case lattice.Down:
			k |= 1 << uint(i)
		default:
			return 0, fmt.Errorf("%w: site %d holds %d", ErrInvalidSpin, i, s)
		}
	}
	return k, nil
}

// Probabilities returns the normalized Boltzmann weight exp(−βE)/Z of every
// state index in [0, 2^N).
//
// Time:   O(2^N · N).
// Memory: O(2^N).
func Probabilities(model lattice.Model, beta float64) ([]float64, error) {
	if err := validate(model, beta); err != nil {
		return nil, err
	}
	n := model.Size()
	ground := groundEnergy(model)
	probs := make([]float64, 1<<uint(n))
	conf := make([]int8, n)

	var z float64
	for k := range probs {
		fill(conf, uint64(k))
		e, err := model.Energy(conf)
		if err != nil {
			return nil, err
		}
		probs[k] = math.Exp(-beta * (e - ground))
		z += probs[k]
	}
	for k := range probs {
		probs[k] /= z
	}
	return probs, nil
}

// Averages returns the exact thermal averages of model at beta.
//
// Time:   O(2^N · N).
// Memory: O(N).
func Averages(model lattice.Model, beta float64) (Thermal, error) {
	if err := validate(model, beta); err != nil {
		return Thermal{}, err
	}
	n := model.Size()
	ground := groundEnergy(model)
	conf := make([]int8, n)

	var z, e1, e2, m1, m2 float64
	for k := uint64(0); k < 1<<uint(n); k++ {
		fill(conf, k)
		e, err := model.Energy(conf)
		if err != nil {
			return Thermal{}, err
		}
		m, err := model.Magnetization(conf)
		if err != nil {
			return Thermal{}, err
		}
		w := math.Exp(-beta * (e - ground))
		z += w
		e1 += w * e
		e2 += w * e * e
		m1 += w * math.Abs(m)
		m2 += w * m * m
	}
	th := Thermal{
		Energy:           e1 / z,
		EnergySq:         e2 / z,
		AbsMagnetization: m1 / z,
		MagnetizationSq:  m2 / z,
	}
	th.SpecificHeat = beta * beta * (th.EnergySq - th.Energy*th.Energy) / float64(n)
	th.Susceptibility = beta * (th.MagnetizationSq - th.AbsMagnetization*th.AbsMagnetization) / float64(n)

	return th, nil
}

func validate(model lattice.Model, beta float64) error {
	if model == nil {
		return ErrNilModel
	}
	if !(beta > 0) || math.IsInf(beta, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidBeta, beta)
	}
	if n := model.Size(); n > MaxSites {
		return fmt.Errorf("%w: %d sites, limit %d", ErrTooLarge, n, MaxSites)
	}
	return nil
}

// groundEnergy is the ferromagnetic minimum −|bonds|, used to keep weights ≤ 1.
func groundEnergy(model lattice.Model) float64 {
	return -float64(len(model.AllBonds()))
}

func fill(conf []int8, k uint64) {
	for i := range conf {
		conf[i] = 1 - 2*int8((k>>uint(i))&1)
	}
}
