package wolff

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/isingmc/lattice"
)

// Sampler runs Wolff cluster updates at a fixed inverse temperature.
//
// The Sampler keeps a reference to its lattice.Model and never copies it;
// the model must stay unchanged for the Sampler's lifetime.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	model lattice.Model
	beta  float64
	prob  float64 // bond acceptance 1 - exp(-2β)

	opts Options
	rng  Source
	conf []int8 // nil until Randomize

	// arenas reused by every Step
	visited []bool
	queue   []int
	cluster []int
}

// NewSampler binds a Sampler to model at inverse temperature beta.
// The configuration starts uninitialized; call Randomize before Step.
//
// Returns ErrNilModel for a nil or empty model, ErrInvalidBeta for β ≤ 0 or
// non-finite β, or ErrOptionViolation for a bad Option.
func NewSampler(model lattice.Model, beta float64, opts ...Option) (*Sampler, error) {
	if model == nil {
		return nil, ErrNilModel
	}
	if !(beta > 0) || math.IsInf(beta, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBeta, beta)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := model.Size()
	if n < 1 {
		return nil, fmt.Errorf("%w: model has no sites", ErrNilModel)
	}
	s := &Sampler{
		model:   model,
		beta:    beta,
		prob:    -math.Expm1(-2 * beta),
		opts:    o,
		visited: make([]bool, n),
		queue:   make([]int, 0, n),
		cluster: make([]int, 0, n),
	}
	s.Seed(o.Seed)

	return s, nil
}

// Seed resets the generator to the deterministic stream for value.
// It does not touch the configuration and is valid in any state.
func (s *Sampler) Seed(value uint64) {
	s.rng = s.opts.Factory(value)
}

// Randomize replaces the configuration with Size() independent spins, each
// Up or Down with probability 1/2.
// Complexity: O(Size()).
func (s *Sampler) Randomize() {
	conf := make([]int8, s.model.Size())
	for i := range conf {
		conf[i] = 1 - 2*int8(s.rng.IntN(2))
	}
	s.conf = conf
}

// Ready reports whether Randomize has been called.
func (s *Sampler) Ready() bool {
	return s.conf != nil
}

// Configuration returns a copy of the current spins.
// Returns ErrNotInitialized before Randomize.
func (s *Sampler) Configuration() ([]int8, error) {
	if !s.Ready() {
		return nil, ErrNotInitialized
	}
	out := make([]int8, len(s.conf))
	copy(out, s.conf)

	return out, nil
}

// Step performs one Wolff cluster update:
//
//  1. Draw a uniform seed site.
//  2. Grow a cluster breadth-first: pop k; skip it if already in the cluster,
//     otherwise add it and, for each neighbor x with the same spin that is not
//     yet in the cluster, enqueue x when a uniform draw is below p.
//  3. Flip every spin in the cluster.
//
// A site may sit in the queue twice; it is expanded only once, so every bond
// leaving the cluster receives exactly one acceptance trial.
//
// Returns ErrNotInitialized before Randomize, without consuming any draw.
// Complexity: O(|cluster|·d).
func (s *Sampler) Step() error {
	if !s.Ready() {
		return ErrNotInitialized
	}
	n := len(s.conf)
	seed := s.rng.IntN(n)

	s.queue = append(s.queue[:0], seed)
	s.cluster = s.cluster[:0]
	for qi := 0; qi < len(s.queue); qi++ {
		k := s.queue[qi]
		if s.visited[k] {
			continue
		}
		s.visited[k] = true
		s.cluster = append(s.cluster, k)

		nbs, err := s.model.Neighbors(k)
		if err != nil {
			s.resetVisited()
			s.cluster = s.cluster[:0]
			return fmt.Errorf("wolff: neighbors of site %d: %w", k, err)
		}
		for _, x := range nbs {
			if s.conf[x] != s.conf[k] || s.visited[x] {
				continue
			}
			if s.rng.Float64() < s.prob {
				s.queue = append(s.queue, x)
			}
		}
	}

	for _, k := range s.cluster {
		s.conf[k] = -s.conf[k]
	}
	s.resetVisited()

	if ce := s.opts.Logger.Check(zap.DebugLevel, "wolff step"); ce != nil {
		ce.Write(zap.Int("seed", seed), zap.Int("cluster", len(s.cluster)))
	}
	if s.opts.OnCluster != nil {
		s.opts.OnCluster(s.cluster)
	}

	return nil
}

// Run performs n Steps. Returns ErrOptionViolation for n < 0 and
// ErrNotInitialized before Randomize.
func (s *Sampler) Run(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: step count cannot be negative (%d)", ErrOptionViolation, n)
	}
	for i := 0; i < n; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}

	return nil
}

// LastClusterSize returns the number of spins flipped by the latest Step,
// or 0 if Step has not run.
func (s *Sampler) LastClusterSize() int {
	return len(s.cluster)
}

// Beta returns the inverse temperature.
func (s *Sampler) Beta() float64 {
	return s.beta
}

// AcceptProbability returns the bond acceptance probability 1 − exp(−2β).
func (s *Sampler) AcceptProbability() float64 {
	return s.prob
}

// Model returns the lattice the Sampler is bound to.
func (s *Sampler) Model() lattice.Model {
	return s.model
}

// resetVisited clears only the flags set by the current cluster.
func (s *Sampler) resetVisited() {
	for _, k := range s.cluster {
		s.visited[k] = false
	}
}
