package wolff

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for sampler construction and use.
var (
	// ErrNilModel is returned when NewSampler receives a nil lattice.Model.
	ErrNilModel = errors.New("wolff: model is nil")

	// ErrInvalidBeta is returned for β ≤ 0, NaN or ±Inf.
	ErrInvalidBeta = errors.New("wolff: beta must be a finite positive number")

	// ErrNotInitialized is returned by Configuration and Step before Randomize.
	ErrNotInitialized = errors.New("wolff: configuration not initialized; call Randomize first")

	// ErrOptionViolation is returned when an invalid Option or argument is supplied.
	ErrOptionViolation = errors.New("wolff: invalid option supplied")
)

// Source is the stream of uniform draws a Sampler consumes.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n).
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// SourceFactory builds a fresh, deterministic Source from a seed.
type SourceFactory func(seed uint64) Source

// Option configures a Sampler via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by NewSampler.
type Option func(*Options)

// Options holds the tunables of a Sampler.
type Options struct {
	// Seed initializes the generator at construction.
	Seed uint64

	// Factory builds the generator for Seed and for every later Seed call.
	Factory SourceFactory

	// Logger receives one Debug entry per Step.
	Logger *zap.Logger

	// OnCluster, if set, is called after each Step with the flipped sites.
	// The slice is reused by the next Step and must not be retained.
	OnCluster func(cluster []int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Seed == DefaultSeed
//   - Factory == MT19937
//   - a no-op logger
//   - no cluster hook.
func DefaultOptions() Options {
	return Options{
		Seed:    DefaultSeed,
		Factory: MT19937,
		Logger:  zap.NewNop(),
	}
}

// WithSeed sets the construction-time seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithSourceFactory replaces the default MT19937 generator.
// A nil factory is an ErrOptionViolation.
func WithSourceFactory(f SourceFactory) Option {
	return func(o *Options) {
		if f == nil {
			o.err = fmt.Errorf("%w: source factory cannot be nil", ErrOptionViolation)
			return
		}
		o.Factory = f
	}
}

// WithLogger sets the logger. A nil logger is an ErrOptionViolation.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: logger cannot be nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

// WithOnCluster registers a hook that observes each flipped cluster.
func WithOnCluster(fn func(cluster []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCluster = fn
		}
	}
}
