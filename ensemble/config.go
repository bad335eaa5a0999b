package ensemble

import (
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidConfig indicates a Config that fails validation or decoding.
var ErrInvalidConfig = errors.New("ensemble: invalid config")

// Config describes one ensemble run.
type Config struct {
	Rows int     `mapstructure:"rows"`
	Cols int     `mapstructure:"cols"`
	Beta float64 `mapstructure:"beta"`

	// Seed is the base seed; worker w uses wolff.DeriveSeed(Seed, w).
	Seed uint64 `mapstructure:"seed"`

	// Workers is the number of independent samplers.
	Workers int `mapstructure:"workers"`

	// Parallelism caps concurrently running workers; 0 means no cap.
	Parallelism int `mapstructure:"parallelism"`

	// BurnIn Steps are discarded by each worker before sampling.
	BurnIn int `mapstructure:"burnIn"`

	// Samples is the number of configurations each worker records.
	Samples int `mapstructure:"samples"`
}

// DefaultConfig returns a 16×16 lattice at the critical point with four
// workers of 1000 samples each after 200 burn-in Steps.
func DefaultConfig() Config {
	return Config{
		Rows:    16,
		Cols:    16,
		Beta:    math.Log(1+math.Sqrt2) / 2,
		Seed:    1,
		Workers: 4,
		BurnIn:  200,
		Samples: 1000,
	}
}

// Decode overlays input onto DefaultConfig and validates the result.
// Numeric values are converted loosely (JSON numbers decode as float64);
// unknown keys are rejected.
func Decode(input map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(input); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first field out of range as ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return fmt.Errorf("%w: lattice %d×%d", ErrInvalidConfig, c.Rows, c.Cols)
	case !(c.Beta > 0) || math.IsInf(c.Beta, 0):
		return fmt.Errorf("%w: beta %v", ErrInvalidConfig, c.Beta)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	case c.Parallelism < 0:
		return fmt.Errorf("%w: parallelism %d", ErrInvalidConfig, c.Parallelism)
	case c.BurnIn < 0:
		return fmt.Errorf("%w: burnIn %d", ErrInvalidConfig, c.BurnIn)
	case c.Samples < 1:
		return fmt.Errorf("%w: samples %d", ErrInvalidConfig, c.Samples)
	}
	return nil
}
