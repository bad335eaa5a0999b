package ensemble_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/isingmc/ensemble"
	"github.com/katalvlaran/isingmc/exact"
	"github.com/katalvlaran/isingmc/wolff"
)

//----------------------------------------------------------------------------//
// Config Tests
//----------------------------------------------------------------------------//

// TestDecode_OverlaysDefaults checks JSON-style numbers decode into typed fields.
func TestDecode_OverlaysDefaults(t *testing.T) {
	cfg, err := ensemble.Decode(map[string]any{
		"rows":    float64(3),
		"cols":    4,
		"beta":    0.3,
		"seed":    "17",
		"workers": float64(2),
	})
	require.NoError(t, err)

	want := ensemble.DefaultConfig()
	want.Rows, want.Cols, want.Beta, want.Seed, want.Workers = 3, 4, 0.3, 17, 2
	assert.Equal(t, want, cfg)
}

// TestDecode_Errors checks unknown keys and invalid values are rejected.
func TestDecode_Errors(t *testing.T) {
	cases := map[string]map[string]any{
		"UnknownKey":  {"temperature": 2.0},
		"BadType":     {"rows": "many"},
		"ZeroRows":    {"rows": 0},
		"NegBeta":     {"beta": -1.0},
		"NoWorkers":   {"workers": 0},
		"NoSamples":   {"samples": 0},
		"NegBurnIn":   {"burnIn": -5},
		"NegParallel": {"parallelism": -1},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ensemble.Decode(input)
			assert.ErrorIs(t, err, ensemble.ErrInvalidConfig)
		})
	}
}

// TestDefaultConfig_Valid checks the defaults pass validation.
func TestDefaultConfig_Valid(t *testing.T) {
	cfg := ensemble.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, exact.CriticalBeta, cfg.Beta, 1e-15)
}

//----------------------------------------------------------------------------//
// Run Tests
//----------------------------------------------------------------------------//

func smallConfig() ensemble.Config {
	return ensemble.Config{
		Rows:        3,
		Cols:        3,
		Beta:        0.4,
		Seed:        5,
		Workers:     4,
		Parallelism: 2,
		BurnIn:      100,
		Samples:     2000,
	}
}

// TestRun_Reproducible checks that a run is a pure function of its config.
func TestRun_Reproducible(t *testing.T) {
	cfg := smallConfig()

	a, err := ensemble.Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := ensemble.Run(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	require.Len(t, a.Workers, cfg.Workers)
	assert.Equal(t, cfg.Workers*cfg.Samples, a.Pooled.Samples)
	for w, res := range a.Workers {
		assert.Equal(t, w, res.Worker)
		assert.Equal(t, wolff.DeriveSeed(cfg.Seed, uint64(w)), res.Seed)
		assert.Equal(t, cfg.Samples, res.Samples)
		assert.GreaterOrEqual(t, res.MeanClusterSize, 1.0)
		assert.LessOrEqual(t, res.MeanClusterSize, 9.0)
	}
	assert.NotEqual(t, a.Workers[0].MeanEnergy, a.Workers[1].MeanEnergy, "workers must use distinct streams")
}

// TestRun_PooledNearExact checks the pooled mean energy against enumeration.
func TestRun_PooledNearExact(t *testing.T) {
	if testing.Short() {
		t.Skip("long stochastic test")
	}
	cfg := smallConfig()
	cfg.Samples = 10000

	res, err := ensemble.Run(context.Background(), cfg)
	require.NoError(t, err)
	want, err := exact.Averages(mustGrid(t, cfg.Rows, cfg.Cols), cfg.Beta)
	require.NoError(t, err)
	assert.InDelta(t, want.Energy, res.Pooled.MeanEnergy, 0.25)
}

// TestRun_Errors covers invalid config and cancellation.
func TestRun_Errors(t *testing.T) {
	bad := smallConfig()
	bad.Workers = 0
	_, err := ensemble.Run(context.Background(), bad)
	assert.ErrorIs(t, err, ensemble.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ensemble.Run(ctx, smallConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_Logging checks start and finish events reach the logger.
func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	cfg := smallConfig()
	cfg.Samples = 10

	_, err := ensemble.Run(context.Background(), cfg, ensemble.WithLogger(zap.New(core)))
	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterMessage("ensemble started").Len())
	assert.Equal(t, 1, logs.FilterMessage("ensemble finished").Len())
	assert.Zero(t, logs.FilterMessage("wolff step").Len(), "debug entries must be filtered at info level")
}
