package ensemble

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/isingmc/lattice"
	"github.com/katalvlaran/isingmc/measure"
	"github.com/katalvlaran/isingmc/wolff"
)

// Option configures Run.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for run and worker events.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WorkerResult is the outcome of one sampler.
type WorkerResult struct {
	Worker int
	Seed   uint64
	measure.Summary

	// MeanClusterSize averages the flipped cluster size over every Step,
	// burn-in included.
	MeanClusterSize float64
}

// Result collects every worker and the pooled summary over all samples.
type Result struct {
	Config  Config
	Workers []WorkerResult
	Pooled  measure.Summary
}

// Run validates cfg and executes cfg.Workers independent samplers.
// The first worker error cancels the others and is returned.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	g, err := lattice.New(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, err
	}
	o.logger.Info("ensemble started",
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Float64("beta", cfg.Beta),
		zap.Int("workers", cfg.Workers),
	)

	results := make([]WorkerResult, cfg.Workers)
	samples := make([][][]int8, cfg.Workers)

	eg, egCtx := errgroup.WithContext(ctx)
	if cfg.Parallelism > 0 {
		eg.SetLimit(cfg.Parallelism)
	}
	for w := 0; w < cfg.Workers; w++ {
		eg.Go(func() error {
			res, smp, err := runWorker(egCtx, g, cfg, w, o.logger.With(zap.Int("worker", w)))
			if err != nil {
				return fmt.Errorf("ensemble: worker %d: %w", w, err)
			}
			results[w], samples[w] = res, smp
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	pooled, err := measure.Summarize(g, cfg.Beta, lo.Flatten(samples))
	if err != nil {
		return Result{}, err
	}
	o.logger.Info("ensemble finished",
		zap.Int("samples", pooled.Samples),
		zap.Float64("meanEnergy", pooled.MeanEnergy),
		zap.Float64("meanAbsMagnetization", pooled.MeanAbsMagnetization),
	)

	return Result{Config: cfg, Workers: results, Pooled: pooled}, nil
}

func runWorker(ctx context.Context, g *lattice.Grid, cfg Config, w int, log *zap.Logger) (WorkerResult, [][]int8, error) {
	seed := wolff.DeriveSeed(cfg.Seed, uint64(w))
	var steps, flipped int
	ws, err := wolff.NewSampler(g, cfg.Beta,
		wolff.WithSeed(seed),
		wolff.WithLogger(log),
		wolff.WithOnCluster(func(c []int) {
			steps++
			flipped += len(c)
		}),
	)
	if err != nil {
		return WorkerResult{}, nil, err
	}

	smp, err := measure.Collect(ctx, ws, cfg.BurnIn, cfg.Samples)
	if err != nil {
		return WorkerResult{}, nil, err
	}
	sum, err := measure.Summarize(g, cfg.Beta, smp)
	if err != nil {
		return WorkerResult{}, nil, err
	}
	res := WorkerResult{Worker: w, Seed: seed, Summary: sum}
	if steps > 0 {
		res.MeanClusterSize = float64(flipped) / float64(steps)
	}
	log.Debug("worker finished",
		zap.Uint64("seed", seed),
		zap.Float64("meanEnergy", sum.MeanEnergy),
		zap.Float64("meanClusterSize", res.MeanClusterSize),
	)

	return res, smp, nil
}
