package sequence

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Permutation returns the i-th shuffled King Wen sequence for base seed.
// The same (seed, i) always yields the same permutation.
func Permutation(seed uint64, i int) []int {
	seq := KingWen()
	rng := rand.New(rand.NewPCG(seed, uint64(i)))
	rng.Shuffle(len(seq), func(a, b int) { seq[a], seq[b] = seq[b], seq[a] })
	return seq
}

// RandomAnalyses analyses n random permutations of the King Wen sequence
// concurrently. Result i always belongs to Permutation(seed, i); each worker
// writes only its own slot, so no locking is involved.
//
// The first failing permutation cancels the rest and its error is returned.
func RandomAnalyses(ctx context.Context, n int, opts ...Option) ([]*Analysis, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSampleCount, n)
	}
	cfg := newConfig(opts...)
	seed := cfg.seed
	if cfg.rng != nil {
		seed = cfg.rng.Uint64()
	}

	runID := uuid.NewString()
	ctx, span := tracer.Start(ctx, "sequence.RandomAnalyses",
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("run.samples", n),
			attribute.Int("run.workers", cfg.workers),
		),
	)
	defer span.End()

	log := cfg.logger.With(zap.String("run_id", runID))
	log.Debug("random analyses started",
		zap.Int("samples", n),
		zap.Int("workers", cfg.workers),
		zap.Uint64("seed", seed),
		zap.Stringer("catalogue", cfg.catalogue),
	)
	began := time.Now()

	results := make([]*Analysis, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			a, err := analyze(gctx, Permutation(seed, i), cfg)
			if err != nil {
				return fmt.Errorf("sequence: permutation %d: %w", i, err)
			}
			results[i] = a
			recordPermutation(gctx, a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "random analyses failed")
		log.Warn("random analyses failed", zap.Error(err))
		return nil, err
	}

	log.Debug("random analyses finished", zap.Duration("elapsed", time.Since(began)))
	return results, nil
}

// MinByOps returns the analysis with the fewest TotalOps. Ties keep the
// earliest one, so the reduction is deterministic for a fixed input order.
// Returns nil for an empty slice.
func MinByOps(analyses []*Analysis) *Analysis {
	var best *Analysis
	for _, a := range analyses {
		if a == nil {
			continue
		}
		if best == nil || a.TotalOps < best.TotalOps {
			best = a
		}
	}
	return best
}

// FindMinRandom analyses n random permutations and returns the one
// requiring the fewest operations, lowest permutation index first on ties.
func FindMinRandom(ctx context.Context, n int, opts ...Option) (*Analysis, error) {
	results, err := RandomAnalyses(ctx, n, opts...)
	if err != nil {
		return nil, err
	}
	return MinByOps(results), nil
}
