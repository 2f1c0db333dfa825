package sequence

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/search"
)

// KingWen returns the traditional ordering 1..64.
func KingWen() []int {
	out := make([]int, core.NumHexagrams)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Analyze searches every consecutive pair of seq and aggregates the
// results. Every element is validated before any search runs.
func Analyze(seq []int, opts ...Option) (*Analysis, error) {
	return AnalyzeContext(context.Background(), seq, opts...)
}

// AnalyzeContext is Analyze with cancellation.
func AnalyzeContext(ctx context.Context, seq []int, opts ...Option) (*Analysis, error) {
	return analyze(ctx, seq, newConfig(opts...))
}

func analyze(ctx context.Context, seq []int, cfg config) (*Analysis, error) {
	for i, n := range seq {
		if _, err := core.HexagramByNumber(n); err != nil {
			return nil, fmt.Errorf("sequence: element %d: %w", i, err)
		}
	}

	ctx, span := startAnalyzeSpan(ctx, len(seq), cfg.catalogue.String())
	defer span.End()
	began := time.Now()

	a := &Analysis{
		Sequence:   append([]int(nil), seq...),
		Catalogue:  cfg.catalogue,
		TotalPaths: big.NewInt(1),
	}
	if len(seq) > 1 {
		a.ShortestPaths = make([][]search.Path, 0, len(seq)-1)
	}
	for i := 1; i < len(seq); i++ {
		paths, err := search.FindShortestPaths(seq[i-1], seq[i],
			search.WithCatalogue(cfg.catalogue),
			search.WithContext(ctx),
		)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "pair search failed")
			return nil, fmt.Errorf("sequence: %d -> %d: %w", seq[i-1], seq[i], err)
		}
		a.ShortestPaths = append(a.ShortestPaths, paths)
		a.TotalOps += paths[0].Len()
		a.TotalLineChanges += paths[0].LineChanges()
		a.TotalPaths.Mul(a.TotalPaths, big.NewInt(int64(len(paths))))
	}

	span.SetAttributes(
		attribute.Int("sequence.total_ops", a.TotalOps),
		attribute.Int("sequence.total_line_changes", a.TotalLineChanges),
	)
	recordAnalysis(ctx, a, time.Since(began))
	return a, nil
}
