package sequence

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Package-level tracer and meter; both are no-ops until the embedding
// program installs global providers.
var (
	tracer = otel.Tracer("iching.sequence")
	meter  = otel.Meter("iching.sequence")
)

var (
	pairSearches     metric.Int64Counter
	analysisDuration metric.Float64Histogram
	permutationOps   metric.Int64Histogram

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics initializes the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		var err error

		pairSearches, err = meter.Int64Counter(
			"sequence_pair_searches_total",
			metric.WithDescription("Shortest-path searches run for consecutive pairs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		analysisDuration, err = meter.Float64Histogram(
			"sequence_analysis_duration_seconds",
			metric.WithDescription("Duration of one sequence analysis"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		permutationOps, err = meter.Int64Histogram(
			"sequence_permutation_total_ops",
			metric.WithDescription("TotalOps of each random permutation analysed"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

func startAnalyzeSpan(ctx context.Context, length int, catalogue string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "sequence.Analyze",
		trace.WithAttributes(
			attribute.Int("sequence.length", length),
			attribute.String("sequence.catalogue", catalogue),
		),
	)
}

func recordAnalysis(ctx context.Context, a *Analysis, d time.Duration) {
	if err := initMetrics(); err != nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("catalogue", a.Catalogue.String()))
	if pairs := len(a.Sequence) - 1; pairs > 0 {
		pairSearches.Add(ctx, int64(pairs), attrs)
	}
	analysisDuration.Record(ctx, d.Seconds(), attrs)
}

func recordPermutation(ctx context.Context, a *Analysis) {
	if err := initMetrics(); err != nil {
		return
	}
	permutationOps.Record(ctx, int64(a.TotalOps))
}
