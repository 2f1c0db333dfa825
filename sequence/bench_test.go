package sequence_test

import (
	"context"
	"testing"

	"github.com/martinmr/iching/sequence"
)

// BenchmarkAnalyze_KingWen measures the 63 pair searches of the King Wen
// sequence.
func BenchmarkAnalyze_KingWen(b *testing.B) {
	kw := sequence.KingWen()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = sequence.Analyze(kw)
	}
}

// BenchmarkFindMinRandom_16 measures a best-of-16 run on all cores.
func BenchmarkFindMinRandom_16(b *testing.B) {
	ctx := context.Background()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = sequence.FindMinRandom(ctx, 16, sequence.WithSeed(uint64(i)))
	}
}
