// Package core_test provides benchmarks for hexagram lookups and edits.
package core_test

import (
	"testing"

	"github.com/martinmr/iching/core"
)

// BenchmarkHexagramByNumber measures the number → hexagram lookup.
func BenchmarkHexagramByNumber(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.HexagramByNumber(i%core.NumHexagrams + 1)
	}
}

// BenchmarkLookupHexagram measures the lines → hexagram lookup.
func BenchmarkLookupHexagram(b *testing.B) {
	// Collect every line pattern once
	all := core.Hexagrams()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.LookupHexagram(all[i%len(all)].Lines)
	}
}

// BenchmarkStructuralEdits measures the cost of the whole-hexagram edits,
// which must not allocate.
func BenchmarkStructuralEdits(b *testing.B) {
	h := core.MustHexagram(3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h = h.Inverse().Reverse().MirrorTrigrams().FlipTrigrams()
	}
	_ = h
}

// BenchmarkLineChanges measures the Hamming distance between two hexagrams.
func BenchmarkLineChanges(b *testing.B) {
	all := core.Hexagrams()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = all[i%len(all)].LineChanges(all[(i*7)%len(all)])
	}
}
