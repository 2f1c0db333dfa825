// Package sequence analyses chains of hexagrams with package search.
//
// For a sequence s0, s1, ..., sn the shortest paths of every consecutive
// pair (si-1, si) are computed with the line-change tie-break enabled, and
// aggregated into an Analysis:
//
//   - TotalOps: sum of edge counts of the representative path of each pair.
//   - TotalLineChanges: sum of line changes of the same representatives.
//   - TotalPaths: product of the number of surviving paths per pair, as a
//     *big.Int; 1 for sequences with fewer than two elements.
//
// The representative of a pair is the first path that survives filtering,
// which is fixed by catalogue order.
//
// Random comparison
//
//	RandomAnalyses shuffles the King Wen sequence n times and analyses the
//	permutations on a bounded errgroup. Permutation i is shuffled by a PCG
//	seeded from (seed, i), so a fixed seed reproduces every permutation
//	regardless of worker count or scheduling. FindMinRandom reduces the
//	results single-threaded by TotalOps, keeping the lowest index on ties.
//
// Sequence expressions
//
//	ParseSequence accepts comma-separated numbers and inclusive ranges,
//	e.g. "1-10, 12, 64-60" or "all".
//
// Telemetry
//
//	Analyses open spans on the global OpenTelemetry tracer and record a
//	pair-search counter, an analysis-duration histogram and a histogram of
//	permutation TotalOps on the global meter. Batch runs carry a UUID run id
//	in span attributes and log fields.
package sequence
