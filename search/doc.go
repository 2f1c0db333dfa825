// Package search provides an exhaustive breadth-first search over the
// hexagram transformation graph, returning every shortest path between two
// hexagrams with a secondary tie-break on total line changes.
//
// What
//
//   - The frontier holds whole paths, not vertices. It is seeded with the
//     one-step path [(start, NoOp)].
//   - Each popped path is extended by every operation of the selected
//     catalogue, in catalogue order. A result already present on that path
//     is skipped; cycle avoidance is per path, not global, so the same
//     hexagram may appear on many paths in the frontier.
//   - A result equal to the goal is recorded and the level is finished, so
//     all shortest paths discovered at that depth are captured.
//   - The search stops at the first popped path that is at least as long as
//     the recorded ones.
//   - Unless WithAll(true), the results are filtered to those whose summed
//     per-step line changes (Hamming distance) are minimal.
//
// Determinism
//
//	Catalogue order fixes the enqueue order, so both the set and the order
//	of returned paths are reproducible. All tied-minimal paths are
//	returned; none is dropped in favour of the first discovered.
//
// Complexity (b = catalogue size, d = distance ≤ 3 for both catalogues)
//
//   - Time:   O(b^d · d) path extensions
//   - Memory: O(b^d · d) for the frontier of paths
//
// Usage
//
//	paths, err := search.FindShortestPaths(1, 3)
//	if err != nil {
//		// ErrInvalidStart, ErrInvalidEnd, ErrOptionViolation, ErrNoPath, ctx.Err()
//	}
//
//	s, err := search.New(1, 64,
//		search.WithCatalogue(ops.Extended),
//		search.WithAll(true),
//		search.WithContext(ctx),
//	)
//	paths, err = s.FindShortestPaths()
//
// Options
//
//   - DefaultOptions(): background context, Canonical catalogue, filtering on.
//   - WithAll(all):          keep every shortest path.
//   - WithCatalogue(c):      ops.Canonical or ops.Extended.
//   - WithContext(ctx):      cancellation, checked once per dequeue.
//   - WithMaxDepth(d):       bound path length (d>0); 0 means no limit.
//   - WithOnEnqueue/WithOnDequeue/WithOnGoal(fn): observation hooks.
//
// Errors
//
//   - ErrInvalidStart / ErrInvalidEnd  wrap core.ErrInvalidHexagram.
//   - ErrOptionViolation               invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath                        frontier exhausted (only under MaxDepth).
package search
