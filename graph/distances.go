// SPDX-License-Identifier: MIT
// Package: graph
//
// Purpose:
//   - All-pairs hop distances over the 64-vertex transformation graph by
//     Floyd–Warshall with a fixed k → i → j loop order.
//   - Eccentricity, radius and diameter derived from the distance table.
//
// Contract:
//   - Unreachable marks "no path"; the diagonal is 0.

package graph

import (
	"fmt"
	"sort"
)

// Unreachable is the distance reported between disconnected vertices.
const Unreachable = -1

// Distances is a dense all-pairs hop-count table indexed by number - 1.
type Distances [Order][Order]int

// At returns the distance from a to b (King Wen numbers).
func (d *Distances) At(a, b int) (int, error) {
	if a < 1 || a > Order {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, a)
	}
	if b < 1 || b > Order {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, b)
	}
	return d[a-1][b-1], nil
}

// DistanceMatrix computes all-pairs shortest hop counts.
// Time O(V³) = 262144 relaxations; no allocation besides the result.
func (g *Graph) DistanceMatrix() *Distances {
	const inf = Order + 1 // longer than any simple path
	d := new(Distances)

	// initialise: 0 on the diagonal, 1 per edge, inf elsewhere
	var i, j, k int
	for i = 0; i < Order; i++ {
		for j = 0; j < Order; j++ {
			if i != j {
				d[i][j] = inf
			}
		}
		for _, e := range g.adj[i] {
			d[i][e.To-1] = 1
		}
	}

	var ik, cand int
	for k = 0; k < Order; k++ {
		for i = 0; i < Order; i++ {
			ik = d[i][k]
			if ik == inf {
				continue // i cannot reach k
			}
			for j = 0; j < Order; j++ {
				if d[k][j] == inf {
					continue
				}
				cand = ik + d[k][j]
				if cand < d[i][j] { // strict improvement only
					d[i][j] = cand
				}
			}
		}
	}

	for i = 0; i < Order; i++ {
		for j = 0; j < Order; j++ {
			if d[i][j] == inf {
				d[i][j] = Unreachable
			}
		}
	}
	return d
}

// Eccentricity returns the greatest distance from n to any vertex, or
// Unreachable if some vertex cannot be reached.
func (d *Distances) Eccentricity(n int) (int, error) {
	if n < 1 || n > Order {
		return 0, fmt.Errorf("%w: %d", ErrVertexNotFound, n)
	}
	ecc := 0
	for _, v := range d[n-1] {
		if v == Unreachable {
			return Unreachable, nil
		}
		if v > ecc {
			ecc = v
		}
	}
	return ecc, nil
}

// Connected reports whether every vertex reaches every other.
func (d *Distances) Connected() bool {
	for i := range d {
		for _, v := range d[i] {
			if v == Unreachable {
				return false
			}
		}
	}
	return true
}

// Diameter returns the largest eccentricity, or Unreachable if the graph
// is not strongly connected.
func (d *Distances) Diameter() int {
	if !d.Connected() {
		return Unreachable
	}
	diam := 0
	for n := 1; n <= Order; n++ {
		e, _ := d.Eccentricity(n)
		if e > diam {
			diam = e
		}
	}
	return diam
}

// Radius returns the smallest eccentricity, or Unreachable if the graph is
// not strongly connected.
func (d *Distances) Radius() int {
	if !d.Connected() {
		return Unreachable
	}
	r := Order
	for n := 1; n <= Order; n++ {
		if e, _ := d.Eccentricity(n); e < r {
			r = e
		}
	}
	return r
}

// Histogram counts ordered pairs (a ≠ b) by distance, ascending by
// distance. Unreachable pairs are counted under Unreachable.
func (d *Distances) Histogram() []DistanceCount {
	counts := make(map[int]int)
	for i := range d {
		for j, v := range d[i] {
			if i != j {
				counts[v]++
			}
		}
	}
	out := make([]DistanceCount, 0, len(counts))
	for dist, c := range counts {
		out = append(out, DistanceCount{Distance: dist, Pairs: c})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Distance < out[b].Distance })
	return out
}

// DistanceCount is one bucket of Histogram.
type DistanceCount struct {
	Distance int
	Pairs    int
}
