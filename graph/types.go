// Package graph materialises the hexagram transformation graph of an
// operation catalogue: 64 vertices, one labelled edge per (hexagram,
// operation) pair whose image differs from the source.
//
// It complements package search with whole-graph views: level-order
// traversal, all-pairs distances, eccentricity and diameter, and the
// one-step analysis of a single hexagram.
package graph

import (
	"errors"
	"fmt"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/ops"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexNotFound is returned when a number is not a hexagram.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrNoPath is returned by PathTo when dest was not reached.
	ErrNoPath = errors.New("graph: no path")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Order is the number of vertices of every transformation graph.
const Order = core.NumHexagrams

// Edge is a directed, operation-labelled edge between King Wen numbers.
type Edge struct {
	From int
	To   int
	Op   ops.Operation
}

// String implements fmt.Stringer.
func (e Edge) String() string { return fmt.Sprintf("%d -%v-> %d", e.From, e.Op, e.To) }

// Graph is an immutable adjacency list indexed by King Wen number - 1.
// Edges out of each vertex keep catalogue order; parallel edges (two
// operations with the same image) are kept, self-loops are not.
type Graph struct {
	catalogue ops.Catalogue
	adj       [Order][]Edge
	size      int
}

// Build materialises the transformation graph of c.
func Build(c ops.Catalogue) (*Graph, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ops.ErrUnknownCatalogue, uint8(c))
	}
	g := &Graph{catalogue: c}
	edges := c.Operations()
	for _, h := range core.Hexagrams() {
		from := int(h.Number)
		out := make([]Edge, 0, len(edges))
		for _, op := range edges {
			to := op.Apply(h)
			if to.Number == h.Number {
				continue
			}
			out = append(out, Edge{From: from, To: int(to.Number), Op: op})
		}
		g.adj[from-1] = out
		g.size += len(out)
	}
	return g, nil
}

// Catalogue returns the catalogue g was built from.
func (g *Graph) Catalogue() ops.Catalogue { return g.catalogue }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.size }

// Neighbors returns a copy of the outgoing edges of n in catalogue order.
func (g *Graph) Neighbors(n int) ([]Edge, error) {
	if !core.ValidHexagramNumber(n) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, n)
	}
	out := make([]Edge, len(g.adj[n-1]))
	copy(out, g.adj[n-1])
	return out, nil
}

// NeighborIDs returns the distinct successors of n in first-seen order.
func (g *Graph) NeighborIDs(n int) ([]int, error) {
	if !core.ValidHexagramNumber(n) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, n)
	}
	seen := make(map[int]bool, len(g.adj[n-1]))
	out := make([]int, 0, len(g.adj[n-1]))
	for _, e := range g.adj[n-1] {
		if !seen[e.To] {
			seen[e.To] = true
			out = append(out, e.To)
		}
	}
	return out, nil
}

// HasEdge reports whether some operation maps from onto to.
func (g *Graph) HasEdge(from, to int) bool {
	if !core.ValidHexagramNumber(from) {
		return false
	}
	for _, e := range g.adj[from-1] {
		if e.To == to {
			return true
		}
	}
	return false
}
