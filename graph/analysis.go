package graph

import (
	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/ops"
)

// Reachable is a hexagram one operation away and the operation leading to it.
type Reachable struct {
	Hexagram core.Hexagram
	Op       ops.Operation
}

// HexagramAnalysis describes a single hexagram: its trigrams, its nuclear
// trigrams and the hexagrams reachable from it by one operation.
type HexagramAnalysis struct {
	Hexagram      core.Hexagram
	BottomTrigram core.Trigram
	TopTrigram    core.Trigram
	// NuclearBottom is formed by lines 1..3, NuclearTop by lines 2..4.
	NuclearBottom core.Trigram
	NuclearTop    core.Trigram
	// Reachable lists one entry per operation whose image differs from
	// Hexagram, in catalogue order.
	Reachable []Reachable
}

// Analyze builds the HexagramAnalysis of hexagram n under catalogue c.
func Analyze(n int, c ops.Catalogue) (*HexagramAnalysis, error) {
	if _, err := core.HexagramByNumber(n); err != nil {
		return nil, err
	}
	g, err := Build(c)
	if err != nil {
		return nil, err
	}
	return g.Analyze(n)
}

// Analyze reads the reachable set of n from the adjacency list.
func (g *Graph) Analyze(n int) (*HexagramAnalysis, error) {
	h, err := core.HexagramByNumber(n)
	if err != nil {
		return nil, err
	}
	a := &HexagramAnalysis{Hexagram: h}
	a.BottomTrigram, a.TopTrigram = h.Trigrams()
	a.NuclearBottom, a.NuclearTop = h.NuclearTrigrams()
	for _, e := range g.adj[n-1] {
		a.Reachable = append(a.Reachable, Reachable{Hexagram: core.MustHexagram(e.To), Op: e.Op})
	}
	return a, nil
}
