package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/graph"
	"github.com/martinmr/iching/ops"
	"github.com/martinmr/iching/search"
)

func mustBuild(t testing.TB, c ops.Catalogue) *graph.Graph {
	t.Helper()
	g, err := graph.Build(c)
	require.NoError(t, err)
	return g
}

func TestBuild(t *testing.T) {
	g := mustBuild(t, ops.Canonical)
	assert.Equal(t, ops.Canonical, g.Catalogue())
	assert.Equal(t, 744, g.Size())

	ext := mustBuild(t, ops.Extended)
	assert.Equal(t, 978, ext.Size())

	_, err := graph.Build(ops.Catalogue(7))
	assert.ErrorIs(t, err, ops.ErrUnknownCatalogue)
}

func TestNeighbors(t *testing.T) {
	g := mustBuild(t, ops.Canonical)
	edges, err := g.Neighbors(11)
	require.NoError(t, err)
	require.Len(t, edges, 10)
	// parallel edges to 12 are both kept, in catalogue order
	assert.Equal(t, graph.Edge{From: 11, To: 12, Op: ops.Of(ops.InverseHexagram)}, edges[8])
	assert.Equal(t, graph.Edge{From: 11, To: 12, Op: ops.Of(ops.ReverseHexagram)}, edges[9])

	ids, err := g.NeighborIDs(1)
	require.NoError(t, err)
	assert.Equal(t, []int{44, 13, 10, 9, 14, 43, 12, 11, 2}, ids)

	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(1, 3))
	assert.False(t, g.HasEdge(0, 3))

	_, err = g.Neighbors(65)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestLevels(t *testing.T) {
	g := mustBuild(t, ops.Canonical)
	res, err := g.Levels(1)
	require.NoError(t, err)
	require.Len(t, res.Order, 64)
	assert.Equal(t, []int{1, 44, 13, 10, 9, 14, 43, 12, 11, 2}, res.Order[:10])

	byDepth := map[int]int{}
	for _, d := range res.Depth {
		byDepth[d]++
	}
	assert.Equal(t, map[int]int{0: 1, 1: 9, 2: 27, 3: 27}, byDepth)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Len(t, path, 4)
	assert.Equal(t, 1, path[0])
	assert.Equal(t, 3, path[3])
	assert.Equal(t, 3, res.ParentEdge[3].To)

	limited, err := g.Levels(1, graph.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Len(t, limited.Order, 10)
	_, err = limited.PathTo(3)
	assert.ErrorIs(t, err, graph.ErrNoPath)
}

func TestLevels_Errors(t *testing.T) {
	g := mustBuild(t, ops.Canonical)
	_, err := g.Levels(0)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	_, err = g.Levels(1, graph.WithMaxDepth(-2))
	assert.ErrorIs(t, err, graph.ErrOptionViolation)

	stop := errors.New("stop")
	_, err = g.Levels(1, graph.WithOnVisit(func(n, _ int) error {
		if n == 13 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestDistanceMatrix(t *testing.T) {
	for _, tc := range []struct {
		cat  ops.Catalogue
		hist []graph.DistanceCount
	}{
		{ops.Canonical, []graph.DistanceCount{{1, 700}, {2, 2108}, {3, 1224}}},
		{ops.Extended, []graph.DistanceCount{{1, 888}, {2, 2624}, {3, 520}}},
	} {
		g := mustBuild(t, tc.cat)
		d := g.DistanceMatrix()
		assert.True(t, d.Connected())
		assert.Equal(t, 3, d.Diameter())
		assert.Equal(t, 3, d.Radius())
		assert.Equal(t, tc.hist, d.Histogram())

		v, err := d.At(5, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, v)
		_, err = d.At(5, 99)
		assert.ErrorIs(t, err, graph.ErrVertexNotFound)
	}
}

// TestDistanceMatrix_MatchesSearch cross-checks Floyd–Warshall against
// the path-enumerating search for every ordered pair.
func TestDistanceMatrix_MatchesSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("all-pairs sweep")
	}
	for _, cat := range []ops.Catalogue{ops.Canonical, ops.Extended} {
		g := mustBuild(t, cat)
		d := g.DistanceMatrix()
		for a := 1; a <= 64; a++ {
			levels, err := g.Levels(a)
			require.NoError(t, err)
			for b := 1; b <= 64; b++ {
				paths, err := search.FindShortestPaths(a, b, search.WithCatalogue(cat))
				require.NoError(t, err)
				want, _ := d.At(a, b)
				assert.Equalf(t, want, paths[0].Len(), "%v %d->%d", cat, a, b)
				assert.Equal(t, want, levels.Depth[b])
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	a, err := graph.Analyze(11, ops.Canonical)
	require.NoError(t, err)
	assert.Equal(t, core.MustHexagram(11), a.Hexagram)
	assert.Equal(t, "Qian", a.BottomTrigram.Name())
	assert.Equal(t, "Kun", a.TopTrigram.Name())
	assert.Equal(t, "Dui", a.NuclearBottom.Name())
	assert.Equal(t, "Zhen", a.NuclearTop.Name())
	require.Len(t, a.Reachable, 10)
	assert.Equal(t, 46, int(a.Reachable[0].Hexagram.Number))
	assert.Equal(t, ops.Line(core.First), a.Reachable[0].Op)

	ext, err := graph.Analyze(11, ops.Extended)
	require.NoError(t, err)
	assert.Len(t, ext.Reachable, 14)

	g := mustBuild(t, ops.Extended)
	viaGraph, err := g.Analyze(11)
	require.NoError(t, err)
	assert.Equal(t, ext, viaGraph)

	_, err = graph.Analyze(65, ops.Canonical)
	assert.ErrorIs(t, err, core.ErrInvalidHexagram)
}

func TestAnalyzeMatchesGraphForEveryHexagram(t *testing.T) {
	for _, c := range []ops.Catalogue{ops.Canonical, ops.Extended} {
		g := mustBuild(t, c)
		for n := 1; n <= graph.Order; n++ {
			a, err := graph.Analyze(n, c)
			require.NoError(t, err)
			b, err := g.Analyze(n)
			require.NoError(t, err)
			require.Equal(t, a, b, "hexagram %d, %s", n, c)

			edges, err := g.Neighbors(n)
			require.NoError(t, err)
			require.Len(t, a.Reachable, len(edges))
		}
	}

	_, err := graph.Analyze(1, ops.Catalogue(9))
	assert.ErrorIs(t, err, ops.ErrUnknownCatalogue)
}
