package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/graph"
	"github.com/martinmr/iching/ops"
	"github.com/martinmr/iching/reading"
	"github.com/martinmr/iching/report"
	"github.com/martinmr/iching/search"
	"github.com/martinmr/iching/sequence"
)

func TestHexagramTopLineFirst(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	// 11 Tai: Qian below, Kun above.
	p.Hexagram(core.MustHexagram(11))
	require.NoError(t, p.Err())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Hexagram 11")
	assert.Contains(t, lines[0], "Tai")
	for _, l := range lines[1:4] {
		assert.Contains(t, l, "   ", "top trigram is open")
	}
	for _, l := range lines[4:] {
		assert.NotContains(t, l, " ", "bottom trigram is closed")
	}
}

func TestHexagramMarksChangingLines(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf)
	p.Hexagram(core.MustHexagram(1), core.First)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasSuffix(lines[6], "*"))
	assert.False(t, strings.HasSuffix(lines[1], "*"))
}

func TestShortestPaths(t *testing.T) {
	paths, err := search.FindShortestPaths(11, 12)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.SearchResult(11, 12, paths)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "found 2 path(s)")
	assert.Contains(t, out, ">>> Path #1 from hexagram 11 to hexagram 12:")
	assert.Contains(t, out, ">>> Path #2 from hexagram 11 to hexagram 12:")
	assert.Contains(t, out, "> Previous hexagram turns into hexagram 12 by applying the operation InverseHexagram")
}

func TestAnalysis(t *testing.T) {
	a, err := sequence.Analyze([]int{1, 2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.Analysis(a)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, ">>> Sequence of hexagrams: [1 2 3]")
	assert.Contains(t, out, ">>> Total operations: ")
	assert.Contains(t, out, ">>> Lines changed per operation: ")
	assert.Contains(t, out, ">>> Path #1 from hexagram 2 to hexagram 3:")
}

func TestComparison(t *testing.T) {
	a, err := sequence.Analyze([]int{1, 2})
	require.NoError(t, err)
	b, err := sequence.Analyze([]int{1, 64})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.Comparison(sequence.Compare(a, b))
	require.NoError(t, p.Err())
	assert.Contains(t, buf.String(), "Difference in operations: +2")
	assert.Contains(t, buf.String(), "Ratio of total paths: 6.000000")
}

func TestHexagramAnalysis(t *testing.T) {
	a, err := graph.Analyze(11, ops.Canonical)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.HexagramAnalysis(a)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, ">>>>> Analysis of hexagram 11:")
	assert.Contains(t, out, "Bottom nuclear trigram")
	assert.Equal(t, len(a.Reachable), strings.Count(out, "can be reached by applying"))
}

func TestReading(t *testing.T) {
	r, err := reading.FromThrows([6]reading.Throw{9, 7, 7, 8, 8, 6})
	require.NoError(t, err)
	r.Question = "Should I ship it?"

	var buf bytes.Buffer
	p := report.New(&buf)
	p.Reading(r)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "Question: Should I ship it?")
	assert.Contains(t, out, "Throws (bottom to top): 9 7 7 8 8 6")
	assert.Contains(t, out, "Future hexagram")
	assert.Equal(t, 2, strings.Count(out, "*"))

	buf.Reset()
	r, err = reading.FromThrows([6]reading.Throw{7, 7, 7, 8, 8, 8})
	require.NoError(t, err)
	p = report.New(&buf)
	p.Reading(r)
	assert.Contains(t, buf.String(), "No changing lines")
	assert.NotContains(t, buf.String(), "Question:")
}

func TestGraphSummary(t *testing.T) {
	g, err := graph.Build(ops.Canonical)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.GraphSummary(g, g.DistanceMatrix())
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "Edges: 744")
	assert.Contains(t, out, "Diameter: 3")
	assert.Contains(t, out, "    2: 2108")
}

type brokenWriter struct{ n int }

func (w *brokenWriter) Write(b []byte) (int, error) {
	w.n++
	return 0, errors.New("disk full")
}

func TestFirstWriteErrorSticks(t *testing.T) {
	w := &brokenWriter{}
	p := report.New(w)
	p.Hexagram(core.MustHexagram(1))
	p.Hexagram(core.MustHexagram(2))
	require.EqualError(t, p.Err(), "disk full")
	assert.Equal(t, 1, w.n)
}

func TestGraphSummaryEccentricities(t *testing.T) {
	g, err := graph.Build(ops.Extended)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.GraphSummary(g, g.DistanceMatrix())
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "(extended catalogue)")
	assert.Contains(t, out, " 1:3")
	assert.Contains(t, out, "64:3")
}

func TestLevels(t *testing.T) {
	g, err := graph.Build(ops.Canonical)
	require.NoError(t, err)
	levels, err := g.Levels(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	p := report.New(&buf)
	p.Levels(g, levels)
	require.NoError(t, p.Err())

	out := buf.String()
	assert.Contains(t, out, "Levels from hexagram 1 (9 distinct neighbours)")
	assert.Contains(t, out, "    depth 0: 1\n")
	assert.Contains(t, out, "    depth 1: 44 13 10 9 14 43 12 11 2\n")
	assert.Contains(t, out, "    depth 3: ")
	assert.Contains(t, out, "A farthest hexagram from 1:")

	var farthest string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "    1 -> ") {
			farthest = l
		}
	}
	require.NotEmpty(t, farthest)
	assert.Equal(t, "    1 -> 10 (InverseLine(Third)) -> 58 (InverseLine(Sixth)) -> 52 (InverseHexagram)", farthest)
}
