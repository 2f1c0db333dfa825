// Package report renders hexagrams, search paths, sequence analyses and
// readings as styled text. Styles bind to the destination writer, so output
// to a file or pipe is plain text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/graph"
	"github.com/martinmr/iching/reading"
	"github.com/martinmr/iching/search"
	"github.com/martinmr/iching/sequence"
)

// Palette.
var (
	colorHeading = lipgloss.Color("#8BC34A")
	colorLabel   = lipgloss.Color("#2196F3")
	colorMuted   = lipgloss.Color("#6B7280")
	colorChange  = lipgloss.Color("#FFC107")
)

const (
	closedGlyph = "▅▅▅▅▅▅▅▅▅"
	openGlyph   = "▅▅▅   ▅▅▅"
)

// Printer writes reports to w. The first write error is retained and
// returned by Err; later writes are skipped.
type Printer struct {
	w   io.Writer
	err error

	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	change  lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		heading: r.NewStyle().Bold(true).Foreground(colorHeading),
		label:   r.NewStyle().Foreground(colorLabel),
		muted:   r.NewStyle().Foreground(colorMuted),
		change:  r.NewStyle().Bold(true).Foreground(colorChange),
	}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error { return p.err }

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) line(s string) { p.printf("%s\n", s) }

func (p *Printer) blank() { p.printf("\n") }

// Hexagram draws h top line first. Lines at the changing positions are
// marked.
func (p *Printer) Hexagram(h core.Hexagram, changing ...core.Position) {
	p.line(p.label.Render(fmt.Sprintf("Hexagram %d %c %s - %s", h.Number, h.Symbol(), h.Name(), h.Title())))
	marked := make(map[core.Position]bool, len(changing))
	for _, c := range changing {
		marked[c] = true
	}
	for i := len(h.Lines) - 1; i >= 0; i-- {
		glyph := openGlyph
		if h.Lines[i] == core.Closed {
			glyph = closedGlyph
		}
		if marked[core.Position(i)] {
			p.line(glyph + " " + p.change.Render("*"))
			continue
		}
		p.line(glyph)
	}
}

// Trigram draws t top line first.
func (p *Printer) Trigram(t core.Trigram) {
	p.line(p.label.Render(fmt.Sprintf("Trigram %d %s", t.Number, t)))
	for i := len(t.Lines) - 1; i >= 0; i-- {
		if t.Lines[i] == core.Closed {
			p.line(closedGlyph)
		} else {
			p.line(openGlyph)
		}
	}
}

// ShortestPaths prints every path from start to end with its hexagrams.
func (p *Printer) ShortestPaths(start, end int, paths []search.Path) {
	for i, path := range paths {
		p.line(p.heading.Render(fmt.Sprintf(">>> Path #%d from hexagram %d to hexagram %d:", i+1, start, end)))
		p.blank()
		for j, step := range path {
			if j != 0 {
				p.line(fmt.Sprintf("> Previous hexagram turns into hexagram %d by applying the operation %v",
					step.Hexagram.Number, step.Op))
				p.blank()
			}
			p.Hexagram(step.Hexagram)
			p.blank()
		}
	}
}

// SearchResult prints the number of paths found followed by the paths.
func (p *Printer) SearchResult(start, end int, paths []search.Path) {
	p.line(p.heading.Render(fmt.Sprintf(">>> Shortest path search found %d path(s)", len(paths))))
	if len(paths) > 0 {
		p.line(p.muted.Render(fmt.Sprintf("    %d operation(s), %d line change(s) each",
			paths[0].Len(), paths[0].LineChanges())))
	}
	p.blank()
	p.ShortestPaths(start, end, paths)
}

// AnalysisInfo prints the aggregate figures of a, without the paths.
func (p *Printer) AnalysisInfo(a *sequence.Analysis) {
	p.line(fmt.Sprintf(">>> Sequence of hexagrams: %v", a.Sequence))
	p.line(fmt.Sprintf(">>> Total operations: %d", a.TotalOps))
	p.line(fmt.Sprintf(">>> Total line changes: %d", a.TotalLineChanges))
	p.line(fmt.Sprintf(">>> Lines changed per operation: %.3f", a.LinesPerOperation()))
	p.line(fmt.Sprintf(">>> Total paths: %s", a.TotalPaths))
	p.blank()
}

// Analysis prints a in full, including the paths of every pair.
func (p *Printer) Analysis(a *sequence.Analysis) {
	p.line(p.heading.Render(">>>>> Analysis of sequence of hexagrams"))
	p.blank()
	p.AnalysisInfo(a)
	p.line(p.heading.Render(">>> Shortest paths between each pair of hexagrams:"))
	p.blank()
	for i := 1; i < len(a.Sequence); i++ {
		p.ShortestPaths(a.Sequence[i-1], a.Sequence[i], a.ShortestPaths[i-1])
	}
}

// Comparison prints both analyses of c and their differences.
func (p *Printer) Comparison(c sequence.Comparison) {
	p.line(p.heading.Render(">>>>> Comparison of sequence analyses"))
	p.blank()
	p.AnalysisInfo(c.A)
	p.AnalysisInfo(c.B)
	p.line(p.muted.Render(fmt.Sprintf(">>> Difference in operations: %+d", c.OpsDelta)))
	p.line(p.muted.Render(fmt.Sprintf(">>> Difference in line changes: %+d", c.LineChangesDelta)))
	if c.PathsRatio != nil {
		p.line(p.muted.Render(fmt.Sprintf(">>> Ratio of total paths: %s", c.PathsRatio.FloatString(6))))
	}
	p.blank()
}

// HexagramAnalysis prints the trigrams and one-step neighbourhood of a.
func (p *Printer) HexagramAnalysis(a *graph.HexagramAnalysis) {
	p.line(p.heading.Render(fmt.Sprintf(">>>>> Analysis of hexagram %d:", a.Hexagram.Number)))
	p.blank()
	p.Hexagram(a.Hexagram)
	p.blank()
	for _, s := range []struct {
		title string
		t     core.Trigram
	}{
		{"Bottom trigram", a.BottomTrigram},
		{"Top trigram", a.TopTrigram},
		{"Bottom nuclear trigram", a.NuclearBottom},
		{"Top nuclear trigram", a.NuclearTop},
	} {
		p.line(p.heading.Render(">>> " + s.title + ":"))
		p.blank()
		p.Trigram(s.t)
		p.blank()
	}
	p.line(p.heading.Render(">>> Reachable hexagrams:"))
	p.blank()
	for _, r := range a.Reachable {
		p.line(fmt.Sprintf("> Hexagram %d can be reached by applying the operation %v", r.Hexagram.Number, r.Op))
		p.blank()
		p.Hexagram(r.Hexagram)
		p.blank()
	}
}

// Reading prints the question, the throws and the present and future
// hexagrams of r.
func (p *Printer) Reading(r *reading.Reading) {
	p.line(p.heading.Render(">>>>> I Ching reading"))
	p.blank()
	if q := strings.TrimSpace(r.Question); q != "" {
		p.line(fmt.Sprintf(">>> Question: %s", q))
	}
	p.line(fmt.Sprintf(">>> Method: %s", r.Method))
	throws := make([]string, len(r.Throws))
	for i, t := range r.Throws {
		throws[i] = fmt.Sprintf("%d", t)
	}
	p.line(fmt.Sprintf(">>> Throws (bottom to top): %s", strings.Join(throws, " ")))
	p.blank()
	p.line(p.heading.Render(">>> Present hexagram:"))
	p.blank()
	p.Hexagram(r.Present, r.ChangingLines()...)
	p.blank()
	if r.Future == nil {
		p.line(p.muted.Render(">>> No changing lines"))
		return
	}
	p.line(p.heading.Render(">>> Future hexagram:"))
	p.blank()
	p.Hexagram(*r.Future)
}

// GraphSummary prints the size, distance histogram, diameter and
// per-hexagram eccentricity of the transformation graph.
func (p *Printer) GraphSummary(g *graph.Graph, d *graph.Distances) {
	p.line(p.heading.Render(fmt.Sprintf(">>>>> Transformation graph (%s catalogue)", g.Catalogue())))
	p.blank()
	p.line(fmt.Sprintf(">>> Vertices: %d", graph.Order))
	p.line(fmt.Sprintf(">>> Edges: %d", g.Size()))
	p.line(fmt.Sprintf(">>> Strongly connected: %t", d.Connected()))
	p.line(fmt.Sprintf(">>> Diameter: %d", d.Diameter()))
	p.line(fmt.Sprintf(">>> Radius: %d", d.Radius()))
	p.blank()
	p.line(p.heading.Render(">>> Ordered pairs by distance:"))
	for _, c := range d.Histogram() {
		p.line(fmt.Sprintf("    %d: %d", c.Distance, c.Pairs))
	}
	p.blank()
	p.line(p.heading.Render(">>> Eccentricity by hexagram:"))
	row := make([]string, 0, 8)
	for n := 1; n <= graph.Order; n++ {
		e, err := d.Eccentricity(n)
		if err != nil {
			p.err = err
			return
		}
		row = append(row, fmt.Sprintf("%2d:%d", n, e))
		if len(row) == cap(row) {
			p.line("    " + strings.Join(row, "  "))
			row = row[:0]
		}
	}
	p.blank()
}

// Levels prints the breadth-first levels of r and one path from its start
// to the last hexagram visited, which lies at the greatest depth.
func (p *Printer) Levels(g *graph.Graph, r *graph.LevelsResult) {
	ids, err := g.NeighborIDs(r.Start)
	if err != nil {
		p.err = err
		return
	}
	p.line(p.heading.Render(fmt.Sprintf(">>> Levels from hexagram %d (%d distinct neighbours):", r.Start, len(ids))))
	var row []string
	depth := 0
	for _, n := range r.Order {
		if d := r.Depth[n]; d != depth {
			p.line(fmt.Sprintf("    depth %d: %s", depth, strings.Join(row, " ")))
			depth, row = d, row[:0]
		}
		row = append(row, fmt.Sprint(n))
	}
	if len(row) > 0 {
		p.line(fmt.Sprintf("    depth %d: %s", depth, strings.Join(row, " ")))
	}
	p.blank()
	if len(r.Order) == 0 {
		return
	}

	far := r.Order[len(r.Order)-1]
	path, err := r.PathTo(far)
	if err != nil {
		p.err = err
		return
	}
	steps := []string{fmt.Sprint(path[0])}
	for _, n := range path[1:] {
		steps = append(steps, fmt.Sprintf("%d (%v)", n, r.ParentEdge[n].Op))
	}
	p.line(p.heading.Render(fmt.Sprintf(">>> A farthest hexagram from %d:", r.Start)))
	p.line("    " + strings.Join(steps, " -> "))
	p.blank()
}
