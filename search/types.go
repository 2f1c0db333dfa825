// Package search provides tunable options, error definitions and the Path
// type for the hexagram shortest-path search.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/ops"
)

// Sentinel errors for search execution.
var (
	// ErrInvalidStart is returned when the start number is not a hexagram.
	ErrInvalidStart = errors.New("search: invalid start hexagram")

	// ErrInvalidEnd is returned when the end number is not a hexagram.
	ErrInvalidEnd = errors.New("search: invalid end hexagram")

	// ErrNoPath is returned when the frontier is exhausted without reaching
	// the goal. It only occurs under a depth limit.
	ErrNoPath = errors.New("search: no path found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Option configures the search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// All disables the line-change tie-break: every shortest path is returned.
	All bool

	// Catalogue selects the edge set and its enumeration order.
	Catalogue ops.Catalogue

	// MaxDepth, if > 0, bounds the number of edges of any explored path.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnEnqueue is called when a path is added to the frontier.
	OnEnqueue func(p Path)

	// OnDequeue is called when a path is popped from the frontier.
	OnDequeue func(p Path)

	// OnGoal is called each time a path reaching the goal is recorded.
	OnGoal func(p Path)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Canonical catalogue, line-change filtering on
//   - no depth limit
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		All:       false,
		Catalogue: ops.Canonical,
		MaxDepth:  0,
		OnEnqueue: func(Path) {},
		OnDequeue: func(Path) {},
		OnGoal:    func(Path) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithAll returns every shortest path when all is true, skipping the
// minimum-line-changes filter.
func WithAll(all bool) Option {
	return func(o *Options) { o.All = all }
}

// WithCatalogue selects the operation catalogue.
func WithCatalogue(c ops.Catalogue) Option {
	return func(o *Options) {
		if !c.Valid() {
			o.err = fmt.Errorf("%w: unknown catalogue %d", ErrOptionViolation, uint8(c))
			return
		}
		o.Catalogue = c
	}
}

// WithMaxDepth bounds the length of explored paths.
//
//	d > 0: paths have at most d edges
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnGoal registers a callback to run when a goal path is recorded.
func WithOnGoal(fn func(p Path)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// Step is one element of a Path: the hexagram reached and the operation
// that produced it from the previous step. The first step carries ops.Start.
type Step struct {
	Hexagram core.Hexagram
	Op       ops.Operation
}

// Path is a sequence of steps from the start hexagram to the last one.
type Path []Step

// Len returns the number of edges (non-start operations) in p.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Last returns the hexagram of the final step.
func (p Path) Last() core.Hexagram {
	if len(p) == 0 {
		return core.Hexagram{}
	}
	return p[len(p)-1].Hexagram
}

// LineChanges returns the sum of line changes between consecutive steps.
func (p Path) LineChanges() int {
	total := 0
	for i := 1; i < len(p); i++ {
		total += p[i-1].Hexagram.LineChanges(p[i].Hexagram)
	}
	return total
}

// Numbers returns the King Wen numbers along p.
func (p Path) Numbers() []int {
	out := make([]int, len(p))
	for i, s := range p {
		out[i] = int(s.Hexagram.Number)
	}
	return out
}

// Operations returns the operations along p, excluding the start label.
func (p Path) Operations() []ops.Operation {
	if len(p) < 2 {
		return nil
	}
	out := make([]ops.Operation, 0, len(p)-1)
	for _, s := range p[1:] {
		out = append(out, s.Op)
	}
	return out
}

// contains reports whether h already appears on p.
func (p Path) contains(h core.Hexagram) bool {
	for _, s := range p {
		if s.Hexagram.Number == h.Number {
			return true
		}
	}
	return false
}

// extend returns a new path with one more step; p is not modified.
func (p Path) extend(h core.Hexagram, op ops.Operation) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = Step{Hexagram: h, Op: op}
	return out
}

// CountLineChanges returns the total line changes along p.
func CountLineChanges(p Path) int { return p.LineChanges() }

// FindLeastLinesChanged returns the paths whose total line changes equal
// the minimum over paths, preserving their relative order.
func FindLeastLinesChanged(paths []Path) []Path {
	if len(paths) == 0 {
		return nil
	}
	best := paths[0].LineChanges()
	for _, p := range paths[1:] {
		if c := p.LineChanges(); c < best {
			best = c
		}
	}
	out := make([]Path, 0, len(paths))
	for _, p := range paths {
		if p.LineChanges() == best {
			out = append(out, p)
		}
	}
	return out
}
