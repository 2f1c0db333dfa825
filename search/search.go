// Package search finds every shortest transformation path between two
// hexagrams, breaking ties by the total number of lines changed.
package search

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/martinmr/iching/core"
	"github.com/martinmr/iching/ops"
)

// Searcher holds a validated start/end pair and its options. A Searcher is
// immutable; FindShortestPaths may be called any number of times and from
// multiple goroutines.
type Searcher struct {
	start core.Hexagram
	end   core.Hexagram
	opts  Options
	edges []ops.Operation
}

// walker encapsulates the mutable state of one search run.
type walker struct {
	ctx   context.Context
	opts  Options
	edges []ops.Operation
	goal  core.Hexagram
	queue *linkedlistqueue.Queue
	res   []Path
}

// New validates start and end (King Wen numbers) and applies opts.
// Returns ErrInvalidStart or ErrInvalidEnd (both also matching
// core.ErrInvalidHexagram) and ErrOptionViolation for bad options.
func New(start, end int, opts ...Option) (*Searcher, error) {
	s, err := core.HexagramByNumber(start)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}
	e, err := core.HexagramByNumber(end)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEnd, err)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Searcher{start: s, end: e, opts: o, edges: o.Catalogue.Operations()}, nil
}

// FindShortestPaths is shorthand for New followed by FindShortestPaths.
func FindShortestPaths(start, end int, opts ...Option) ([]Path, error) {
	s, err := New(start, end, opts...)
	if err != nil {
		return nil, err
	}
	return s.FindShortestPaths()
}

// Start returns the start hexagram.
func (s *Searcher) Start() core.Hexagram { return s.start }

// End returns the goal hexagram.
func (s *Searcher) End() core.Hexagram { return s.end }

// FindShortestPaths runs the search.
//
// Every returned path begins with (start, ops.Start), ends at the goal and
// has the minimum possible number of edges. Unless WithAll(true) was given
// only the paths with the least total line changes are kept, in discovery
// order. start == end yields the single one-step path.
//
// Returns ErrNoPath if the frontier empties first, or ctx.Err() on
// cancellation.
func (s *Searcher) FindShortestPaths() ([]Path, error) {
	root := Path{{Hexagram: s.start, Op: ops.Start}}
	if s.start == s.end {
		return []Path{root}, nil
	}

	w := &walker{
		ctx:   s.opts.Ctx,
		opts:  s.opts,
		edges: s.edges,
		goal:  s.end,
		queue: linkedlistqueue.New(),
	}
	w.enqueue(root)
	if err := w.loop(); err != nil {
		return nil, err
	}
	if len(w.res) == 0 {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, s.start.Number, s.end.Number)
	}
	if s.opts.All {
		return w.res, nil
	}
	return FindLeastLinesChanged(w.res), nil
}

func (w *walker) enqueue(p Path) {
	w.opts.OnEnqueue(p)
	w.queue.Enqueue(p)
}

func (w *walker) dequeue() Path {
	v, _ := w.queue.Dequeue()
	p := v.(Path)
	w.opts.OnDequeue(p)
	return p
}

// loop processes the frontier level by level until it empties, the first
// level holding a goal path is complete, or the context is cancelled.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		p := w.dequeue()
		if len(w.res) > 0 && len(p) >= len(w.res[0]) {
			return nil
		}
		w.expand(p)
	}
	return nil
}

// expand applies every catalogue operation to the last hexagram of p.
// Results already on p are skipped; goal hits are recorded and the rest
// enqueued, subject to MaxDepth.
func (w *walker) expand(p Path) {
	cur := p.Last()
	for _, op := range w.edges {
		next := op.Apply(cur)
		if p.contains(next) {
			continue
		}
		np := p.extend(next, op)
		if next == w.goal {
			w.res = append(w.res, np)
			w.opts.OnGoal(np)
			continue
		}
		if w.opts.MaxDepth > 0 && np.Len() >= w.opts.MaxDepth {
			continue
		}
		w.enqueue(np)
	}
}
