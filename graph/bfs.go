package graph

import (
	"context"
	"fmt"
)

// Option configures Levels via functional arguments.
type Option func(*LevelsOptions)

// LevelsOptions holds parameters and callbacks for Levels.
type LevelsOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called for each vertex in visit order. A non-nil error
	// aborts the traversal.
	OnVisit func(n, depth int) error

	err error
}

// DefaultLevelsOptions returns background context, no limit, no-op hook.
func DefaultLevelsOptions() LevelsOptions {
	return LevelsOptions{
		Ctx:     context.Background(),
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *LevelsOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the traversal at depth d (inclusive); d < 0 is an
// ErrOptionViolation, 0 means no limit.
func WithMaxDepth(d int) Option {
	return func(o *LevelsOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit hook.
func WithOnVisit(fn func(n, depth int) error) Option {
	return func(o *LevelsOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// LevelsResult holds the BFS tree from a start hexagram:
//   - Order: vertices in visit sequence.
//   - Depth: distance in edges from the start.
//   - Parent: predecessor in the tree; ParentEdge: the edge that reached it.
type LevelsResult struct {
	Start      int
	Order      []int
	Depth      map[int]int
	Parent     map[int]int
	ParentEdge map[int]Edge
}

type levelItem struct {
	n     int
	depth int
}

// Levels runs a plain vertex BFS from start. Unlike package search it
// keeps a single parent per vertex, so it yields one shortest path per
// destination (the first in catalogue order) in O(V + E).
func (g *Graph) Levels(start int, opts ...Option) (*LevelsResult, error) {
	o := DefaultLevelsOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start < 1 || start > Order {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, start)
	}

	res := &LevelsResult{
		Start:      start,
		Order:      make([]int, 0, Order),
		Depth:      map[int]int{start: 0},
		Parent:     make(map[int]int, Order),
		ParentEdge: make(map[int]Edge, Order),
	}
	queue := []levelItem{{n: start}}
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.n)
		if err := o.OnVisit(item.n, item.depth); err != nil {
			return nil, fmt.Errorf("graph: OnVisit error at %d: %w", item.n, err)
		}
		if o.MaxDepth > 0 && item.depth >= o.MaxDepth {
			continue
		}
		for _, e := range g.adj[item.n-1] {
			if _, seen := res.Depth[e.To]; seen {
				continue
			}
			res.Depth[e.To] = item.depth + 1
			res.Parent[e.To] = item.n
			res.ParentEdge[e.To] = e
			queue = append(queue, levelItem{n: e.To, depth: item.depth + 1})
		}
	}
	return res, nil
}

// PathTo reconstructs the tree path from the start to dest.
func (r *LevelsResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %d -> %d", ErrNoPath, r.Start, dest)
	}
	path := []int{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
