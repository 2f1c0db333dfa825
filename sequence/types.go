// Package sequence runs the shortest-path search across consecutive pairs
// of a hexagram sequence and aggregates the results.
package sequence

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand/v2"
	"runtime"

	"go.uber.org/zap"

	"github.com/martinmr/iching/ops"
	"github.com/martinmr/iching/search"
)

// Sentinel errors for sequence analysis.
var (
	// ErrBadSampleCount is returned when fewer than one permutation is requested.
	ErrBadSampleCount = errors.New("sequence: sample count must be at least 1")

	// ErrBadSequence is returned when a sequence expression cannot be parsed.
	ErrBadSequence = errors.New("sequence: malformed sequence expression")
)

// Analysis aggregates the shortest paths between consecutive hexagrams.
//
// TotalOps and TotalLineChanges are taken from the representative (first
// surviving) path of each pair; TotalPaths is the product of the number of
// surviving paths per pair and may exceed 64 bits.
type Analysis struct {
	Sequence         []int
	Catalogue        ops.Catalogue
	ShortestPaths    [][]search.Path
	TotalOps         int
	TotalLineChanges int
	TotalPaths       *big.Int
}

// LinesPerOperation returns TotalLineChanges / TotalOps, or 0 for an
// analysis without operations.
func (a *Analysis) LinesPerOperation() float64 {
	if a.TotalOps == 0 {
		return 0
	}
	return float64(a.TotalLineChanges) / float64(a.TotalOps)
}

// Comparison contrasts two analyses; deltas are b minus a.
type Comparison struct {
	A, B             *Analysis
	OpsDelta         int
	LineChangesDelta int
	// PathsRatio is B.TotalPaths / A.TotalPaths.
	PathsRatio *big.Rat
}

// Compare returns the comparison of a and b.
func Compare(a, b *Analysis) Comparison {
	c := Comparison{
		A:                a,
		B:                b,
		OpsDelta:         b.TotalOps - a.TotalOps,
		LineChangesDelta: b.TotalLineChanges - a.TotalLineChanges,
	}
	if a.TotalPaths != nil && b.TotalPaths != nil && a.TotalPaths.Sign() != 0 {
		c.PathsRatio = new(big.Rat).SetFrac(b.TotalPaths, a.TotalPaths)
	}
	return c
}

// Option configures an analysis run.
//
// Option constructors validate and panic on meaningless inputs; the
// analysis functions themselves never panic.
type Option func(*config)

type config struct {
	catalogue ops.Catalogue
	seed      uint64
	rng       *rand.Rand
	workers   int
	logger    *zap.Logger
}

func newConfig(opts ...Option) config {
	c := config{
		catalogue: ops.Canonical,
		seed:      1,
		workers:   runtime.GOMAXPROCS(0),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithCatalogue selects the operation catalogue used for every pair.
func WithCatalogue(cat ops.Catalogue) Option {
	if !cat.Valid() {
		panic(fmt.Sprintf("sequence: WithCatalogue(%d)", uint8(cat)))
	}
	return func(c *config) { c.catalogue = cat }
}

// WithSeed fixes the base seed of random permutations. Permutation i is
// shuffled with a PCG seeded (seed, i), so results do not depend on
// scheduling.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand draws the base seed from r once, at the start of a run.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWorkers bounds the number of permutations analysed concurrently.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sequence: WithWorkers(%d)", n))
	}
	return func(c *config) { c.workers = n }
}

// WithLogger attaches a logger. A nil logger is replaced by a no-op one.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = zap.NewNop()
		}
		c.logger = l
	}
}
