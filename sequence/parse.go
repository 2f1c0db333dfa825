package sequence

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/martinmr/iching/core"
)

// SequenceExpr is the grammar of a hexagram sequence expression:
//
//	1-8, 12, 64-60, all
//
// Items are single numbers, inclusive ranges (ascending or descending) or
// the keyword "all" for the King Wen sequence.
type SequenceExpr struct {
	Items []*SequenceItem `@@ ( "," @@ )*`
}

// SequenceItem is one comma-separated element of a SequenceExpr.
type SequenceItem struct {
	All  bool `  @"all"`
	From int  `| @Int`
	To   *int `  ( "-" @Int )?`
}

var sequenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z]+`},
	{Name: "Punct", Pattern: `[-,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parseSequenceExpr = participle.MustBuild[SequenceExpr](
	participle.Lexer(sequenceLexer),
	participle.Elide("Whitespace"),
)

// ParseSequence expands a sequence expression into hexagram numbers.
func ParseSequence(expr string) ([]int, error) {
	x, err := parseSequenceExpr.ParseString("", expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSequence, err)
	}

	var out []int
	for _, it := range x.Items {
		if it.All {
			out = append(out, KingWen()...)
			continue
		}
		to := it.From
		if it.To != nil {
			to = *it.To
		}
		for _, n := range []int{it.From, to} {
			if !core.ValidHexagramNumber(n) {
				return nil, fmt.Errorf("%w: %w: %d", ErrBadSequence, core.ErrInvalidHexagram, n)
			}
		}
		step := 1
		if to < it.From {
			step = -1
		}
		for n := it.From; n != to+step; n += step {
			out = append(out, n)
		}
	}
	return out, nil
}
