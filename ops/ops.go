// Package ops defines the search operations that transform one hexagram
// into another, and the catalogues (ordered operation lists) that the
// shortest-path search enumerates.
package ops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martinmr/iching/core"
)

// Sentinel errors for operation catalogues.
var (
	// ErrUnknownCatalogue is returned when a catalogue name cannot be parsed.
	ErrUnknownCatalogue = errors.New("ops: unknown catalogue")

	// ErrUnknownOperation is returned when an operation name cannot be parsed.
	ErrUnknownOperation = errors.New("ops: unknown operation")
)

// Kind enumerates the structural edits.
type Kind uint8

const (
	// NoOp labels the starting hexagram of a path; it is never an edge.
	NoOp Kind = iota
	InverseLine
	InverseBottomTrigram
	InverseTopTrigram
	ReverseBottomTrigram
	ReverseTopTrigram
	FlipTrigrams
	MirrorTrigrams
	NuclearTrigrams
	InverseHexagram
	ReverseHexagram
	MixTrigramsBottomFirst
	MixTrigramsTopFirst
)

var kindNames = [...]string{
	NoOp:                   "NoOp",
	InverseLine:            "InverseLine",
	InverseBottomTrigram:   "InverseBottomTrigram",
	InverseTopTrigram:      "InverseTopTrigram",
	ReverseBottomTrigram:   "ReverseBottomTrigram",
	ReverseTopTrigram:      "ReverseTopTrigram",
	FlipTrigrams:           "FlipTrigrams",
	MirrorTrigrams:         "MirrorTrigrams",
	NuclearTrigrams:        "NuclearTrigrams",
	InverseHexagram:        "InverseHexagram",
	ReverseHexagram:        "ReverseHexagram",
	MixTrigramsBottomFirst: "MixTrigramsBottomFirst",
	MixTrigramsTopFirst:    "MixTrigramsTopFirst",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Operation is a single structural edit. Line is only meaningful when Kind
// is InverseLine. Operations are comparable and usable as map keys.
type Operation struct {
	Kind Kind
	Line core.Position
}

// Start is the label of the first step of every path.
var Start = Operation{Kind: NoOp}

// Line returns the InverseLine operation for position p.
func Line(p core.Position) Operation { return Operation{Kind: InverseLine, Line: p} }

// Of returns the operation of kind k; use Line for InverseLine.
func Of(k Kind) Operation { return Operation{Kind: k} }

// Apply returns the hexagram obtained by applying o to h.
func (o Operation) Apply(h core.Hexagram) core.Hexagram {
	switch o.Kind {
	case NoOp:
		return h
	case InverseLine:
		return h.InverseLine(o.Line)
	case InverseBottomTrigram:
		return h.InverseBottomTrigram()
	case InverseTopTrigram:
		return h.InverseTopTrigram()
	case ReverseBottomTrigram:
		return h.ReverseBottomTrigram()
	case ReverseTopTrigram:
		return h.ReverseTopTrigram()
	case FlipTrigrams:
		return h.FlipTrigrams()
	case MirrorTrigrams:
		return h.MirrorTrigrams()
	case NuclearTrigrams:
		return h.UseNuclearTrigrams()
	case InverseHexagram:
		return h.Inverse()
	case ReverseHexagram:
		return h.Reverse()
	case MixTrigramsBottomFirst:
		return h.MixTrigramsBottomFirst()
	case MixTrigramsTopFirst:
		return h.MixTrigramsTopFirst()
	default:
		return h
	}
}

// IsInvolution reports whether applying o twice always yields the input.
func (o Operation) IsInvolution() bool {
	switch o.Kind {
	case NuclearTrigrams, MixTrigramsBottomFirst, MixTrigramsTopFirst:
		return false
	default:
		return true
	}
}

// String renders o, e.g. "InverseLine(Third)" or "ReverseHexagram".
func (o Operation) String() string {
	if o.Kind == InverseLine {
		return fmt.Sprintf("%s(%s)", o.Kind, o.Line)
	}
	return o.Kind.String()
}

// ParseOperation is the inverse of Operation.String.
func ParseOperation(s string) (Operation, error) {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, InverseLine.String()+"("); ok {
		name, ok := strings.CutSuffix(rest, ")")
		if ok {
			for _, p := range core.Positions() {
				if p.String() == name {
					return Line(p), nil
				}
			}
		}
		return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
	}
	for k, name := range kindNames {
		if Kind(k) != InverseLine && name == s {
			return Of(Kind(k)), nil
		}
	}
	return Operation{}, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}
