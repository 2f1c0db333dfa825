package ops

import (
	"fmt"
	"strings"

	"github.com/martinmr/iching/core"
)

// Catalogue selects the ordered list of operations a search may use.
type Catalogue uint8

const (
	// Canonical holds thirteen involutive edits.
	Canonical Catalogue = iota
	// Extended adds FlipTrigrams, NuclearTrigrams and the two trigram
	// interleavings, seventeen edits in all.
	Extended
)

func lineOps() []Operation {
	out := make([]Operation, 0, 6)
	for _, p := range core.Positions() {
		out = append(out, Line(p))
	}
	return out
}

var (
	canonicalOps = append(lineOps(),
		Of(InverseBottomTrigram),
		Of(InverseTopTrigram),
		Of(ReverseBottomTrigram),
		Of(ReverseTopTrigram),
		Of(MirrorTrigrams),
		Of(InverseHexagram),
		Of(ReverseHexagram),
	)

	extendedOps = append(lineOps(),
		Of(InverseBottomTrigram),
		Of(InverseTopTrigram),
		Of(ReverseBottomTrigram),
		Of(ReverseTopTrigram),
		Of(FlipTrigrams),
		Of(MirrorTrigrams),
		Of(NuclearTrigrams),
		Of(InverseHexagram),
		Of(ReverseHexagram),
		Of(MixTrigramsBottomFirst),
		Of(MixTrigramsTopFirst),
	)
)

// Operations returns the search edges of c in enumeration order. NoOp is
// not included. The returned slice is a fresh copy.
func (c Catalogue) Operations() []Operation {
	src := canonicalOps
	if c == Extended {
		src = extendedOps
	}
	out := make([]Operation, len(src))
	copy(out, src)
	return out
}

// Size returns the number of search edges in c. NoOp is not counted.
func (c Catalogue) Size() int {
	if c == Extended {
		return len(extendedOps)
	}
	return len(canonicalOps)
}

// String implements fmt.Stringer.
func (c Catalogue) String() string {
	switch c {
	case Canonical:
		return "canonical"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Catalogue(%d)", uint8(c))
	}
}

// Valid reports whether c is a known catalogue.
func (c Catalogue) Valid() bool { return c == Canonical || c == Extended }

// ParseCatalogue maps "canonical" or "extended" (case-insensitive) to a
// Catalogue. The empty string selects Canonical.
func ParseCatalogue(name string) (Catalogue, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "canonical":
		return Canonical, nil
	case "extended":
		return Extended, nil
	default:
		return Canonical, fmt.Errorf("%w: %q", ErrUnknownCatalogue, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Catalogue) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCatalogue, uint8(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Catalogue) UnmarshalText(b []byte) error {
	v, err := ParseCatalogue(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
