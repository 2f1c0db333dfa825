// Package reading casts I Ching readings: six throws, bottom to top, each
// producing a line that may be changing, resolved into a present hexagram
// and, when lines change, a future one.
package reading

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martinmr/iching/core"
)

// Sentinel errors for reading generation.
var (
	// ErrBadThrow is returned for a throw value outside {6,7,8,9}.
	ErrBadThrow = errors.New("reading: throw must be 6, 7, 8 or 9")

	// ErrSource is returned when a randomness source fails.
	ErrSource = errors.New("reading: randomness source failed")

	// ErrUnknownMethod is returned when a method name cannot be parsed.
	ErrUnknownMethod = errors.New("reading: unknown method")

	// ErrUnknownRandomness is returned when a randomness name cannot be parsed.
	ErrUnknownRandomness = errors.New("reading: unknown randomness mode")
)

// Throw is the value obtained for one line.
type Throw uint8

const (
	OldYin    Throw = 6 // Open, changing
	YoungYang Throw = 7 // Closed
	YoungYin  Throw = 8 // Open
	OldYang   Throw = 9 // Closed, changing
)

// Valid reports whether t is 6, 7, 8 or 9.
func (t Throw) Valid() bool { return t >= OldYin && t <= OldYang }

// Line returns the present line of t.
func (t Throw) Line() core.Line {
	if t == YoungYang || t == OldYang {
		return core.Closed
	}
	return core.Open
}

// Changing reports whether t turns into its opposite.
func (t Throw) Changing() bool { return t == OldYin || t == OldYang }

// Future returns the line t becomes.
func (t Throw) Future() core.Line {
	if t.Changing() {
		return t.Line().Inverse()
	}
	return t.Line()
}

// String implements fmt.Stringer.
func (t Throw) String() string {
	switch t {
	case OldYin:
		return "old yin"
	case YoungYang:
		return "young yang"
	case YoungYin:
		return "young yin"
	case OldYang:
		return "old yang"
	default:
		return fmt.Sprintf("Throw(%d)", uint8(t))
	}
}

// Method is the ritual used to obtain throws.
type Method uint8

const (
	// YarrowStalks divides 49 stalks three times per line.
	YarrowStalks Method = iota
	// Coins tosses three coins per line, heads 3 and tails 2.
	Coins
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case YarrowStalks:
		return "yarrow"
	case Coins:
		return "coins"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod maps "yarrow" or "coins" to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yarrow", "yarrow-stalks", "yarrowstalks":
		return YarrowStalks, nil
	case "coins", "coin":
		return Coins, nil
	default:
		return YarrowStalks, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(b []byte) error {
	v, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Randomness selects where random numbers come from.
type Randomness uint8

const (
	// Random queries random.org.
	Random Randomness = iota
	// Pseudo uses a local PCG generator.
	Pseudo
)

// String implements fmt.Stringer.
func (r Randomness) String() string {
	switch r {
	case Random:
		return "random"
	case Pseudo:
		return "pseudo"
	default:
		return fmt.Sprintf("Randomness(%d)", uint8(r))
	}
}

// ParseRandomness maps "random" or "pseudo" to a Randomness.
func ParseRandomness(s string) (Randomness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return Random, nil
	case "pseudo":
		return Pseudo, nil
	default:
		return Random, fmt.Errorf("%w: %q", ErrUnknownRandomness, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Randomness) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Randomness) UnmarshalText(b []byte) error {
	v, err := ParseRandomness(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Reading is the outcome of six throws.
type Reading struct {
	Question string
	Method   Method
	// Throws runs bottom to top.
	Throws  [6]Throw
	Present core.Hexagram
	// Future is nil when no line changes.
	Future *core.Hexagram
}

// ChangingLines returns the positions of the changing lines, bottom first.
func (r *Reading) ChangingLines() []core.Position {
	var out []core.Position
	for i, t := range r.Throws {
		if t.Changing() {
			out = append(out, core.Position(i))
		}
	}
	return out
}
