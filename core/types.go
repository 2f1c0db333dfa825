// Package core defines the Line, Position, Trigram and Hexagram value types
// of the I Ching, the static King Wen catalogue they are drawn from, and the
// sentinel errors shared by every package built on top of them.
//
// All values are small, comparable and immutable; the catalogue is indexed
// once at package initialisation and is read-only afterwards, so every
// exported function is safe for concurrent use without locking.
//
// Errors:
//
//	ErrInvalidHexagram    - hexagram number outside [1,64].
//	ErrInvalidTrigram     - trigram number outside [1,8].
//	ErrInvalidPosition    - line position outside [First,Sixth].
//	ErrUnknownPattern     - line pattern holds a value that is neither Open nor Closed.
//	ErrInvariantViolation - a structural edit produced lines missing from the catalogue.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalogue lookups.
var (
	// ErrInvalidHexagram indicates a hexagram number outside [1,64].
	ErrInvalidHexagram = errors.New("core: hexagram number out of range [1,64]")

	// ErrInvalidTrigram indicates a trigram number outside [1,8].
	ErrInvalidTrigram = errors.New("core: trigram number out of range [1,8]")

	// ErrInvalidPosition indicates a line position outside [First,Sixth].
	ErrInvalidPosition = errors.New("core: line position out of range")

	// ErrUnknownPattern indicates a line pattern that cannot be resolved.
	ErrUnknownPattern = errors.New("core: unknown line pattern")

	// ErrInvariantViolation indicates a catalogue invariant no longer holds.
	// It signals a programming error and surfaces as a panic value from
	// package init and the Must* helpers.
	ErrInvariantViolation = errors.New("core: invariant violation")
)

// Catalogue sizes.
const (
	NumTrigrams  = 8
	NumHexagrams = 64
)

// Line is a single line of a trigram or hexagram.
type Line uint8

const (
	// Open is the broken (yin) line.
	Open Line = iota
	// Closed is the solid (yang) line.
	Closed
)

// Inverse returns the opposite line.
func (l Line) Inverse() Line {
	if l == Open {
		return Closed
	}
	if l == Closed {
		return Open
	}
	return l
}

// Valid reports whether l is Open or Closed.
func (l Line) Valid() bool { return l == Open || l == Closed }

// String implements fmt.Stringer.
func (l Line) String() string {
	switch l {
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return fmt.Sprintf("Line(%d)", uint8(l))
	}
}

// Position addresses one of the six lines of a hexagram, counted from the
// bottom. Its numeric value is the 0-based index into Hexagram.Lines.
type Position uint8

const (
	First Position = iota
	Second
	Third
	Fourth
	Fifth
	Sixth
)

var positionNames = [...]string{"First", "Second", "Third", "Fourth", "Fifth", "Sixth"}

// Positions returns the six positions bottom to top.
func Positions() []Position {
	return []Position{First, Second, Third, Fourth, Fifth, Sixth}
}

// Valid reports whether p addresses an existing line.
func (p Position) Valid() bool { return p <= Sixth }

// String implements fmt.Stringer.
func (p Position) String() string {
	if p.Valid() {
		return positionNames[p]
	}
	return fmt.Sprintf("Position(%d)", uint8(p))
}

// Trigram is one of the eight three-line figures.
//
// Number is its 1-based index in the Fu Xi order (Qian, Dui, Li, Zhen, Xun,
// Kan, Gen, Kun); Lines runs bottom to top.
type Trigram struct {
	Number uint8
	Lines  [3]Line
}

// Hexagram is one of the 64 six-line figures.
//
// Number is its 1-based King Wen index; Lines runs bottom to top, so
// Lines[0:3] is the bottom (inner) trigram and Lines[3:6] the top one.
type Hexagram struct {
	Number uint8
	Lines  [6]Line
}
