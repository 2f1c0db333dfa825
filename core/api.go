// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade over the catalogue: number and line-pattern
// lookups, plus Must* variants for callers that hold an invariant.
// Policy:
//   - Lookups are O(1) array indexing; no allocation except the copying
//     accessors Hexagrams() and Trigrams().
//   - Must* helpers panic with ErrInvariantViolation carrying a stack trace.

package core

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// HexagramByNumber returns the hexagram with King Wen number n.
// Returns ErrInvalidHexagram when n is outside [1,64].
func HexagramByNumber(n int) (Hexagram, error) {
	if n < 1 || n > len(hexagrams) {
		return Hexagram{}, fmt.Errorf("%w: got %d", ErrInvalidHexagram, n)
	}
	return hexagrams[n-1], nil
}

// MustHexagram is HexagramByNumber for numbers known to be valid.
func MustHexagram(n int) Hexagram {
	h, err := HexagramByNumber(n)
	if err != nil {
		panic(pkgerrors.WithStack(err))
	}
	return h
}

// ValidHexagramNumber reports whether n names a hexagram.
func ValidHexagramNumber(n int) bool { return n >= 1 && n <= len(hexagrams) }

// LookupHexagram resolves six lines to their hexagram.
// Returns ErrUnknownPattern if any line is neither Open nor Closed.
func LookupHexagram(lines [6]Line) (Hexagram, error) {
	p, err := pattern(lines[:])
	if err != nil {
		return Hexagram{}, err
	}
	n := hexagramByPattern[p]
	if n == 0 {
		return Hexagram{}, pkgerrors.Wrapf(ErrInvariantViolation, "pattern %06b not indexed", p)
	}
	return hexagrams[n-1], nil
}

// MustLookupHexagram resolves lines that are known to be well formed.
// It panics with ErrInvariantViolation otherwise.
func MustLookupHexagram(lines [6]Line) Hexagram {
	h, err := LookupHexagram(lines)
	if err != nil {
		panic(pkgerrors.Wrapf(ErrInvariantViolation, "lookup %v: %v", lines, err))
	}
	return h
}

// Hexagrams returns all 64 hexagrams in King Wen order.
func Hexagrams() []Hexagram {
	out := make([]Hexagram, len(hexagrams))
	copy(out, hexagrams[:])
	return out
}

// TrigramByNumber returns the trigram with Fu Xi number n.
// Returns ErrInvalidTrigram when n is outside [1,8].
func TrigramByNumber(n int) (Trigram, error) {
	if n < 1 || n > len(trigrams) {
		return Trigram{}, fmt.Errorf("%w: got %d", ErrInvalidTrigram, n)
	}
	return trigrams[n-1], nil
}

// LookupTrigram resolves three lines to their trigram.
func LookupTrigram(lines [3]Line) (Trigram, error) {
	p, err := pattern(lines[:])
	if err != nil {
		return Trigram{}, err
	}
	return trigrams[trigramByPattern[p]-1], nil
}

// MustLookupTrigram resolves lines that are known to be well formed.
func MustLookupTrigram(lines [3]Line) Trigram {
	t, err := LookupTrigram(lines)
	if err != nil {
		panic(pkgerrors.Wrapf(ErrInvariantViolation, "lookup %v: %v", lines, err))
	}
	return t
}

// Trigrams returns the eight trigrams in Fu Xi order.
func Trigrams() []Trigram {
	out := make([]Trigram, len(trigrams))
	copy(out, trigrams[:])
	return out
}

// pattern packs lines into bits, bit i holding line i.
func pattern(lines []Line) (uint8, error) {
	var p uint8
	for i, l := range lines {
		if !l.Valid() {
			return 0, fmt.Errorf("%w: line %d is %v", ErrUnknownPattern, i, l)
		}
		if l == Closed {
			p |= 1 << i
		}
	}
	return p, nil
}
