// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Accessors and structural edits on Trigram and Hexagram.
// Policy:
//   - Receivers are values; nothing mutates in place.
//   - Every edit resolves its result through the catalogue, so a returned
//     Hexagram always carries the right King Wen number.

package core

import (
	"fmt"
	"math/bits"
)

// Name returns the pinyin name of the trigram.
func (t Trigram) Name() string {
	if t.Number < 1 || int(t.Number) > len(trigramTable) {
		return ""
	}
	return trigramTable[t.Number-1].name
}

// Image returns the natural image associated with the trigram.
func (t Trigram) Image() string {
	if t.Number < 1 || int(t.Number) > len(trigramTable) {
		return ""
	}
	return trigramTable[t.Number-1].image
}

// Symbol returns the Unicode trigram character (U+2630..U+2637).
func (t Trigram) Symbol() rune { return 0x2630 + rune(t.Number) - 1 }

// Pattern packs the lines into the low three bits, bit 0 being the bottom line.
func (t Trigram) Pattern() uint8 {
	var p uint8
	for i, l := range t.Lines {
		if l == Closed {
			p |= 1 << i
		}
	}
	return p
}

// String implements fmt.Stringer.
func (t Trigram) String() string {
	return fmt.Sprintf("%s %c (%s)", t.Name(), t.Symbol(), t.Image())
}

// Name returns the pinyin name of the hexagram.
func (h Hexagram) Name() string {
	if !ValidHexagramNumber(int(h.Number)) {
		return ""
	}
	return hexagramTable[h.Number-1].name
}

// Title returns the English title of the hexagram.
func (h Hexagram) Title() string {
	if !ValidHexagramNumber(int(h.Number)) {
		return ""
	}
	return hexagramTable[h.Number-1].title
}

// Symbol returns the Unicode hexagram character (U+4DC0..U+4DFF).
func (h Hexagram) Symbol() rune { return 0x4DC0 + rune(h.Number) - 1 }

// Pattern packs the lines into the low six bits, bit 0 being the bottom line.
func (h Hexagram) Pattern() uint8 {
	var p uint8
	for i, l := range h.Lines {
		if l == Closed {
			p |= 1 << i
		}
	}
	return p
}

// String implements fmt.Stringer.
func (h Hexagram) String() string {
	return fmt.Sprintf("%d %s", h.Number, h.Name())
}

// Line returns the line at position p.
func (h Hexagram) Line(p Position) (Line, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPosition, uint8(p))
	}
	return h.Lines[p], nil
}

// BottomTrigram returns the trigram formed by lines 0..2.
func (h Hexagram) BottomTrigram() Trigram {
	return MustLookupTrigram([3]Line{h.Lines[0], h.Lines[1], h.Lines[2]})
}

// TopTrigram returns the trigram formed by lines 3..5.
func (h Hexagram) TopTrigram() Trigram {
	return MustLookupTrigram([3]Line{h.Lines[3], h.Lines[4], h.Lines[5]})
}

// Trigrams returns the bottom and top trigrams.
func (h Hexagram) Trigrams() (bottom, top Trigram) {
	return h.BottomTrigram(), h.TopTrigram()
}

// NuclearTrigrams returns the inner trigrams formed by lines 1..3 and 2..4.
func (h Hexagram) NuclearTrigrams() (bottom, top Trigram) {
	bottom = MustLookupTrigram([3]Line{h.Lines[1], h.Lines[2], h.Lines[3]})
	top = MustLookupTrigram([3]Line{h.Lines[2], h.Lines[3], h.Lines[4]})
	return bottom, top
}

// LineChanges returns the number of positions at which h and other differ.
func (h Hexagram) LineChanges(other Hexagram) int {
	return bits.OnesCount8(h.Pattern() ^ other.Pattern())
}

// InverseLine flips the line at position p. Positions past Sixth are ignored.
func (h Hexagram) InverseLine(p Position) Hexagram {
	if !p.Valid() {
		return h
	}
	l := h.Lines
	l[p] = l[p].Inverse()
	return MustLookupHexagram(l)
}

// InverseBottomTrigram flips lines 0..2.
func (h Hexagram) InverseBottomTrigram() Hexagram {
	l := h.Lines
	for i := 0; i < 3; i++ {
		l[i] = l[i].Inverse()
	}
	return MustLookupHexagram(l)
}

// InverseTopTrigram flips lines 3..5.
func (h Hexagram) InverseTopTrigram() Hexagram {
	l := h.Lines
	for i := 3; i < 6; i++ {
		l[i] = l[i].Inverse()
	}
	return MustLookupHexagram(l)
}

// ReverseBottomTrigram reverses the order of lines 0..2.
func (h Hexagram) ReverseBottomTrigram() Hexagram {
	l := h.Lines
	l[0], l[2] = l[2], l[0]
	return MustLookupHexagram(l)
}

// ReverseTopTrigram reverses the order of lines 3..5.
func (h Hexagram) ReverseTopTrigram() Hexagram {
	l := h.Lines
	l[3], l[5] = l[5], l[3]
	return MustLookupHexagram(l)
}

// MirrorTrigrams reverses each trigram in place: [l2 l1 l0 l5 l4 l3].
func (h Hexagram) MirrorTrigrams() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[2], l[1], l[0], l[5], l[4], l[3]})
}

// FlipTrigrams swaps the bottom and top trigrams: [l3 l4 l5 l0 l1 l2].
func (h Hexagram) FlipTrigrams() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[3], l[4], l[5], l[0], l[1], l[2]})
}

// UseNuclearTrigrams stacks the nuclear trigrams: [l1 l2 l3 l2 l3 l4].
func (h Hexagram) UseNuclearTrigrams() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[1], l[2], l[3], l[2], l[3], l[4]})
}

// Inverse flips all six lines.
func (h Hexagram) Inverse() Hexagram {
	l := h.Lines
	for i := range l {
		l[i] = l[i].Inverse()
	}
	return MustLookupHexagram(l)
}

// Reverse turns the hexagram upside down: [l5 l4 l3 l2 l1 l0].
func (h Hexagram) Reverse() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[5], l[4], l[3], l[2], l[1], l[0]})
}

// MixTrigramsBottomFirst interleaves the trigrams starting with the
// bottom one: [l0 l3 l1 l4 l2 l5].
func (h Hexagram) MixTrigramsBottomFirst() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[0], l[3], l[1], l[4], l[2], l[5]})
}

// MixTrigramsTopFirst interleaves the trigrams starting with the top
// one: [l3 l0 l4 l1 l5 l2].
func (h Hexagram) MixTrigramsTopFirst() Hexagram {
	l := h.Lines
	return MustLookupHexagram([6]Line{l[3], l[0], l[4], l[1], l[5], l[2]})
}
