// Package core provides the I Ching data model: lines, trigrams and the 64
// hexagrams of the King Wen sequence, with constant-time lookup from a line
// pattern to the entity it forms.
//
// What
//
//   - Line: Open (yin) or Closed (yang); Inverse flips it.
//   - Position: First..Sixth, counted from the bottom of a hexagram.
//   - Trigram: Fu Xi number 1..8 and three lines.
//   - Hexagram: King Wen number 1..64 and six lines.
//   - Structural edits on Hexagram (InverseLine, Inverse, Reverse,
//     MirrorTrigrams, FlipTrigrams, UseNuclearTrigrams, ...) that always
//     return a catalogue entry.
//
// Catalogue
//
//	The eight trigrams and the 64 hexagrams are static tables of
//	(number, pattern) pairs. At package initialisation every entry is
//	visited once and packed into a 6-bit pattern (bit i = line i, Closed
//	= 1), filling a pattern→number array. A duplicate or malformed
//	pattern panics at init.
//
// Complexity
//
//   - HexagramByNumber, LookupHexagram, LookupTrigram: O(1).
//   - Every structural edit: O(1), no allocation.
//
// Usage
//
//	h, err := core.HexagramByNumber(11)
//	if err != nil {
//		// core.ErrInvalidHexagram
//	}
//	bottom, top := h.Trigrams()   // Qian below, Kun above
//	next := h.Inverse()           // hexagram 12
//	fmt.Println(h.LineChanges(next)) // 6
//
// Errors
//
//   - ErrInvalidHexagram / ErrInvalidTrigram: number out of range.
//   - ErrUnknownPattern: a line value other than Open or Closed.
//   - ErrInvariantViolation: panic value of the Must* helpers.
package core
