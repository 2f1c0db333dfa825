// SPDX-License-Identifier: MIT
// Package core_test verifies the catalogue index, lookups and value types.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinmr/iching/core"
)

func TestLine_Inverse(t *testing.T) {
	assert.Equal(t, core.Closed, core.Open.Inverse())
	assert.Equal(t, core.Open, core.Closed.Inverse())
	assert.True(t, core.Open.Valid())
	assert.False(t, core.Line(7).Valid())
	assert.Equal(t, core.Line(7), core.Line(7).Inverse())
	assert.Equal(t, "Closed", core.Closed.String())
}

func TestPosition_String(t *testing.T) {
	assert.Len(t, core.Positions(), 6)
	assert.Equal(t, "Third", core.Third.String())
	assert.Equal(t, "Position(9)", core.Position(9).String())
	assert.False(t, core.Position(6).Valid())
}

// TestCatalogue_RoundTrip checks that every hexagram resolves back to itself
// from its lines and that all patterns are distinct.
func TestCatalogue_RoundTrip(t *testing.T) {
	seen := make(map[uint8]uint8, 64)
	for n := 1; n <= 64; n++ {
		h, err := core.HexagramByNumber(n)
		require.NoError(t, err)
		assert.Equal(t, uint8(n), h.Number)

		back, err := core.LookupHexagram(h.Lines)
		require.NoError(t, err)
		assert.Equal(t, h, back)

		prev, dup := seen[h.Pattern()]
		assert.Falsef(t, dup, "hexagram %d repeats pattern of %d", n, prev)
		seen[h.Pattern()] = h.Number
	}
	assert.Len(t, seen, 64)

	for n := 1; n <= 8; n++ {
		tr, err := core.TrigramByNumber(n)
		require.NoError(t, err)
		back, err := core.LookupTrigram(tr.Lines)
		require.NoError(t, err)
		assert.Equal(t, tr, back)
	}
}

// TestCatalogue_KingWenPairs checks the pairing rule of the sequence: every
// even hexagram is the previous one turned upside down, or its inverse when
// the previous one is symmetric.
func TestCatalogue_KingWenPairs(t *testing.T) {
	for n := 1; n < 64; n += 2 {
		a := core.MustHexagram(n)
		b := core.MustHexagram(n + 1)
		if a.Reverse() == a {
			assert.Equalf(t, a.Inverse(), b, "pair %d/%d", n, n+1)
		} else {
			assert.Equalf(t, a.Reverse(), b, "pair %d/%d", n, n+1)
		}
	}
}

func TestHexagramByNumber_Errors(t *testing.T) {
	for _, n := range []int{-1, 0, 65, 1000} {
		_, err := core.HexagramByNumber(n)
		assert.ErrorIs(t, err, core.ErrInvalidHexagram)
		assert.False(t, core.ValidHexagramNumber(n))
	}
	_, err := core.TrigramByNumber(9)
	assert.ErrorIs(t, err, core.ErrInvalidTrigram)
}

func TestLookup_UnknownPattern(t *testing.T) {
	lines := [6]core.Line{core.Open, core.Closed, core.Line(3), core.Open, core.Open, core.Open}
	_, err := core.LookupHexagram(lines)
	assert.ErrorIs(t, err, core.ErrUnknownPattern)

}

func TestMustLookupHexagram_Panics(t *testing.T) {
	lines := [6]core.Line{core.Line(2)}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.ErrorIs(t, err, core.ErrInvariantViolation)
	}()
	core.MustLookupHexagram(lines)
}

func TestAccessors_Copy(t *testing.T) {
	all := core.Hexagrams()
	require.Len(t, all, 64)
	all[0] = core.Hexagram{}
	assert.Equal(t, uint8(1), core.Hexagrams()[0].Number)

	tri := core.Trigrams()
	require.Len(t, tri, 8)
	assert.Equal(t, "Qian", tri[0].Name())
	assert.Equal(t, "Kun", tri[7].Name())
}
