// SPDX-License-Identifier: MIT
//
// File: catalogue.go
// Role: Static trigram and King Wen hexagram tables plus the lines→entity
// index built from them once at package initialisation.
// Contract:
//   - Patterns are written bottom to top; '1' is Closed, '0' is Open.
//   - Every pattern appears exactly once; a malformed table panics at init.

package core

import (
	pkgerrors "github.com/pkg/errors"
)

type trigramEntry struct {
	number  uint8
	pattern string
	name    string
	image   string
}

type hexagramEntry struct {
	number  uint8
	pattern string
	name    string
	title   string
}

// trigramTable lists the eight trigrams in Fu Xi order.
var trigramTable = [NumTrigrams]trigramEntry{
	{1, "111", "Qian", "Heaven"},
	{2, "110", "Dui", "Lake"},
	{3, "101", "Li", "Fire"},
	{4, "100", "Zhen", "Thunder"},
	{5, "011", "Xun", "Wind"},
	{6, "010", "Kan", "Water"},
	{7, "001", "Gen", "Mountain"},
	{8, "000", "Kun", "Earth"},
}

// hexagramTable lists the 64 hexagrams in King Wen order.
var hexagramTable = [NumHexagrams]hexagramEntry{
	{1, "111111", "Qian", "The Creative"},
	{2, "000000", "Kun", "The Receptive"},
	{3, "100010", "Zhun", "Difficulty at the Beginning"},
	{4, "010001", "Meng", "Youthful Folly"},
	{5, "111010", "Xu", "Waiting"},
	{6, "010111", "Song", "Conflict"},
	{7, "010000", "Shi", "The Army"},
	{8, "000010", "Bi", "Holding Together"},
	{9, "111011", "Xiao Chu", "The Taming Power of the Small"},
	{10, "110111", "Lu", "Treading"},
	{11, "111000", "Tai", "Peace"},
	{12, "000111", "Pi", "Standstill"},
	{13, "101111", "Tong Ren", "Fellowship with Men"},
	{14, "111101", "Da You", "Possession in Great Measure"},
	{15, "001000", "Qian", "Modesty"},
	{16, "000100", "Yu", "Enthusiasm"},
	{17, "100110", "Sui", "Following"},
	{18, "011001", "Gu", "Work on What Has Been Spoiled"},
	{19, "110000", "Lin", "Approach"},
	{20, "000011", "Guan", "Contemplation"},
	{21, "100101", "Shi He", "Biting Through"},
	{22, "101001", "Bi", "Grace"},
	{23, "000001", "Bo", "Splitting Apart"},
	{24, "100000", "Fu", "Return"},
	{25, "100111", "Wu Wang", "Innocence"},
	{26, "111001", "Da Chu", "The Taming Power of the Great"},
	{27, "100001", "Yi", "The Corners of the Mouth"},
	{28, "011110", "Da Guo", "Preponderance of the Great"},
	{29, "010010", "Kan", "The Abysmal"},
	{30, "101101", "Li", "The Clinging"},
	{31, "001110", "Xian", "Influence"},
	{32, "011100", "Heng", "Duration"},
	{33, "001111", "Dun", "Retreat"},
	{34, "111100", "Da Zhuang", "The Power of the Great"},
	{35, "000101", "Jin", "Progress"},
	{36, "101000", "Ming Yi", "Darkening of the Light"},
	{37, "101011", "Jia Ren", "The Family"},
	{38, "110101", "Kui", "Opposition"},
	{39, "001010", "Jian", "Obstruction"},
	{40, "010100", "Xie", "Deliverance"},
	{41, "110001", "Sun", "Decrease"},
	{42, "100011", "Yi", "Increase"},
	{43, "111110", "Guai", "Break-through"},
	{44, "011111", "Gou", "Coming to Meet"},
	{45, "000110", "Cui", "Gathering Together"},
	{46, "011000", "Sheng", "Pushing Upward"},
	{47, "010110", "Kun", "Oppression"},
	{48, "011010", "Jing", "The Well"},
	{49, "101110", "Ge", "Revolution"},
	{50, "011101", "Ding", "The Cauldron"},
	{51, "100100", "Zhen", "The Arousing"},
	{52, "001001", "Gen", "Keeping Still"},
	{53, "001011", "Jian", "Development"},
	{54, "110100", "Gui Mei", "The Marrying Maiden"},
	{55, "101100", "Feng", "Abundance"},
	{56, "001101", "Lu", "The Wanderer"},
	{57, "011011", "Xun", "The Gentle"},
	{58, "110110", "Dui", "The Joyous"},
	{59, "010011", "Huan", "Dispersion"},
	{60, "110010", "Jie", "Limitation"},
	{61, "110011", "Zhong Fu", "Inner Truth"},
	{62, "001100", "Xiao Guo", "Preponderance of the Small"},
	{63, "101010", "Ji Ji", "After Completion"},
	{64, "010101", "Wei Ji", "Before Completion"},
}

var (
	trigrams          [NumTrigrams]Trigram
	trigramByPattern  [NumTrigrams]uint8
	hexagrams         [NumHexagrams]Hexagram
	hexagramByPattern [NumHexagrams]uint8
)

func init() {
	if err := buildIndex(); err != nil {
		panic(err)
	}
}

// buildIndex visits every table entry exactly once and fills the
// number→value arrays and the pattern→number index.
func buildIndex() error {
	for i, e := range trigramTable {
		if int(e.number) != i+1 {
			return pkgerrors.Wrapf(ErrInvariantViolation, "trigram table: entry %d numbered %d", i+1, e.number)
		}
		lines, err := parsePattern(e.pattern, 3)
		if err != nil {
			return pkgerrors.Wrapf(err, "trigram %d", e.number)
		}
		t := Trigram{Number: e.number}
		copy(t.Lines[:], lines)
		p := t.Pattern()
		if trigramByPattern[p] != 0 {
			return pkgerrors.Wrapf(ErrInvariantViolation, "trigram %d duplicates pattern of %d", e.number, trigramByPattern[p])
		}
		trigramByPattern[p] = e.number
		trigrams[i] = t
	}

	for i, e := range hexagramTable {
		if int(e.number) != i+1 {
			return pkgerrors.Wrapf(ErrInvariantViolation, "hexagram table: entry %d numbered %d", i+1, e.number)
		}
		lines, err := parsePattern(e.pattern, 6)
		if err != nil {
			return pkgerrors.Wrapf(err, "hexagram %d", e.number)
		}
		h := Hexagram{Number: e.number}
		copy(h.Lines[:], lines)
		p := h.Pattern()
		if hexagramByPattern[p] != 0 {
			return pkgerrors.Wrapf(ErrInvariantViolation, "hexagram %d duplicates pattern of %d", e.number, hexagramByPattern[p])
		}
		hexagramByPattern[p] = e.number
		hexagrams[i] = h
	}

	return nil
}

// parsePattern converts a '0'/'1' string of length n into lines.
func parsePattern(s string, n int) ([]Line, error) {
	if len(s) != n {
		return nil, pkgerrors.Wrapf(ErrInvariantViolation, "pattern %q: want %d lines", s, n)
	}
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		switch s[i] {
		case '0':
			lines[i] = Open
		case '1':
			lines[i] = Closed
		default:
			return nil, pkgerrors.Wrapf(ErrInvariantViolation, "pattern %q: bad symbol %q", s, s[i])
		}
	}
	return lines, nil
}
