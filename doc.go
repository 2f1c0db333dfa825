// Package iching searches the transformations between the 64 hexagrams of
// the I Ching and measures how far apart consecutive hexagrams of a
// sequence are.
//
// What is it?
//
//	A hexagram is six stacked lines, each open (yin) or closed (yang).
//	Structural edits such as flipping one line, inverting a trigram or
//	turning the figure upside down map every hexagram onto another one,
//	so the 64 hexagrams form a directed graph whose edges are labelled
//	by the edit applied. Every pair of hexagrams is at most three edits
//	apart under both operation catalogues.
//
// Packages:
//
//	core/      Line, Position, Trigram, Hexagram and the King Wen catalogue
//	ops/       the Canonical (13 edges) and Extended (17 edges) catalogues
//	search/    exhaustive BFS returning every shortest path between two hexagrams
//	graph/     the materialised transformation graph: levels, distances, diameter
//	sequence/  per-pair analysis of whole sequences, random shuffles, best of N
//	reading/   yarrow stalk and coin readings from random.org or a local PRNG
//	report/    styled text rendering of all of the above
//	config/    YAML configuration with ICHING_* overrides
//	cmd/iching  the command line front end
//
// Quick example:
//
//	paths, _ := search.FindShortestPaths(11, 12)
//	// 11 Tai ䷊ → 12 Pi ䷋ by InverseHexagram, or by ReverseHexagram
//
//	a, _ := sequence.Analyze(sequence.KingWen())
//	fmt.Println(a.TotalOps, a.TotalLineChanges, a.TotalPaths) // 96 217 440301256704
//
//	go install github.com/martinmr/iching/cmd/iching@latest
package iching
