package sequence_test

import (
	"fmt"

	"github.com/martinmr/iching/sequence"
)

// ExampleAnalyze aggregates the King Wen sequence under the canonical
// catalogue.
func ExampleAnalyze() {
	a, err := sequence.Analyze(sequence.KingWen())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(a.TotalOps, a.TotalLineChanges, a.TotalPaths)
	fmt.Printf("%.3f\n", a.LinesPerOperation())
	// Output:
	// 96 217 440301256704
	// 2.260
}

func ExampleParseSequence() {
	seq, _ := sequence.ParseSequence("1-3, 64")
	fmt.Println(seq)
	// Output:
	// [1 2 3 64]
}
