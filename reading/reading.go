package reading

import (
	"context"
	"fmt"

	"github.com/martinmr/iching/core"
)

// Generate casts six throws with method, drawing randomness from src.
func Generate(ctx context.Context, method Method, src Source, question string) (*Reading, error) {
	var throws [6]Throw
	for i := range throws {
		var (
			t   Throw
			err error
		)
		switch method {
		case Coins:
			t, err = tossCoins(ctx, src)
		case YarrowStalks:
			t, err = divideStalks(ctx, src)
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, uint8(method))
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		throws[i] = t
	}
	r, err := FromThrows(throws)
	if err != nil {
		return nil, err
	}
	r.Question = question
	r.Method = method
	return r, nil
}

// FromThrows resolves six throws (bottom to top) into a Reading.
func FromThrows(throws [6]Throw) (*Reading, error) {
	var present, future [6]core.Line
	changing := false
	for i, t := range throws {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: line %d is %d", ErrBadThrow, i+1, uint8(t))
		}
		present[i] = t.Line()
		future[i] = t.Future()
		changing = changing || t.Changing()
	}

	r := &Reading{Throws: throws, Present: core.MustLookupHexagram(present)}
	if changing {
		f := core.MustLookupHexagram(future)
		r.Future = &f
	}
	return r, nil
}

// tossCoins throws three coins; heads count 3, tails 2.
func tossCoins(ctx context.Context, src Source) (Throw, error) {
	sum := 0
	for c := 0; c < 3; c++ {
		v, err := src.Intn(ctx, 2)
		if err != nil {
			return 0, err
		}
		sum += 2 + v
	}
	return Throw(sum), nil
}

// stalksTotal is the number of yarrow stalks used; one of the fifty is set
// aside before the divisions start.
const stalksTotal = 49

// divideStalks performs the three divisions of one line.
//
// Each division splits the stalks into two heaps (the right heap keeping at
// least two), takes one stalk from the right heap, then counts each heap
// off by fours; the remainders (1..4 each) and the taken stalk are set
// aside. After three divisions 24, 28, 32 or 36 stalks remain, giving a
// throw of 6, 7, 8 or 9.
func divideStalks(ctx context.Context, src Source) (Throw, error) {
	stalks := stalksTotal
	for round := 0; round < 3; round++ {
		v, err := src.Intn(ctx, stalks-2)
		if err != nil {
			return 0, err
		}
		left := v + 1
		right := stalks - left - 1
		stalks -= 1 + remainder(left) + remainder(right)
	}
	return Throw(stalks / 4), nil
}

// remainder counts off a heap by fours; a whole count leaves four.
func remainder(heap int) int {
	r := heap % 4
	if r == 0 {
		return 4
	}
	return r
}
