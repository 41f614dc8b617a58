package poker

import (
	"fmt"

	"github.com/lox/pokerrank/internal/tables"
)

// HandSize is the only hand size the evaluator accepts.
const HandSize = 5

// Evaluate ranks exactly five distinct cards. The result is in [1, 7462],
// where 1 is a royal flush and 7462 is unpaired 7-5-4-3-2.
//
// It fails with ErrWrongHandSize for any other number of cards and with
// ErrDuplicateCard when a card repeats. A value that NewCard could not have
// produced is rejected with ErrInvalidCard. Card order does not affect the rank.
func Evaluate(cards ...Card) (HandRank, error) {
	if len(cards) != HandSize {
		return 0, fmt.Errorf("%w: got %d cards, need %d", ErrWrongHandSize, len(cards), HandSize)
	}
	for _, c := range cards {
		if !c.Valid() {
			return 0, fmt.Errorf("%w: %#08x", ErrInvalidCard, c.Value())
		}
	}
	if err := checkDistinct(cards); err != nil {
		return 0, err
	}
	return evaluate(cards[0], cards[1], cards[2], cards[3], cards[4]), nil
}

// MustEvaluate is Evaluate for fixtures; it panics on invalid input.
func MustEvaluate(cards ...Card) HandRank {
	rank, err := Evaluate(cards...)
	if err != nil {
		panic(err)
	}
	return rank
}

func checkDistinct(cards []Card) error {
	for i := 1; i < len(cards); i++ {
		for j := 0; j < i; j++ {
			if cards[i] == cards[j] {
				return fmt.Errorf("%w: %s", ErrDuplicateCard, cards[i])
			}
		}
	}
	return nil
}

// evaluate classifies five distinct cards. The three stages are tried in
// order because their index spaces overlap: a flush also has five distinct
// rank bits, so Unique would misrank it.
func evaluate(c1, c2, c3, c4, c5 Card) HandRank {
	mask := uint32(c1|c2|c3|c4|c5) >> rankBitBase

	if c1&c2&c3&c4&c5&suitMask != 0 {
		return HandRank(tables.Flushes[mask])
	}

	if rank := tables.Unique[mask]; rank != 0 {
		return HandRank(rank)
	}

	product := c1.Prime() * c2.Prime() * c3.Prime() * c4.Prime() * c5.Prime()
	return HandRank(tables.HashValues[tables.PerfectHash(product)])
}
