package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateKnownHands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		expected HandRank
		category Category
	}{
		{"royal flush clubs", "Kc Qc Jc Tc Ac", 1, StraightFlush},
		{"royal flush diamonds", "Kd Qd Jd Td Ad", 1, StraightFlush},
		{"royal flush hearts", "Kh Qh Jh Th Ah", 1, StraightFlush},
		{"royal flush spades", "Ks Qs Js Ts As", 1, StraightFlush},
		{"king-high straight flush", "9s Ts Js Qs Ks", 2, StraightFlush},
		{"steel wheel", "As 2s 3s 4s 5s", 10, StraightFlush},
		{"four aces king", "As Ah Ad Ac Ks", 11, FourOfAKind},
		{"four deuces trey", "2s 2h 2d 2c 3s", 166, FourOfAKind},
		{"aces full of kings", "As Ah Ad Kc Ks", 167, FullHouse},
		{"deuces full of treys", "2s 2h 2d 3c 3s", 322, FullHouse},
		{"ace-high flush", "Ah Kh Qh Jh 9h", 323, Flush},
		{"seven-high flush", "7d 5d 4d 3d 2d", 1599, Flush},
		{"broadway", "Ah Kd Qh Jc Ts", 1600, Straight},
		{"wheel", "Ah 2d 3h 4c 5s", 1609, Straight},
		{"trip aces", "As Ah Ad Kc Qs", 1610, ThreeOfAKind},
		{"trip deuces", "2s 2h 2d 4c 3s", 2467, ThreeOfAKind},
		{"aces up", "As Ah Kd Kc Qs", 2468, TwoPair},
		{"treys and deuces", "3s 3h 2d 2c 4s", 3325, TwoPair},
		{"pair of aces", "As Ah Kd Qc Js", 3326, OnePair},
		{"pair of deuces five high", "2h 2d 3c 4c 5c", 6185, OnePair},
		{"ace high", "Ah Kd Qh Jc 9s", 6186, HighCard},
		{"seven high", "7h 5c 4d 3s 2h", 7462, HighCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rank, err := Evaluate(MustParseCards(tc.cards)...)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rank)
			assert.Equal(t, tc.category, rank.Category())
		})
	}
}

func TestEvaluateWrongHandSize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
	}{
		{"no cards", ""},
		{"four cards", "Kh Qc Jd Ts"},
		{"six cards", "Kh Qc Jd Ts Ah 8c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Evaluate(MustParseCards(tc.cards)...)
			assert.ErrorIs(t, err, ErrWrongHandSize)
		})
	}
}

func TestEvaluateDuplicateCard(t *testing.T) {
	t.Parallel()
	_, err := Evaluate(MustParseCards("Kh Kh Jd Ts Ah")...)
	require.ErrorIs(t, err, ErrDuplicateCard)
	assert.Contains(t, err.Error(), "Kh")

	_, err = Evaluate(MustParseCards("Kh Qc Jd Ts Qc")...)
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestEvaluateRejectsForeignValues(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Kh Qc Jd Ts Ah")
	cards[2] = Card(0xFFFFFFFF)
	_, err := Evaluate(cards...)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestEvaluateOrderIndependent(t *testing.T) {
	t.Parallel()
	hands := []string{
		"Kc Qc Jc Tc Ac",
		"2h 2d 3c 4c 5c",
		"As Ah Ad Kc Ks",
		"7h 5c 4d 3s 2h",
		"9d 9s 4h 4c Jd",
	}

	for _, h := range hands {
		cards := MustParseCards(h)
		want := MustEvaluate(cards...)
		permute(cards, 0, func(p []Card) {
			got, err := Evaluate(p...)
			require.NoError(t, err)
			if got != want {
				t.Errorf("%v ranked %d, want %d", p, got, want)
			}
		})
	}
}

// permute calls fn with every ordering of cards, reusing the slice.
func permute(cards []Card, k int, fn func([]Card)) {
	if k == len(cards) {
		fn(cards)
		return
	}
	for i := k; i < len(cards); i++ {
		cards[k], cards[i] = cards[i], cards[k]
		permute(cards, k+1, fn)
		cards[k], cards[i] = cards[i], cards[k]
	}
}

// forEachHand visits every five-card combination of the deck.
func forEachHand(fn func(c1, c2, c3, c4, c5 Card)) {
	d := NewDeck()
	for a := 0; a < DeckSize-4; a++ {
		for b := a + 1; b < DeckSize-3; b++ {
			for c := b + 1; c < DeckSize-2; c++ {
				for e := c + 1; e < DeckSize-1; e++ {
					for f := e + 1; f < DeckSize; f++ {
						fn(d[a], d[b], d[c], d[e], d[f])
					}
				}
			}
		}
	}
}

func TestEvaluateAllHands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive evaluation in short mode")
	}
	t.Parallel()

	var counts [WorstRank + 1]int
	total := 0
	forEachHand(func(c1, c2, c3, c4, c5 Card) {
		rank, err := Evaluate(c1, c2, c3, c4, c5)
		if err != nil {
			t.Fatalf("Evaluate(%v %v %v %v %v): %v", c1, c2, c3, c4, c5, err)
		}
		if !rank.Valid() {
			t.Fatalf("Evaluate(%v %v %v %v %v) = %d, out of range", c1, c2, c3, c4, c5, rank)
		}
		counts[rank]++
		total++
	})

	assert.Equal(t, 2598960, total)
	assert.Equal(t, 4, counts[1], "royal flushes")

	for r := BestRank; r <= WorstRank; r++ {
		if counts[r] == 0 {
			t.Errorf("rank %d never produced", r)
		}
	}

	for _, c := range Categories {
		n := 0
		for r := c.Best(); r <= c.Worst(); r++ {
			n += counts[r]
		}
		assert.Equal(t, c.Combinations(), n, "%v combinations", c)
	}
}

// TestEvaluateMatchesReference checks that ranks order every hand the same
// way as an independent evaluator.
func TestEvaluateMatchesReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive comparison in short mode")
	}
	t.Parallel()

	var scores [WorstRank + 1]int16
	var seen [WorstRank + 1]bool
	forEachHand(func(c1, c2, c3, c4, c5 Card) {
		rank := MustEvaluate(c1, c2, c3, c4, c5)
		ref := [5]ph.Card{toReference(t, c1), toReference(t, c2), toReference(t, c3), toReference(t, c4), toReference(t, c5)}
		score := ph.Eval5(&ref)
		if !seen[rank] {
			seen[rank] = true
			scores[rank] = score
			return
		}
		if scores[rank] != score {
			t.Fatalf("rank %d maps to reference scores %d and %d", rank, scores[rank], score)
		}
	})

	// Reference scores may run in either direction; they must be strictly
	// monotonic across our ranks.
	ascending := scores[BestRank] < scores[WorstRank]
	for r := BestRank; r < WorstRank; r++ {
		if ascending && scores[r] >= scores[r+1] || !ascending && scores[r] <= scores[r+1] {
			t.Fatalf("ranks %d and %d are ordered differently by the reference (%d, %d)", r, r+1, scores[r], scores[r+1])
		}
	}
}

var referenceSuits = map[Suit]ph.Suit{Clubs: ph.Club, Diamonds: ph.Diamond, Hearts: ph.Heart, Spades: ph.Spade}

func toReference(t *testing.T, c Card) ph.Card {
	t.Helper()
	// The reference numbers ranks 1..13 with the ace low.
	rank := ph.Rank(c.Rank() + 2)
	if c.Rank() == Ace {
		rank = 1
	}
	card, err := ph.MakeCard(referenceSuits[c.Suit()], rank)
	if err != nil {
		t.Fatalf("MakeCard(%v): %v", c, err)
	}
	return card
}

func BenchmarkEvaluate(b *testing.B) {
	hands := [][]Card{
		MustParseCards("Kc Qc Jc Tc Ac"),
		MustParseCards("Ah Kd Qh Jc Ts"),
		MustParseCards("2h 2d 3c 4c 5c"),
		MustParseCards("7h 5c 4d 3s 2h"),
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Evaluate(hands[i%len(hands)]...)
	}
}

func BenchmarkHandRank(b *testing.B) {
	h := MustParseHand("9d 9s 4h 4c Jd")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = h.Rank()
	}
}
