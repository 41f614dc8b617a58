package poker

import (
	"fmt"
	"strings"
)

// Hand is an immutable set of five distinct cards. Every Hand obtained from
// NewHand or ParseHand is already valid, so ranking it cannot fail.
type Hand struct {
	cards [HandSize]Card
}

// NewHand validates and stores exactly five distinct cards in the given order.
func NewHand(cards ...Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, need %d", ErrWrongHandSize, len(cards), HandSize)
	}
	for _, c := range cards {
		if !c.Valid() {
			return Hand{}, fmt.Errorf("%w: %#08x", ErrInvalidCard, c.Value())
		}
	}
	if err := checkDistinct(cards); err != nil {
		return Hand{}, err
	}

	var h Hand
	copy(h.cards[:], cards)
	return h, nil
}

// ParseHand parses a hand such as "Kd 5s Jc Ah Qc".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests).
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// Cards returns the cards in the order they were supplied.
func (h Hand) Cards() [HandSize]Card {
	return h.cards
}

// Rank evaluates the hand.
func (h Hand) Rank() HandRank {
	c := h.cards
	return evaluate(c[0], c[1], c[2], c[3], c[4])
}

// String joins the cards with single spaces, e.g. "Kd 5s Jc Ah Qc".
func (h Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
