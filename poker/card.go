package poker

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/lox/pokerrank/internal/tables"
)

// Rank is a card's face value, ordered from deuce (0) to ace (12).
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// NumRanks is the number of distinct ranks in a standard deck.
const NumRanks = 13

const rankSymbols = "23456789TJQKA"

// Value returns the rank ordinal, 0 for a deuce through 12 for an ace.
func (r Rank) Value() int {
	return int(r)
}

// Valid reports whether r is one of the thirteen ranks.
func (r Rank) Valid() bool {
	return r <= Ace
}

// String returns the single-character rank symbol.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return rankSymbols[r : r+1]
}

// Suit is one of four single-bit flags occupying bits 12-15 of a Card.
// Suits are not ordered.
type Suit uint16

const (
	Spades   Suit = 0x1000
	Hearts   Suit = 0x2000
	Diamonds Suit = 0x4000
	Clubs    Suit = 0x8000
)

// Suits lists every suit in deck order.
var Suits = [4]Suit{Clubs, Diamonds, Hearts, Spades}

// Value returns the suit's flag bit as it appears in a packed card.
func (s Suit) Value() uint32 {
	return uint32(s)
}

// Valid reports whether s is exactly one of the four suit flags.
func (s Suit) Valid() bool {
	switch s {
	case Clubs, Diamonds, Hearts, Spades:
		return true
	}
	return false
}

// String returns the lowercase suit letter.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is a packed playing card:
//
//	bits 16-28  one-hot rank bit, deuce at 16
//	bits 12-15  suit flag
//	bits  8-11  rank ordinal
//	bits  0-7   prime for the rank
//
// The overlapping fields let the evaluator AND and OR whole cards together.
type Card uint32

const (
	primeMask   = 0xFF
	rankShift   = 8
	suitMask    = 0xF000
	rankBitBase = 16
)

// NewCard encodes a rank and suit. It fails with ErrInvalidCard when either
// is outside its domain.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return 0, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return 0, fmt.Errorf("%w: suit %#x", ErrInvalidCard, uint16(suit))
	}
	return encode(rank, suit), nil
}

// MustCard is NewCard for fixtures; it panics on invalid input.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func encode(rank Rank, suit Suit) Card {
	return Card(1<<(rankBitBase+uint32(rank)) |
		suit.Value() |
		uint32(rank)<<rankShift |
		tables.Primes[rank])
}

// Rank extracts bits 8-11.
func (c Card) Rank() Rank {
	return Rank((c >> rankShift) & 0xF)
}

// Suit extracts bits 12-15.
func (c Card) Suit() Suit {
	return Suit(c & suitMask)
}

// Prime returns the rank's prime from bits 0-7.
func (c Card) Prime() uint32 {
	return uint32(c & primeMask)
}

// RankBit returns the one-hot rank field shifted down to bit 0.
func (c Card) RankBit() uint32 {
	return uint32(c) >> rankBitBase
}

// Value returns the packed integer.
func (c Card) Value() uint32 {
	return uint32(c)
}

// Valid reports whether c is a value NewCard could have produced.
func (c Card) Valid() bool {
	r := c.Rank()
	if !r.Valid() || !c.Suit().Valid() {
		return false
	}
	if bits.OnesCount32(c.RankBit()) != 1 || c.RankBit() != 1<<r {
		return false
	}
	return c.Prime() == tables.Primes[r]
}

// String returns two-character notation such as "Kd".
func (c Card) String() string {
	return c.Rank().String() + c.Suit().String()
}

// Pretty returns the rank followed by the suit glyph, such as "K♦".
func (c Card) Pretty() string {
	return c.Rank().String() + c.Suit().Symbol()
}

// ParseCard parses two-character notation: a rank from "23456789TJQKA"
// followed by a suit from "cdhs". Both are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("%w: %q must be exactly two characters", ErrInvalidCard, s)
	}

	rank, err := parseRank(s[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	suit, err := parseSuit(s[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidCard, s, err)
	}
	return encode(rank, suit), nil
}

// MustParseCard parses a card and panics on error (for tests).
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCards parses cards written either space-separated ("As Kd") or
// concatenated ("AsKd").
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string length %d is odd", ErrInvalidCard, len(s))
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests).
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseRank(c byte) (Rank, error) {
	if i := strings.IndexByte(rankSymbols, upper(c)); i >= 0 {
		return Rank(i), nil
	}
	return 0, fmt.Errorf("unknown rank '%c'", c)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'c', 'C':
		return Clubs, nil
	case 'd', 'D':
		return Diamonds, nil
	case 'h', 'H':
		return Hearts, nil
	case 's', 'S':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
