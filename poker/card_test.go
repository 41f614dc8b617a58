package poker

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceSpades := MustCard(Ace, Spades)
	if aceSpades.Rank() != Ace {
		t.Errorf("Expected rank Ace, got %d", aceSpades.Rank())
	}
	if aceSpades.Suit() != Spades {
		t.Errorf("Expected suit Spades, got %v", aceSpades.Suit())
	}
	if aceSpades.String() != "As" {
		t.Errorf("Expected 'As', got %s", aceSpades.String())
	}
	if aceSpades.Pretty() != "A♠" {
		t.Errorf("Expected 'A♠', got %s", aceSpades.Pretty())
	}

	twoClubs := MustCard(Two, Clubs)
	if twoClubs.String() != "2c" {
		t.Errorf("Expected '2c', got %s", twoClubs.String())
	}
}

func TestCardLayout(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		rank  Rank
		suit  Suit
		value uint32
	}{
		// xxxAKQJT 98765432 CDHSrrrr xxPPPPPP
		{"king of diamonds", King, Diamonds, 0x08004B25},
		{"five of spades", Five, Spades, 0x00081307},
		{"jack of clubs", Jack, Clubs, 0x0200891D},
		{"ace of hearts", Ace, Hearts, 0x10002C29},
		{"two of clubs", Two, Clubs, 0x00018002},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCard(tc.rank, tc.suit)
			require.NoError(t, err)
			assert.Equal(t, tc.value, c.Value())
		})
	}
}

func TestNewCardInvalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rank Rank
		suit Suit
	}{
		{"rank past ace", Ace + 1, Spades},
		{"rank far out of range", Rank(200), Hearts},
		{"zero suit", Two, 0},
		{"two suit bits", Two, Clubs | Hearts},
		{"suit outside field", Two, Suit(0x0800)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := NewCard(tc.rank, tc.suit)
			require.ErrorIs(t, err, ErrInvalidCard)
			assert.Zero(t, c)
		})
	}
}

func TestMustCardPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustCard(Rank(13), Clubs) })
}

func TestEncodeRoundTrip(t *testing.T) {
	t.Parallel()
	for rank := Two; rank <= Ace; rank++ {
		for _, suit := range Suits {
			c, err := NewCard(rank, suit)
			if err != nil {
				t.Fatalf("NewCard(%v, %v): %v", rank, suit, err)
			}
			if c.Rank() != rank || c.Suit() != suit {
				t.Errorf("round-trip %v%v gave %v%v", rank, suit, c.Rank(), c.Suit())
			}
			if bits.OnesCount32(c.Value()&suitMask) != 1 {
				t.Errorf("%v: expected exactly one suit bit", c)
			}
			if bits.OnesCount32(c.RankBit()) != 1 || c.RankBit() != 1<<rank {
				t.Errorf("%v: rank bit %013b does not match rank %d", c, c.RankBit(), rank)
			}
			if !c.Valid() {
				t.Errorf("%v: expected valid", c)
			}
		}
	}
}

func TestCardPrimes(t *testing.T) {
	t.Parallel()
	want := []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}
	for rank := Two; rank <= Ace; rank++ {
		assert.Equal(t, want[rank], MustCard(rank, Hearts).Prime(), "rank %v", rank)
	}
}

func TestCardValid(t *testing.T) {
	t.Parallel()
	assert.False(t, Card(0).Valid())
	assert.False(t, Card(0xFFFFFFFF).Valid())

	c := MustCard(Queen, Diamonds)
	assert.False(t, (c ^ 1).Valid(), "wrong prime")
	assert.False(t, (c | Card(Clubs)).Valid(), "two suits")
	assert.False(t, (c | 1<<16).Valid(), "two rank bits")
}

func TestSuitAndRankStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "23456789TJQKA", func() string {
		s := ""
		for r := Two; r <= Ace; r++ {
			s += r.String()
		}
		return s
	}())
	assert.Equal(t, "?", Rank(13).String())

	assert.Equal(t, "c", Clubs.String())
	assert.Equal(t, "d", Diamonds.String())
	assert.Equal(t, "h", Hearts.String())
	assert.Equal(t, "s", Spades.String())
	assert.Equal(t, "?", Suit(0).String())
	assert.Equal(t, "♥", Hearts.Symbol())

	assert.Equal(t, uint32(0x8000), Clubs.Value())
	assert.Equal(t, 12, Ace.Value())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of spades", input: "As", wantCard: MustCard(Ace, Spades)},
		{name: "two of hearts", input: "2h", wantCard: MustCard(Two, Hearts)},
		{name: "king of diamonds", input: "Kd", wantCard: MustCard(King, Diamonds)},
		{name: "ten of clubs", input: "Tc", wantCard: MustCard(Ten, Clubs)},
		{name: "lowercase rank", input: "qs", wantCard: MustCard(Queen, Spades)},
		{name: "uppercase suit", input: "9H", wantCard: MustCard(Nine, Hearts)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "ten as digits", input: "10h", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asd", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("ParseCard(%q) error = %v, want ErrInvalidCard", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCard(%q) unexpected error: %v", tc.input, err)
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	spaced, err := ParseCards("Kd 5s  Jc\tAh Qc")
	require.NoError(t, err)
	packed, err := ParseCards("Kd5sJcAhQc")
	require.NoError(t, err)
	assert.Equal(t, spaced, packed)
	assert.Len(t, packed, 5)
	assert.Equal(t, MustCard(Ace, Hearts), packed[3])

	_, err = ParseCards("Kd5")
	assert.ErrorIs(t, err, ErrInvalidCard)

	_, err = ParseCards("Kd Zz")
	assert.ErrorIs(t, err, ErrInvalidCard)

	empty, err := ParseCards("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAll52Cards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	deck := NewDeck()

	for _, card := range deck {
		str := card.String()
		if seen[str] {
			t.Errorf("Duplicate card: %s", str)
		}
		seen[str] = true

		parsed, err := ParseCard(str)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", str, err)
		}
		if parsed != card {
			t.Errorf("Round-trip failed for %s", str)
		}
	}

	if len(seen) != DeckSize {
		t.Errorf("Expected %d unique cards, got %d", DeckSize, len(seen))
	}
}

func TestDeckOrder(t *testing.T) {
	t.Parallel()
	deck := NewDeck()
	assert.Equal(t, MustCard(Two, Clubs), deck[0])
	assert.Equal(t, MustCard(Ace, Clubs), deck[12])
	assert.Equal(t, MustCard(Two, Diamonds), deck[13])
	assert.Equal(t, MustCard(Ace, Spades), deck[51])

	assert.Equal(t, 25, deck.Index(MustCard(Ace, Diamonds)))
	assert.Equal(t, -1, deck.Index(Card(0)))
}

func BenchmarkNewCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewCard(Ace, Spades)
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("As")
	}
}
