package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cards   string
		wantErr error
	}{
		{"legal", "Kc Qc Jc Tc Ac", nil},
		{"too few", "Kh Qc Jd Ts", ErrWrongHandSize},
		{"too many", "Kh Qc Jd Ts Ah 8c", ErrWrongHandSize},
		{"empty", "", ErrWrongHandSize},
		{"duplicate", "Kh Kh Jd Ts Ah", ErrDuplicateCard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewHand(MustParseCards(tc.cards)...)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewHandRejectsForeignValues(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Kh Qc Jd Ts Ah")
	cards[0] = Card(0)
	_, err := NewHand(cards...)
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestNewHandCopiesInput(t *testing.T) {
	t.Parallel()
	cards := MustParseCards("Kd 5s Jc Ah Qc")
	h, err := NewHand(cards...)
	require.NoError(t, err)

	cards[0] = MustCard(Two, Clubs)
	assert.Equal(t, MustCard(King, Diamonds), h.Cards()[0])
}

func TestParseHand(t *testing.T) {
	t.Parallel()
	h, err := ParseHand("Kd 5s Jc Ah Qc")
	require.NoError(t, err)

	cards := h.Cards()
	assert.Equal(t, MustCard(King, Diamonds), cards[0])
	assert.Equal(t, MustCard(Five, Spades), cards[1])
	assert.Equal(t, MustCard(Jack, Clubs), cards[2])
	assert.Equal(t, MustCard(Ace, Hearts), cards[3])
	assert.Equal(t, MustCard(Queen, Clubs), cards[4])

	_, err = ParseHand("Kd 5s Jc Ah")
	assert.ErrorIs(t, err, ErrWrongHandSize)

	_, err = ParseHand("Kd 5s Jc Ah Qc Th")
	assert.ErrorIs(t, err, ErrWrongHandSize)

	_, err = ParseHand("Kd 5s Jc Ah Qx")
	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestHandString(t *testing.T) {
	t.Parallel()
	h, err := NewHand(
		MustCard(King, Diamonds),
		MustCard(Five, Spades),
		MustCard(Jack, Clubs),
		MustCard(Ace, Hearts),
		MustCard(Queen, Clubs),
	)
	require.NoError(t, err)
	assert.Equal(t, "Kd 5s Jc Ah Qc", h.String())
}

func TestHandRankMatchesEvaluate(t *testing.T) {
	t.Parallel()
	for _, s := range []string{"Kc Qc Jc Tc Ac", "2h 2d 3c 4c 5c", "7h 5c 4d 3s 2h", "Ah 2d 3h 4c 5s"} {
		h := MustParseHand(s)
		c := h.Cards()
		rank, err := Evaluate(c[:]...)
		require.NoError(t, err)
		assert.Equal(t, rank, h.Rank(), s)
	}
}

func TestMustParseHandPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseHand("Kh Kh Jd Ts Ah") })
}
