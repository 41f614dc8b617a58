package census

import (
	"context"
	"testing"

	"github.com/lox/pokerrank/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full enumeration in short mode")
	}
	t.Parallel()

	report, err := Run(context.Background(), Options{Workers: 4})
	require.NoError(t, err)
	require.NoError(t, report.Verify())

	assert.Equal(t, TotalHands, report.Total)
	assert.Equal(t, int(poker.WorstRank), report.Distinct)

	// Each royal flush appears once per suit; the worst hand 7-5-4-3-2
	// offsuit appears 4^5 - 4 times.
	assert.Equal(t, 4, report.ByRank[poker.BestRank])
	assert.Equal(t, 1020, report.ByRank[poker.WorstRank])
	assert.Equal(t, 624, report.ByCategory[poker.FourOfAKind])
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Run(ctx, Options{Workers: 2})
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, report)
}

func TestEnumerateFrom(t *testing.T) {
	t.Parallel()
	deck := poker.NewDeck()

	tests := []struct {
		name  string
		first int
		want  int
	}{
		{"first card", 0, 249900}, // C(51,4)
		{"middle", 40, 330},       // C(11,4)
		{"last start", 47, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := enumerateFrom(context.Background(), &deck, tt.first)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.total)

			sum := 0
			for _, n := range p.byRank {
				sum += n
			}
			assert.Equal(t, tt.want, sum)
			assert.Zero(t, p.byRank[0])
		})
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	complete := func() *Report {
		r := &Report{
			Total:      TotalHands,
			Distinct:   int(poker.WorstRank),
			ByCategory: make(map[poker.Category]int),
		}
		for _, c := range poker.Categories {
			r.ByCategory[c] = c.Combinations()
		}
		return r
	}

	t.Run("matching distribution", func(t *testing.T) {
		assert.NoError(t, complete().Verify())
	})

	t.Run("category mismatch", func(t *testing.T) {
		r := complete()
		r.ByCategory[poker.Flush]--
		r.ByCategory[poker.Straight]++
		err := r.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Flush: 5107 hands, want 5108")
		assert.Contains(t, err.Error(), "Straight: 10201 hands, want 10200")
	})

	t.Run("missing classes", func(t *testing.T) {
		r := complete()
		r.Distinct = 7000
		err := r.Verify()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "7000 distinct ranks")
	})

	t.Run("short total", func(t *testing.T) {
		r := complete()
		r.Total--
		assert.ErrorContains(t, r.Verify(), "total 2598959")
	})
}
