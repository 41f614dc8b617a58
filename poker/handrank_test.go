package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryBoundaries(t *testing.T) {
	t.Parallel()
	tests := []struct {
		category Category
		best     HandRank
		worst    HandRank
		name     string
	}{
		{StraightFlush, 1, 10, "Straight Flush"},
		{FourOfAKind, 11, 166, "Four of a Kind"},
		{FullHouse, 167, 322, "Full House"},
		{Flush, 323, 1599, "Flush"},
		{Straight, 1600, 1609, "Straight"},
		{ThreeOfAKind, 1610, 2467, "Three of a Kind"},
		{TwoPair, 2468, 3325, "Two Pair"},
		{OnePair, 3326, 6185, "One Pair"},
		{HighCard, 6186, 7462, "High Card"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.best, tc.category.Best())
			assert.Equal(t, tc.worst, tc.category.Worst())
			assert.Equal(t, tc.name, tc.category.String())
			assert.Equal(t, tc.category, tc.best.Category())
			assert.Equal(t, tc.category, tc.worst.Category())
			if tc.worst < WorstRank {
				assert.NotEqual(t, tc.category, (tc.worst + 1).Category())
			}
		})
	}
}

func TestCategoryTotals(t *testing.T) {
	t.Parallel()
	classes, combos := 0, 0
	for _, c := range Categories {
		classes += c.Count()
		combos += c.Combinations()
	}
	assert.Equal(t, int(WorstRank), classes)
	assert.Equal(t, 2598960, combos)
	assert.Equal(t, "Unknown", Category(42).String())
}

func TestHandRankString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Royal Flush", HandRank(1).String())
	assert.Equal(t, "Straight Flush", HandRank(2).String())
	assert.Equal(t, "One Pair", HandRank(6185).String())
	assert.Equal(t, "High Card", WorstRank.String())
	assert.Equal(t, "Invalid", HandRank(0).String())
	assert.Equal(t, "Invalid", HandRank(7463).String())
}

func TestHandRankCompare(t *testing.T) {
	t.Parallel()
	royal := HandRank(1)
	pair := HandRank(6185)

	assert.True(t, royal.Better(pair))
	assert.False(t, pair.Better(royal))
	assert.Equal(t, 1, royal.Compare(pair))
	assert.Equal(t, -1, pair.Compare(royal))
	assert.Equal(t, 0, pair.Compare(pair))
}

func TestHandRankPercentile(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 100.0, BestRank.Percentile(), 1e-9)
	assert.InDelta(t, 0.0, WorstRank.Percentile(), 1e-9)
	assert.InDelta(t, 50.0, HandRank(3731).Percentile(), 0.01)
}

func TestOutOfRangeValues(t *testing.T) {
	t.Parallel()
	for _, r := range []HandRank{0, WorstRank + 1, 0xFFFF} {
		assert.Equal(t, UnknownCategory, r.Category(), "rank %d", r)
		assert.Zero(t, r.Percentile(), "rank %d", r)
	}

	for _, c := range []Category{UnknownCategory, Category(42)} {
		assert.False(t, c.Valid())
		assert.Equal(t, "Unknown", c.String())
		assert.Zero(t, c.Best())
		assert.Zero(t, c.Worst())
		assert.Zero(t, c.Count())
		assert.Zero(t, c.Combinations())
	}

	for _, c := range Categories {
		assert.True(t, c.Valid(), c.String())
	}
}
