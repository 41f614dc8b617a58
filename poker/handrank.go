package poker

// HandRank represents the strength of a five-card hand. Lower values are
// stronger: 1 is a royal flush, 7462 is the worst unpaired hand.
type HandRank uint16

const (
	BestRank  HandRank = 1
	WorstRank HandRank = 7462
)

// Category enumerates the classes of poker hands ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// UnknownCategory is returned for a HandRank outside [1, 7462].
const UnknownCategory = StraightFlush + 1

// Categories lists every category from strongest to weakest, matching rank order.
var Categories = [...]Category{
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

type categoryInfo struct {
	name         string
	worst        HandRank // inclusive upper bound
	classes      int
	combinations int
}

var categoryTable = [...]categoryInfo{
	StraightFlush: {"Straight Flush", 10, 10, 40},
	FourOfAKind:   {"Four of a Kind", 166, 156, 624},
	FullHouse:     {"Full House", 322, 156, 3744},
	Flush:         {"Flush", 1599, 1277, 5108},
	Straight:      {"Straight", 1609, 10, 10200},
	ThreeOfAKind:  {"Three of a Kind", 2467, 858, 54912},
	TwoPair:       {"Two Pair", 3325, 858, 123552},
	OnePair:       {"One Pair", 6185, 2860, 1098240},
	HighCard:      {"High Card", 7462, 1277, 1302540},
}

// Valid reports whether c is one of the nine hand categories.
func (c Category) Valid() bool {
	return int(c) < len(categoryTable)
}

func (c Category) info() categoryInfo {
	if !c.Valid() {
		return categoryInfo{name: "Unknown"}
	}
	return categoryTable[c]
}

// String returns the category name, or "Unknown".
func (c Category) String() string {
	return c.info().name
}

// Best returns the strongest rank in the category. It is 0 for an unknown category.
func (c Category) Best() HandRank {
	if !c.Valid() {
		return 0
	}
	return c.Worst() - HandRank(c.Count()) + 1
}

// Worst returns the weakest rank in the category.
func (c Category) Worst() HandRank {
	return c.info().worst
}

// Count returns the number of distinct hand ranks in the category.
func (c Category) Count() int {
	return c.info().classes
}

// Combinations returns how many of the C(52,5) hands fall in the category.
func (c Category) Combinations() int {
	return c.info().combinations
}

// Valid reports whether r is inside [1, 7462].
func (r HandRank) Valid() bool {
	return r >= BestRank && r <= WorstRank
}

// Category returns the class of hand (pair, flush, etc.), or
// UnknownCategory when r is not valid.
func (r HandRank) Category() Category {
	if !r.Valid() {
		return UnknownCategory
	}
	for _, c := range Categories {
		if r <= categoryTable[c].worst {
			return c
		}
	}
	return HighCard
}

// String returns a human-readable hand description.
func (r HandRank) String() string {
	if !r.Valid() {
		return "Invalid"
	}
	if r == BestRank {
		return "Royal Flush"
	}
	return r.Category().String()
}

// Better reports whether r beats other.
func (r HandRank) Better(other HandRank) bool {
	return r < other
}

// Compare returns 1 if r is the stronger hand, -1 if other is, 0 for a tie.
func (r HandRank) Compare(other HandRank) int {
	switch {
	case r < other:
		return 1
	case r > other:
		return -1
	}
	return 0
}

// Percentile returns where r sits among all classes, 100 best and 0 worst.
// An invalid rank reports 0.
func (r HandRank) Percentile() float64 {
	if !r.Valid() {
		return 0
	}
	return 100.0 * float64(WorstRank-r) / float64(WorstRank-BestRank)
}
