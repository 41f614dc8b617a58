// Package tablegen derives the evaluator lookup tables from a full enumeration
// of the 7462 five-card equivalence classes.
package tablegen

import (
	"fmt"
	"math/bits"
	"sort"

	"github.com/lox/pokerrank/internal/tables"
)

// Primes assigns one prime per rank ordinal, deuce through ace.
var Primes = [13]uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

// Rank offsets: the best value in each category.
const (
	firstStraightFlush = 1
	firstFourOfAKind   = 11
	firstFullHouse     = 167
	firstFlush         = 323
	firstStraight      = 1600
	firstThreeOfAKind  = 1610
	firstTwoPair       = 2468
	firstOnePair       = 3326
	firstHighCard      = 6186
	worstHand          = 7462
)

// PairedClasses is the number of equivalence classes resolved by the perfect hash.
const PairedClasses = 156 + 156 + 858 + 858 + 2860

// Tables is the complete generated dataset.
type Tables struct {
	Primes     [13]uint32
	Flushes    [tables.RankMaskSize]uint16
	Unique     [tables.RankMaskSize]uint16
	HashAdjust [tables.AdjustSize]uint16
	HashValues [tables.HashSize]uint16
}

// straightMasks lists the ten straights from ace-high down to the wheel.
var straightMasks = func() [10]uint16 {
	var masks [10]uint16
	for i := range 9 {
		masks[i] = 0x1F00 >> i
	}
	masks[9] = 0x100F // A-2-3-4-5
	return masks
}()

// Build enumerates every hand class and returns the populated tables.
func Build() (*Tables, error) {
	t := &Tables{Primes: Primes}

	t.buildDistinct()

	paired := pairedProducts()
	if len(paired) != PairedClasses {
		return nil, fmt.Errorf("enumerated %d paired classes, want %d", len(paired), PairedClasses)
	}
	if err := t.buildHash(paired); err != nil {
		return nil, err
	}
	return t, nil
}

// buildDistinct fills Flushes and Unique, which cover every hand with five
// distinct ranks. A suited pattern goes to Flushes, an offsuit one to Unique.
func (t *Tables) buildDistinct() {
	for i, mask := range straightMasks {
		t.Flushes[mask] = uint16(firstStraightFlush + i)
		t.Unique[mask] = uint16(firstStraight + i)
	}

	// Descending numeric order of a five-bit mask is descending poker order.
	offset := 0
	for mask := tables.RankMaskSize - 1; mask >= 0; mask-- {
		if bits.OnesCount16(uint16(mask)) != 5 || isStraight(uint16(mask)) {
			continue
		}
		t.Flushes[mask] = uint16(firstFlush + offset)
		t.Unique[mask] = uint16(firstHighCard + offset)
		offset++
	}
}

func isStraight(mask uint16) bool {
	for _, s := range straightMasks {
		if mask == s {
			return true
		}
	}
	return false
}

// pairedClass is a hand with at least one repeated rank, keyed by its prime product.
type pairedClass struct {
	product uint32
	rank    uint16
}

// pairedProducts enumerates quads, full houses, trips, two pair and one pair
// in rank order, best first.
func pairedProducts() []pairedClass {
	var out []pairedClass
	rank := uint16(firstFourOfAKind)
	add := func(ranks ...int) {
		product := uint32(1)
		for _, r := range ranks {
			product *= Primes[r]
		}
		out = append(out, pairedClass{product: product, rank: rank})
		rank++
	}

	descending := make([]int, 13)
	for i := range descending {
		descending[i] = 12 - i
	}
	without := func(exclude ...int) []int {
		var rest []int
	next:
		for _, r := range descending {
			for _, e := range exclude {
				if r == e {
					continue next
				}
			}
			rest = append(rest, r)
		}
		return rest
	}

	for _, quad := range descending {
		for _, kicker := range without(quad) {
			add(quad, quad, quad, quad, kicker)
		}
	}

	rank = firstFullHouse
	for _, trip := range descending {
		for _, pair := range without(trip) {
			add(trip, trip, trip, pair, pair)
		}
	}

	rank = firstThreeOfAKind
	for _, trip := range descending {
		kickers := without(trip)
		for i := 0; i < len(kickers)-1; i++ {
			for j := i + 1; j < len(kickers); j++ {
				add(trip, trip, trip, kickers[i], kickers[j])
			}
		}
	}

	rank = firstTwoPair
	for i := 0; i < len(descending)-1; i++ {
		for j := i + 1; j < len(descending); j++ {
			high, low := descending[i], descending[j]
			for _, kicker := range without(high, low) {
				add(high, high, low, low, kicker)
			}
		}
	}

	rank = firstOnePair
	for _, pair := range descending {
		kickers := without(pair)
		for i := 0; i < len(kickers)-2; i++ {
			for j := i + 1; j < len(kickers)-1; j++ {
				for k := j + 1; k < len(kickers); k++ {
					add(pair, pair, kickers[i], kickers[j], kickers[k])
				}
			}
		}
	}

	return out
}

// buildHash derives HashAdjust by hash-and-displace over the fixed mixing
// function, then stores every paired rank at its final slot. Buckets are
// placed largest first; each takes the smallest XOR displacement that lands
// all of its keys on free slots.
func (t *Tables) buildHash(paired []pairedClass) error {
	var buckets [tables.AdjustSize][]uint32
	var ranks [tables.AdjustSize][]uint16
	for _, pc := range paired {
		mixed := tables.Mix(pc.product)
		b := tables.Bucket(mixed)
		buckets[b] = append(buckets[b], tables.Slot(mixed))
		ranks[b] = append(ranks[b], pc.rank)
	}

	order := make([]int, tables.AdjustSize)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(buckets[order[i]]) > len(buckets[order[j]])
	})

	var used [tables.HashSize]bool
	for _, b := range order {
		slots := buckets[b]
		if err := distinctSlots(slots); err != nil {
			return fmt.Errorf("bucket %d: %w", b, err)
		}

		displacement, ok := findDisplacement(slots, &used)
		if !ok {
			return fmt.Errorf("bucket %d: no displacement places %d keys", b, len(slots))
		}

		t.HashAdjust[b] = uint16(displacement)
		for i, s := range slots {
			final := s ^ displacement
			used[final] = true
			t.HashValues[final] = ranks[b][i]
		}
	}
	return nil
}

func findDisplacement(slots []uint32, used *[tables.HashSize]bool) (uint32, bool) {
search:
	for d := uint32(0); d < tables.HashSize; d++ {
		for _, s := range slots {
			if used[s^d] {
				continue search
			}
		}
		return d, true
	}
	return 0, false
}

func distinctSlots(slots []uint32) error {
	seen := make(map[uint32]bool, len(slots))
	for _, s := range slots {
		if seen[s] {
			return fmt.Errorf("slot %d collides before displacement", s)
		}
		seen[s] = true
	}
	return nil
}
