// Package census ranks every five-card hand in a standard deck and tallies
// the results by rank and by category.
package census

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/lox/pokerrank/poker"
	"golang.org/x/sync/errgroup"
)

// TotalHands is C(52,5).
const TotalHands = 2598960

// Options controls a census run.
type Options struct {
	// Workers bounds the number of concurrent enumerators. Zero means
	// runtime.NumCPU().
	Workers int
}

// Report holds the tallies from a complete enumeration.
type Report struct {
	Total      int
	Distinct   int
	ByRank     [poker.WorstRank + 1]int
	ByCategory map[poker.Category]int
}

// partial is the tally produced for one leading card.
type partial struct {
	total  int
	byRank [poker.WorstRank + 1]int
}

// Run enumerates all C(52,5) hands. Work is split by the deck index of the
// lowest card, so each task covers a disjoint set of hands.
func Run(ctx context.Context, opts Options) (*Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	deck := poker.NewDeck()
	first := poker.DeckSize - poker.HandSize + 1

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	results := make(chan *partial, first)

	for a := 0; a < first; a++ {
		g.Go(func() error {
			p, err := enumerateFrom(ctx, &deck, a)
			if err != nil {
				return err
			}
			results <- p
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return nil, err
	}

	report := &Report{ByCategory: make(map[poker.Category]int, len(poker.Categories))}
	for p := range results {
		report.Total += p.total
		for r, n := range p.byRank {
			report.ByRank[r] += n
		}
	}
	for r := poker.BestRank; r <= poker.WorstRank; r++ {
		n := report.ByRank[r]
		if n == 0 {
			continue
		}
		report.Distinct++
		report.ByCategory[r.Category()] += n
	}
	return report, nil
}

// enumerateFrom ranks every hand whose lowest deck index is a.
func enumerateFrom(ctx context.Context, deck *poker.Deck, a int) (*partial, error) {
	p := &partial{}
	for b := a + 1; b < poker.DeckSize; b++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for c := b + 1; c < poker.DeckSize; c++ {
			for d := c + 1; d < poker.DeckSize; d++ {
				for e := d + 1; e < poker.DeckSize; e++ {
					rank, err := poker.Evaluate(deck[a], deck[b], deck[c], deck[d], deck[e])
					if err != nil {
						return nil, fmt.Errorf("evaluate %s %s %s %s %s: %w",
							deck[a], deck[b], deck[c], deck[d], deck[e], err)
					}
					p.byRank[rank]++
					p.total++
				}
			}
		}
	}
	return p, nil
}

// Verify checks the report against the known distribution of five-card hands.
func (r *Report) Verify() error {
	var problems []string
	if r.Total != TotalHands {
		problems = append(problems, fmt.Sprintf("total %d, want %d", r.Total, TotalHands))
	}
	if r.Distinct != int(poker.WorstRank) {
		problems = append(problems, fmt.Sprintf("%d distinct ranks, want %d", r.Distinct, poker.WorstRank))
	}
	if r.ByRank[0] != 0 {
		problems = append(problems, fmt.Sprintf("%d hands ranked zero", r.ByRank[0]))
	}
	for _, c := range poker.Categories {
		if got, want := r.ByCategory[c], c.Combinations(); got != want {
			problems = append(problems, fmt.Sprintf("%s: %d hands, want %d", c, got, want))
		}
	}
	if len(problems) > 0 {
		return errors.New("census mismatch: " + strings.Join(problems, "; "))
	}
	return nil
}
