package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/lox/pokerrank/poker"
)

// EvalCmd ranks hands given on the command line.
type EvalCmd struct {
	Hands   []string `arg:"" help:"Hands such as 'AsKsQsJsTs' or 'Kd 5s Jc Ah Qc' (quote hands containing spaces)"`
	Compare bool     `short:"C" help:"Also report which hand wins"`
}

func (c *EvalCmd) Run() error {
	return c.run(os.Stdout)
}

func (c *EvalCmd) run(out io.Writer) error {
	hands := make([]poker.Hand, 0, len(c.Hands))
	for _, s := range c.Hands {
		h, err := poker.ParseHand(s)
		if err != nil {
			return fmt.Errorf("hand %q: %w", s, err)
		}
		hands = append(hands, h)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("Hand")+"\t"+
		headerStyle.Render("Rank")+"\t"+
		headerStyle.Render("Category")+"\t"+
		headerStyle.Render("Percentile"))
	for _, h := range hands {
		rank := h.Rank()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f%%\n",
			handStyle.Render(prettyHand(h)),
			rankStyle.Render(fmt.Sprint(int(rank))),
			categoryStyle.Render(rank.String()),
			rank.Percentile())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c.Compare && len(hands) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, describeWinners(hands))
	}
	return nil
}

func prettyHand(h poker.Hand) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = prettyCard(card)
	}
	return strings.Join(parts, " ")
}

// describeWinners names the strongest hand, or every hand tied for it.
func describeWinners(hands []poker.Hand) string {
	best := hands[0].Rank()
	for _, h := range hands[1:] {
		if r := h.Rank(); r.Better(best) {
			best = r
		}
	}

	var winners []string
	for _, h := range hands {
		if h.Rank() == best {
			winners = append(winners, h.String())
		}
	}
	if len(winners) == 1 {
		return fmt.Sprintf("Winner: %s (%s)", winners[0], best)
	}
	return fmt.Sprintf("Split pot between %s (%s)", strings.Join(winners, ", "), best)
}
