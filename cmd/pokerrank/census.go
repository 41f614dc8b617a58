package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lox/pokerrank/internal/census"
	"github.com/lox/pokerrank/internal/config"
	"github.com/lox/pokerrank/poker"
)

// CensusCmd enumerates every hand and prints the category distribution.
type CensusCmd struct {
	Config   string `short:"c" default:"pokerrank.hcl" help:"Path to HCL configuration file"`
	Workers  int    `short:"w" help:"Concurrent enumerators (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func (c *CensusCmd) Run() error {
	cfg, err := config.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Workers > 0 {
		cfg.Census.Workers = c.Workers
	}
	if c.LogLevel != "" {
		cfg.Server.LogLevel = c.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := newLogger(os.Stderr, cfg.Server.LogLevel).WithPrefix("census")
	ctx, cancel := signalContext(logger)
	defer cancel()

	logger.Info("Enumerating hands", "total", census.TotalHands, "workers", cfg.Census.Workers)
	start := time.Now()
	report, err := census.Run(ctx, census.Options{Workers: cfg.Census.Workers})
	if err != nil {
		return err
	}
	logger.Info("Enumeration complete", "duration", time.Since(start).Round(time.Millisecond))

	if err := printReport(os.Stdout, report); err != nil {
		return err
	}
	return report.Verify()
}

func printReport(out io.Writer, report *census.Report) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("Category")+"\t"+
		headerStyle.Render("Ranks")+"\t"+
		headerStyle.Render("Hands")+"\t"+
		headerStyle.Render("Expected")+"\t")

	for _, cat := range poker.Categories {
		got, want := report.ByCategory[cat], cat.Combinations()
		status := okStyle.Render("ok")
		if got != want {
			status = failStyle.Render("mismatch")
		}
		fmt.Fprintf(tw, "%s\t%d-%d\t%d\t%d\t%s\n",
			categoryStyle.Render(cat.String()), cat.Best(), cat.Worst(), got, want, status)
	}
	fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n",
		headerStyle.Render("Total"), report.Distinct, report.Total, census.TotalHands)
	return tw.Flush()
}
