package main

import (
	"fmt"
	"io"

	"github.com/lox/pokerrank/internal/fileutil"
	"github.com/lox/pokerrank/internal/tablegen"
)

// GenTablesCmd rebuilds tables_gen.go.
type GenTablesCmd struct {
	Output string `short:"o" default:"internal/tables/tables_gen.go" type:"path" help:"Destination Go file"`
}

func (c *GenTablesCmd) Run() error {
	t, err := tablegen.Build()
	if err != nil {
		return fmt.Errorf("failed to build tables: %w", err)
	}

	err = fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
		return tablegen.Render(w, t)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	fmt.Printf("Wrote %s (%d paired classes)\n", c.Output, tablegen.PairedClasses)
	return nil
}
