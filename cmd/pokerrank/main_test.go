package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lox/pokerrank/internal/census"
	"github.com/lox/pokerrank/internal/tablegen"
	"github.com/lox/pokerrank/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("pokerrank"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestParseCommands(t *testing.T) {
	cli, ctx := parseCLI(t, "eval", "AsKsQsJsTs", "Kd 5s Jc Ah Qc", "--compare")
	assert.Equal(t, "eval <hands>", ctx.Command())
	assert.Equal(t, []string{"AsKsQsJsTs", "Kd 5s Jc Ah Qc"}, cli.Eval.Hands)
	assert.True(t, cli.Eval.Compare)

	cli, ctx = parseCLI(t, "census", "--workers", "3")
	assert.Equal(t, "census", ctx.Command())
	assert.Equal(t, 3, cli.Census.Workers)
	assert.Equal(t, "pokerrank.hcl", cli.Census.Config)

	cli, ctx = parseCLI(t, "serve", "--port", "9000", "--idle-timeout", "45s")
	assert.Equal(t, "serve", ctx.Command())
	assert.Equal(t, 9000, cli.Serve.Port)
	assert.Equal(t, 45*time.Second, cli.Serve.IdleTimeout)

	_, ctx = parseCLI(t, "gen-tables", "--output", "out.go")
	assert.Equal(t, "gen-tables", ctx.Command())
}

func TestEvalCmd(t *testing.T) {
	cmd := EvalCmd{Hands: []string{"AsKsQsJsTs", "7c 5d 4h 3s 2c"}}

	var out bytes.Buffer
	require.NoError(t, cmd.run(&out))

	text := out.String()
	assert.Contains(t, text, "Royal Flush")
	assert.Contains(t, text, "7462")
	assert.Contains(t, text, "High Card")
	assert.Contains(t, text, "100.00%")
	assert.Contains(t, text, "0.00%")
	assert.NotContains(t, text, "Winner")
}

func TestEvalCmdCompare(t *testing.T) {
	cmd := EvalCmd{Hands: []string{"AcAdKhQsJc", "AhAsKdQcJh", "2c3c4c5c7d"}, Compare: true}

	var out bytes.Buffer
	require.NoError(t, cmd.run(&out))
	assert.Contains(t, out.String(), "Split pot between Ac Ad Kh Qs Jc, Ah As Kd Qc Jh (One Pair)")
}

func TestEvalCmdErrors(t *testing.T) {
	tests := []struct {
		hand string
		want error
	}{
		{"AsKsQsJs", poker.ErrWrongHandSize},
		{"AsAsQsJsTs", poker.ErrDuplicateCard},
		{"AsKsQsJsTq", poker.ErrInvalidCard},
	}

	for _, tt := range tests {
		t.Run(tt.hand, func(t *testing.T) {
			cmd := EvalCmd{Hands: []string{tt.hand}}
			var out bytes.Buffer
			err := cmd.run(&out)
			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.hand)
		})
	}
}

func TestDescribeWinners(t *testing.T) {
	hands := []poker.Hand{
		poker.MustParseHand("Kd 5s Jc Ah Qc"),
		poker.MustParseHand("9h 9d 9s 4c 4d"),
	}
	assert.Equal(t, "Winner: 9h 9d 9s 4c 4d (Full House)", describeWinners(hands))
}

func TestGenTablesCmd(t *testing.T) {
	output := filepath.Join(t.TempDir(), "tables_gen.go")
	require.NoError(t, (&GenTablesCmd{Output: output}).Run())

	got, err := os.ReadFile(output)
	require.NoError(t, err)

	tb, err := tablegen.Build()
	require.NoError(t, err)
	var want bytes.Buffer
	require.NoError(t, tablegen.Render(&want, tb))
	assert.Equal(t, want.String(), string(got))
}

func TestServeCmdLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pokerrank.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
server {
  address   = "0.0.0.0"
  port      = 9090
  log_level = "warn"
}
`), 0o644))

	t.Run("file values", func(t *testing.T) {
		cfg, err := (&ServeCmd{Config: path}).load()
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9090", cfg.ServerAddress())
		assert.Equal(t, "warn", cfg.Server.LogLevel)
	})

	t.Run("flags override", func(t *testing.T) {
		cmd := &ServeCmd{Config: path, Addr: "127.0.0.1", Port: 7777, LogLevel: "debug", IdleTimeout: 10 * time.Second}
		cfg, err := cmd.load()
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:7777", cfg.ServerAddress())
		assert.Equal(t, "debug", cfg.Server.LogLevel)

		idle, err := cfg.IdleTimeout()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, idle)
	})

	t.Run("invalid override", func(t *testing.T) {
		_, err := (&ServeCmd{Config: path, LogLevel: "shouty"}).load()
		assert.ErrorContains(t, err, "invalid log level")
	})
}

func TestPrintReport(t *testing.T) {
	report := &census.Report{
		Total:      census.TotalHands,
		Distinct:   int(poker.WorstRank),
		ByCategory: make(map[poker.Category]int),
	}
	for _, c := range poker.Categories {
		report.ByCategory[c] = c.Combinations()
	}
	report.ByCategory[poker.Straight]--

	var out bytes.Buffer
	require.NoError(t, printReport(&out, report))

	text := out.String()
	assert.Contains(t, text, "Straight Flush")
	assert.Contains(t, text, "1600-1609")
	assert.Contains(t, text, "10199")
	assert.Contains(t, text, "mismatch")
	assert.Contains(t, text, "2598960")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn")
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
