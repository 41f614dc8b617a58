package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Eval      EvalCmd          `cmd:"" help:"Rank one or more five-card hands"`
	Census    CensusCmd        `cmd:"" help:"Rank every five-card hand and check the distribution"`
	GenTables GenTablesCmd     `cmd:"gen-tables" help:"Regenerate the evaluator lookup tables"`
	Serve     ServeCmd         `cmd:"" help:"Run the HTTP and WebSocket evaluation service"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerrank"),
		kong.Description("Five-card poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
