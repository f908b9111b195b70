package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Simulate SimulateCmd      `cmd:"" help:"Play batches of rounds and report scoring statistics"`
	Score    ScoreCmd         `cmd:"" help:"Evaluate a 3 or 5 card hand string"`
	Inspect  InspectCmd       `cmd:"" help:"Validate and pretty print a game state record"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("openface"),
		kong.Description("Open face poker rules engine"),
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
