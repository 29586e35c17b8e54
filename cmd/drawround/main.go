package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" default:"drawround.hcl" type:"path" help:"Path to HCL config file (defaults apply when missing)"`
	Debug   bool   `help:"Enable debug logging"`
	Seed    *int64 `help:"Deterministic RNG seed (optional)"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play a round in the terminal"`
	Score    ScoreCmd         `cmd:"" help:"Score a five-card hand, e.g. 'AsAhAdAcKs'"`
	Simulate SimulateCmd      `cmd:"" help:"Play many automated rounds and report the clear rate"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("drawround"),
		kong.Description("Draw five cards, hold, discard and play poker hands to beat the chip target"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
