package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config  string `short:"c" help:"Path to a ranges file (.toml or .hcl); searched for when empty" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	LogFile string `default:"preflop-trainer.log" help:"File to write logs to"`
	NoColor bool   `help:"Disable colours"`
}

type CLI struct {
	Globals

	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Play       PlayCmd          `cmd:"" default:"1" help:"Run the interactive preflop quiz"`
	CheckRange CheckRangeCmd    `cmd:"check-range" help:"Show the frequency of a hand class in a range string"`
	Validate   ValidateCmd      `cmd:"" help:"Check that ranges files load"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-trainer"),
		kong.Description("Drill preflop open and big blind defense ranges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
