package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version    kong.VersionFlag `short:"v" help:"Show version"`
	Play       PlayCmd          `cmd:"" default:"withargs" help:"Sit down at the blackjack table"`
	Highscores HighscoresCmd    `cmd:"" help:"Show the highscore list"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player terminal blackjack against the house dealer"),
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
