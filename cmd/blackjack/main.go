package main

import (
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	LogLevel string           `help:"Log level (debug, info, warn, error)" env:"BLACKJACK_LOG_LEVEL"`
	LogFile  string           `help:"Write logs to this file" env:"BLACKJACK_LOG_FILE"`

	Play     PlayCmd     `cmd:"" default:"withargs" help:"Play a round at the table"`
	Simulate SimulateCmd `cmd:"" help:"Simulate rounds between bots and report statistics"`
	Deck     DeckCmd     `cmd:"" help:"Print a shuffled deck and verify its composition"`
}

func main() {
	// A missing .env is fine; the environment and flags still apply.
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-table Blackjack for humans and bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
