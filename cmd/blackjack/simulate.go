package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd runs many bot-only rounds
type SimulateCmd struct {
	Rounds   int    `short:"n" help:"Number of rounds to simulate" default:"10000" env:"BLACKJACK_ROUNDS"`
	Players  int    `short:"p" help:"Number of players, excluding the dealer" default:"3" env:"BLACKJACK_PLAYERS"`
	Strategy string `short:"s" help:"Bot strategy for every seat (stand, dealer, threshold, random)" default:"dealer" env:"BLACKJACK_STRATEGY"`
	HitBelow int    `help:"Threshold strategy hits below this total" default:"17"`
	Workers  int    `short:"w" help:"Parallel workers (0 for GOMAXPROCS)" default:"0"`
	Seed     int64  `help:"Base seed (0 for random)" env:"BLACKJACK_SEED"`
	Output   string `short:"o" help:"Also write the report as JSON to this file" type:"path"`
}

func (c *SimulateCmd) Run(cli *CLI) error {
	if !bot.IsStrategy(c.Strategy) {
		return fmt.Errorf("unknown strategy %q, want one of %s", c.Strategy, strings.Join(bot.Strategies, ", "))
	}

	logger, closeLog, err := newLogger(os.Stderr, firstNonEmpty(cli.LogLevel, "warn"), cli.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}

	sim, err := simulator.New(simulator.Config{
		Rounds:   c.Rounds,
		Players:  c.Players,
		Strategy: c.Strategy,
		HitBelow: c.HitBelow,
		Seed:     seed,
		Workers:  c.Workers,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}
	printReport(c, report)

	if c.Output != "" {
		if err := report.WriteFile(c.Output); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		logger.Info("Wrote report", "path", c.Output)
	}
	return nil
}

func printReport(c *SimulateCmd, report *simulator.Report) {
	stats := report.Stats
	lo, hi := stats.ConfidenceInterval95()

	fmt.Printf("Simulated %d rounds (%d players, strategy %s, seed %d)\n",
		stats.Rounds, c.Players, c.Strategy, report.Seed)
	fmt.Printf("Elapsed: %v (%.0f rounds/sec)\n\n", report.Elapsed, report.RoundsPerSecond())

	fmt.Printf("Hands:        %d\n", stats.Hands)
	fmt.Printf("Win rate:     %.2f%% (95%% CI %.2f%% to %.2f%%)\n", stats.WinRate()*100, lo*100, hi*100)
	fmt.Printf("Ties as loss: %d\n", stats.TiesAsLoss)
	fmt.Printf("Blackjacks:   %.2f%%\n", stats.BlackjackRate()*100)
	fmt.Printf("Busts:        %.2f%%\n", stats.BustRate()*100)
	fmt.Printf("Dealer busts: %.2f%%\n", stats.DealerBustRate()*100)

	fmt.Println("\nBy seat:")
	for _, num := range stats.SeatNumbers() {
		seat := stats.Seats[num]
		fmt.Printf("  Player %d: %d hands, %.2f%% won\n", num, seat.Hands, seat.WinRate()*100)
	}

	fmt.Println("\nDealer totals:")
	for total := range 27 {
		if n := stats.DealerTotals[total]; n > 0 {
			fmt.Printf("  %2d: %s\n", total, percent(n, stats.Rounds))
		}
	}
}

func percent(n, of int) string {
	if of == 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(n)/float64(of)*100)
}
