package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/term"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/roundid"
	"github.com/lox/blackjack/internal/tui"
)

// PlayCmd plays a single round with human and bot seats
type PlayCmd struct {
	Players int    `short:"p" help:"Number of players, excluding the dealer" env:"BLACKJACK_PLAYERS"`
	Seed    int64  `help:"Shuffle seed (0 for random)" env:"BLACKJACK_SEED"`
	Config  string `short:"c" help:"Table configuration file" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" type:"path"`
	Deal    string `help:"Deal these cards in order instead of shuffling, e.g. \"9c Th 5d 7s\""`
	RoundID string `name:"round-id" help:"Round ID to reuse when replaying a logged round"`
	Plain   bool   `help:"Read actions a line at a time instead of key presses"`
	NoColor bool   `help:"Disable colour output" env:"NO_COLOR"`
}

// roundSetup is everything needed to construct the round
type roundSetup struct {
	rng  cards.Source
	seed int64 // 0 when the deal is stacked and no seed was given
	id   string
	opts []game.RoundOption
}

// setup resolves the round ID, the random source and the deck. A stacked
// deal without a seed uses the unseeded generator since there is no shuffle
// to replay.
func (c *PlayCmd) setup(cfg *config.Config) (*roundSetup, error) {
	s := &roundSetup{id: c.RoundID}
	if s.id == "" {
		s.id = roundid.Generate()
	} else if err := roundid.Validate(s.id); err != nil {
		return nil, fmt.Errorf("invalid round id: %w", err)
	}
	s.opts = append(s.opts, game.WithRoundID(s.id))

	if c.Deal != "" {
		dealt, err := cards.ParseCards(c.Deal)
		if err != nil {
			return nil, fmt.Errorf("invalid deal: %w", err)
		}
		s.opts = append(s.opts, game.WithDeck(cards.NewStackedDeck(dealt...)))
	}

	s.seed = cfg.Table.Seed
	switch {
	case s.seed != 0:
		s.rng = randutil.New(s.seed)
	case c.Deal != "":
		s.rng = randutil.Default()
	default:
		s.seed = randutil.Seed()
		s.rng = randutil.New(s.seed)
	}
	return s, nil
}

// humanAgent prompts with key presses on a terminal and falls back to line
// input when stdin is piped or --plain is set
func (c *PlayCmd) humanAgent(in *os.File, d *display.Display, logger *log.Logger) game.Agent {
	if c.Plain || !term.IsTerminal(in.Fd()) {
		return tui.NewLineAgent(in, os.Stdout, d, logger)
	}
	return tui.NewKeyAgent(in, os.Stdout, d, logger)
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Players > 0 {
		cfg.Table.Players = c.Players
	}
	if c.Seed != 0 {
		cfg.Table.Seed = c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := newLogger(io.Discard,
		firstNonEmpty(cli.LogLevel, cfg.Logging.Level),
		firstNonEmpty(cli.LogFile, cfg.Logging.File))
	if err != nil {
		return err
	}
	defer closeLog()

	setup, err := c.setup(cfg)
	if err != nil {
		return err
	}
	logger = logger.With("round", setup.id)
	logger.Info("Starting round", "players", cfg.Table.Players, "seed", setup.seed, "stacked", c.Deal != "")

	d := display.New(os.Stdout, !c.NoColor)
	fmt.Println(d.Title(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	agents := make([]game.Agent, cfg.Table.Players)
	for i := range agents {
		num := game.DealerNum + 1 + i
		seat := cfg.SeatFor(num)
		if seat.Strategy == config.Human {
			agents[i] = c.humanAgent(os.Stdin, d, logger)
			continue
		}
		agent, err := bot.New(seat.Strategy, bot.Options{
			HitBelow: seat.HitBelow,
			RNG:      setup.rng,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("seat %d: %w", num, err)
		}
		agents[i] = agent
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := append(setup.opts,
		game.WithLogger(logger),
		game.WithEventHandler(func(e game.Event) {
			if line := d.Event(e); line != "" {
				fmt.Println(line)
			}
		}),
	)
	round := game.NewRound(setup.rng, cfg.Table.Players, opts...)

	summary, err := round.Play(ctx, agents)
	if errors.Is(err, tui.ErrQuit) || errors.Is(err, context.Canceled) {
		logger.Info("Round abandoned", "error", err)
		fmt.Println("Goodbye.")
		return nil
	}
	if err != nil {
		logger.Error("Round failed", "error", err)
		return err
	}

	fmt.Println()
	for _, p := range round.Players() {
		fmt.Println(d.Player(p, true))
	}
	fmt.Println(d.Player(round.Dealer(), true))
	fmt.Println()
	fmt.Println(d.Results(summary))
	return nil
}
