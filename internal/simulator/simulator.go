package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/internal/bot"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Rounds   int
	Players  int
	Strategy string // bot strategy used for every seat
	HitBelow int    // threshold strategy only
	Seed     int64  // round i is shuffled from Seed+i
	Workers  int    // defaults to GOMAXPROCS
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Report is the outcome of a simulation run
type Report struct {
	Stats   *statistics.Statistics
	Seed    int64
	Elapsed time.Duration
}

// RoundsPerSecond returns throughput, or 0 when no time was measured
func (r *Report) RoundsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Stats.Rounds) / r.Elapsed.Seconds()
}

// Simulator runs independent seeded Blackjack rounds with bot players
type Simulator struct {
	config Config
	logger *log.Logger
	clock  quartz.Clock
}

// New creates a new simulator with the given configuration
func New(config Config) (*Simulator, error) {
	if config.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", config.Rounds)
	}
	if config.Players < 1 || config.Players > game.MaxPlayers {
		return nil, fmt.Errorf("players must be between 1 and %d, got %d", game.MaxPlayers, config.Players)
	}
	if !bot.IsStrategy(config.Strategy) {
		return nil, fmt.Errorf("unknown strategy %q", config.Strategy)
	}
	if config.HitBelow < 0 || config.HitBelow > game.BlackjackTotal {
		return nil, fmt.Errorf("hit below must be between 0 and %d, got %d", game.BlackjackTotal, config.HitBelow)
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	if config.Workers > config.Rounds {
		config.Workers = config.Rounds
	}

	logger := config.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	clock := config.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	return &Simulator{
		config: config,
		logger: logger.WithPrefix("simulator"),
		clock:  clock,
	}, nil
}

// Run plays every round and returns aggregated statistics. Rounds are split
// across workers by index; results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	start := s.clock.Now()
	s.logger.Info("Starting simulation",
		"rounds", s.config.Rounds,
		"players", s.config.Players,
		"strategy", s.config.Strategy,
		"seed", s.config.Seed,
		"workers", s.config.Workers)

	partials := make([]*statistics.Statistics, s.config.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range s.config.Workers {
		g.Go(func() error {
			stats := statistics.New()
			for i := w; i < s.config.Rounds; i += s.config.Workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				summary, err := s.playRound(ctx, i)
				if err != nil {
					return fmt.Errorf("round %d (seed %d): %w", i, s.roundSeed(i), err)
				}
				stats.AddRound(summary)
			}
			partials[w] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, p := range partials {
		stats.Merge(p)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{Stats: stats, Seed: s.config.Seed, Elapsed: s.clock.Since(start)}
	s.logger.Info("Simulation complete",
		"rounds", stats.Rounds,
		"winRate", stats.WinRate(),
		"elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) roundSeed(i int) int64 {
	return s.config.Seed + int64(i)
}

// playRound simulates a single round with its own deck and random source
func (s *Simulator) playRound(ctx context.Context, i int) (game.Summary, error) {
	rng := randutil.New(s.roundSeed(i))
	round := game.NewRound(rng, s.config.Players,
		game.WithRoundID(strconv.Itoa(i)),
		game.WithLogger(s.logger))

	agents := make([]game.Agent, s.config.Players)
	for seat := range agents {
		agent, err := bot.New(s.config.Strategy, bot.Options{
			HitBelow: s.config.HitBelow,
			RNG:      rng,
			Logger:   s.logger,
		})
		if err != nil {
			return game.Summary{}, err
		}
		agents[seat] = agent
	}

	return round.Play(ctx, agents)
}
