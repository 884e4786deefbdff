// Package bot provides automated Blackjack agents.
package bot

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/game"
)

// Strategy names accepted by New
const (
	Stand     = "stand"
	Dealer    = "dealer"
	Threshold = "threshold"
	Random    = "random"
)

// Strategies lists the built-in strategies
var Strategies = []string{Stand, Dealer, Threshold, Random}

// Options carries what a strategy may need to build an agent
type Options struct {
	HitBelow int          // threshold only; defaults to the dealer's 17
	RNG      cards.Source // random only
	Logger   *log.Logger
}

// IsStrategy reports whether name is a built-in strategy
func IsStrategy(name string) bool {
	return slices.Contains(Strategies, strings.ToLower(name))
}

// New builds the agent for a named strategy
func New(name string, opts Options) (game.Agent, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("bot")

	switch strings.ToLower(name) {
	case Stand:
		return NewStandBot(logger), nil
	case Dealer:
		return NewDealerBot(logger), nil
	case Threshold:
		hitBelow := opts.HitBelow
		if hitBelow == 0 {
			hitBelow = game.DealerStandsOn
		}
		return NewThresholdBot(hitBelow, logger), nil
	case Random:
		if opts.RNG == nil {
			return nil, fmt.Errorf("strategy %s requires a random source", Random)
		}
		return NewRandBot(opts.RNG, logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(Strategies, ", "))
	}
}
