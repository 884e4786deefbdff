package bot

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/game"
)

// RandBot hits or stays with equal probability
type RandBot struct {
	rng    cards.Source
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng cards.Source, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger}
}

func (r *RandBot) Decide(ctx context.Context, view game.TurnView) (game.Action, error) {
	action := game.Hit
	if r.rng.IntN(2) == 1 {
		action = game.Stay
	}
	r.logger.Debug("rand-bot random action", "player", view.Player, "total", view.Total, "action", action)
	return action, nil
}
