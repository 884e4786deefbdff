package bot

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// ThresholdBot hits while its total is below HitBelow
type ThresholdBot struct {
	HitBelow int
	logger   *log.Logger
}

// NewThresholdBot creates a bot that hits below hitBelow
func NewThresholdBot(hitBelow int, logger *log.Logger) *ThresholdBot {
	return &ThresholdBot{HitBelow: hitBelow, logger: logger}
}

// NewDealerBot creates a bot that copies the dealer's fixed policy
func NewDealerBot(logger *log.Logger) *ThresholdBot {
	return NewThresholdBot(game.DealerStandsOn, logger)
}

func (b *ThresholdBot) Decide(ctx context.Context, view game.TurnView) (game.Action, error) {
	if view.Total < b.HitBelow {
		b.logger.Debug("threshold-bot hitting", "player", view.Player, "total", view.Total, "hitBelow", b.HitBelow)
		return game.Hit, nil
	}
	b.logger.Debug("threshold-bot staying", "player", view.Player, "total", view.Total, "hitBelow", b.HitBelow)
	return game.Stay, nil
}
