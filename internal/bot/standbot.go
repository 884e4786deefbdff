package bot

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// StandBot never draws past the deal
type StandBot struct {
	logger *log.Logger
}

// NewStandBot creates a new StandBot instance
func NewStandBot(logger *log.Logger) *StandBot {
	return &StandBot{logger: logger}
}

func (s *StandBot) Decide(ctx context.Context, view game.TurnView) (game.Action, error) {
	s.logger.Debug("stand-bot staying", "player", view.Player, "total", view.Total)
	return game.Stay, nil
}
