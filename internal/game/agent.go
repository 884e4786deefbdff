package game

import (
	"context"

	"github.com/lox/blackjack/cards"
)

// TurnView is the read-only state an agent sees when asked to act
type TurnView struct {
	RoundID  string
	Player   int
	Up       []cards.Card
	Down     []cards.Card
	Total    int
	Soft     bool
	DealerUp []cards.Card // the dealer's face-up cards only
}

// Agent represents anything (human or bot) that chooses actions for a seat.
// Decide is a synchronous call; input validation and re-prompting belong to
// the agent, and only Hit or Stay may be returned.
type Agent interface {
	Decide(ctx context.Context, view TurnView) (Action, error)
}

// AgentFunc adapts a function to the Agent interface
type AgentFunc func(ctx context.Context, view TurnView) (Action, error)

// Decide calls f
func (f AgentFunc) Decide(ctx context.Context, view TurnView) (Action, error) {
	return f(ctx, view)
}
