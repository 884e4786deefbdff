package game

import (
	"errors"
	"fmt"

	"github.com/lox/blackjack/cards"
)

// ErrTurnOver is returned when a player who already reached a terminal state
// is asked to act again
var ErrTurnOver = errors.New("player turn is over")

// TurnState is the position of a player in the per-turn state machine
type TurnState uint8

const (
	Active    TurnState = iota // may still hit or stay
	Stood                      // chose to stay
	Busted                     // total went over 21
	Blackjack                  // hit and reached exactly 21
)

// String returns the state name
func (s TurnState) String() string {
	switch s {
	case Active:
		return "active"
	case Stood:
		return "stood"
	case Busted:
		return "busted"
	case Blackjack:
		return "blackjack"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further action is possible
func (s TurnState) Terminal() bool {
	return s != Active
}

// DealerNum is the player number the dealer sits under
const DealerNum = 1

// Player is a seat at the table for a single round
type Player struct {
	num   int
	hand  Hand
	state TurnState
}

// NewPlayer creates a player with an empty hand
func NewPlayer(num int) *Player {
	return &Player{num: num}
}

// Num returns the player number
func (p *Player) Num() int { return p.num }

// IsDealer reports whether this player is the dealer
func (p *Player) IsDealer() bool { return p.num == DealerNum }

// Name returns a display name ("Dealer" or "Player N")
func (p *Player) Name() string {
	if p.IsDealer() {
		return "Dealer"
	}
	return fmt.Sprintf("Player %d", p.num)
}

// Hand returns the player's hand
func (p *Player) Hand() *Hand { return &p.hand }

// State returns the current turn state
func (p *Player) State() TurnState { return p.state }

// CardDown adds a private card
func (p *Player) CardDown(c cards.Card) { p.hand.add(c, false) }

// CardUp adds a public card
func (p *Player) CardUp(c cards.Card) { p.hand.add(c, true) }

// Sum returns the hand total
func (p *Player) Sum() int { return p.hand.Total() }

// Aces returns the number of Aces dealt to the player
func (p *Player) Aces() int { return p.hand.Aces() }

// Hit deals c face-up and advances the turn state: exactly 21 ends the turn
// as Blackjack, over 21 as Busted, otherwise the player stays Active.
func (p *Player) Hit(c cards.Card) (TurnState, error) {
	if p.state.Terminal() {
		return p.state, fmt.Errorf("%s hit while %s: %w", p.Name(), p.state, ErrTurnOver)
	}
	p.CardUp(c)
	switch sum := p.Sum(); {
	case sum == BlackjackTotal:
		p.state = Blackjack
	case sum > BlackjackTotal:
		p.state = Busted
	}
	return p.state, nil
}

// Stay ends an active turn
func (p *Player) Stay() (TurnState, error) {
	if p.state.Terminal() {
		return p.state, fmt.Errorf("%s stayed while %s: %w", p.Name(), p.state, ErrTurnOver)
	}
	p.state = Stood
	return p.state, nil
}
