package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cards"
)

// ErrAlreadyDealt is returned when Deal is called twice on a round
var ErrAlreadyDealt = errors.New("round already dealt")

// ErrPlayersActive is returned when the dealer is asked to play before every
// player has finished
var ErrPlayersActive = errors.New("players still active")

// MaxPlayers is the number of non-dealer seats at the table
const MaxPlayers = 7

// Result is one player's outcome against the dealer
type Result struct {
	Player    int
	Total     int
	State     TurnState
	Won       bool
	TieAsLoss bool // tied the dealer under 21 and was scored a loss
}

// Summary is the outcome of a finished round
type Summary struct {
	RoundID      string
	DealerTotal  int
	DealerBusted bool
	DealerCards  int
	Results      []Result
}

// Wins returns the number of winning players
func (s Summary) Wins() int {
	n := 0
	for _, r := range s.Results {
		if r.Won {
			n++
		}
	}
	return n
}

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	id      string
	deck    *cards.Deck
	logger  *log.Logger
	onEvent EventHandler
}

// WithDeck uses a prepared deck instead of shuffling a fresh one. The deck is
// dealt from its tail, so tests can stack it.
func WithDeck(d *cards.Deck) RoundOption {
	return func(c *roundConfig) { c.deck = d }
}

// WithLogger sets the logger used for round diagnostics
func WithLogger(logger *log.Logger) RoundOption {
	return func(c *roundConfig) { c.logger = logger }
}

// WithEventHandler registers a handler for round events
func WithEventHandler(h EventHandler) RoundOption {
	return func(c *roundConfig) { c.onEvent = h }
}

// WithRoundID sets the identifier used in logs, views and the summary
func WithRoundID(id string) RoundOption {
	return func(c *roundConfig) { c.id = id }
}

// Round is a single play-through: one deck, one dealer and numPlayers
// players. The dealer is player 1 and players are numbered from 2. A Round is
// not safe for concurrent use.
type Round struct {
	id      string
	deck    *cards.Deck
	dealer  *Player
	players []*Player
	logger  *log.Logger
	onEvent EventHandler
	dealt   bool
}

// NewRound creates a round with a deck shuffled by rng. The rng is required
// even when WithDeck is given so that randomness stays explicit at call sites.
//
//	rng := randutil.New(42)
//	r := game.NewRound(rng, 3, game.WithLogger(logger))
//	summary, err := r.Play(ctx, agents)
func NewRound(rng cards.Source, numPlayers int, opts ...RoundOption) *Round {
	if rng == nil {
		panic("rng is required for round creation")
	}
	if numPlayers < 1 {
		panic("at least 1 player required")
	}

	cfg := &roundConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.deck == nil {
		cfg.deck = cards.NewShuffledDeck(rng)
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}

	players := make([]*Player, numPlayers)
	for i := range players {
		players[i] = NewPlayer(DealerNum + 1 + i)
	}

	return &Round{
		id:      cfg.id,
		deck:    cfg.deck,
		dealer:  NewPlayer(DealerNum),
		players: players,
		logger:  cfg.logger.WithPrefix("round"),
		onEvent: cfg.onEvent,
	}
}

// ID returns the round identifier
func (r *Round) ID() string { return r.id }

// Dealer returns the dealer
func (r *Round) Dealer() *Player { return r.dealer }

// Players returns the non-dealer players in playing order
func (r *Round) Players() []*Player { return r.players }

// CardsRemaining returns the number of undealt cards
func (r *Round) CardsRemaining() int { return r.deck.Remaining() }

func (r *Round) emit(e Event) {
	if r.onEvent != nil {
		r.onEvent(e)
	}
}

func (r *Round) draw() (cards.Card, error) {
	c, err := r.deck.Pop()
	if err != nil {
		return cards.Card{}, fmt.Errorf("round %s: draw: %w", r.id, err)
	}
	return c, nil
}

// Deal hands out the seed cards: one face-down to each player in order, one
// face-down to the dealer, then one face-up to each player in order and one
// face-up to the dealer.
func (r *Round) Deal() error {
	if r.dealt {
		return ErrAlreadyDealt
	}
	r.dealt = true

	seats := append(append([]*Player(nil), r.players...), r.dealer)
	for _, faceUp := range []bool{false, true} {
		for _, p := range seats {
			c, err := r.draw()
			if err != nil {
				return err
			}
			if faceUp {
				p.CardUp(c)
			} else {
				p.CardDown(c)
			}
			r.logger.Debug("Dealt card", "player", p.Num(), "card", c, "faceUp", faceUp)
			r.emit(DealtEvent{Player: p.Num(), Card: c, FaceUp: faceUp})
		}
	}
	return nil
}

// View returns the read-only state offered to p's agent
func (r *Round) View(p *Player) TurnView {
	return TurnView{
		RoundID:  r.id,
		Player:   p.Num(),
		Up:       p.hand.Up(),
		Down:     p.hand.Down(),
		Total:    p.Sum(),
		Soft:     p.hand.Soft(),
		DealerUp: r.dealer.hand.Up(),
	}
}

// HitPlayer draws the next card into p's face-up hand and returns the card
// and the resulting turn state
func (r *Round) HitPlayer(p *Player) (cards.Card, TurnState, error) {
	if p.State().Terminal() {
		return cards.Card{}, p.State(), fmt.Errorf("%s: %w", p.Name(), ErrTurnOver)
	}
	c, err := r.draw()
	if err != nil {
		return cards.Card{}, p.State(), err
	}
	state, err := p.Hit(c)
	if err != nil {
		return c, state, err
	}
	r.logger.Debug("Player hit", "player", p.Num(), "card", c, "total", p.Sum(), "state", state)
	r.emit(HitEvent{Player: p.Num(), Card: c, Total: p.Sum(), State: state})
	return c, state, nil
}

// StayPlayer ends p's turn
func (r *Round) StayPlayer(p *Player) error {
	if _, err := p.Stay(); err != nil {
		return err
	}
	r.logger.Debug("Player stayed", "player", p.Num(), "total", p.Sum())
	r.emit(StayEvent{Player: p.Num(), Total: p.Sum()})
	return nil
}

// PlayTurn asks agent for actions until p reaches a terminal state
func (r *Round) PlayTurn(ctx context.Context, p *Player, agent Agent) error {
	for !p.State().Terminal() {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := agent.Decide(ctx, r.View(p))
		if err != nil {
			return fmt.Errorf("%s: %w", p.Name(), err)
		}
		switch action {
		case Hit:
			if _, _, err := r.HitPlayer(p); err != nil {
				return err
			}
		case Stay:
			if err := r.StayPlayer(p); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s chose %s: %w", p.Name(), action, ErrUnknownAction)
		}
	}
	return nil
}

// PlayDealer draws face-up cards for the dealer while ShouldDealerHit. Every
// player must have finished first.
func (r *Round) PlayDealer() error {
	for _, p := range r.players {
		if !p.State().Terminal() {
			return fmt.Errorf("%s: %w", p.Name(), ErrPlayersActive)
		}
	}

	for ShouldDealerHit(r.dealer.Sum()) {
		c, err := r.draw()
		if err != nil {
			return err
		}
		r.dealer.CardUp(c)
		r.logger.Debug("Dealer drew", "card", c, "total", r.dealer.Sum())
		r.emit(DealerDrawEvent{Card: c, Total: r.dealer.Sum()})
	}

	if r.dealer.hand.Busted() {
		r.dealer.state = Busted
	} else {
		r.dealer.state = Stood
	}
	return nil
}

// Results scores every player against the dealer's current total
func (r *Round) Results() []Result {
	dealerTotal := r.dealer.Sum()
	results := make([]Result, len(r.players))
	for i, p := range r.players {
		total := p.Sum()
		results[i] = Result{
			Player:    p.Num(),
			Total:     total,
			State:     p.State(),
			Won:       PlayerWins(total, dealerTotal),
			TieAsLoss: TieScoredAsLoss(total, dealerTotal),
		}
	}
	return results
}

// Summary returns the round outcome
func (r *Round) Summary() Summary {
	return Summary{
		RoundID:      r.id,
		DealerTotal:  r.dealer.Sum(),
		DealerBusted: r.dealer.hand.Busted(),
		DealerCards:  r.dealer.hand.Len(),
		Results:      r.Results(),
	}
}

// Play runs the whole round: the deal, each player's turn in order using the
// agent at the same index, then the dealer.
func (r *Round) Play(ctx context.Context, agents []Agent) (Summary, error) {
	if len(agents) != len(r.players) {
		return Summary{}, fmt.Errorf("round %s: got %d agents for %d players", r.id, len(agents), len(r.players))
	}

	if err := r.Deal(); err != nil {
		return Summary{}, err
	}
	for i, p := range r.players {
		if err := r.PlayTurn(ctx, p, agents[i]); err != nil {
			return Summary{}, err
		}
	}
	if err := r.PlayDealer(); err != nil {
		return Summary{}, err
	}

	summary := r.Summary()
	r.logger.Info("Round complete",
		"id", r.id,
		"dealer", summary.DealerTotal,
		"wins", summary.Wins(),
		"players", len(summary.Results))
	r.emit(RoundEndEvent{Summary: summary})
	return summary, nil
}
