// Package game implements single-table Blackjack: hand evaluation with soft
// Aces, the per-player hit/stay state machine, the fixed dealer policy and
// outcome scoring.
//
// The main type is Round, which owns one shuffled deck, the dealer and the
// players for a single play-through.
//
// # Basic Usage
//
//	rng := randutil.New(42)
//	r := game.NewRound(rng, 3)
//	summary, err := r.Play(ctx, []game.Agent{a, b, c})
//	for _, res := range summary.Results {
//	    fmt.Println(res.Player, res.Won)
//	}
//
// # Deterministic Testing
//
// The shuffle takes its randomness from the cards.Source passed to NewRound,
// so a fixed seed replays the same round. A stacked deck gives complete
// control over the cards dealt:
//
//	deck := cards.NewStackedDeck(cards.MustParseCards("9c 5d Ah Kd Qs 6h")...)
//	r := game.NewRound(rng, 2, game.WithDeck(deck))
//
// # Architecture
//
// Round drives play but delegates decisions:
//   - Agent: chooses Hit or Stay for a seat (bots, terminal prompts)
//   - Player and Hand: card ownership, the Ace counter and the turn state
//   - Total: Blackjack totals with Ace downgrades
//   - ShouldDealerHit and PlayerWins: the fixed table rules
//
// The engine performs no I/O. Drivers observe play through an EventHandler.
package game
