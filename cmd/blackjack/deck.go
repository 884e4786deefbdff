package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/randutil"
)

// DeckCmd prints a shuffled deck, tail first in dealing order
type DeckCmd struct {
	Seed    int64 `help:"Shuffle seed (0 for random)" env:"BLACKJACK_SEED"`
	NoColor bool  `help:"Disable colour output" env:"NO_COLOR"`
}

func (c *DeckCmd) Run() error {
	seed := c.Seed
	if seed == 0 {
		seed = randutil.Seed()
	}
	deck := cards.NewShuffledDeck(randutil.New(seed))
	fmt.Printf("seed %d\n", seed)
	return writeDeck(os.Stdout, display.New(os.Stdout, !c.NoColor), deck)
}

// writeDeck lists the deck in dealing order, then the same order in short
// notation as accepted by play --deal, then the composition check
func writeDeck(w io.Writer, d *display.Display, deck *cards.Deck) error {
	cs := deck.Cards()
	order := make([]string, 0, len(cs))
	for i := len(cs) - 1; i >= 0; i-- {
		short := cs[i].Short()
		order = append(order, short)
		fmt.Fprintf(w, "%2d %s %s\n", len(order), short, d.Card(cs[i]))
	}
	fmt.Fprintf(w, "deal: %s\n", strings.Join(order, " "))

	if err := deck.Verify(); err != nil {
		return err
	}
	fmt.Fprintf(w, "verified: %d cards, 4 of each rank, 13 of each suit\n", deck.Remaining())
	return nil
}
