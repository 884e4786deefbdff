package cards

import "errors"

// DeckSize is the number of cards in a standard deck
const DeckSize = 52

// ErrDeckEmpty is returned when drawing from an exhausted deck
var ErrDeckEmpty = errors.New("deck is empty")

// Deck is an ordered sequence of cards. Cards are dealt from the tail.
type Deck struct {
	cards []Card
}

// NewDeck creates an unshuffled 52-card deck in canonical order:
// rank-major from Ace to King, suits clubs, hearts, spades, diamonds.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for rank := Ace; rank <= King; rank++ {
		for _, suit := range [...]Suit{Clubs, Hearts, Spades, Diamonds} {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// NewShuffledDeck creates a full deck and shuffles it with rng
func NewShuffledDeck(rng Source) *Deck {
	d := NewDeck()
	d.Shuffle(rng)
	return d
}

// Pop removes and returns the card at the tail of the deck
func (d *Deck) Pop() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckEmpty
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, head first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// NewStackedDeck creates a deck that deals cs in the given order. It holds
// only those cards and is not checked for completeness; it exists for
// replaying known deals.
func NewStackedDeck(cs ...Card) *Deck {
	d := &Deck{cards: make([]Card, len(cs))}
	for i, c := range cs {
		d.cards[len(cs)-1-i] = c
	}
	return d
}
