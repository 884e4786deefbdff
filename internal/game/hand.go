package game

import "github.com/lox/blackjack/cards"

// Hand holds a player's face-down and face-up cards. The ace counter is
// maintained by add, the only mutation path, and never decremented: it counts
// Aces available to re-value, not Aces currently worth 11.
type Hand struct {
	down []cards.Card
	up   []cards.Card
	aces int
}

func (h *Hand) add(c cards.Card, faceUp bool) {
	if c.IsAce() {
		h.aces++
	}
	if faceUp {
		h.up = append(h.up, c)
	} else {
		h.down = append(h.down, c)
	}
}

// Down returns a copy of the face-down cards
func (h *Hand) Down() []cards.Card {
	return append([]cards.Card(nil), h.down...)
}

// Up returns a copy of the face-up cards
func (h *Hand) Up() []cards.Card {
	return append([]cards.Card(nil), h.up...)
}

// Cards returns all cards, face-up first and then face-down
func (h *Hand) Cards() []cards.Card {
	all := make([]cards.Card, 0, len(h.up)+len(h.down))
	all = append(all, h.up...)
	return append(all, h.down...)
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.up) + len(h.down)
}

// Aces returns the number of Aces ever added to the hand
func (h *Hand) Aces() int {
	return h.aces
}

// Total returns the Blackjack total of all cards in the hand
func (h *Hand) Total() int {
	return Total(h.Cards(), h.aces)
}

// Soft reports whether at least one Ace still counts as 11 in Total
func (h *Hand) Soft() bool {
	_, downgraded := evaluate(h.Cards(), h.aces)
	return h.aces > downgraded
}

// Busted reports whether the total exceeds 21
func (h *Hand) Busted() bool {
	return h.Total() > BlackjackTotal
}
