package game

import "github.com/lox/blackjack/cards"

const (
	// BlackjackTotal is the best possible hand total
	BlackjackTotal = 21

	aceHigh  = 11
	aceSwing = 10 // difference between an Ace counted as 11 and as 1
)

// CardValue returns the Blackjack value of a card with Aces counted high:
// Ace is 11, Two through Ten are face value, Jack, Queen and King are 10.
func CardValue(c cards.Card) int {
	switch r := c.Rank(); {
	case r == cards.Ace:
		return aceHigh
	case r >= cards.Jack:
		return 10
	default:
		return int(r)
	}
}

// Total returns the Blackjack total of cs. Every Ace starts at 11; while the
// sum is over 21 one Ace at a time is re-valued to 1, at most aces times.
// The result can still exceed 21 once no Aces are left to downgrade.
func Total(cs []cards.Card, aces int) int {
	total, _ := evaluate(cs, aces)
	return total
}

// evaluate also reports how many Aces were downgraded
func evaluate(cs []cards.Card, aces int) (total, downgraded int) {
	for _, c := range cs {
		total += CardValue(c)
	}
	for total > BlackjackTotal && downgraded < aces {
		total -= aceSwing
		downgraded++
	}
	return total, downgraded
}
