package game

import (
	"testing"

	"github.com/lox/blackjack/cards"
	"github.com/stretchr/testify/assert"
)

func TestCardValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		rank cards.Rank
		want int
	}{
		{cards.Ace, 11},
		{cards.Two, 2},
		{cards.Seven, 7},
		{cards.Ten, 10},
		{cards.Jack, 10},
		{cards.Queen, 10},
		{cards.King, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CardValue(cards.NewCard(tt.rank, cards.Spades)), tt.rank.String())
	}
}

func TestHandTotals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		hand string
		want int
	}{
		{name: "empty hand", hand: "", want: 0},
		{name: "no aces", hand: "7h Qs", want: 17},
		{name: "two kings", hand: "Kh Ks", want: 20},
		{name: "single ace high", hand: "Ah 7c", want: 18},
		{name: "single ace forced down", hand: "Ah 9c 5d", want: 15},
		{name: "two aces both down", hand: "Ah Ad 9c", want: 11},
		{name: "natural", hand: "As Kd", want: 21},
		{name: "two aces one down", hand: "Ah Ad", want: 12},
		{name: "four aces and seven", hand: "Ah Ad Ac As 7h", want: 21},
		{name: "bust without aces", hand: "Kh Qd 5c", want: 25},
		{name: "bust after downgrading", hand: "Ah Kd Qc 5s", want: 26},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cs := cards.MustParseCards(tc.hand)
			assert.Equal(t, tc.want, Total(cs, countAces(cs)))
		})
	}
}

func TestTotalDowngradesOnlyCountedAces(t *testing.T) {
	t.Parallel()
	cs := cards.MustParseCards("Ah Ad 9c")
	assert.Equal(t, 31, Total(cs, 0))
	assert.Equal(t, 21, Total(cs, 1))
	assert.Equal(t, 11, Total(cs, 2))
	// surplus ace credit is never used once the total is at or under 21
	assert.Equal(t, 11, Total(cs, 5))
}

func TestHandSoft(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		soft bool
	}{
		{"Ah 6c", true},
		{"Ah 6c Kd", false},
		{"Ah Ad", true},
		{"Ah Ad 9c", false},
		{"Th 7c", false},
		{"", false},
	}
	for _, tt := range tests {
		var h Hand
		for _, c := range cards.MustParseCards(tt.hand) {
			h.add(c, true)
		}
		assert.Equal(t, tt.soft, h.Soft(), tt.hand)
	}
}

func countAces(cs []cards.Card) int {
	n := 0
	for _, c := range cs {
		if c.IsAce() {
			n++
		}
	}
	return n
}
