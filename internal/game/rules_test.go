package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldDealerHit(t *testing.T) {
	t.Parallel()
	assert.True(t, ShouldDealerHit(0))
	assert.True(t, ShouldDealerHit(12))
	assert.True(t, ShouldDealerHit(16))
	assert.False(t, ShouldDealerHit(17))
	assert.False(t, ShouldDealerHit(21))
	assert.False(t, ShouldDealerHit(25))
}

func TestPlayerWins(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		player int
		dealer int
		want   bool
	}{
		{name: "player 21", player: 21, dealer: 18, want: true},
		{name: "21 against dealer 21", player: 21, dealer: 21, want: true},
		{name: "dealer bust", player: 19, dealer: 22, want: true},
		{name: "plain loss", player: 17, dealer: 19, want: false},
		{name: "beats dealer", player: 20, dealer: 19, want: true},
		{name: "tie under 21 loses", player: 18, dealer: 18, want: false},
		{name: "both bust", player: 23, dealer: 22, want: false},
		{name: "player bust", player: 22, dealer: 17, want: false},
		{name: "low total beats busted dealer", player: 12, dealer: 26, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PlayerWins(tt.player, tt.dealer), tt.name)
	}
}

func TestTieScoredAsLoss(t *testing.T) {
	t.Parallel()
	assert.True(t, TieScoredAsLoss(18, 18))
	assert.False(t, TieScoredAsLoss(21, 21), "21 ties are wins")
	assert.False(t, TieScoredAsLoss(18, 19))
	assert.False(t, TieScoredAsLoss(23, 23), "busted ties are ordinary losses")
}
