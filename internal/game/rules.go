package game

// DealerStandsOn is the lowest total the dealer will stand on
const DealerStandsOn = 17

// ShouldDealerHit is the fixed dealer policy: draw while under 17. Soft
// totals get no special treatment beyond the evaluator's Ace handling.
func ShouldDealerHit(total int) bool {
	return total < DealerStandsOn
}

// PlayerWins decides a player's result against the dealer's final total.
// A player wins on exactly 21, on beating the dealer without busting, or on
// any non-bust total when the dealer busts. Everything else, including a tie
// under 21, is a loss. 21 against a dealer 21 is a win.
func PlayerWins(player, dealer int) bool {
	return player == BlackjackTotal ||
		(player < BlackjackTotal && player > dealer) ||
		(dealer > BlackjackTotal && player <= BlackjackTotal)
}

// TieScoredAsLoss reports whether PlayerWins scored a tie as a loss. There is
// no push outcome, so these are tracked separately for reporting.
func TieScoredAsLoss(player, dealer int) bool {
	return player == dealer && player < BlackjackTotal
}
