package cards

import "fmt"

// Source yields uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// Permute shuffles s in place. Each step draws r from the shrinking
// unplaced prefix [0, remaining) and swaps it into slot remaining-1, which
// is then fixed. The result is a uniform permutation.
func Permute[T any](s []T, rng Source) {
	size := len(s)
	for i := range size {
		remaining := size - i
		top := remaining - 1
		r := rng.IntN(remaining)
		s[top], s[r] = s[r], s[top]
	}
}

// Shuffle permutes the deck in place and then checks that no card was
// dropped or duplicated. A failed check is a bug in the permutation, so it
// panics with a *CompositionError rather than returning an error.
func (d *Deck) Shuffle(rng Source) {
	Permute(d.cards, rng)
	if err := d.Verify(); err != nil {
		panic(err)
	}
}

// CompositionError reports a full deck whose rank or suit tally is wrong
type CompositionError struct {
	Rank  Rank // zero when the suit tally is at fault
	Suit  Suit // zero when the rank tally is at fault
	Count int
	Want  int
}

func (e *CompositionError) Error() string {
	if e.Rank != 0 {
		return fmt.Sprintf("deck composition: rank %s appears %d times, want %d", e.Rank, e.Count, e.Want)
	}
	return fmt.Sprintf("deck composition: suit %s appears %d times, want %d", e.Suit, e.Count, e.Want)
}

// Verify tallies the deck by rank and by suit and returns a
// *CompositionError unless every rank appears 4 times and every suit 13.
// It only makes sense on a full deck.
func (d *Deck) Verify() error {
	var ranks [NumRanks + 1]int
	var suits [len(Suits) + 1]int
	for _, c := range d.cards {
		if c.rank.Valid() {
			ranks[c.rank]++
		}
		if c.suit.Valid() {
			suits[c.suit]++
		}
	}

	for rank := Ace; rank <= King; rank++ {
		if ranks[rank] != len(Suits) {
			return &CompositionError{Rank: rank, Count: ranks[rank], Want: len(Suits)}
		}
	}
	for _, suit := range Suits {
		if suits[suit] != NumRanks {
			return &CompositionError{Suit: suit, Count: suits[suit], Want: NumRanks}
		}
	}
	return nil
}
