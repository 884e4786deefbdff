package cards

import (
	"slices"
	"testing"

	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns fixed draws and records every bound it was asked for
type scriptedSource struct {
	draws  []int
	bounds []int
}

func (s *scriptedSource) IntN(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.draws) == 0 {
		return 0
	}
	r := s.draws[0]
	s.draws = s.draws[1:]
	return r
}

func tally(cards []Card) (map[Rank]int, map[Suit]int) {
	ranks := make(map[Rank]int)
	suits := make(map[Suit]int)
	for _, c := range cards {
		ranks[c.Rank()]++
		suits[c.Suit()]++
	}
	return ranks, suits
}

func sortedShorts(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Short()
	}
	slices.Sort(out)
	return out
}

func TestNewDeckCanonicalOrder(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	require.Equal(t, DeckSize, d.Remaining())

	cards := d.Cards()
	assert.Equal(t, NewCard(Ace, Clubs), cards[0])
	assert.Equal(t, NewCard(Ace, Hearts), cards[1])
	assert.Equal(t, NewCard(Ace, Spades), cards[2])
	assert.Equal(t, NewCard(Ace, Diamonds), cards[3])
	assert.Equal(t, NewCard(King, Diamonds), cards[DeckSize-1])
	assert.NoError(t, d.Verify())
}

func TestShuffledDeckIsComplete(t *testing.T) {
	t.Parallel()
	for seed := int64(0); seed < 25; seed++ {
		d := NewShuffledDeck(randutil.New(seed))
		require.Equal(t, DeckSize, d.Remaining())

		ranks, suits := tally(d.Cards())
		for rank := Ace; rank <= King; rank++ {
			assert.Equal(t, 4, ranks[rank], "seed %d rank %s", seed, rank)
		}
		for _, suit := range Suits {
			assert.Equal(t, 13, suits[suit], "seed %d suit %s", seed, suit)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	t.Parallel()
	before := NewDeck().Cards()
	d := NewDeck()
	d.Shuffle(randutil.New(7))
	after := d.Cards()

	assert.Equal(t, sortedShorts(before), sortedShorts(after))
	assert.NotEqual(t, before, after, "shuffle left the deck in canonical order")
}

func TestShuffleDeterministicUnderSeed(t *testing.T) {
	t.Parallel()
	a := NewShuffledDeck(randutil.New(1234)).Cards()
	b := NewShuffledDeck(randutil.New(1234)).Cards()
	c := NewShuffledDeck(randutil.New(4321)).Cards()

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestPermuteSwapsFromTheBack(t *testing.T) {
	t.Parallel()
	src := &scriptedSource{}
	s := []int{0, 1, 2, 3}
	Permute(s, src)

	assert.Equal(t, []int{4, 3, 2, 1}, src.bounds)
	assert.Equal(t, []int{1, 2, 3, 0}, s)
}

func TestPermuteScriptedDraws(t *testing.T) {
	t.Parallel()
	src := &scriptedSource{draws: []int{3, 1, 1, 0}}
	s := []string{"a", "b", "c", "d"}
	Permute(s, src)

	// r == top leaves the slot untouched
	assert.Equal(t, []string{"a", "c", "b", "d"}, s)
}

func TestPermuteEmpty(t *testing.T) {
	t.Parallel()
	src := &scriptedSource{}
	Permute([]Card{}, src)
	assert.Empty(t, src.bounds)
}

func TestShufflePanicsOnBrokenComposition(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	// Ace of clubs becomes a second Two of clubs
	d.cards[0] = d.cards[4]

	defer func() {
		r := recover()
		require.NotNil(t, r, "Shuffle should panic on a corrupted deck")
		err, ok := r.(*CompositionError)
		require.True(t, ok, "panic value %T", r)
		assert.Equal(t, Ace, err.Rank)
		assert.Equal(t, 3, err.Count)
		assert.Contains(t, err.Error(), "rank Ace")
	}()
	d.Shuffle(randutil.New(1))
}

func TestVerifyReportsSuitTally(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	// swap the Ace of clubs for the Ace of hearts: ranks stay balanced, suits do not
	d.cards[0] = NewCard(Ace, Hearts)

	err := d.Verify()
	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, Hearts, compErr.Suit)
	assert.Equal(t, 14, compErr.Count)
}

func TestDeckPopFromTail(t *testing.T) {
	t.Parallel()
	d := NewDeck()
	last := d.Cards()[DeckSize-1]

	card, err := d.Pop()
	require.NoError(t, err)
	assert.Equal(t, last, card)
	assert.Equal(t, DeckSize-1, d.Remaining())

	for d.Remaining() > 0 {
		_, err := d.Pop()
		require.NoError(t, err)
	}
	_, err = d.Pop()
	assert.ErrorIs(t, err, ErrDeckEmpty)
}

func TestStackedDeckDealsInOrder(t *testing.T) {
	t.Parallel()
	order := MustParseCards("Ah Kd 2c")
	d := NewStackedDeck(order...)

	for _, want := range order {
		got, err := d.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Zero(t, d.Remaining())
}
