package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		want string
	}{
		{NewCard(Ace, Hearts), "Ace of hearts"},
		{NewCard(Two, Spades), "2 of spades"},
		{NewCard(Ten, Diamonds), "10 of diamonds"},
		{NewCard(Jack, Clubs), "Jack of clubs"},
		{NewCard(Queen, Hearts), "Queen of hearts"},
		{NewCard(King, Spades), "King of spades"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.card.String())
	}
}

func TestNewCardRejectsOutOfRange(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { NewCard(0, Hearts) })
	assert.Panics(t, func() { NewCard(King+1, Hearts) })
	assert.Panics(t, func() { NewCard(Ace, Suit(0)) })
	assert.Panics(t, func() { NewCard(Ace, Clubs+1) })
}

func TestSuitIsClosed(t *testing.T) {
	t.Parallel()
	assert.False(t, Suit(0).Valid())
	for _, s := range Suits {
		assert.True(t, s.Valid(), s.String())
	}
	assert.False(t, Suit(5).Valid())
	assert.Equal(t, "unknown", Suit(9).String())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of hearts", input: "Ah", want: NewCard(Ace, Hearts)},
		{name: "ten with T", input: "Td", want: NewCard(Ten, Diamonds)},
		{name: "lower case", input: "ks", want: NewCard(King, Spades)},
		{name: "upper suit", input: "9C", want: NewCard(Nine, Clubs)},
		{name: "invalid rank", input: "Xs", wantErr: true},
		{name: "invalid suit", input: "Ax", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: "Ahh", wantErr: true},
	}

	for _, testCase := range tests {
		tc := testCase
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseCard(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestShortRoundTripsAllCards(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, c := range NewDeck().Cards() {
		short := c.Short()
		assert.False(t, seen[short], "duplicate notation %s", short)
		seen[short] = true

		parsed, err := ParseCard(short)
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Len(t, seen, DeckSize)
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	got, err := ParseCards("Ah 9c 5d")
	require.NoError(t, err)
	assert.Equal(t, []Card{NewCard(Ace, Hearts), NewCard(Nine, Clubs), NewCard(Five, Diamonds)}, got)

	_, err = ParseCards("Ah9")
	assert.Error(t, err)

	assert.Panics(t, func() { MustParseCards("zz") })
}
