package cards

import (
	"fmt"
	"strings"
)

// Suit is one of the four French suits. The zero value is not a valid suit.
type Suit uint8

const (
	Hearts Suit = iota + 1
	Spades
	Diamonds
	Clubs
)

// Suits lists every valid suit in declaration order.
var Suits = [...]Suit{Hearts, Spades, Diamonds, Clubs}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Hearts && s <= Clubs
}

// String returns the plural suit name used in card labels (e.g. "hearts")
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// Rank is a card rank from Ace (1) to King (13)
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of distinct ranks in a suit
const NumRanks = 13

// Valid reports whether r is within Ace..King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// String returns the rank name used in card labels: "Ace", "2".."10", "Jack", "Queen", "King"
func (r Rank) String() string {
	switch {
	case r == Ace:
		return "Ace"
	case r >= Two && r <= Ten:
		return fmt.Sprintf("%d", r)
	case r == Jack:
		return "Jack"
	case r == Queen:
		return "Queen"
	case r == King:
		return "King"
	default:
		return "?"
	}
}

// Card is an immutable (suit, rank) pair. Cards compare with ==.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a card. It panics if rank or suit is out of range, since
// every card in this package is produced from the fixed rank and suit tables.
func NewCard(rank Rank, suit Suit) Card {
	if !rank.Valid() {
		panic(fmt.Sprintf("cards: invalid rank %d", rank))
	}
	if !suit.Valid() {
		panic(fmt.Sprintf("cards: invalid suit %d", suit))
	}
	return Card{suit: suit, rank: rank}
}

// Rank returns the card's rank
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit
func (c Card) Suit() Suit { return c.suit }

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool { return c.rank == Ace }

// String returns the human-readable label, e.g. "Ace of hearts"
func (c Card) String() string {
	return c.rank.String() + " of " + c.suit.String()
}

const (
	shortRanks = "A23456789TJQK"
	shortSuits = "hsdc"
)

// Short returns the two-character notation, e.g. "Ah", "Td"
func (c Card) Short() string {
	if !c.rank.Valid() || !c.suit.Valid() {
		return "??"
	}
	return string(shortRanks[c.rank-1]) + string(shortSuits[c.suit-1])
}

// ParseCard parses two-character notation like "Ah" or "Tc" into a Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	rank := Rank(strings.IndexByte(shortRanks, upper(s[0])) + 1)
	if !rank.Valid() {
		return Card{}, fmt.Errorf("invalid rank: %c", s[0])
	}

	suit := Suit(strings.IndexByte(shortSuits, lower(s[1])) + 1)
	if !suit.Valid() {
		return Card{}, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(rank, suit), nil
}

// ParseCards parses space-separated or concatenated cards ("Ah 9c 5d" or "Ah9c5d")
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card string length: %q", s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
