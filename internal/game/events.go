package game

import "github.com/lox/blackjack/cards"

// EventType identifies a round event
type EventType string

const (
	EventTypeDealt      EventType = "dealt"
	EventTypeHit        EventType = "hit"
	EventTypeStay       EventType = "stay"
	EventTypeDealerDraw EventType = "dealer_draw"
	EventTypeRoundEnd   EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything published by a Round while it plays
type Event interface {
	EventType() EventType
}

// EventHandler receives round events synchronously, in order
type EventHandler func(Event)

// DealtEvent is published for each seed card of the initial deal
type DealtEvent struct {
	Player int
	Card   cards.Card
	FaceUp bool
}

func (DealtEvent) EventType() EventType { return EventTypeDealt }

// HitEvent is published after a player hits
type HitEvent struct {
	Player int
	Card   cards.Card
	Total  int
	State  TurnState
}

func (HitEvent) EventType() EventType { return EventTypeHit }

// StayEvent is published when a player stays
type StayEvent struct {
	Player int
	Total  int
}

func (StayEvent) EventType() EventType { return EventTypeStay }

// DealerDrawEvent is published for each card the dealer draws
type DealerDrawEvent struct {
	Card  cards.Card
	Total int
}

func (DealerDrawEvent) EventType() EventType { return EventTypeDealerDraw }

// RoundEndEvent is published once outcomes are known
type RoundEndEvent struct {
	Summary Summary
}

func (RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
