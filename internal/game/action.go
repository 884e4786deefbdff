package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAction is returned by ParseAction for anything other than hit or stay
var ErrUnknownAction = errors.New("unknown action")

// Action is a player's choice on their turn
type Action uint8

const (
	Hit Action = iota + 1
	Stay
)

// String returns the action token
func (a Action) String() string {
	switch a {
	case Hit:
		return "hit"
	case Stay:
		return "stay"
	default:
		return "unknown"
	}
}

// ParseAction converts user input to an Action. Accepted tokens are
// "h"/"hit" and "s"/"stay", case-insensitive and ignoring surrounding space.
func ParseAction(input string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "h", "hit":
		return Hit, nil
	case "s", "stay":
		return Stay, nil
	default:
		return 0, fmt.Errorf("%q: %w", input, ErrUnknownAction)
	}
}
