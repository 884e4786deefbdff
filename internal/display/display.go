// Package display renders rounds for the terminal with lipgloss.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/game"
	"github.com/muesli/termenv"
)

// Display formats round state and events. It holds no game state.
type Display struct {
	renderer *lipgloss.Renderer

	title     lipgloss.Style
	heading   lipgloss.Style
	redCard   lipgloss.Style
	blackCard lipgloss.Style
	hidden    lipgloss.Style
	win       lipgloss.Style
	loss      lipgloss.Style
	warning   lipgloss.Style
}

// New creates a display for w. With color false every style renders as
// plain text.
func New(w io.Writer, color bool) *Display {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Display{
		renderer: r,
		title: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		heading:   r.NewStyle().Bold(true).Underline(true),
		redCard:   r.NewStyle().Foreground(lipgloss.Color("#E06C75")),
		blackCard: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		hidden:    r.NewStyle().Foreground(lipgloss.Color("#5C6370")),
		win:       r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		loss:      r.NewStyle().Foreground(lipgloss.Color("#E06C75")).Bold(true),
		warning:   r.NewStyle().Foreground(lipgloss.Color("#E5C07B")),
	}
}

// Title renders a banner
func (d *Display) Title(s string) string {
	return d.title.Render(s)
}

// Card renders a card label in angle brackets, red suits in red
func (d *Display) Card(c cards.Card) string {
	label := "<" + c.String() + ">"
	if c.Suit() == cards.Hearts || c.Suit() == cards.Diamonds {
		return d.redCard.Render(label)
	}
	return d.blackCard.Render(label)
}

// Cards renders a bracketed, comma-separated card list
func (d *Display) Cards(cs []cards.Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = d.Card(c)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (d *Display) hiddenCards(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = d.hidden.Render("<hidden>")
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Player renders a player's hand. With reveal false the face-down cards and
// the total are masked, which is how other seats see them.
func (d *Display) Player(p *game.Player, reveal bool) string {
	h := p.Hand()
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.heading.Render(p.Name()))
	fmt.Fprintf(&b, "num_cards: %d\n", h.Len())
	if reveal {
		fmt.Fprintf(&b, "private: %s\n", d.Cards(h.Down()))
	} else {
		fmt.Fprintf(&b, "private: %s\n", d.hiddenCards(len(h.Down())))
	}
	fmt.Fprintf(&b, "public: %s\n", d.Cards(h.Up()))
	if reveal {
		sum := fmt.Sprintf("%d", p.Sum())
		if h.Soft() {
			sum += " (soft)"
		}
		fmt.Fprintf(&b, "sum: %s\n", sum)
	}
	b.WriteString("-------------------")
	return b.String()
}

// View renders the acting player's own view of the table
func (d *Display) View(v game.TurnView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.heading.Render(fmt.Sprintf("Player %d", v.Player)))
	fmt.Fprintf(&b, "private: %s\n", d.Cards(v.Down))
	fmt.Fprintf(&b, "public: %s\n", d.Cards(v.Up))
	sum := fmt.Sprintf("%d", v.Total)
	if v.Soft {
		sum += " (soft)"
	}
	fmt.Fprintf(&b, "sum: %s\n", sum)
	fmt.Fprintf(&b, "dealer shows: %s", d.Cards(v.DealerUp))
	return b.String()
}

// Prompt is the question put to a human player
func (d *Display) Prompt() string {
	return "[h]it or [s]tay?"
}

// UnknownAction is shown when input is neither hit nor stay
func (d *Display) UnknownAction() string {
	return d.warning.Render("Unknown action. Please type h or s")
}

// Event renders a round event as a line of text. Events that need no
// commentary render as the empty string.
func (d *Display) Event(e game.Event) string {
	switch e := e.(type) {
	case game.HitEvent:
		switch e.State {
		case game.Blackjack:
			return fmt.Sprintf("Player %d dealt %s. %s", e.Player, d.Card(e.Card), d.win.Render("21!"))
		case game.Busted:
			return fmt.Sprintf("Player %d dealt %s. %s", e.Player, d.Card(e.Card), d.loss.Render(fmt.Sprintf("Went over (%d).", e.Total)))
		default:
			return fmt.Sprintf("Player %d dealt %s. Total %d.", e.Player, d.Card(e.Card), e.Total)
		}
	case game.StayEvent:
		return fmt.Sprintf("Player %d stays on %d.", e.Player, e.Total)
	case game.DealerDrawEvent:
		return fmt.Sprintf("Dealer draws %s. Total %d.", d.Card(e.Card), e.Total)
	default:
		return ""
	}
}

// Results renders the final scores
func (d *Display) Results(s game.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.heading.Render("final results:"))
	dealer := fmt.Sprintf("dealer score: %d", s.DealerTotal)
	if s.DealerBusted {
		dealer += " " + d.loss.Render("(bust)")
	}
	b.WriteString(dealer)
	for _, r := range s.Results {
		outcome := d.loss.Render("lost!")
		if r.Won {
			outcome = d.win.Render("won!")
		}
		fmt.Fprintf(&b, "\nplayer: %d (%d) %s", r.Player, r.Total, outcome)
	}
	return b.String()
}
