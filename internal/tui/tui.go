// Package tui prompts human players for hit or stay, either one line at a
// time or with a bubbletea key-press prompt.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// ErrQuit is returned by agents when the human leaves the table
var ErrQuit = errors.New("player quit")

type keyMap struct {
	Hit  key.Binding
	Stay key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Hit, k.Stay, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Hit: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "hit"),
	),
	Stay: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stay"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c", "esc"),
		key.WithHelp("q", "quit"),
	),
}

// inputClosedMsg is sent when the prompt's input reaches end of file
type inputClosedMsg struct{}

// PromptModel is the Bubble Tea model for a single hit-or-stay decision
type PromptModel struct {
	view    game.TurnView
	display *display.Display
	help    help.Model

	action   game.Action
	quitting bool
	invalid  bool
}

// NewPromptModel creates a prompt for one decision
func NewPromptModel(view game.TurnView, d *display.Display) *PromptModel {
	return &PromptModel{
		view:    view,
		display: d,
		help:    help.New(),
	}
}

// Init initializes the model
func (m *PromptModel) Init() tea.Cmd {
	return nil
}

// Update handles key presses. Anything other than hit, stay or quit marks
// the input invalid and keeps prompting.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case inputClosedMsg:
		if m.action == 0 {
			m.quitting = true
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if m.action != 0 || m.quitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Hit):
			m.action = game.Hit
			return m, tea.Quit
		case key.Matches(msg, keys.Stay):
			m.action = game.Stay
			return m, tea.Quit
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit
		default:
			m.invalid = true
		}
	}
	return m, nil
}

// View renders the prompt
func (m *PromptModel) View() string {
	var b strings.Builder
	b.WriteString(m.display.View(m.view))
	b.WriteString("\n")

	switch {
	case m.quitting:
		b.WriteString("Leaving the table.\n")
		return b.String()
	case m.action != 0:
		b.WriteString("> " + m.action.String() + "\n")
		return b.String()
	}

	b.WriteString(m.display.Prompt())
	b.WriteString("\n")
	if m.invalid {
		b.WriteString(m.display.UnknownAction())
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// Action returns the chosen action, or 0 if none was chosen
func (m *PromptModel) Action() game.Action { return m.action }

// Quitting reports whether the player asked to leave
func (m *PromptModel) Quitting() bool { return m.quitting }
