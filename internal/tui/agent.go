package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/display"
	"github.com/lox/blackjack/internal/game"
)

// LineAgent reads one action per line. Unrecognised input is reported and
// the prompt repeated; end of input or "q" quits.
type LineAgent struct {
	in      *bufio.Scanner
	out     io.Writer
	display *display.Display
	logger  *log.Logger
}

// NewLineAgent creates a line-based agent
func NewLineAgent(in io.Reader, out io.Writer, d *display.Display, logger *log.Logger) *LineAgent {
	return &LineAgent{
		in:      bufio.NewScanner(in),
		out:     out,
		display: d,
		logger:  logger.WithPrefix("prompt"),
	}
}

// Decide prompts until a valid action is read
func (a *LineAgent) Decide(ctx context.Context, view game.TurnView) (game.Action, error) {
	fmt.Fprintln(a.out, a.display.View(view))
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintln(a.out, a.display.Prompt())

		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return 0, fmt.Errorf("read action: %w", err)
			}
			return 0, ErrQuit
		}
		line := a.in.Text()
		if q := strings.ToLower(strings.TrimSpace(line)); q == "q" || q == "quit" {
			return 0, ErrQuit
		}

		action, err := game.ParseAction(line)
		if errors.Is(err, game.ErrUnknownAction) {
			a.logger.Debug("Rejected input", "player", view.Player, "input", line)
			fmt.Fprintln(a.out, a.display.UnknownAction())
			continue
		}
		if err != nil {
			return 0, err
		}
		a.logger.Debug("Player chose", "player", view.Player, "action", action)
		return action, nil
	}
}

// KeyAgent runs a short-lived bubbletea program for every decision
type KeyAgent struct {
	in      io.Reader
	out     io.Writer
	display *display.Display
	logger  *log.Logger
}

// NewKeyAgent creates a key-press agent reading from in and drawing to out
func NewKeyAgent(in io.Reader, out io.Writer, d *display.Display, logger *log.Logger) *KeyAgent {
	return &KeyAgent{
		in:      in,
		out:     out,
		display: d,
		logger:  logger.WithPrefix("tui"),
	}
}

// closeNotifier calls onEOF once when the wrapped reader is exhausted
type closeNotifier struct {
	r     io.Reader
	once  sync.Once
	onEOF func()
}

func (c *closeNotifier) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.once.Do(c.onEOF)
	}
	return n, err
}

// Decide shows the player's view and waits for h, s or q. Input that ends
// before a choice is treated as quitting.
func (a *KeyAgent) Decide(ctx context.Context, view game.TurnView) (game.Action, error) {
	model := NewPromptModel(view, a.display)
	input := &closeNotifier{r: a.in}
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(a.out))
	input.onEOF = func() { program.Send(inputClosedMsg{}) }

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(*PromptModel)
	if !ok {
		return 0, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Action() == 0 {
		a.logger.Debug("Prompt ended without a choice", "player", view.Player, "quit", m.Quitting())
		return 0, ErrQuit
	}
	a.logger.Debug("Player chose", "player", view.Player, "action", m.Action())
	return m.Action(), nil
}
