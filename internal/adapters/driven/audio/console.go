package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/sightline-cli/internal/core/ports/driven"
)

// Ensure Console implements the interface.
var _ driven.AudioOutput = (*Console)(nil)

const speakPrefix = "speak:"

// Console is an AudioOutput that prints announcements, one per line.
type Console struct {
	mu      sync.Mutex
	out     io.Writer
	prefix  lipgloss.Style
	message lipgloss.Style
	styled  bool
}

// NewConsole creates a console output. Styling is enabled only when w is a terminal.
func NewConsole(w io.Writer) *Console {
	return newConsole(w, isTerminal(w))
}

// NewPlainConsole creates a console output that never styles its lines.
func NewPlainConsole(w io.Writer) *Console {
	return newConsole(w, false)
}

func newConsole(w io.Writer, styled bool) *Console {
	if w == nil {
		w = os.Stdout
	}
	return &Console{
		out: w,
		prefix: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Bold(true),
		message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CDD6F4")),
		styled: styled,
	}
}

// Speak writes the message to the underlying writer.
func (c *Console) Speak(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var err error
	if c.styled {
		_, err = fmt.Fprintf(c.out, "%s %s\n", c.prefix.Render(speakPrefix), c.message.Render(message))
	} else {
		_, err = fmt.Fprintf(c.out, "%s %s\n", speakPrefix, message)
	}
	if err != nil {
		return fmt.Errorf("write announcement: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}
