package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// outputStyles decorates command output when writing to a terminal.
type outputStyles struct {
	heading lipgloss.Style
	mode    lipgloss.Style
	muted   lipgloss.Style
	speech  lipgloss.Style
	enabled bool
}

func stylesFor(w io.Writer) outputStyles {
	return outputStyles{
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		mode:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		speech:  lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		enabled: isTerminal(w),
	}
}

func (s outputStyles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

func (s outputStyles) Heading(text string) string { return s.render(s.heading, text) }
func (s outputStyles) Mode(text string) string    { return s.render(s.mode, text) }
func (s outputStyles) Muted(text string) string   { return s.render(s.muted, text) }
func (s outputStyles) Speech(text string) string  { return s.render(s.speech, text) }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int on supported platforms
}
