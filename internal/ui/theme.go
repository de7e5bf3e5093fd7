// Package ui holds the terminal presentation layer: colours, TTY
// detection, progress display, prompts and markdown rendering. Every
// component degrades to plain text when no terminal is attached.
package ui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// ErrCancelled indicates the user aborted an interactive prompt.
var ErrCancelled = errors.New("ui: cancelled by user")

// Brand colours.
const (
	ColorPrimary   = "#154666"
	ColorSecondary = "#438F68"
	ColorSuccess   = "#10DC60"
	ColorWarning   = "#FFCE00"
	ColorError     = "#F04141"
	ColorMuted     = "#989AA2"
	ColorText      = "#F4F5F8"
)

// Colors is the palette a Theme draws from.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Text      string
}

// Theme carries the palette and whether colour output is disabled.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the default theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
			Text:      ColorText,
		},
		NoColor: noColor,
	}
}

func (t *Theme) fg(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if t.NoColor {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style { return t.fg(t.Colors.Secondary).Bold(true) }

// Success styles confirmations.
func (t *Theme) Success() lipgloss.Style { return t.fg(t.Colors.Success).Bold(true) }

// Warn styles warnings.
func (t *Theme) Warn() lipgloss.Style { return t.fg(t.Colors.Warning) }

// Error styles failures.
func (t *Theme) Error() lipgloss.Style { return t.fg(t.Colors.Error).Bold(true) }

// Muted styles secondary detail.
func (t *Theme) Muted() lipgloss.Style { return t.fg(t.Colors.Muted) }

// Card renders a bordered block with a title line and detail lines.
func (t *Theme) Card(title string, details ...string) string {
	body := t.Success().Render(title)
	for _, d := range details {
		body += "\n" + d
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if !t.NoColor {
		box = box.BorderForeground(lipgloss.Color(t.Colors.Primary))
	}
	return box.Render(body)
}
