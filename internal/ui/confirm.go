package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Prompt asks the user yes/no questions.
type Prompt interface {
	// Confirm returns the user's answer. In headless mode it returns def
	// without prompting.
	Confirm(title string, def bool) (bool, error)
}

type promptImpl struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewPrompt creates a Prompt bound to the given theme and headless manager.
func NewPrompt(theme *Theme, hm *HeadlessManager) Prompt {
	return &promptImpl{theme: theme, headless: hm}
}

func (p *promptImpl) Confirm(title string, def bool) (bool, error) {
	if p.headless.IsHeadless() {
		return def, nil
	}

	value := def
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&value)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.formTheme()).
		WithAccessible(p.theme.NoColor)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, fmt.Errorf("confirm prompt: %w", err)
	}
	return value, nil
}

// formTheme maps the palette onto a huh theme.
func (p *promptImpl) formTheme() *huh.Theme {
	t := huh.ThemeBase()
	if p.theme.NoColor {
		return t
	}

	primary := lipgloss.Color(p.theme.Colors.Primary)
	secondary := lipgloss.Color(p.theme.Colors.Secondary)
	muted := lipgloss.Color(p.theme.Colors.Muted)
	text := lipgloss.Color(p.theme.Colors.Text)

	t.Focused.Title = t.Focused.Title.Foreground(secondary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(text).
		Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.Color("#374151"))
	return t
}
