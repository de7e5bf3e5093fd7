package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// DefaultWrap is the word-wrap width for rendered markdown.
const DefaultWrap = 100

// RenderMarkdown renders md for the terminal. Headless and no-colour
// output return md unchanged so it can be piped into files.
func RenderMarkdown(md string, theme *Theme, hm *HeadlessManager, width int) (string, error) {
	if theme.NoColor || hm.IsHeadless() {
		return md, nil
	}
	if width <= 0 {
		width = DefaultWrap
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
