package cli

import (
	"fmt"
	"io"
	"strings"
)

// printCard writes a titled summary. Interactive terminals get a bordered
// card; headless output is one line per detail so it stays greppable.
func printCard(w io.Writer, d *Dependencies, title string, details ...string) {
	if d.Headless.IsHeadless() || d.Theme.NoColor {
		_, _ = fmt.Fprintln(w, title)
		for _, line := range details {
			if line == "" {
				_, _ = fmt.Fprintln(w)
				continue
			}
			_, _ = fmt.Fprintln(w, "  "+line)
		}
		return
	}
	_, _ = fmt.Fprintln(w, d.Theme.Card(title, details...))
}

// warnUnmapped reports namespaced variables that had no mapping.
func warnUnmapped(w io.Writer, d *Dependencies, where string, names []string) {
	if len(names) == 0 {
		return
	}
	msg := fmt.Sprintf("%s: %d unmapped variable(s) skipped: %s", where, len(names), strings.Join(names, ", "))
	_, _ = fmt.Fprintln(w, d.Theme.Warn().Render(msg))
}
