package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/modu-ai/themeport/internal/tokenmap"
	"github.com/modu-ai/themeport/internal/ui"
)

// List output formats.
const (
	listTable    = "table"
	listJSON     = "json"
	listYAML     = "yaml"
	listMarkdown = "markdown"
)

var listFormats = []string{listTable, listJSON, listYAML, listMarkdown}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the Ionic to daisyUI token map",
	Long: `List every entry of the token map in definition order.

Formats:
  table      aligned table (default)
  json       array of {source, target, group}
  yaml       same shape as json
  markdown   one table per group, styled when stdout is a terminal`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("format", "f", listTable, "Output format: "+strings.Join(listFormats, ", "))
	listCmd.Flags().StringP("group", "g", "", "Only list entries of this group")
}

func runList(cmd *cobra.Command, _ []string) error {
	d, _, err := prepare()
	if err != nil {
		return err
	}

	format := getStringFlag(cmd, "format")
	if !slices.Contains(listFormats, format) {
		return fmt.Errorf("unknown list format %q (want one of: %s)", format, strings.Join(listFormats, ", "))
	}

	entries := d.Tokens.Entries()
	if group := getStringFlag(cmd, "group"); group != "" {
		if !slices.Contains(d.Tokens.Groups(), group) {
			return fmt.Errorf("unknown group %q (available: %s)", group, strings.Join(d.Tokens.Groups(), ", "))
		}
		entries = d.Tokens.GroupEntries(group)
	}

	out := cmd.OutOrStdout()
	switch format {
	case listJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case listYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case listMarkdown:
		rendered, err := ui.RenderMarkdown(entriesMarkdown(entries), d.Theme, d.Headless, 0)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, rendered)
		return err
	default:
		_, err := fmt.Fprintln(out, entriesTable(entries, d.Theme))
		return err
	}
}

// groupTitle turns a group name such as "platform" into "Platform".
func groupTitle(group string) string {
	if group == "" {
		return "Ungrouped"
	}
	return cases.Title(language.English).String(group)
}

func entriesTable(entries []tokenmap.Entry, theme *ui.Theme) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{groupTitle(e.Group), e.Source, e.Target})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("GROUP", "IONIC", "DAISYUI").
		Rows(rows...)

	if !theme.NoColor {
		header := theme.Title()
		muted := theme.Muted()
		t = t.BorderStyle(muted).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return header.Padding(0, 1)
				}
				if col == 0 {
					return muted.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}
	return t.String()
}

func entriesMarkdown(entries []tokenmap.Entry) string {
	var b strings.Builder
	b.WriteString("# Ionic to daisyUI token map\n")

	current := "\x00"
	for _, e := range entries {
		if e.Group != current {
			current = e.Group
			fmt.Fprintf(&b, "\n## %s\n\n| Ionic | daisyUI |\n|---|---|\n", groupTitle(e.Group))
		}
		fmt.Fprintf(&b, "| `%s` | `%s` |\n", e.Source, e.Target)
	}
	return b.String()
}
