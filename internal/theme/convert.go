package theme

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/modu-ai/themeport/internal/tokenmap"
)

// Source names a stylesheet and the selector whose variables form one theme.
type Source struct {
	Name     string
	Selector string
	Path     string
}

// Token is one daisyUI token and its value.
type Token struct {
	Name  string
	Value string
}

// CSSProperty returns the token as a CSS custom property name.
// Names that already carry the "--" prefix are used verbatim.
func (t Token) CSSProperty() string {
	if strings.HasPrefix(t.Name, "--") {
		return t.Name
	}
	return "--" + t.Name
}

// ThemeKey returns the token as a key under daisyui.themes.
func (t Token) ThemeKey() string {
	return strings.TrimPrefix(t.Name, "--")
}

// Theme is a named set of daisyUI tokens taken from one selector.
type Theme struct {
	Name     string
	Selector string
	Tokens   []Token
	// Unmapped lists namespaced variables that had no entry in the table.
	Unmapped []string
}

// Convert maps the namespaced declarations through table. Properties
// outside the table's namespace are ignored. Namespaced properties that
// have no mapping are collected in Theme.Unmapped, or fail the conversion
// with ErrUnmappedVariables when strict is set.
func Convert(src Source, decls []Declaration, table *tokenmap.Table, strict bool) (Theme, error) {
	th := Theme{Name: src.Name, Selector: src.Selector}

	for _, d := range decls {
		if !table.InNamespace(d.Property) {
			continue
		}
		target, ok := table.Get(d.Property)
		if !ok {
			th.Unmapped = append(th.Unmapped, d.Property)
			continue
		}
		th.Tokens = append(th.Tokens, Token{Name: target, Value: d.Value})
	}

	if strict && len(th.Unmapped) > 0 {
		return th, fmt.Errorf("%w in theme %q: %s", ErrUnmappedVariables, src.Name, strings.Join(th.Unmapped, ", "))
	}
	return th, nil
}

// Extract reads every source in order and converts it into a theme.
// resolve maps a source path to a file on disk. The context is checked
// between files.
func Extract(ctx context.Context, sources []Source, resolve func(Source) string, table *tokenmap.Table, strict bool) ([]Theme, error) {
	themes := make([]Theme, 0, len(sources))

	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		th, err := ExtractFile(resolve(src), src, table, strict)
		if err != nil {
			return nil, err
		}
		for _, name := range th.Unmapped {
			slog.Warn("skipping unmapped variable", "theme", th.Name, "variable", name)
		}
		themes = append(themes, th)
	}

	return themes, nil
}

// ExtractFile parses one stylesheet and converts the block for src.Selector.
func ExtractFile(path string, src Source, table *tokenmap.Table, strict bool) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("open theme %q: %w", src.Name, err)
	}
	defer func() { _ = f.Close() }()

	sheet, err := ParseStylesheet(f)
	if err != nil {
		return Theme{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if !sheet.HasSelector(src.Selector) {
		return Theme{}, fmt.Errorf("%w: %q in %s", ErrSelectorNotFound, src.Selector, path)
	}

	return Convert(src, sheet.Declarations(src.Selector), table, strict)
}
