// Package theme extracts Ionic theme variables from stylesheets and
// converts them into daisyUI themes through a token map.
package theme

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Sentinel errors for theme extraction.
var (
	// ErrParse indicates a stylesheet that could not be parsed.
	ErrParse = errors.New("theme: stylesheet parse error")

	// ErrSelectorNotFound indicates that no rule in the stylesheet targets the selector.
	ErrSelectorNotFound = errors.New("theme: selector not found")

	// ErrUnmappedVariables indicates namespaced variables without a mapping in strict mode.
	ErrUnmappedVariables = errors.New("theme: unmapped variables")
)

// Declaration is one custom property declaration.
type Declaration struct {
	Property string
	Value    string
}

// Stylesheet is a parsed CSS document reduced to its custom properties,
// indexed by normalised selector.
type Stylesheet struct {
	order  []string
	blocks map[string][]Declaration
}

// ParseStylesheet parses CSS from r. Rules nested in at-rules such as
// @media are flattened into the same selector index.
func ParseStylesheet(r io.Reader) (*Stylesheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	sheet, err := parser.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	s := &Stylesheet{blocks: make(map[string][]Declaration)}
	s.collect(sheet.Rules)
	return s, nil
}

func (s *Stylesheet) collect(rules []*css.Rule) {
	for _, rule := range rules {
		if rule.Kind == css.AtRule {
			s.collect(rule.Rules)
			continue
		}

		var decls []Declaration
		for _, d := range rule.Declarations {
			if !strings.HasPrefix(d.Property, "--") {
				continue
			}
			value := strings.TrimSpace(d.Value)
			if d.Important {
				value += " !important"
			}
			decls = append(decls, Declaration{Property: d.Property, Value: value})
		}

		for _, sel := range rule.Selectors {
			key := normalizeSelector(sel)
			if key == "" {
				continue
			}
			if _, ok := s.blocks[key]; !ok {
				s.order = append(s.order, key)
			}
			s.blocks[key] = append(s.blocks[key], decls...)
		}
	}
}

// Selectors returns every selector seen, in order of first appearance.
func (s *Stylesheet) Selectors() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// HasSelector reports whether any rule targets selector.
func (s *Stylesheet) HasSelector(selector string) bool {
	_, ok := s.blocks[normalizeSelector(selector)]
	return ok
}

// Declarations returns the custom properties declared for selector.
// A property declared more than once keeps its first position and its
// last value, the same way the cascade resolves it.
func (s *Stylesheet) Declarations(selector string) []Declaration {
	raw := s.blocks[normalizeSelector(selector)]

	index := make(map[string]int, len(raw))
	var out []Declaration
	for _, d := range raw {
		if i, ok := index[d.Property]; ok {
			out[i].Value = d.Value
			continue
		}
		index[d.Property] = len(out)
		out = append(out, d)
	}
	return out
}

// normalizeSelector collapses whitespace so ".ios   body.dark" and
// ".ios body.dark" index the same block.
func normalizeSelector(sel string) string {
	return strings.Join(strings.Fields(sel), " ")
}
