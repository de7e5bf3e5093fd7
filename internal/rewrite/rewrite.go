// Package rewrite renames Ionic custom properties inside stylesheets to
// their daisyUI counterparts, both where they are declared and where they
// are read through var().
package rewrite

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/modu-ai/themeport/internal/theme"
	"github.com/modu-ai/themeport/internal/tokenmap"
)

// ErrUnmapped indicates namespaced variables without a mapping in strict mode.
var ErrUnmapped = errors.New("rewrite: unmapped variables")

// customPropertyRegex matches a custom property name anywhere in CSS text:
// declarations (--name: value) and references (var(--name)).
var customPropertyRegex = regexp.MustCompile(`--[a-zA-Z_][a-zA-Z0-9_-]*`)

// Options controls a rewrite.
type Options struct {
	// Strict fails the rewrite when a namespaced variable has no mapping.
	Strict bool
}

// Result is the outcome of rewriting one stylesheet.
type Result struct {
	Output string
	// Replaced counts every renamed occurrence.
	Replaced int
	// Unmapped lists distinct namespaced names left untouched, in order of appearance.
	Unmapped []string
}

// Changed reports whether the rewrite altered the input.
func (r Result) Changed() bool {
	return r.Replaced > 0
}

// Rewrite renames every mapped custom property in src. A name preceded by
// an identifier character is part of a longer token and is left alone.
func Rewrite(src string, table *tokenmap.Table, opts Options) (Result, error) {
	var (
		b      strings.Builder
		result Result
		last   int
	)
	b.Grow(len(src))

	for _, loc := range customPropertyRegex.FindAllStringIndex(src, -1) {
		start, end := loc[0], loc[1]
		if start > 0 && isIdentChar(src[start-1]) {
			continue
		}

		name := src[start:end]
		if !table.InNamespace(name) {
			continue
		}

		target, ok := table.Get(name)
		if !ok {
			if !slices.Contains(result.Unmapped, name) {
				result.Unmapped = append(result.Unmapped, name)
			}
			continue
		}

		b.WriteString(src[last:start])
		b.WriteString(theme.Token{Name: target}.CSSProperty())
		last = end
		result.Replaced++
	}
	b.WriteString(src[last:])
	result.Output = b.String()

	if opts.Strict && len(result.Unmapped) > 0 {
		return result, fmt.Errorf("%w: %s", ErrUnmapped, strings.Join(result.Unmapped, ", "))
	}
	return result, nil
}

func isIdentChar(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
