// Package tokenmap holds the static table that maps Ionic CSS custom
// properties to daisyUI theme tokens.
//
// A Table is immutable once built. All accessors return copies, so a
// single Table can be shared by any number of goroutines without locking.
package tokenmap

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	// sourcePattern matches a CSS custom property name: --name-with-hyphens.
	sourcePattern = regexp.MustCompile(`^--[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

	// targetPattern matches a daisyUI token. A literal "--" prefix is kept
	// for tokens that are emitted as raw CSS variables.
	targetPattern = regexp.MustCompile(`^(--)?[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
)

// Entry is one source variable to target token pair.
type Entry struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Group  string `json:"group,omitempty" yaml:"group,omitempty"`
}

// Table is an ordered, read-only mapping from source variables to target tokens.
type Table struct {
	prefix  string
	entries []Entry
	index   map[string]int
	plugins []string
}

// New builds a Table from entries in the given order. Every source must
// carry prefix (when prefix is non-empty) and be unique. Construction fails
// on the first violation so a broken table never reaches a consumer.
func New(prefix string, entries []Entry, plugins []string) (*Table, error) {
	if prefix != "" && !strings.HasPrefix(prefix, "--") {
		return nil, fmt.Errorf("%w: prefix %q must start with \"--\"", ErrInvalidSource, prefix)
	}
	if len(plugins) == 0 {
		return nil, ErrNoPlugins
	}

	t := &Table{
		prefix:  prefix,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
		plugins: make([]string, 0, len(plugins)),
	}

	for _, e := range entries {
		if !sourcePattern.MatchString(e.Source) || !strings.HasPrefix(e.Source, prefix) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSource, e.Source)
		}
		if !targetPattern.MatchString(e.Target) {
			return nil, fmt.Errorf("%w: %q (source %q)", ErrInvalidTarget, e.Target, e.Source)
		}
		if _, dup := t.index[e.Source]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVariable, e.Source)
		}
		t.index[e.Source] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	for _, p := range plugins {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: blank plugin name", ErrInvalidData)
		}
		t.plugins = append(t.plugins, p)
	}

	return t, nil
}

// Lookup returns the target token for name, or an *UnmappedError
// wrapping ErrNotMapped when the table has no such entry.
func (t *Table) Lookup(name string) (string, error) {
	target, ok := t.Get(name)
	if !ok {
		return "", &UnmappedError{Name: name}
	}
	return target, nil
}

// Get returns the target token for name and whether it was found.
func (t *Table) Get(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Target, true
}

// Has reports whether name is a mapped source variable.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Entries returns every pair in definition order.
func (t *Table) Entries() []Entry {
	return slices.Clone(t.entries)
}

// GroupEntries returns the pairs belonging to group, in definition order.
func (t *Table) GroupEntries(group string) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}

// Groups returns the distinct group names in order of first appearance.
func (t *Table) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, e := range t.entries {
		if !seen[e.Group] {
			seen[e.Group] = true
			groups = append(groups, e.Group)
		}
	}
	return groups
}

// Len returns the number of distinct source variables.
func (t *Table) Len() int {
	return len(t.entries)
}

// Plugins returns the Tailwind plugins the target theme depends on.
func (t *Table) Plugins() []string {
	return slices.Clone(t.plugins)
}

// SourcePrefix returns the namespace prefix shared by every source variable.
func (t *Table) SourcePrefix() string {
	return t.prefix
}

// InNamespace reports whether name belongs to the source namespace,
// regardless of whether it is mapped.
func (t *Table) InNamespace(name string) bool {
	return t.prefix != "" && strings.HasPrefix(name, t.prefix)
}
