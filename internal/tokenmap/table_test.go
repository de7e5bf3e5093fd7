package tokenmap

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
)

func TestDefaultLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"--ion-color-primary", "primary"},
		{"--ion-color-primary-contrast", "primary-content"},
		{"--ion-color-primary-shade", "primary-focus"},
		{"--ion-color-danger", "error"},
		{"--ion-color-danger-shade", "error-focus"},
		{"--ion-color-step-50", "color-50"},
		{"--ion-color-step-500", "color-500"},
		{"--ion-color-step-950", "color-950"},
		{"--ion-background-color", "base-100"},
		{"--ion-text-color", "text-color"},
		{"--ion-border-color", "--border-color"},
	}

	table := Default()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := table.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestDefaultLookupUnknown(t *testing.T) {
	t.Parallel()

	_, err := Default().Lookup("--does-not-exist")
	if !errors.Is(err, ErrNotMapped) {
		t.Fatalf("Lookup error = %v, want ErrNotMapped", err)
	}

	var unmapped *UnmappedError
	if !errors.As(err, &unmapped) {
		t.Fatalf("Lookup error %T is not *UnmappedError", err)
	}
	if unmapped.Name != "--does-not-exist" {
		t.Errorf("UnmappedError.Name = %q", unmapped.Name)
	}

	if _, ok := Default().Get("--does-not-exist"); ok {
		t.Error("Get reported an unknown variable as present")
	}
}

func TestDefaultEveryKeyResolves(t *testing.T) {
	t.Parallel()

	table := Default()
	for _, e := range table.Entries() {
		got, err := table.Lookup(e.Source)
		if err != nil {
			t.Errorf("Lookup(%q) error: %v", e.Source, err)
			continue
		}
		if got == "" {
			t.Errorf("Lookup(%q) returned empty target", e.Source)
		}
		if got != e.Target {
			t.Errorf("Lookup(%q) = %q, entry says %q", e.Source, got, e.Target)
		}
	}
}

func TestDefaultEntriesCount(t *testing.T) {
	t.Parallel()

	table := Default()
	entries := table.Entries()

	distinct := make(map[string]bool)
	for _, e := range entries {
		distinct[e.Source] = true
	}

	if len(entries) != len(distinct) {
		t.Errorf("Entries() has %d pairs but %d distinct keys", len(entries), len(distinct))
	}
	if table.Len() != len(entries) {
		t.Errorf("Len() = %d, Entries() = %d", table.Len(), len(entries))
	}
	if table.Len() != 51 {
		t.Errorf("Len() = %d, want 51", table.Len())
	}
}

func TestDefaultTargetNamingConvention(t *testing.T) {
	t.Parallel()

	convention := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	for _, e := range Default().Entries() {
		// --border-color is kept verbatim; daisyUI reads it as a raw variable.
		if e.Source == "--ion-border-color" {
			if e.Target != "--border-color" {
				t.Errorf("border color target = %q, want literal --border-color", e.Target)
			}
			continue
		}
		if strings.HasPrefix(e.Target, "--") {
			t.Errorf("target %q for %q has a leading --", e.Target, e.Source)
		}
		if !convention.MatchString(e.Target) {
			t.Errorf("target %q for %q is not lowercase hyphen-separated", e.Target, e.Source)
		}
	}
}

func TestDefaultEntriesOrder(t *testing.T) {
	t.Parallel()

	entries := Default().Entries()
	if entries[0].Source != "--ion-color-primary" {
		t.Errorf("first entry = %q, want --ion-color-primary", entries[0].Source)
	}
	if last := entries[len(entries)-1]; last.Source != "--ion-color-step-950" {
		t.Errorf("last entry = %q, want --ion-color-step-950", last.Source)
	}
}

func TestDefaultGroups(t *testing.T) {
	t.Parallel()

	want := []string{
		"primary", "secondary", "tertiary", "success", "warning",
		"error", "medium", "light", "dark", "platform",
	}
	got := Default().Groups()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Groups() = %v, want %v", got, want)
	}

	if n := len(Default().GroupEntries("error")); n != 3 {
		t.Errorf("GroupEntries(error) = %d entries, want 3", n)
	}
	if n := len(Default().GroupEntries("platform")); n != 24 {
		t.Errorf("GroupEntries(platform) = %d entries, want 24", n)
	}
}

func TestDefaultPlugins(t *testing.T) {
	t.Parallel()

	plugins := Default().Plugins()
	if len(plugins) != 1 || plugins[0] != "daisyui" {
		t.Fatalf("Plugins() = %v, want [daisyui]", plugins)
	}
}

func TestDefaultIsImmutable(t *testing.T) {
	t.Parallel()

	table := Default()

	entries := table.Entries()
	entries[0].Target = "mutated"
	if got, _ := table.Get("--ion-color-primary"); got != "primary" {
		t.Errorf("mutating Entries() copy leaked into table: %q", got)
	}

	plugins := table.Plugins()
	plugins[0] = "mutated"
	if table.Plugins()[0] != "daisyui" {
		t.Error("mutating Plugins() copy leaked into table")
	}

	if Default() != table {
		t.Error("Default() returned a different table instance")
	}
}

func TestDefaultConcurrentReads(t *testing.T) {
	t.Parallel()

	table := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range table.Entries() {
				if _, err := table.Lookup(e.Source); err != nil {
					t.Errorf("Lookup(%q): %v", e.Source, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestNamespace(t *testing.T) {
	t.Parallel()

	table := Default()
	if table.SourcePrefix() != "--ion-" {
		t.Errorf("SourcePrefix() = %q", table.SourcePrefix())
	}
	if !table.InNamespace("--ion-color-primary-rgb") {
		t.Error("unmapped --ion- variable should still be in namespace")
	}
	if table.InNamespace("--primary") {
		t.Error("--primary should not be in the source namespace")
	}
	if !table.Has("--ion-color-light") || table.Has("--ion-color-light-tint") {
		t.Error("Has() disagrees with table contents")
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prefix  string
		entries []Entry
		plugins []string
		wantErr error
	}{
		{
			name:    "valid",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--ion-a", Target: "a"}, {Source: "--ion-b", Target: "--b"}},
			plugins: []string{"daisyui"},
		},
		{
			name:    "duplicate source",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--ion-a", Target: "a"}, {Source: "--ion-a", Target: "b"}},
			plugins: []string{"daisyui"},
			wantErr: ErrDuplicateVariable,
		},
		{
			name:    "source outside prefix",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--md-a", Target: "a"}},
			plugins: []string{"daisyui"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "source without dashes",
			entries: []Entry{{Source: "color", Target: "a"}},
			plugins: []string{"daisyui"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "uppercase target",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--ion-a", Target: "Primary"}},
			plugins: []string{"daisyui"},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "empty target",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--ion-a", Target: ""}},
			plugins: []string{"daisyui"},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "bad prefix",
			prefix:  "ion-",
			plugins: []string{"daisyui"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "no plugins",
			prefix:  "--ion-",
			entries: []Entry{{Source: "--ion-a", Target: "a"}},
			wantErr: ErrNoPlugins,
		},
		{
			name:    "blank plugin",
			prefix:  "--ion-",
			plugins: []string{" "},
			wantErr: ErrInvalidData,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			table, err := New(tt.prefix, tt.entries, tt.plugins)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if table.Len() != len(tt.entries) {
				t.Errorf("Len() = %d, want %d", table.Len(), len(tt.entries))
			}
		})
	}
}
