package tokenmap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	data := `
source_prefix: "--ion-"
plugins: [daisyui, typography]
groups:
  - name: brand
    variables:
      "--ion-color-brand": brand
      "--ion-color-brand-shade": brand-focus
  - name: surface
    variables:
      "--ion-card-background": "--card-bg"
`
	table, err := Load(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if table.Len() != 3 {
		t.Errorf("Len() = %d, want 3", table.Len())
	}
	if got, _ := table.Get("--ion-card-background"); got != "--card-bg" {
		t.Errorf("card background = %q, want --card-bg", got)
	}

	entries := table.Entries()
	if entries[1].Source != "--ion-color-brand-shade" || entries[1].Group != "brand" {
		t.Errorf("entries[1] = %+v", entries[1])
	}
	if plugins := table.Plugins(); len(plugins) != 2 || plugins[1] != "typography" {
		t.Errorf("Plugins() = %v", plugins)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{
			name:    "empty",
			data:    "",
			wantErr: ErrInvalidData,
		},
		{
			name:    "syntax",
			data:    "groups: [",
			wantErr: ErrInvalidData,
		},
		{
			name:    "unknown field",
			data:    "plugins: [daisyui]\nthemes: []\n",
			wantErr: ErrInvalidData,
		},
		{
			name: "duplicate across groups",
			data: `
source_prefix: "--ion-"
plugins: [daisyui]
groups:
  - name: a
    variables:
      "--ion-x": x
  - name: b
    variables:
      "--ion-x": y
`,
			wantErr: ErrDuplicateVariable,
		},
		{
			name: "duplicate within group",
			data: `
source_prefix: "--ion-"
plugins: [daisyui]
groups:
  - name: a
    variables:
      "--ion-x": x
      "--ion-x": y
`,
			wantErr: ErrDuplicateVariable,
		},
		{
			name: "variables not a mapping",
			data: `
plugins: [daisyui]
groups:
  - name: a
    variables: ["--ion-x"]
`,
			wantErr: ErrInvalidData,
		},
		{
			name: "nested value",
			data: `
plugins: [daisyui]
groups:
  - name: a
    variables:
      "--ion-x": {light: x}
`,
			wantErr: ErrInvalidData,
		},
		{
			name: "unnamed group",
			data: `
plugins: [daisyui]
groups:
  - variables:
      "--ion-x": x
`,
			wantErr: ErrInvalidData,
		},
		{
			name: "missing plugins",
			data: `
groups:
  - name: a
    variables:
      "--ion-x": x
`,
			wantErr: ErrNoPlugins,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(strings.NewReader(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "tokens.yaml")
	if err := os.WriteFile(path, defaultData, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if table.Len() != Default().Len() {
		t.Errorf("Len() = %d, want %d", table.Len(), Default().Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadFile() error = %v, want os.ErrNotExist", err)
	}
}
