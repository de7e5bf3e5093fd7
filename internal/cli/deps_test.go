package cli

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/tokenmap"
)

func TestInitDependencies(t *testing.T) {
	prev := deps
	t.Cleanup(func() { SetDeps(prev) })

	InitDependencies()
	d := GetDeps()
	if d == nil {
		t.Fatal("GetDeps() = nil after InitDependencies")
	}
	if d.Config == nil || d.Renderer == nil || d.Theme == nil || d.Headless == nil || d.Logger == nil {
		t.Errorf("InitDependencies left a dependency unset: %+v", d)
	}
	if d.Tokens != tokenmap.Default() {
		t.Error("Tokens should default to the built-in table")
	}
}

func TestEnsureConfig_Idempotent(t *testing.T) {
	d, root := setupCLI(t)

	if err := d.EnsureConfig(root, RuntimeOptions{}); err != nil {
		t.Fatalf("EnsureConfig error: %v", err)
	}
	first := d.Config.Get()
	if err := d.EnsureConfig(root, RuntimeOptions{}); err != nil {
		t.Fatalf("EnsureConfig error: %v", err)
	}
	if d.Config.Get() != first {
		t.Error("second EnsureConfig for the same root should not reload")
	}
}

func TestConfigureLogging(t *testing.T) {
	tests := []struct {
		name      string
		sys       config.SystemConfig
		opts      RuntimeOptions
		wantDebug bool
		wantJSON  bool
		noColor   bool
	}{
		{"defaults", config.NewDefaultSystemConfig(), RuntimeOptions{}, false, false, false},
		{"verbose", config.NewDefaultSystemConfig(), RuntimeOptions{Verbose: true}, true, false, false},
		{"json_debug", config.SystemConfig{LogLevel: "debug", LogFormat: "json"}, RuntimeOptions{}, true, true, false},
		{"no_color_flag", config.NewDefaultSystemConfig(), RuntimeOptions{NoColor: true}, false, false, true},
		{"no_color_config", config.SystemConfig{LogLevel: "warn", LogFormat: "text", NoColor: true}, RuntimeOptions{}, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := setupCLI(t)
			d.Theme.NoColor = false
			var buf bytes.Buffer
			d.LogOutput = &buf

			d.ConfigureLogging(tt.sys, tt.opts)

			if got := d.Logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("debug enabled = %v, want %v", got, tt.wantDebug)
			}
			if slog.Default() != d.Logger {
				t.Error("logger should become the slog default")
			}
			d.Logger.Warn("probe")
			if got := strings.HasPrefix(buf.String(), "{"); got != tt.wantJSON {
				t.Errorf("json output = %v, want %v: %q", got, tt.wantJSON, buf.String())
			}
			if d.Theme.NoColor != tt.noColor {
				t.Errorf("NoColor = %v, want %v", d.Theme.NoColor, tt.noColor)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
