// Package cli provides the Cobra command tree and dependency injection
// wiring for the themeport CLI. This file defines the Dependencies struct
// (Composition Root) that wires all domain modules together.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/modu-ai/themeport/internal/config"
	"github.com/modu-ai/themeport/internal/render"
	"github.com/modu-ai/themeport/internal/tokenmap"
	"github.com/modu-ai/themeport/internal/ui"
)

// Dependencies holds all domain-level services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Config   *config.ConfigManager
	Tokens   *tokenmap.Table
	Renderer render.Renderer
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
	Logger   *slog.Logger
	// LogOutput receives log records. Defaults to os.Stderr.
	LogOutput io.Writer
}

// RuntimeOptions carries the global flag values that adjust the loaded configuration.
type RuntimeOptions struct {
	Verbose bool
	NoColor bool
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all domain dependencies.
// It should be called once during application startup. Config and the
// logger are finalised by EnsureConfig once the project root is known.
func InitDependencies() {
	deps = &Dependencies{
		Config:    config.NewConfigManager(),
		Tokens:    tokenmap.Default(),
		Renderer:  render.Builtin(),
		Theme:     ui.NewTheme(false),
		Headless:  ui.NewHeadlessManager(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		LogOutput: os.Stderr,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureConfig loads the project configuration and applies it to the
// logger, the colour theme and the token table. Subsequent calls for the
// same root are no-ops.
func (d *Dependencies) EnsureConfig(projectRoot string, opts RuntimeOptions) error {
	if cfg := d.Config.Get(); cfg != nil && d.Config.Root() == projectRoot {
		return nil
	}

	// Log config discovery at the requested verbosity before the file is read.
	d.ConfigureLogging(config.NewDefaultSystemConfig(), opts)

	cfg, err := d.Config.Load(projectRoot)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	d.ConfigureLogging(cfg.System, opts)

	if path := cfg.Sources.ResolveTokenMap(projectRoot); path != "" {
		table, err := tokenmap.LoadFile(path)
		if err != nil {
			return fmt.Errorf("load token map: %w", err)
		}
		d.Logger.Debug("using external token map", "path", path, "entries", table.Len())
		d.Tokens = table
	}
	return nil
}

// ConfigureLogging rebuilds the logger and colour settings from sys.
// The logger also becomes the slog default so library packages share it.
func (d *Dependencies) ConfigureLogging(sys config.SystemConfig, opts RuntimeOptions) {
	level := parseLevel(sys.LogLevel)
	if opts.Verbose {
		level = slog.LevelDebug
	}

	w := d.LogOutput
	if w == nil {
		w = os.Stderr
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if sys.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	d.Logger = slog.New(handler)
	slog.SetDefault(d.Logger)

	d.Theme.NoColor = opts.NoColor || sys.NoColor
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return level
}
