package config

import (
	"path/filepath"

	"github.com/modu-ai/themeport/internal/defs"
)

// Output formats.
const (
	FormatCSS      = "css"
	FormatTailwind = "tailwind"
)

// Default value constants to avoid magic numbers and strings.
const (
	DefaultFormat    = FormatCSS
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultContent   = "./src/**/*.{js,jsx,ts,tsx}"
)

// NewDefaultConfig returns a Config with all fields set to compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Sources: NewDefaultSourcesConfig(),
		Output:  NewDefaultOutputConfig(),
		System:  NewDefaultSystemConfig(),
	}
}

// NewDefaultSourcesConfig returns the four Ionic theme stylesheets.
func NewDefaultSourcesConfig() SourcesConfig {
	return SourcesConfig{
		BaseDir: defs.StylesDir,
		Themes: []ThemeSource{
			{Name: defs.ThemeLight, Selector: defs.Root, Path: defs.RootPath},
			{Name: defs.ThemeDark, Selector: defs.BodyDark, Path: defs.DarkCSSPath},
			{Name: defs.ThemeDarkIOS, Selector: defs.BodyDarkIOS, Path: defs.DarkIOSCSSPath},
			{Name: defs.ThemeDarkMD, Selector: defs.BodyDarkMD, Path: defs.DarkMDCSSPath},
		},
	}
}

// NewDefaultOutputConfig returns an OutputConfig with default values.
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{
		Format:  DefaultFormat,
		Content: []string{DefaultContent},
	}
}

// NewDefaultSystemConfig returns a SystemConfig with default values.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// ResolvePath returns the output file for the configured format,
// relative to projectRoot unless Path is absolute.
func (o OutputConfig) ResolvePath(projectRoot string) string {
	path := o.Path
	if path == "" {
		path = DefaultOutputPath(o.Format)
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(projectRoot, path)
}

// DefaultOutputPath returns the conventional file name for format.
func DefaultOutputPath(format string) string {
	if format == FormatTailwind {
		return defs.TailwindConfigJS
	}
	return defs.DefaultCSS
}

// ResolveTheme returns the absolute location of a theme stylesheet.
// Paths are anchored to BaseDir inside projectRoot.
func (s SourcesConfig) ResolveTheme(projectRoot string, t ThemeSource) string {
	if filepath.IsAbs(t.Path) {
		return filepath.Clean(t.Path)
	}
	return filepath.Join(projectRoot, s.BaseDir, t.Path)
}

// ResolveTokenMap returns the token map data file, or "" for the built-in table.
func (s SourcesConfig) ResolveTokenMap(projectRoot string) string {
	if s.TokenMap == "" {
		return ""
	}
	if filepath.IsAbs(s.TokenMap) {
		return filepath.Clean(s.TokenMap)
	}
	return filepath.Join(projectRoot, s.TokenMap)
}
