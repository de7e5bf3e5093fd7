package config

import "slices"

// Config is the root configuration aggregate containing all sections.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  OutputConfig  `yaml:"output"`
	System  SystemConfig  `yaml:"system"`
}

// SourcesConfig describes where the Ionic theme stylesheets live.
type SourcesConfig struct {
	// BaseDir anchors relative theme paths, relative to the project root.
	BaseDir string `yaml:"base_dir"`
	// TokenMap optionally replaces the built-in token map with a data file.
	TokenMap string        `yaml:"token_map,omitempty"`
	Themes   []ThemeSource `yaml:"themes"`
}

// ThemeSource is one stylesheet and the selector whose variables form a theme.
type ThemeSource struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	Path     string `yaml:"path"`
}

// OutputConfig controls what generate writes.
type OutputConfig struct {
	Format  string   `yaml:"format"` // "css", "tailwind"
	Path    string   `yaml:"path,omitempty"`
	Strict  bool     `yaml:"strict"`
	Content []string `yaml:"content"`
}

// SystemConfig represents the system configuration section.
type SystemConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	NoColor   bool   `yaml:"no_color"`
}

// Theme returns the source named name and whether it exists.
func (s SourcesConfig) Theme(name string) (ThemeSource, bool) {
	i := slices.IndexFunc(s.Themes, func(t ThemeSource) bool { return t.Name == name })
	if i < 0 {
		return ThemeSource{}, false
	}
	return s.Themes[i], true
}

// Section file wrapper types for YAML marshaling/unmarshaling.
// Each YAML file has a top-level key matching the section name.

type sourcesFileWrapper struct {
	Sources SourcesConfig `yaml:"sources"`
}

type outputFileWrapper struct {
	Output OutputConfig `yaml:"output"`
}

type systemFileWrapper struct {
	System SystemConfig `yaml:"system"`
}

// ValidFormats returns the output formats generate understands.
func ValidFormats() []string {
	return []string{FormatCSS, FormatTailwind}
}

// ValidLogLevels returns the accepted system.log_level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the accepted system.log_format values.
func ValidLogFormats() []string {
	return []string{"text", "json"}
}
