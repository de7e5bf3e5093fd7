package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/themeport/internal/defs"
)

// Loader reads configuration from YAML section files.
// It is thread-safe via sync.RWMutex.
type Loader struct {
	mu             sync.RWMutex
	loadedSections map[string]bool
}

// NewLoader creates a new Loader instance.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all configuration section files from the given config directory
// and returns a merged Config with defaults applied for missing fields.
// Missing files use default values. Invalid YAML files are skipped with a warning.
func (l *Loader) Load(configDir string) (*Config, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.loadedSections = make(map[string]bool)
	cfg := NewDefaultConfig()

	sectionsDir := filepath.Join(filepath.Clean(configDir), defs.SectionsSubdir)

	if _, err := os.Stat(sectionsDir); os.IsNotExist(err) {
		slog.Debug("config sections directory not found, using defaults", "path", sectionsDir)
		return cfg, nil
	}

	l.loadSourcesSection(sectionsDir, cfg)
	l.loadOutputSection(sectionsDir, cfg)
	l.loadSystemSection(sectionsDir, cfg)

	return cfg, nil
}

// LoadedSections returns a copy of the map indicating which sections
// were successfully loaded from YAML files.
func (l *Loader) LoadedSections() map[string]bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	result := make(map[string]bool, len(l.loadedSections))
	maps.Copy(result, l.loadedSections)
	return result
}

// loadSourcesSection loads the theme sources from sources.yaml.
// A file that lists no themes keeps the default four.
func (l *Loader) loadSourcesSection(dir string, cfg *Config) {
	wrapper := &sourcesFileWrapper{Sources: SourcesConfig{BaseDir: cfg.Sources.BaseDir}}
	loaded, err := loadYAMLFile(dir, defs.SourcesYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load sources config, using defaults", "error", err)
		return
	}
	if loaded {
		if len(wrapper.Sources.Themes) == 0 {
			wrapper.Sources.Themes = cfg.Sources.Themes
		}
		cfg.Sources = wrapper.Sources
		l.loadedSections["sources"] = true
	}
}

// loadOutputSection loads the output configuration from output.yaml.
func (l *Loader) loadOutputSection(dir string, cfg *Config) {
	wrapper := &outputFileWrapper{Output: cfg.Output}
	loaded, err := loadYAMLFile(dir, defs.OutputYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load output config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.Output = wrapper.Output
		l.loadedSections["output"] = true
	}
}

// loadSystemSection loads the system configuration from system.yaml.
func (l *Loader) loadSystemSection(dir string, cfg *Config) {
	wrapper := &systemFileWrapper{System: cfg.System}
	loaded, err := loadYAMLFile(dir, defs.SystemYAML, wrapper)
	if err != nil {
		slog.Warn("failed to load system config, using defaults", "error", err)
		return
	}
	if loaded {
		cfg.System = wrapper.System
		l.loadedSections["system"] = true
	}
}

// loadYAMLFile reads a YAML file from the given directory and unmarshals it
// into the target struct. Returns (true, nil) if the file was found and parsed,
// (false, nil) if the file does not exist, or (false, error) on failure.
func loadYAMLFile(dir, filename string, target any) (bool, error) {
	path := filepath.Join(dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("parse %s: %w", filename, ErrInvalidYAML)
	}

	return true, nil
}
