package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/themeport/internal/defs"
	"github.com/modu-ai/themeport/internal/fsutil"
)

// ConfigManager provides thread-safe configuration management.
// It must be initialized via Load() before use.
type ConfigManager struct {
	mu             sync.RWMutex
	config         *Config
	root           string
	configDir      string
	loader         *Loader
	loadedSections map[string]bool
}

// NewConfigManager creates a new ConfigManager instance in uninitialized state.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{loader: NewLoader()}
}

// Load reads configuration from the project root's .themeport/ directory.
// It merges file values with compiled defaults and applies environment
// variable overrides. The configuration is validated before being stored.
// THEMEPORT_CONFIG_DIR replaces the configuration directory.
func (m *ConfigManager) Load(projectRoot string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	configDir := ConfigDir(projectRoot)

	cfg, err := m.loader.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	m.loadedSections = m.loader.LoadedSections()

	// Environment has higher priority than files
	applyEnvOverrides(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	m.config = cfg
	m.root = projectRoot
	m.configDir = configDir

	return cfg, nil
}

// Get returns the current in-memory configuration.
// Returns nil if the manager has not been initialized via Load().
func (m *ConfigManager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Root returns the project root passed to Load.
func (m *ConfigManager) Root() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.root
}

// LoadedSections reports which sections came from files rather than defaults.
func (m *ConfigManager) LoadedSections() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.loadedSections))
	maps.Copy(out, m.loadedSections)
	return out
}

// Update replaces the in-memory configuration after validating it.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Update(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotInitialized
	}
	if err := Validate(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Reset discards any loaded state and installs the compiled defaults for
// projectRoot without reading existing files. A following Save writes a
// fresh configuration.
func (m *ConfigManager) Reset(projectRoot string) *Config {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = NewDefaultConfig()
	m.root = projectRoot
	m.configDir = ConfigDir(projectRoot)
	m.loadedSections = make(map[string]bool)
	return m.config
}

// Save persists the current configuration to disk atomically.
// Each section is saved to its corresponding YAML file.
// Returns ErrNotInitialized if Load() has not been called.
func (m *ConfigManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return ErrNotInitialized
	}

	sectionsDir := filepath.Join(m.configDir, defs.SectionsSubdir)

	if err := saveSection(sectionsDir, defs.SourcesYAML, sourcesFileWrapper{Sources: m.config.Sources}); err != nil {
		return fmt.Errorf("save sources section: %w", err)
	}
	if err := saveSection(sectionsDir, defs.OutputYAML, outputFileWrapper{Output: m.config.Output}); err != nil {
		return fmt.Errorf("save output section: %w", err)
	}
	if err := saveSection(sectionsDir, defs.SystemYAML, systemFileWrapper{System: m.config.System}); err != nil {
		return fmt.Errorf("save system section: %w", err)
	}

	return nil
}

// ConfigDir returns the configuration directory for projectRoot,
// honouring THEMEPORT_CONFIG_DIR.
func ConfigDir(projectRoot string) string {
	if envDir := os.Getenv("THEMEPORT_CONFIG_DIR"); envDir != "" {
		return filepath.Clean(envDir)
	}
	return filepath.Join(filepath.Clean(projectRoot), defs.ConfigDir)
}

// applyEnvOverrides applies THEMEPORT_* environment variables to cfg.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("THEMEPORT_LOG_LEVEL"); level != "" {
		cfg.System.LogLevel = strings.ToLower(level)
	}
	if format := os.Getenv("THEMEPORT_LOG_FORMAT"); format != "" {
		cfg.System.LogFormat = strings.ToLower(format)
	}
	if isTruthy(os.Getenv("THEMEPORT_NO_COLOR")) {
		cfg.System.NoColor = true
	}
	if isTruthy(os.Getenv("THEMEPORT_STRICT")) {
		cfg.Output.Strict = true
	}
}

func isTruthy(v string) bool {
	return v == "true" || v == "1"
}

// saveSection marshals data to YAML and writes it atomically.
func saveSection(dir, filename string, data any) error {
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}

	return fsutil.WriteFileAtomic(filepath.Join(dir, filename), yamlData, 0o644)
}
