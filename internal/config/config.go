package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/dock/internal/errors"
)

// Store kinds
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Defaults
const (
	DefaultStore      = StoreFile
	DefaultTheme      = "dark"
	DefaultCellWidth  = 8
	DefaultCellHeight = 16

	fileStoreName   = "layout.json"
	sqliteStoreName = "layout.db"
)

// StoreConfig selects the geometry backend.
type StoreConfig struct {
	Kind string `yaml:"kind"`
	// Path is the file or database path. Empty means the default under the
	// config directory for Kind.
	Path string `yaml:"path,omitempty"`
	// Watch reloads the layout when the file store is edited externally.
	Watch *bool `yaml:"watch,omitempty"`
}

// CellConfig is the pixel size of one terminal cell.
type CellConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config holds the application configuration
type Config struct {
	Store StoreConfig `yaml:"store"`
	Cell  CellConfig  `yaml:"cell"`
	Theme string      `yaml:"theme,omitempty"`
	Debug bool        `yaml:"debug,omitempty"`

	mu       sync.RWMutex
	filePath string
	dir      string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dock"), nil
}

// DefaultPath returns the default config file path
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns a config with every default applied, rooted at dir.
func Default(dir string) *Config {
	cfg := &Config{dir: dir, filePath: filepath.Join(dir, "config.yaml")}
	cfg.ensureInitialized()
	return cfg
}

// Load reads the config from the default path, or returns defaults if it
// doesn't exist
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.dock/config.yaml", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path, dir: filepath.Dir(path)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.ensureInitialized()
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigLoadFailed(path, err)
	}

	cfg.ensureInitialized()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ensureInitialized fills every unset field with its default. It must only
// be called before the Config is shared.
func (c *Config) ensureInitialized() {
	if c.Store.Kind == "" {
		c.Store.Kind = DefaultStore
	}
	if c.Store.Watch == nil {
		watch := true
		c.Store.Watch = &watch
	}
	if c.Cell.Width == 0 {
		c.Cell.Width = DefaultCellWidth
	}
	if c.Cell.Height == 0 {
		c.Cell.Height = DefaultCellHeight
	}
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.Store.Kind {
	case StoreFile, StoreSQLite, StoreMemory:
	default:
		return errors.ConfigInvalid("unknown store kind: " + c.Store.Kind)
	}
	if c.Cell.Width <= 0 || c.Cell.Height <= 0 {
		return errors.ConfigInvalid("cell size must be positive")
	}
	return nil
}

// Save writes the config to its file
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.filePath
}

// StoreKind returns the configured backend kind
func (c *Config) StoreKind() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Store.Kind
}

// SetStoreKind overrides the backend kind
func (c *Config) SetStoreKind(kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Store.Kind = kind
}

// StorePath returns the backend path, resolving the default for the kind.
// The memory store has no path.
func (c *Config) StorePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Store.Path != "" {
		return c.Store.Path
	}
	switch c.Store.Kind {
	case StoreSQLite:
		return filepath.Join(c.dir, sqliteStoreName)
	case StoreFile:
		return filepath.Join(c.dir, fileStoreName)
	}
	return ""
}

// SetStorePath overrides the backend path
func (c *Config) SetStorePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Store.Path = path
}

// WatchStore reports whether external edits to the file store are followed
func (c *Config) WatchStore() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Store.Watch == nil || *c.Store.Watch
}

// SetWatchStore enables or disables following external edits
func (c *Config) SetWatchStore(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Store.Watch = &enabled
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// CellSize returns the pixel size of one terminal cell
func (c *Config) CellSize() (width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Cell.Width, c.Cell.Height
}
