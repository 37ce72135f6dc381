package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/host"
	"github.com/zhubert/dock/internal/panel"
	"github.com/zhubert/dock/internal/provider"
	"github.com/zhubert/dock/internal/width"
)

const configFileName = "config.json"

// Config holds the application configuration
type Config struct {
	Width           width.Spec    `json:"width"`                      // Preferred panel width: columns or "N%"
	MinWidth        width.Spec    `json:"min_width"`                  // Lower bound for the panel width
	MaxWidth        width.Spec    `json:"max_width"`                  // Upper bound for the panel width
	Position        host.Position `json:"position"`                   // Frame edge the panel attaches to
	Locked          bool          `json:"locked"`                     // Fixed-size, non-cycling panel with recomputed width
	DefaultProvider string        `json:"default_provider,omitempty"` // Provider name used without prompting
	NotifyErrors    bool          `json:"notify_errors,omitempty"`    // Desktop notifications for command errors

	providers []provider.Config

	mu       sync.RWMutex
	dir      string
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dock"), nil
}

// Defaults returns a config with the built-in settings and providers.
func Defaults() *Config {
	return &Config{
		Width:     width.MustParse(90),
		MinWidth:  width.MustParse(40),
		MaxWidth:  width.MustParse("50%"),
		Position:  host.Right,
		providers: DefaultProviders(),
	}
}

// Load reads the config from ~/.dock, or returns defaults if it doesn't exist
func Load() (*Config, error) {
	dir, err := configDir()
	if err != nil {
		return nil, errors.ConfigLoadFailed("~/.dock", err)
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.json and providers.yaml from dir. Missing files
// leave the defaults in place.
func LoadFrom(dir string) (*Config, error) {
	cfg := Defaults()
	cfg.dir = dir
	cfg.filePath = filepath.Join(dir, configFileName)

	data, err := os.ReadFile(cfg.filePath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.ConfigLoadFailed(cfg.filePath, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.ConfigLoadFailed(cfg.filePath, err)
		}
	}

	providers, err := LoadProviders(dir)
	if err != nil {
		return nil, err
	}
	if providers != nil {
		cfg.providers = providers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, spec := range map[string]width.Spec{"width": c.Width, "min_width": c.MinWidth, "max_width": c.MaxWidth} {
		if spec.IsZero() {
			return errors.ConfigInvalid(fmt.Sprintf("%s is not set", name))
		}
	}

	if !c.Position.Valid() {
		return errors.ConfigInvalid(fmt.Sprintf("position must be left or right, got %q", c.Position))
	}

	seen := make(map[string]bool)
	for _, p := range c.providers {
		if p.Name == "" {
			return errors.ConfigInvalid("provider with empty name found")
		}
		if seen[p.Name] {
			return errors.ConfigInvalid(fmt.Sprintf("duplicate provider: %s", p.Name))
		}
		seen[p.Name] = true
	}

	if c.DefaultProvider != "" && !seen[c.DefaultProvider] {
		return errors.ConfigInvalid(fmt.Sprintf("default provider %q is not configured", c.DefaultProvider))
	}
	return nil
}

// Save writes the settings to disk. The file is replaced atomically.
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.filePath == "" {
		return errors.ConfigSaveFailed("", fmt.Errorf("config has no file path"))
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}

	tmp, err := os.CreateTemp(c.dir, configFileName+".*.tmp")
	if err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.Rename(tmp.Name(), c.filePath); err != nil {
		return errors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the settings file location.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dir
}

// PanelLayout implements panel.Settings.
func (c *Config) PanelLayout() panel.Layout {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return panel.Layout{
		Width:    c.Width,
		MinWidth: c.MinWidth,
		MaxWidth: c.MaxWidth,
		Position: c.Position,
		Locked:   c.Locked,
	}
}

// IsLocked returns whether lock mode is on
func (c *Config) IsLocked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Locked
}

// SetLocked sets lock mode
func (c *Config) SetLocked(locked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Locked = locked
}

// ToggleLocked flips lock mode and returns the new value.
func (c *Config) ToggleLocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Locked = !c.Locked
	return c.Locked
}

// GetNotifyErrors returns whether errors raise desktop notifications
func (c *Config) GetNotifyErrors() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotifyErrors
}

// SetNotifyErrors sets whether errors raise desktop notifications
func (c *Config) SetNotifyErrors(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotifyErrors = enabled
}

// SetWidths replaces the three width specs.
func (c *Config) SetWidths(configured, minimum, maximum width.Spec) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Width, c.MinWidth, c.MaxWidth = configured, minimum, maximum
}

// Providers returns a copy of the configured providers.
func (c *Config) Providers() []provider.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]provider.Config, len(c.providers))
	for i, p := range c.providers {
		out[i] = p.Clone()
	}
	return out
}

// SetProviders replaces the configured providers.
func (c *Config) SetProviders(providers []provider.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.providers = providers
}

// Selector builds a provider selector using chooser for interactive picks.
func (c *Config) Selector(chooser provider.Chooser) (*provider.Selector, error) {
	available := c.Providers()

	c.mu.RLock()
	name := c.DefaultProvider
	c.mu.RUnlock()

	sel := &provider.Selector{Available: available, Chooser: chooser}
	if name != "" {
		def, err := provider.Lookup(available, name)
		if err != nil {
			return nil, err
		}
		sel.Default = &def
	}
	return sel, nil
}

var _ panel.Settings = (*Config)(nil)
