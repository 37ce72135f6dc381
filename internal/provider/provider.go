// Package provider resolves which agent configuration a new session uses.
//
// A Selector returns the configured default when one is set. Otherwise it
// asks a Chooser to pick among the named available configurations. A
// cancelled choice surfaces as a NoSelection error so the caller can abort
// before touching any state.
package provider

import (
	"context"
	"slices"

	"github.com/zhubert/dock/internal/errors"
	"github.com/zhubert/dock/internal/logger"
)

// UnknownLabel is shown for a provider without a display or buffer name.
const UnknownLabel = "Unknown Agent"

// Config describes one agent provider.
type Config struct {
	Name        string            `yaml:"name" json:"name"`
	DisplayName string            `yaml:"display_name,omitempty" json:"display_name,omitempty"`
	BufferName  string            `yaml:"buffer_name,omitempty" json:"buffer_name,omitempty"`
	Command     string            `yaml:"command,omitempty" json:"command,omitempty"`
	Args        []string          `yaml:"args,omitempty" json:"args,omitempty"`
	Env         map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// Label is the name shown to the user when choosing a provider.
func (c Config) Label() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	if c.BufferName != "" {
		return c.BufferName
	}
	return UnknownLabel
}

// Clone returns a deep copy so records never share slices or maps with the
// configuration they were resolved from.
func (c Config) Clone() Config {
	out := c
	out.Args = slices.Clone(c.Args)
	if c.Env != nil {
		out.Env = make(map[string]string, len(c.Env))
		for k, v := range c.Env {
			out.Env[k] = v
		}
	}
	return out
}

// Option is one entry presented to a Chooser.
type Option struct {
	Label  string
	Config Config
}

// Chooser presents options to the user and returns the index picked.
// Implementations return a NoSelection error when the user cancels.
type Chooser interface {
	Choose(ctx context.Context, prompt string, options []Option) (int, error)
}

// Options builds the labelled option list for a set of configs. Labels that
// collide keep the first config; later duplicates are dropped.
func Options(available []Config) []Option {
	seen := make(map[string]bool, len(available))
	opts := make([]Option, 0, len(available))
	for _, cfg := range available {
		label := cfg.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		opts = append(opts, Option{Label: label, Config: cfg})
	}
	return opts
}

// Selector resolves provider configurations. When exactly one provider is
// available, Select returns it without prompting.
type Selector struct {
	Default   *Config
	Available []Config
	Chooser   Chooser
}

// Select returns the default provider if one is configured. Otherwise the
// user chooses among the available providers; a single candidate is returned
// without prompting.
func (s *Selector) Select(ctx context.Context) (Config, error) {
	if s.Default != nil {
		return s.Default.Clone(), nil
	}
	return s.choose(ctx, false)
}

// Choose always asks the user, ignoring the default. Used when switching
// providers for a project.
func (s *Selector) Choose(ctx context.Context) (Config, error) {
	return s.choose(ctx, true)
}

// WouldPrompt reports whether Select (force=false) or Choose (force=true)
// needs the interactive chooser.
func (s *Selector) WouldPrompt(force bool) bool {
	if !force && s.Default != nil {
		return false
	}
	n := len(Options(s.Available))
	if n == 0 {
		return false
	}
	return force || n > 1
}

func (s *Selector) choose(ctx context.Context, force bool) (Config, error) {
	log := logger.ComponentLogger("provider")

	opts := Options(s.Available)
	switch {
	case len(opts) == 0:
		return Config{}, errors.E(errors.Op("provider.Select"), errors.KindNotFound, "no providers configured")
	case len(opts) == 1 && !force:
		log.Debug("single provider, skipping prompt", "provider", opts[0].Label)
		return opts[0].Config.Clone(), nil
	}

	if s.Chooser == nil {
		return Config{}, errors.NoSelection()
	}

	idx, err := s.Chooser.Choose(ctx, "Select agent", opts)
	if err != nil {
		log.Debug("provider choice aborted", "error", err)
		if errors.GetKind(err) == errors.KindUnknown {
			return Config{}, errors.E(errors.Op("provider.Select"), errors.KindNoSelection, err)
		}
		return Config{}, err
	}
	if idx < 0 || idx >= len(opts) {
		return Config{}, errors.NoSelection()
	}

	log.Debug("provider chosen", "provider", opts[idx].Label)
	return opts[idx].Config.Clone(), nil
}

// Lookup finds a provider by Name.
func Lookup(available []Config, name string) (Config, error) {
	for _, cfg := range available {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return Config{}, errors.ProviderNotFound(name)
}
