// Package config defines the tool's configuration: traversal safety
// guards and presentation defaults, with an optional YAML override file.
//
// Resolution order is defaults → file → command-line flags; the file is
// optional and a missing one silently falls back to defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Built-in guard defaults. Generous enough for any classroom graph,
// tight enough to stop a runaway input before it exhausts memory.
const (
	DefaultMaxFrontier = 1_000_000
	DefaultMaxStack    = 1_000_000
	DefaultTimeout     = 30 * time.Second
)

// Config holds the resolved tool configuration.
type Config struct {
	// MaxFrontier bounds the BFS frontier; 0 disables the guard.
	MaxFrontier int `yaml:"max_frontier"`

	// MaxStack bounds the DFS frame stack; 0 disables the guard.
	MaxStack int `yaml:"max_stack"`

	// MaxDepth bounds both traversals; 0 means unlimited.
	MaxDepth int `yaml:"max_depth"`

	// Timeout is the per-traversal context deadline; 0 disables it.
	Timeout time.Duration `yaml:"timeout"`

	// Mirrored loads CSV rows as undirected edges.
	Mirrored bool `yaml:"mirrored"`

	// Header skips the first CSV row.
	Header bool `yaml:"header"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxFrontier: DefaultMaxFrontier,
		MaxStack:    DefaultMaxStack,
		MaxDepth:    0,
		Timeout:     DefaultTimeout,
	}
}

// Load reads a YAML override file on top of the defaults.
// A missing file is not an error: defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %q: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %q: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects negative guard values.
func (c Config) Validate() error {
	if c.MaxFrontier < 0 {
		return fmt.Errorf("%w: max_frontier %d < 0", ErrInvalidConfig, c.MaxFrontier)
	}
	if c.MaxStack < 0 {
		return fmt.Errorf("%w: max_stack %d < 0", ErrInvalidConfig, c.MaxStack)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d < 0", ErrInvalidConfig, c.MaxDepth)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout %s < 0", ErrInvalidConfig, c.Timeout)
	}

	return nil
}
