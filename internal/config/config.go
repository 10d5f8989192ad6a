// Package config loads the zelkova.toml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the full Zelkova configuration
type Config struct {
	Theme   string        `toml:"theme"`
	Toast   ToastConfig   `toml:"toast"`
	Sidebar SidebarConfig `toml:"sidebar"`
}

// ToastConfig contains toast presentation settings
type ToastConfig struct {
	DurationMs int `toml:"duration_ms"`
	MaxWidth   int `toml:"max_width"`
	MaxLines   int `toml:"max_lines"`
}

// Duration returns the auto-hide duration.
func (t ToastConfig) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// SidebarConfig contains sidebar settings
type SidebarConfig struct {
	StartOpen bool `toml:"start_open"`
	Width     int  `toml:"width"`
}

// DefaultConfig returns a Config with sensible defaults. Toasts hide
// after four seconds and clamp to three lines.
func DefaultConfig() *Config {
	return &Config{
		Theme: "dark",
		Toast: ToastConfig{
			DurationMs: 4000,
			MaxWidth:   40,
			MaxLines:   3,
		},
		Sidebar: SidebarConfig{
			StartOpen: true,
			Width:     24,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "zelkova.toml"
	}
	return filepath.Join(home, ".config", "zelkova.toml")
}

// Load reads the config file at path. A missing file yields the
// defaults without error; a malformed file is an error. Out-of-range
// values are normalized to their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps out-of-range values back to their defaults.
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.Toast.DurationMs <= 0 {
		c.Toast.DurationMs = def.Toast.DurationMs
	}
	if c.Toast.MaxWidth < 10 {
		c.Toast.MaxWidth = def.Toast.MaxWidth
	}
	if c.Toast.MaxLines < 1 {
		c.Toast.MaxLines = def.Toast.MaxLines
	}
	if c.Sidebar.Width < 10 {
		c.Sidebar.Width = def.Sidebar.Width
	}
}
