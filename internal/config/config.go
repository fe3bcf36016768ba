// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the parley TUI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Environment variable overrides. These win over the config file.
const (
	EnvServerURL = "PARLEY_SERVER_URL"
	EnvConfigDir = "PARLEY_CONFIG_DIR"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete parley client configuration.
type Config struct {
	// Server settings
	Server ServerConfig `toml:"server"`

	// UI settings
	UI UIConfig `toml:"ui"`
}

// ServerConfig contains the chat service connection settings.
type ServerConfig struct {
	// URL is the base URL of the Parley service, without trailing slash.
	URL string `toml:"url"`
	// TimeoutSecs is the per-request timeout in seconds. The send
	// endpoint waits on assistant generation, so keep this generous.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains display preferences.
type UIConfig struct {
	// ShowTimestamps renders a created-at line under each message.
	ShowTimestamps bool `toml:"show_timestamps"`
	// RenderMarkdown formats assistant replies with glamour. Disable
	// for plain text on terminals with poor ANSI support.
	RenderMarkdown bool `toml:"render_markdown"`
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			URL:         "http://localhost:8000",
			TimeoutSecs: 60,
		},
		UI: UIConfig{
			ShowTimestamps: true,
			RenderMarkdown: true,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Dir returns the parley config directory, creating nothing.
// PARLEY_CONFIG_DIR overrides the default ~/.parley.
func Dir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".parley"
	}
	return filepath.Join(home, ".parley")
}

// Path returns the config file path inside Dir.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// TokenPath returns the durable credential file path inside Dir.
func TokenPath() string {
	return filepath.Join(Dir(), "token")
}

// LogPath returns the debug log file path inside Dir. Logging goes to a
// file because stderr belongs to the TUI.
func LogPath() string {
	return filepath.Join(Dir(), "parley.log")
}

// Load reads the config file, applies environment overrides, and
// validates the result. A missing file yields the defaults.
func Load() (*Config, error) {
	return loadFrom(Path())
}

// loadFrom is Load with an explicit path, for tests.
func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if u := os.Getenv(EnvServerURL); u != "" {
		cfg.Server.URL = u
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values that would only fail
// later and more confusingly.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.url %q is not a valid http(s) URL", c.Server.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server.url scheme %q is not supported", u.Scheme)
	}
	if c.Server.TimeoutSecs <= 0 {
		return fmt.Errorf("server.timeout_secs must be positive, got %d", c.Server.TimeoutSecs)
	}
	return nil
}
