// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("loadFrom with missing file: %v", err)
	}
	if cfg.Server.URL != "http://localhost:8000" {
		t.Errorf("default server url = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 60 {
		t.Errorf("default timeout = %d", cfg.Server.TimeoutSecs)
	}
	if !cfg.UI.RenderMarkdown {
		t.Error("markdown rendering should default on")
	}
}

func TestFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
url = "https://chat.example.com"
timeout_secs = 30

[ui]
show_timestamps = false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.Server.URL != "https://chat.example.com" {
		t.Errorf("server url = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("timeout = %d", cfg.Server.TimeoutSecs)
	}
	if cfg.UI.ShowTimestamps {
		t.Error("show_timestamps should be off")
	}
	// Untouched keys keep their defaults.
	if !cfg.UI.RenderMarkdown {
		t.Error("render_markdown should keep its default")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nurl = \"http://from-file\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvServerURL, "http://from-env:9000")
	cfg, err := loadFrom(path)
	if err != nil {
		t.Fatalf("loadFrom: %v", err)
	}
	if cfg.Server.URL != "http://from-env:9000" {
		t.Errorf("server url = %q, want env value", cfg.Server.URL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.Server.URL = "" }},
		{"no scheme", func(c *Config) { c.Server.URL = "localhost:8000" }},
		{"bad scheme", func(c *Config) { c.Server.URL = "ftp://x" }},
		{"zero timeout", func(c *Config) { c.Server.TimeoutSecs = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigDirEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigDir, "/tmp/parley-test")
	if Dir() != "/tmp/parley-test" {
		t.Errorf("Dir() = %q", Dir())
	}
	if TokenPath() != filepath.Join("/tmp/parley-test", "token") {
		t.Errorf("TokenPath() = %q", TokenPath())
	}
}
