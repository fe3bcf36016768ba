// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for the parley TUI.
//
// Configuration is read once at startup from ~/.parley/config.toml,
// with environment variable overrides and built-in defaults. There is
// no hot reload; changing the server URL means restarting the client.
package config
