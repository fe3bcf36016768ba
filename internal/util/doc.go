// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small shared helpers for the parley TUI:
// width-aware string truncation for list rendering and atomic file
// writes for the credential store.
package util
