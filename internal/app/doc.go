// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package app is the root Bubble Tea model: it owns the session store,
// routes between the login, chat list, and transcript screens, and
// enforces the access rule that protected screens require a session.
//
// There is no navigation stack. Auth failure on any request replaces
// whatever was showing with the login screen, and logging in lands on
// the chat list.
package app
