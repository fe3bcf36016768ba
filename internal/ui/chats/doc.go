// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chats implements the conversation list screen: loading the
// user's chats, creating new ones, inline renaming, and guarded
// deletion.
//
// Rename runs as a small per-row state machine (viewing, editing,
// saving). Saving a title identical to the stored one is a pure local
// cancel with no request; a failed save drops back to editing with the
// draft intact so nothing typed is lost.
package chats
