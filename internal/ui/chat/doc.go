// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the transcript screen for one open
// conversation: message history, the composer, and the optimistic send
// protocol.
//
// Send is optimistic: the user's turn is appended immediately under a
// client-generated id and the request runs in the background. The
// server never echoes the user turn back, so on success the placeholder
// simply stays and only the assistant reply is appended; on failure the
// placeholder is rolled back and the error shown. One send may be in
// flight per chat at a time.
package chat
