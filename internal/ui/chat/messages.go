// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// TRANSCRIPT MESSAGES
// =============================================================================

// MessagesLoadedMsg delivers the chat's history, or the failure to
// fetch it. ChatID lets a model ignore results for a chat it already
// navigated away from.
type MessagesLoadedMsg struct {
	ChatID   string
	Messages []api.Message
	Err      error
}

// SendResultMsg reports the outcome of one optimistic send.
// PlaceholderID identifies the local user turn to roll back on failure;
// on success Reply is the assistant's message.
type SendResultMsg struct {
	ChatID        string
	PlaceholderID string
	Reply         api.Message
	Err           error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// BackMsg asks the app to return to the chat list.
type BackMsg struct{}
