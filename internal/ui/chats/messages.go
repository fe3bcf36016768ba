// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chats

import (
	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// LIST MESSAGES
// =============================================================================

// ChatsLoadedMsg delivers the chat list, or the failure to fetch it.
type ChatsLoadedMsg struct {
	Chats []api.Chat
	Err   error
}

// ChatCreatedMsg reports the outcome of creating a chat.
type ChatCreatedMsg struct {
	Chat api.Chat
	Err  error
}

// ChatRenamedMsg reports the outcome of a rename. ID is always set so a
// failure can be routed back to the row that was saving.
type ChatRenamedMsg struct {
	ID   string
	Chat api.Chat
	Err  error
}

// ChatDeletedMsg reports the outcome of a delete.
type ChatDeletedMsg struct {
	ID  string
	Err error
}

// =============================================================================
// NAVIGATION MESSAGES
// =============================================================================

// OpenChatMsg asks the app to switch to the transcript of this chat.
type OpenChatMsg struct {
	Chat api.Chat
}

// LogoutMsg asks the app to end the session and return to the login
// screen.
type LogoutMsg struct{}
