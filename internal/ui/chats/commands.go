// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chats

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// LIST COMMANDS
// =============================================================================

// LoadChatsCmd fetches the user's chats.
func LoadChatsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		chats, err := client.ListChats(context.Background())
		return ChatsLoadedMsg{Chats: chats, Err: err}
	}
}

// CreateChatCmd creates a chat with the given title.
func CreateChatCmd(client *api.Client, title string) tea.Cmd {
	return func() tea.Msg {
		chat, err := client.CreateChat(context.Background(), title)
		if err != nil {
			return ChatCreatedMsg{Err: err}
		}
		return ChatCreatedMsg{Chat: *chat}
	}
}

// RenameChatCmd saves a new title for the chat.
func RenameChatCmd(client *api.Client, chatID, title string) tea.Cmd {
	return func() tea.Msg {
		chat, err := client.RenameChat(context.Background(), chatID, title)
		if err != nil {
			return ChatRenamedMsg{ID: chatID, Err: err}
		}
		return ChatRenamedMsg{ID: chatID, Chat: *chat}
	}
}

// DeleteChatCmd deletes the chat.
func DeleteChatCmd(client *api.Client, chatID string) tea.Cmd {
	return func() tea.Msg {
		return ChatDeletedMsg{ID: chatID, Err: client.DeleteChat(context.Background(), chatID)}
	}
}
