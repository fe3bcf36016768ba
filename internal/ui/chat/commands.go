// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// TRANSCRIPT COMMANDS
// =============================================================================

// LoadMessagesCmd fetches the chat's history, oldest first.
func LoadMessagesCmd(client *api.Client, chatID string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := client.ListMessages(context.Background(), chatID)
		return MessagesLoadedMsg{ChatID: chatID, Messages: msgs, Err: err}
	}
}

// SendMessageCmd posts the user's turn and waits for the assistant
// reply. The response covers only the reply; the caller already holds
// the user turn as a local placeholder.
func SendMessageCmd(client *api.Client, chatID, placeholderID, content string) tea.Cmd {
	return func() tea.Msg {
		reply, err := client.SendMessage(context.Background(), chatID, content)
		if err != nil {
			return SendResultMsg{ChatID: chatID, PlaceholderID: placeholderID, Err: err}
		}
		return SendResultMsg{ChatID: chatID, PlaceholderID: placeholderID, Reply: *reply}
	}
}
