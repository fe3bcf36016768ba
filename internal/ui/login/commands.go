// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// AUTH COMMANDS
// =============================================================================

// LoginCmd exchanges credentials for a token.
func LoginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		tok, err := client.Login(context.Background(), email, password)
		if err != nil {
			return AuthResultMsg{Err: err}
		}
		return AuthResultMsg{Token: tok.AccessToken}
	}
}

// RegisterCmd creates an account. The server logs the new account in as
// part of registration, so this also yields a token.
func RegisterCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		tok, err := client.Register(context.Background(), email, password)
		if err != nil {
			return AuthResultMsg{Err: err}
		}
		return AuthResultMsg{Token: tok.AccessToken}
	}
}
