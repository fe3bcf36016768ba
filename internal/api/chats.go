// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the REST client for the Parley chat service.
package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListChats fetches the full conversation list for the current user.
func (c *Client) ListChats(ctx context.Context) ([]Chat, error) {
	var chats []Chat
	if err := c.do(ctx, http.MethodGet, "/chats", nil, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// CreateChat creates a new conversation. Title may be empty, in which
// case the server stores a null title.
func (c *Client) CreateChat(ctx context.Context, title string) (*Chat, error) {
	var chat Chat
	if err := c.do(ctx, http.MethodPost, "/chats", createChatRequest{Title: title}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// RenameChat updates a conversation's title and returns the
// server-confirmed record.
func (c *Client) RenameChat(ctx context.Context, chatID, title string) (*Chat, error) {
	var chat Chat
	if err := c.do(ctx, http.MethodPatch, "/chats/"+url.PathEscape(chatID), renameChatRequest{Title: title}, &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// DeleteChat removes a conversation. The server answers 204 with no
// body on success.
func (c *Client) DeleteChat(ctx context.Context, chatID string) error {
	return c.do(ctx, http.MethodDelete, "/chats/"+url.PathEscape(chatID), nil, nil)
}
