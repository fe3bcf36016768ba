// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the REST client for the Parley chat service.
package api

import (
	"context"
	"net/http"
	"net/url"
)

// ListMessages fetches the full message history for a conversation in
// chronological order.
func (c *Client) ListMessages(ctx context.Context, chatID string) ([]Message, error) {
	var msgs []Message
	if err := c.do(ctx, http.MethodGet, "/chats/"+url.PathEscape(chatID)+"/messages", nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// SendMessage posts a user message to a conversation. The server
// persists the user turn and responds with the assistant's reply; the
// user's own message is never echoed back, which is why the caller
// keeps its optimistic placeholder as the permanent record of that turn.
func (c *Client) SendMessage(ctx context.Context, chatID, content string) (*Message, error) {
	var reply Message
	if err := c.do(ctx, http.MethodPost, "/chats/"+url.PathEscape(chatID)+"/messages", sendMessageRequest{Content: content}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
