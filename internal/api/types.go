// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api implements the REST client for the Parley chat service.
//
// This file defines the wire types shared with the server. Field names
// match the service's JSON contract exactly.
package api

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// ROLES
// =============================================================================

// Message roles as used on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Chat is a conversation record as stored by the server.
// Title is a pointer because the server distinguishes "no title yet"
// (null) from an empty string; the placeholder label shown for a null
// title is a display concern and is never written back.
type Chat struct {
	ID        string    `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt Timestamp `json:"created_at"`
}

// Message is a single turn in a conversation. The ID is server-assigned
// except for in-flight optimistic placeholders, which carry a client
// generated "local-" id (see the model package).
type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt Timestamp `json:"created_at"`
}

// =============================================================================
// REQUEST BODIES
// =============================================================================

// Credentials is the request body for register and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createChatRequest struct {
	Title string `json:"title,omitempty"`
}

type renameChatRequest struct {
	Title string `json:"title"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// =============================================================================
// TIMESTAMPS
// =============================================================================

// Timestamp wraps time.Time with decoding that tolerates the server
// omitting the zone marker on its ISO-8601 timestamps. Naive timestamps
// are taken as UTC, matching what the server actually stores.
//
// Whether the server still emits naive timestamps in practice is an open
// question; this normalization exists so a mixed deployment cannot shift
// every displayed time by the local UTC offset.
type Timestamp struct {
	time.Time
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

// UnmarshalJSON decodes an RFC 3339 timestamp, assuming UTC when the
// value carries no zone or offset marker.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	if missingZone(s) {
		s += "Z"
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON encodes the timestamp as RFC 3339 in UTC.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// missingZone reports whether an ISO-8601 timestamp string has neither a
// trailing Z nor an explicit offset.
func missingZone(s string) bool {
	if strings.HasSuffix(s, "Z") || strings.HasSuffix(s, "z") {
		return false
	}
	// An offset looks like +07:00 or -05:30 after the time portion.
	// A '-' before the 'T' is a date separator, not an offset.
	sep := strings.IndexAny(s, "Tt ")
	if sep < 0 {
		return true
	}
	rest := s[sep+1:]
	return !strings.ContainsAny(rest, "+-")
}
