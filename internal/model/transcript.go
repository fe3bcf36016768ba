// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"strings"

	"github.com/google/uuid"

	"github.com/morganforge/parley-tui/internal/api"
)

// localIDPrefix namespaces client-generated message IDs. Server IDs are
// bare UUIDs, so a prefixed ID can never collide with one.
const localIDPrefix = "local-"

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered message history of one open chat. Messages
// only ever append at the end; the single removal case is rolling back
// a local placeholder after a failed send.
type Transcript struct {
	messages []api.Message
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// Set replaces the history with the server's, oldest first.
func (t *Transcript) Set(messages []api.Message) {
	t.messages = append(t.messages[:0], messages...)
}

// Append adds a message at the end. A message whose ID is already
// present is dropped, so a duplicated delivery cannot double a turn.
func (t *Transcript) Append(msg api.Message) {
	for _, m := range t.messages {
		if m.ID == msg.ID {
			return
		}
	}
	t.messages = append(t.messages, msg)
}

// RemoveByID deletes the message with the given ID, if present.
func (t *Transcript) RemoveByID(id string) {
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages = append(t.messages[:i], t.messages[i+1:]...)
			return
		}
	}
}

// Messages returns the history oldest-first. The returned slice is the
// internal one; callers must not mutate it.
func (t *Transcript) Messages() []api.Message {
	return t.messages
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// IsEmpty reports whether the transcript has no messages.
func (t *Transcript) IsEmpty() bool {
	return len(t.messages) == 0
}

// Last returns the most recent message, or false when empty.
func (t *Transcript) Last() (api.Message, bool) {
	if len(t.messages) == 0 {
		return api.Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// =============================================================================
// LOCAL PLACEHOLDER MESSAGES
// =============================================================================

// NewLocalUserMessage builds the user's turn for immediate display
// while the send request is in flight. The server never echoes the user
// turn back, so on success this message simply stays.
func NewLocalUserMessage(chatID, content string) api.Message {
	return api.Message{
		ID:        localIDPrefix + uuid.NewString(),
		ChatID:    chatID,
		Role:      api.RoleUser,
		Content:   content,
		CreatedAt: api.Now(),
	}
}

// IsLocalID reports whether the message ID was generated client-side.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}
