// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"github.com/morganforge/parley-tui/internal/api"
)

// =============================================================================
// CHAT LIST
// =============================================================================

// ChatList is the in-memory collection of the user's chats, in the
// order the server returned them. All mutations keep IDs unique.
type ChatList struct {
	chats []api.Chat
}

// NewChatList returns an empty list.
func NewChatList() *ChatList {
	return &ChatList{}
}

// Set replaces the entire collection. Later duplicates of an ID are
// dropped so the rest of the UI can assume uniqueness.
func (l *ChatList) Set(chats []api.Chat) {
	seen := make(map[string]bool, len(chats))
	l.chats = l.chats[:0]
	for _, c := range chats {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		l.chats = append(l.chats, c)
	}
}

// All returns the chats in display order. The returned slice is the
// internal one; callers must not mutate it.
func (l *ChatList) All() []api.Chat {
	return l.chats
}

// Len returns the number of chats.
func (l *ChatList) Len() int {
	return len(l.chats)
}

// IsEmpty reports whether there are no chats.
func (l *ChatList) IsEmpty() bool {
	return len(l.chats) == 0
}

// Get returns the chat with the given ID, or false when absent.
func (l *ChatList) Get(id string) (api.Chat, bool) {
	for _, c := range l.chats {
		if c.ID == id {
			return c, true
		}
	}
	return api.Chat{}, false
}

// Prepend inserts a chat at the front of the list. A chat whose ID is
// already present is ignored.
func (l *ChatList) Prepend(chat api.Chat) {
	if _, ok := l.Get(chat.ID); ok {
		return
	}
	l.chats = append([]api.Chat{chat}, l.chats...)
}

// Replace swaps the stored chat with the same ID for the given one,
// preserving its position in the list. Replacing an absent ID is a
// no-op: the chat may have been deleted while a rename was in flight.
func (l *ChatList) Replace(chat api.Chat) {
	for i := range l.chats {
		if l.chats[i].ID == chat.ID {
			l.chats[i] = chat
			return
		}
	}
}

// Remove deletes the chat with the given ID. Removing an absent ID is
// a no-op, which makes delete confirmations idempotent.
func (l *ChatList) Remove(id string) {
	for i := range l.chats {
		if l.chats[i].ID == id {
			l.chats = append(l.chats[:i], l.chats[i+1:]...)
			return
		}
	}
}

// IndexOf returns the position of the chat with the given ID, or -1.
func (l *ChatList) IndexOf(id string) int {
	for i := range l.chats {
		if l.chats[i].ID == id {
			return i
		}
	}
	return -1
}
