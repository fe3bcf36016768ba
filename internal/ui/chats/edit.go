// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chats

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/morganforge/parley-tui/internal/api"
)

// editPhase is the lifecycle of one inline rename.
type editPhase int

const (
	editIdle editPhase = iota
	editTyping
	editSaving
)

// =============================================================================
// INLINE RENAME STATE
// =============================================================================

// editState tracks the single in-progress rename. Only one row can be
// edited at a time; starting an edit elsewhere first cancels this one.
type editState struct {
	phase    editPhase
	chatID   string
	original string // stored title at edit start, "" for a null title
	input    textinput.Model
}

func newEditState() editState {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	return editState{input: ti}
}

// begin opens the editor on the given chat, seeded with its stored
// title (not the display placeholder).
func (e *editState) begin(chat api.Chat) {
	e.phase = editTyping
	e.chatID = chat.ID
	e.original = ""
	if chat.Title != nil {
		e.original = *chat.Title
	}
	e.input.SetValue(e.original)
	e.input.CursorEnd()
	e.input.Focus()
}

// active reports whether an edit owns keyboard input.
func (e *editState) active() bool {
	return e.phase == editTyping || e.phase == editSaving
}

// typing reports whether the editor accepts text.
func (e *editState) typing() bool {
	return e.phase == editTyping
}

// saving reports whether a rename request is in flight.
func (e *editState) saving() bool {
	return e.phase == editSaving
}

// forChat reports whether the edit belongs to the given chat row.
func (e *editState) forChat(id string) bool {
	return e.active() && e.chatID == id
}

// submit decides what Enter does. A draft that is blank or identical to
// the stored title closes the editor with no request at all; otherwise
// the editor parks in saving until the result comes back.
func (e *editState) submit() (title string, send bool) {
	title = strings.TrimSpace(e.input.Value())
	if title == "" || title == e.original {
		e.reset()
		return "", false
	}
	e.phase = editSaving
	e.input.Blur()
	return title, true
}

// fail returns to typing with the draft untouched, so the user can fix
// or retry without losing what they wrote.
func (e *editState) fail() {
	e.phase = editTyping
	e.input.Focus()
}

// reset discards the edit entirely.
func (e *editState) reset() {
	e.phase = editIdle
	e.chatID = ""
	e.original = ""
	e.input.SetValue("")
	e.input.Blur()
}
