// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/model"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

func openedModel(t *testing.T, history ...api.Message) Model {
	t.Helper()
	title := "Test chat"
	chat := api.Chat{ID: "chat-1", Title: &title, CreatedAt: api.Now()}
	m := New(styles.NewTheme(), api.NewClient("http://localhost:1", api.StaticToken("tok")), chat, Options{})
	m, _ = m.Update(MessagesLoadedMsg{ChatID: "chat-1", Messages: history})
	return m
}

func typeAndSend(t *testing.T, m Model, text string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

// =============================================================================
// OPTIMISTIC SEND TESTS
// =============================================================================

func TestSendAppendsPlaceholderImmediately(t *testing.T) {
	m := openedModel(t)

	m, cmd := typeAndSend(t, m, "hello there")

	if cmd == nil {
		t.Fatal("send should fire the request")
	}
	if !m.Sending() {
		t.Error("send should set the in-flight guard")
	}
	last, ok := m.transcript.Last()
	if !ok || last.Content != "hello there" || last.Role != api.RoleUser {
		t.Fatalf("placeholder not appended: %+v", last)
	}
	if !model.IsLocalID(last.ID) {
		t.Errorf("placeholder id %q should be local", last.ID)
	}
	if m.input.Value() != "" {
		t.Error("composer should clear on send")
	}
}

func TestSendSuccessAppendsExactlyTheReply(t *testing.T) {
	m := openedModel(t)
	m, _ = typeAndSend(t, m, "hello")
	placeholder, _ := m.transcript.Last()

	reply := api.Message{ID: "srv-1", ChatID: "chat-1", Role: api.RoleAssistant, Content: "hi!", CreatedAt: api.Now()}
	m, _ = m.Update(SendResultMsg{ChatID: "chat-1", PlaceholderID: placeholder.ID, Reply: reply})

	msgs := m.transcript.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript has %d messages, want placeholder + reply", len(msgs))
	}
	if msgs[0].ID != placeholder.ID || msgs[1].ID != "srv-1" {
		t.Errorf("order wrong: %q then %q", msgs[0].ID, msgs[1].ID)
	}
	if m.Sending() {
		t.Error("success must release the guard")
	}
	if m.ErrorMessage() != "" {
		t.Error("success must not leave an error showing")
	}
}

func TestSendFailureRollsBackPlaceholder(t *testing.T) {
	m := openedModel(t, api.Message{ID: "old-1", ChatID: "chat-1", Role: api.RoleUser, Content: "earlier"})
	m, _ = typeAndSend(t, m, "doomed")
	placeholder, _ := m.transcript.Last()

	m, _ = m.Update(SendResultMsg{ChatID: "chat-1", PlaceholderID: placeholder.ID, Err: errors.New("503")})

	if m.transcript.Len() != 1 {
		t.Fatalf("transcript has %d messages, placeholder must be rolled back", m.transcript.Len())
	}
	last, _ := m.transcript.Last()
	if last.ID != "old-1" {
		t.Error("history must be untouched by the rollback")
	}
	if m.ErrorMessage() == "" {
		t.Error("failure should surface in the banner")
	}
	if m.Sending() {
		t.Error("failure must release the guard")
	}
}

func TestSecondEnterWhileSendingIsIgnored(t *testing.T) {
	m := openedModel(t)
	m, _ = typeAndSend(t, m, "first")

	m, cmd := typeAndSend(t, m, "second")

	if cmd != nil {
		t.Error("a second send must be suppressed while one is in flight")
	}
	if m.transcript.Len() != 1 {
		t.Errorf("transcript has %d messages, second draft must not append", m.transcript.Len())
	}
}

func TestGuardReleasesForNextSend(t *testing.T) {
	m := openedModel(t)
	m, _ = typeAndSend(t, m, "first")
	placeholder, _ := m.transcript.Last()
	m, _ = m.Update(SendResultMsg{ChatID: "chat-1", PlaceholderID: placeholder.ID, Err: errors.New("boom")})

	m, cmd := typeAndSend(t, m, "retry")

	if cmd == nil {
		t.Fatal("a new send must be possible after the previous one resolved")
	}
	if m.ErrorMessage() != "" {
		t.Error("starting a fresh send should clear the old error")
	}
}

func TestBlankDraftIsSilentNoOp(t *testing.T) {
	m := openedModel(t)

	m, cmd := typeAndSend(t, m, "   \n  ")

	if cmd != nil {
		t.Error("a blank draft must not fire a request")
	}
	if m.transcript.Len() != 0 || m.Sending() || m.ErrorMessage() != "" {
		t.Error("a blank draft changes nothing, silently")
	}
}

// =============================================================================
// LOAD AND NAVIGATION TESTS
// =============================================================================

func TestLoadFailureShowsBanner(t *testing.T) {
	title := "t"
	chat := api.Chat{ID: "chat-1", Title: &title}
	m := New(styles.NewTheme(), api.NewClient("http://localhost:1", api.StaticToken("tok")), chat, Options{})

	m, _ = m.Update(MessagesLoadedMsg{ChatID: "chat-1", Err: errors.New("404")})

	if m.loading {
		t.Error("failure must clear the loading state")
	}
	if m.ErrorMessage() == "" {
		t.Error("failure should surface in the banner")
	}
}

func TestStaleLoadForOtherChatIsIgnored(t *testing.T) {
	m := openedModel(t)

	m, _ = m.Update(MessagesLoadedMsg{
		ChatID:   "some-other-chat",
		Messages: []api.Message{{ID: "x", Content: "wrong transcript"}},
	})

	if m.transcript.Len() != 0 {
		t.Error("history for another chat must not leak into this one")
	}
}

func TestStaleSendResultForOtherChatIsIgnored(t *testing.T) {
	m := openedModel(t)
	m, _ = typeAndSend(t, m, "hello")

	m, _ = m.Update(SendResultMsg{ChatID: "some-other-chat", PlaceholderID: "whatever", Err: errors.New("boom")})

	if !m.Sending() {
		t.Error("a result addressed to another chat must not release this guard")
	}
	if m.transcript.Len() != 1 {
		t.Error("placeholder must survive a stale result")
	}
}

func TestEscRequestsBack(t *testing.T) {
	m := openedModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should request navigation back")
	}
	if _, ok := cmd().(BackMsg); !ok {
		t.Errorf("cmd() = %#v, want BackMsg", cmd())
	}
}
