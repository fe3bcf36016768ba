// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

func newTestModel() Model {
	client := api.NewClient("http://localhost:1", api.StaticToken(""))
	return New(styles.NewTheme(), client)
}

func pressEnter(m Model) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestSubmitRequiresBothFields(t *testing.T) {
	m := newTestModel()
	m.focus = fieldPassword

	m, cmd := pressEnter(m)

	if cmd != nil {
		t.Error("empty form must not fire an auth request")
	}
	if m.Submitting() {
		t.Error("empty form must not enter the submitting state")
	}
	if m.ErrorMessage() == "" {
		t.Error("validation failure should surface in the banner")
	}
}

func TestSubmitEntersGuardedState(t *testing.T) {
	m := newTestModel()
	m.email.SetValue("a@b.c")
	m.password.SetValue("secret")
	m.focus = fieldPassword

	m, cmd := pressEnter(m)

	if cmd == nil {
		t.Fatal("valid form should fire the auth command")
	}
	if !m.Submitting() {
		t.Fatal("submit should set the in-flight guard")
	}

	// While in flight, a second enter must not fire another request.
	m, cmd = pressEnter(m)
	if cmd != nil {
		t.Error("keys must be ignored while a request is in flight")
	}
	_ = m
}

func TestEnterOnEmailAdvancesFocus(t *testing.T) {
	m := newTestModel()
	m.email.SetValue("a@b.c")
	m.password.SetValue("secret")

	m, cmd := pressEnter(m)

	if cmd != nil {
		t.Error("enter on the email field should only move focus")
	}
	if m.focus != fieldPassword {
		t.Errorf("focus = %d, want password field", m.focus)
	}
}

func TestAuthFailureReleasesGuard(t *testing.T) {
	m := newTestModel()
	m.submitting = true

	m, cmd := m.Update(AuthResultMsg{Err: errors.New("invalid credentials")})

	if m.Submitting() {
		t.Error("failure must release the in-flight guard")
	}
	if m.ErrorMessage() != "invalid credentials" {
		t.Errorf("banner = %q", m.ErrorMessage())
	}
	if cmd != nil {
		t.Error("failure should not emit further commands")
	}
}

func TestAuthSuccessHandsTokenUpward(t *testing.T) {
	m := newTestModel()
	m.submitting = true

	m, cmd := m.Update(AuthResultMsg{Token: "tok-123"})

	if m.Submitting() {
		t.Error("success must release the in-flight guard")
	}
	if cmd == nil {
		t.Fatal("success should emit the Authenticated message")
	}
	got, ok := cmd().(Authenticated)
	if !ok || got.Token != "tok-123" {
		t.Errorf("cmd() = %#v, want Authenticated{tok-123}", cmd())
	}
}

func TestModeToggleClearsBanner(t *testing.T) {
	m := newTestModel()
	m.banner.Set("stale error")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	if m.Mode() != ModeRegister {
		t.Errorf("mode = %v, want register", m.Mode())
	}
	if m.ErrorMessage() != "" {
		t.Error("switching modes should clear the error banner")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	if m.Mode() != ModeLogin {
		t.Errorf("mode = %v, want login after second toggle", m.Mode())
	}
}
