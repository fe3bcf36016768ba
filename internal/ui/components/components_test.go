// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/ui/styles"
)

func TestErrorBannerSingleSlot(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme())

	if b.Visible() {
		t.Error("fresh banner should be empty")
	}

	b.Set("first failure")
	b.Set("second failure")
	if b.Message() != "second failure" {
		t.Errorf("Message() = %q, newest error must replace the older", b.Message())
	}

	b.Clear()
	if b.Visible() || b.View() != "" {
		t.Error("cleared banner should render nothing")
	}
}

func TestErrorBannerSetError(t *testing.T) {
	b := NewErrorBanner(styles.NewTheme())

	b.SetError(errors.New("boom"))
	if !strings.Contains(b.View(), "boom") {
		t.Errorf("View() = %q, want the error text", b.View())
	}

	b.SetError(nil)
	if b.Visible() {
		t.Error("nil error should clear the banner")
	}
}

func TestConfirmOnlyYesConfirms(t *testing.T) {
	tests := []struct {
		key     string
		confirm bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"enter", false},
		{"esc", false},
		{"x", false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			c := NewConfirm(styles.NewTheme())
			c.Arm("Delete this chat?", "chat-1")

			var msg tea.KeyMsg
			switch tc.key {
			case "enter":
				msg = tea.KeyMsg{Type: tea.KeyEnter}
			case "esc":
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			default:
				msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tc.key)}
			}

			confirmed, done := c.HandleKey(msg)
			if !done {
				t.Fatal("armed prompt must resolve on any key")
			}
			if confirmed != tc.confirm {
				t.Errorf("key %q confirmed = %v, want %v", tc.key, confirmed, tc.confirm)
			}
			if c.Armed() {
				t.Error("prompt should disarm after resolving")
			}
		})
	}
}

func TestConfirmIdleIgnoresKeys(t *testing.T) {
	c := NewConfirm(styles.NewTheme())

	_, done := c.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if done {
		t.Error("idle prompt must not consume keys")
	}
	if c.View() != "" {
		t.Error("idle prompt should render nothing")
	}
}

func TestConfirmCarriesSubject(t *testing.T) {
	c := NewConfirm(styles.NewTheme())
	c.Arm("Delete this chat?", "chat-42")
	if c.Subject() != "chat-42" {
		t.Errorf("Subject() = %q", c.Subject())
	}
}
