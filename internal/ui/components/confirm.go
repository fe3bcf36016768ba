// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// =============================================================================
// CONFIRMATION PROMPT
// =============================================================================

// Confirm is a modal yes/no prompt. While armed it captures all key
// input; anything other than an explicit yes answers no.
type Confirm struct {
	theme    *styles.Theme
	question string
	armed    bool
	// subject carries an opaque reference (a chat ID) through the
	// prompt, so the answer can be applied to the right target even if
	// the underlying list shifted.
	subject string
}

// NewConfirm creates an idle prompt.
func NewConfirm(theme *styles.Theme) *Confirm {
	return &Confirm{theme: theme}
}

// Arm shows the prompt for the given subject.
func (c *Confirm) Arm(question, subject string) {
	c.question = question
	c.subject = subject
	c.armed = true
}

// Armed reports whether the prompt is awaiting an answer.
func (c *Confirm) Armed() bool {
	return c.armed
}

// Subject returns the reference passed to Arm.
func (c *Confirm) Subject() string {
	return c.subject
}

// HandleKey consumes a key press while armed. It returns the answer and
// whether the prompt resolved: y/Y confirms, every other key declines.
func (c *Confirm) HandleKey(msg tea.KeyMsg) (confirmed, done bool) {
	if !c.armed {
		return false, false
	}
	c.armed = false
	switch msg.String() {
	case "y", "Y":
		return true, true
	default:
		return false, true
	}
}

// View renders the armed prompt, or "" when idle.
func (c *Confirm) View() string {
	if !c.armed {
		return ""
	}
	return c.theme.ConfirmBox.Render(c.question + " (y/N)")
}
