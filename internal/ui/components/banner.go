// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// =============================================================================
// ERROR BANNER
// =============================================================================

// ErrorBanner is a single-slot inline error display. Each screen owns
// one; a newer error overwrites the older rather than stacking, and the
// start of any fresh operation clears it.
type ErrorBanner struct {
	theme   *styles.Theme
	message string
}

// NewErrorBanner creates an empty banner.
func NewErrorBanner(theme *styles.Theme) *ErrorBanner {
	return &ErrorBanner{theme: theme}
}

// Set replaces the displayed message. An empty message clears.
func (b *ErrorBanner) Set(message string) {
	b.message = message
}

// SetError is Set for error values; a nil error clears.
func (b *ErrorBanner) SetError(err error) {
	if err == nil {
		b.message = ""
		return
	}
	b.message = err.Error()
}

// Clear removes the displayed message.
func (b *ErrorBanner) Clear() {
	b.message = ""
}

// Visible reports whether a message is showing.
func (b *ErrorBanner) Visible() bool {
	return b.message != ""
}

// Message returns the raw message text, "" when clear.
func (b *ErrorBanner) Message() string {
	return b.message
}

// View renders the banner, or "" when there is nothing to show.
func (b *ErrorBanner) View() string {
	if b.message == "" {
		return ""
	}
	return b.theme.ErrorBanner.Render(b.message)
}
