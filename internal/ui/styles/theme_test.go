// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "testing"

func TestNewThemeInitializesStyles(t *testing.T) {
	theme := NewTheme()

	// Spot-check that initStyles ran; an uninitialized style renders its
	// input unchanged, a styled one does not have zero padding.
	if !theme.ErrorBanner.GetBold() {
		t.Error("ErrorBanner should be bold")
	}
	if !theme.ListItemSelected.GetBold() {
		t.Error("ListItemSelected should be bold")
	}
	if h := theme.FormBox.GetPaddingLeft(); h != 3 {
		t.Errorf("FormBox left padding = %d, want 3", h)
	}
}

func TestBubbleStylesAreDistinct(t *testing.T) {
	theme := NewTheme()

	if theme.UserBubble.GetMarginLeft() == theme.AssistantBubble.GetMarginLeft() {
		t.Error("user and assistant bubbles should be offset to opposite sides")
	}
}
