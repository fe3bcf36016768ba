// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"time"

	"github.com/morganforge/parley-tui/internal/api"
)

// UntitledChat is shown for chats the server stores with a null title.
const UntitledChat = "Untitled chat"

// DisplayTitle returns the chat title for rendering. A null or blank
// server title falls back to a fixed placeholder rather than an empty
// row.
func DisplayTitle(chat api.Chat) string {
	if chat.Title == nil || *chat.Title == "" {
		return UntitledChat
	}
	return *chat.Title
}

// DefaultTitle names a freshly created chat after the local wall-clock
// moment of creation, e.g. "Chat Mar 9, 2025 14:02".
func DefaultTitle(t time.Time) string {
	return "Chat " + t.Format("Jan 2, 2006 15:04")
}

// FormatTimestamp renders a message or chat timestamp in the viewer's
// local time zone.
func FormatTimestamp(ts api.Timestamp) string {
	return ts.Local().Format("Jan 2, 2006 15:04")
}

// RelativeDate renders a chat's age the way the list shows it: recent
// times collapse to "just now" / "Nm ago" / "Nh ago", older ones fall
// back to the calendar date.
func RelativeDate(ts api.Timestamp, now time.Time) string {
	d := now.Sub(ts.Time)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 48*time.Hour:
		return "yesterday"
	default:
		return ts.Local().Format("Jan 2, 2006")
	}
}
