// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/model"
)

// bubbleWidth bounds message bubbles so long paragraphs wrap instead of
// spanning the whole terminal.
const bubbleWidth = 72

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	header := m.theme.Title.Render(model.DisplayTitle(m.chat))
	if m.loading || m.sending {
		header += " " + m.spin.View()
	}
	b.WriteString(header)
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	} else if m.loading {
		b.WriteString(m.theme.EmptyState.Render("Loading messages..."))
	}
	b.WriteString("\n")

	if m.banner.Visible() {
		b.WriteString(m.banner.View())
		b.WriteString("\n")
	}

	b.WriteString(m.theme.InputContainer.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.theme.HelpText.Render("enter send • alt+enter newline • esc back"))

	return b.String()
}

// renderTranscript renders the full history for the viewport.
func (m Model) renderTranscript() string {
	msgs := m.transcript.Messages()
	if len(msgs) == 0 {
		if m.loading {
			return m.theme.EmptyState.Render("Loading messages...")
		}
		return m.theme.EmptyState.Render("No messages yet. Say something.")
	}

	var b strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMessage renders one turn as a bubble, user turns offset right
// and assistant turns left.
func (m Model) renderMessage(msg api.Message) string {
	width := bubbleWidth
	if m.width > 0 && m.width-8 < width {
		width = m.width - 8
	}

	var body string
	var bubble string
	if msg.Role == api.RoleAssistant {
		body = m.renderAssistantBody(msg.Content, width)
		bubble = m.theme.AssistantBubble.Width(width).Render(body)
	} else {
		body = msg.Content
		bubble = m.theme.UserBubble.Width(width).Render(body)
	}

	if !m.opts.ShowTimestamps {
		return bubble
	}

	meta := model.FormatTimestamp(msg.CreatedAt)
	if model.IsLocalID(msg.ID) {
		meta = "sending..."
	}
	return bubble + "\n" + m.theme.MessageMeta.Render(meta)
}

// renderAssistantBody formats assistant markdown with glamour, falling
// back to the raw text when rendering is off or fails.
func (m Model) renderAssistantBody(content string, width int) string {
	if !m.opts.RenderMarkdown {
		return content
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}
