// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chats

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/model"
	"github.com/morganforge/parley-tui/internal/util"
)

// maxTitleWidth bounds a row title so the date column stays aligned on
// narrow terminals.
const maxTitleWidth = 48

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	header := m.theme.Title.Render("Chats")
	if m.busy() {
		header += " " + m.spin.View()
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading && m.list.IsEmpty():
		b.WriteString(m.theme.EmptyState.Render("Loading chats..."))
		b.WriteString("\n")

	case m.list.IsEmpty():
		b.WriteString(m.theme.EmptyState.Render("No chats yet. Press n to start one."))
		b.WriteString("\n")

	default:
		for i, chat := range m.list.All() {
			b.WriteString(m.renderRow(i, chat))
			b.WriteString("\n")
		}
	}

	if m.confirm.Armed() {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}

	if m.banner.Visible() {
		b.WriteString("\n")
		b.WriteString(m.banner.View())
		b.WriteString("\n")
	}

	help := "enter open • n new • e rename • d delete • C-r reload • C-l log out • q quit"
	b.WriteString("\n")
	b.WriteString(m.theme.HelpText.Render(help))

	return b.String()
}

// renderRow renders one chat line: cursor, title (or the open rename
// editor), and creation date.
func (m Model) renderRow(i int, chat api.Chat) string {
	prefix := "  "
	if i == m.cursor {
		prefix = "> "
	}

	if m.edit.forChat(chat.ID) {
		line := prefix + m.theme.ListEditPrompt.Render("rename: ") + m.edit.input.View()
		if m.edit.saving() {
			line += " " + m.spin.View()
		}
		return line
	}

	title := util.TruncateWidth(model.DisplayTitle(chat), maxTitleWidth)
	date := m.theme.ListDate.Render(model.RelativeDate(chat.CreatedAt, time.Now()))

	row := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date)
	style := m.theme.ListItem
	if i == m.cursor {
		style = m.theme.ListItemSelected
	}
	if m.deleting[chat.ID] {
		style = m.theme.ListDate
	}
	return prefix + style.Render(row)
}
