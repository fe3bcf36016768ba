// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	loginTab := m.theme.FormTabIdle.Render("Sign in")
	registerTab := m.theme.FormTabIdle.Render("Register")
	if m.mode == ModeLogin {
		loginTab = m.theme.FormTabActive.Render("Sign in")
	} else {
		registerTab = m.theme.FormTabActive.Render("Register")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, loginTab, " ", registerTab))
	b.WriteString("\n\n")

	b.WriteString(m.theme.FormLabel.Render("Email"))
	b.WriteString("\n")
	b.WriteString(m.email.View())
	b.WriteString("\n\n")
	b.WriteString(m.theme.FormLabel.Render("Password"))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spin.View())
		b.WriteString(" authenticating...")
		b.WriteString("\n")
	}

	if m.banner.Visible() {
		b.WriteString("\n")
		b.WriteString(m.banner.View())
		b.WriteString("\n")
	}

	form := m.theme.FormBox.Render(b.String())
	help := m.theme.HelpText.Render("enter submit • tab next field • ctrl+t switch mode • ctrl+c quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("Parley"),
		form,
		help,
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
