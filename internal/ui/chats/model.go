// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chats

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/model"
	"github.com/morganforge/parley-tui/internal/ui/components"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// =============================================================================
// CHAT LIST MODEL
// =============================================================================

// Model is the conversation list screen.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	keys   KeyMap

	list   *model.ChatList
	cursor int

	loading  bool
	creating bool
	// deleting holds ids with an in-flight delete so their rows can be
	// dimmed and double-deletes suppressed.
	deleting map[string]bool

	edit    editState
	confirm *components.Confirm
	banner  *components.ErrorBanner
	spin    spinner.Model

	width  int
	height int
}

// New creates the list screen; Init fires the initial load.
func New(theme *styles.Theme, client *api.Client) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:    theme,
		client:   client,
		keys:     DefaultKeyMap(),
		list:     model.NewChatList(),
		loading:  true,
		deleting: make(map[string]bool),
		edit:     newEditState(),
		confirm:  components.NewConfirm(theme),
		banner:   components.NewErrorBanner(theme),
		spin:     sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, LoadChatsCmd(m.client))
}

// Loading reports whether the initial or a refresh load is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Selected returns the chat under the cursor, or false when the list is
// empty.
func (m Model) Selected() (api.Chat, bool) {
	all := m.list.All()
	if len(all) == 0 || m.cursor < 0 || m.cursor >= len(all) {
		return api.Chat{}, false
	}
	return all[m.cursor], true
}

// ErrorMessage returns the banner text, "" when clear.
func (m Model) ErrorMessage() string {
	return m.banner.Message()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ChatsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.banner.SetError(msg.Err)
			return m, nil
		}
		m.list.Set(msg.Chats)
		m.clampCursor()
		return m, nil

	case ChatCreatedMsg:
		m.creating = false
		if msg.Err != nil {
			m.banner.SetError(msg.Err)
			return m, nil
		}
		m.list.Prepend(msg.Chat)
		m.cursor = 0
		chat := msg.Chat
		return m, func() tea.Msg { return OpenChatMsg{Chat: chat} }

	case ChatRenamedMsg:
		if msg.Err != nil {
			if m.edit.forChat(msg.ID) {
				m.edit.fail()
			}
			m.banner.SetError(msg.Err)
			return m, nil
		}
		m.list.Replace(msg.Chat)
		if m.edit.forChat(msg.ID) {
			m.edit.reset()
		}
		return m, nil

	case ChatDeletedMsg:
		delete(m.deleting, msg.ID)
		if msg.Err != nil {
			m.banner.SetError(msg.Err)
			return m, nil
		}
		m.list.Remove(msg.ID)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// An armed delete confirmation captures everything.
	if m.confirm.Armed() {
		confirmed, _ := m.confirm.HandleKey(msg)
		if !confirmed {
			return m, nil
		}
		id := m.confirm.Subject()
		if m.deleting[id] {
			return m, nil
		}
		m.banner.Clear()
		m.deleting[id] = true
		return m, tea.Batch(DeleteChatCmd(m.client, id), m.spin.Tick)
	}

	// An open editor captures everything next.
	if m.edit.active() {
		return m.handleEditKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		chat, ok := m.Selected()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg { return OpenChatMsg{Chat: chat} }

	case key.Matches(msg, m.keys.New):
		if m.creating {
			return m, nil
		}
		m.banner.Clear()
		m.creating = true
		title := model.DefaultTitle(time.Now())
		return m, tea.Batch(CreateChatCmd(m.client, title), m.spin.Tick)

	case key.Matches(msg, m.keys.Rename):
		chat, ok := m.Selected()
		if !ok {
			return m, nil
		}
		m.banner.Clear()
		m.edit.begin(chat)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		chat, ok := m.Selected()
		if !ok || m.deleting[chat.ID] {
			return m, nil
		}
		m.confirm.Arm("Delete \""+model.DisplayTitle(chat)+"\"?", chat.ID)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.banner.Clear()
		m.loading = true
		return m, tea.Batch(LoadChatsCmd(m.client), m.spin.Tick)

	case key.Matches(msg, m.keys.Logout):
		return m, func() tea.Msg { return LogoutMsg{} }

	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}

// handleEditKey feeds input to the open rename editor.
func (m Model) handleEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// While the rename request is in flight the editor is frozen.
	if m.edit.saving() {
		return m, nil
	}

	switch msg.String() {
	case "enter":
		title, send := m.edit.submit()
		if !send {
			return m, nil
		}
		m.banner.Clear()
		return m, tea.Batch(RenameChatCmd(m.client, m.edit.chatID, title), m.spin.Tick)

	case "esc":
		m.edit.reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.edit.input, cmd = m.edit.input.Update(msg)
	return m, cmd
}

// busy reports whether any request that shows the spinner is in flight.
func (m Model) busy() bool {
	return m.loading || m.creating || m.edit.saving() || len(m.deleting) > 0
}

// clampCursor keeps the selection inside the list after removals.
func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
