// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package app

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/session"
	"github.com/morganforge/parley-tui/internal/ui/chat"
	"github.com/morganforge/parley-tui/internal/ui/chats"
	"github.com/morganforge/parley-tui/internal/ui/login"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// screen identifies which view owns the terminal.
type screen int

const (
	screenLogin screen = iota
	screenChats
	screenChat
)

// sessionExpiredNotice is shown on the login screen after a 401 bounced
// the user out of a protected screen.
const sessionExpiredNotice = "session expired, please sign in again"

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the application root.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	store  *session.Store
	opts   chat.Options

	screen screen
	login  login.Model
	chats  chats.Model
	chat   chat.Model

	width  int
	height int
}

// New builds the root model. A restored session skips the login screen
// entirely; an expired token will bounce back on the first 401.
func New(theme *styles.Theme, client *api.Client, store *session.Store, opts chat.Options) Model {
	m := Model{
		theme:  theme,
		client: client,
		store:  store,
		opts:   opts,
		login:  login.New(theme, client),
	}
	if store.IsAuthenticated() {
		m.screen = screenChats
		m.chats = chats.New(theme, client)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	switch m.screen {
	case screenChats:
		return m.chats.Init()
	default:
		return m.login.Init()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m.forward(msg)

	case login.Authenticated:
		if err := m.store.Login(msg.Token); err != nil {
			log.Printf("app: failed to persist session: %v", err)
			return m.forward(login.AuthResultMsg{Err: err})
		}
		return m.gotoChats()

	case chats.OpenChatMsg:
		if !m.guard() {
			return m.gotoLogin(sessionExpiredNotice)
		}
		return m.gotoChat(msg.Chat)

	case chats.LogoutMsg:
		if err := m.store.Logout(); err != nil {
			log.Printf("app: logout cleanup failed: %v", err)
		}
		return m.gotoLogin("")

	case chat.BackMsg:
		if !m.guard() {
			return m.gotoLogin(sessionExpiredNotice)
		}
		return m.gotoChats()
	}

	// Auth failures inside screen results tear the session down before
	// the screen gets to render them as ordinary errors.
	if err := resultError(msg); err != nil && errors.Is(err, api.ErrAuthFailed) {
		if logoutErr := m.store.Logout(); logoutErr != nil {
			log.Printf("app: logout cleanup failed: %v", logoutErr)
		}
		return m.gotoLogin(sessionExpiredNotice)
	}

	return m.forward(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenChats:
		return m.chats.View()
	case screenChat:
		return m.chat.View()
	default:
		return m.login.View()
	}
}

// =============================================================================
// NAVIGATION
// =============================================================================

// guard is the access rule for protected screens.
func (m Model) guard() bool {
	return m.store.IsAuthenticated()
}

// gotoChats replaces the current screen with a fresh chat list, which
// reloads from the server on entry.
func (m Model) gotoChats() (Model, tea.Cmd) {
	m.screen = screenChats
	m.chats = chats.New(m.theme, m.client)
	return m.activate(m.chats.Init())
}

// gotoChat opens the transcript for one conversation.
func (m Model) gotoChat(c api.Chat) (Model, tea.Cmd) {
	m.screen = screenChat
	m.chat = chat.New(m.theme, m.client, c, m.opts)
	return m.activate(m.chat.Init())
}

// gotoLogin replaces the current screen with the login form. This is
// the only way out of a protected screen without a session.
func (m Model) gotoLogin(notice string) (Model, tea.Cmd) {
	m.screen = screenLogin
	m.login = login.New(m.theme, m.client)
	initCmd := m.login.Init()
	if notice != "" {
		var noticeCmd tea.Cmd
		m.login, noticeCmd = m.login.Update(login.AuthResultMsg{Err: errors.New(notice)})
		initCmd = tea.Batch(initCmd, noticeCmd)
	}
	return m.activate(initCmd)
}

// activate replays the terminal size into the newly current screen so
// it lays out correctly before its first real message.
func (m Model) activate(initCmd tea.Cmd) (Model, tea.Cmd) {
	if m.width > 0 {
		resized, cmd := m.forward(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return resized.(Model), tea.Batch(initCmd, cmd)
	}
	return m, initCmd
}

// forward routes a message to the current screen.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case screenChats:
		m.chats, cmd = m.chats.Update(msg)
	case screenChat:
		m.chat, cmd = m.chat.Update(msg)
	default:
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

// resultError extracts the error carried by a screen result message,
// nil for anything else.
func resultError(msg tea.Msg) error {
	switch msg := msg.(type) {
	case chats.ChatsLoadedMsg:
		return msg.Err
	case chats.ChatCreatedMsg:
		return msg.Err
	case chats.ChatRenamedMsg:
		return msg.Err
	case chats.ChatDeletedMsg:
		return msg.Err
	case chat.MessagesLoadedMsg:
		return msg.Err
	case chat.SendResultMsg:
		return msg.Err
	}
	return nil
}
