// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/model"
	"github.com/morganforge/parley-tui/internal/ui/components"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// composerHeight is the fixed height of the input area in rows.
const composerHeight = 3

// Options are the display preferences forwarded from configuration.
type Options struct {
	ShowTimestamps bool
	RenderMarkdown bool
}

// =============================================================================
// TRANSCRIPT MODEL
// =============================================================================

// Model is the transcript screen for one open chat.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	opts   Options

	chat       api.Chat
	transcript *model.Transcript

	viewport viewport.Model
	input    textarea.Model
	ready    bool

	loading bool
	// sending guards the one-send-at-a-time rule; while set, Enter is
	// ignored and pendingID names the placeholder to roll back.
	sending   bool
	pendingID string

	banner *components.ErrorBanner
	spin   spinner.Model

	width  int
	height int
}

// New creates the transcript screen for the given chat; Init fires the
// history load.
func New(theme *styles.Theme, client *api.Client, chat api.Chat, opts Options) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a message..."
	ta.CharLimit = 4096
	ta.SetHeight(composerHeight)
	ta.ShowLineNumbers = false
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:      theme,
		client:     client,
		opts:       opts,
		chat:       chat,
		transcript: model.NewTranscript(),
		input:      ta,
		loading:    true,
		banner:     components.NewErrorBanner(theme),
		spin:       sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(LoadMessagesCmd(m.client, m.chat.ID), textarea.Blink, m.spin.Tick)
}

// Chat returns the conversation this screen is showing.
func (m Model) Chat() api.Chat {
	return m.chat
}

// Sending reports whether a send is in flight.
func (m Model) Sending() bool {
	return m.sending
}

// ErrorMessage returns the banner text, "" when clear.
func (m Model) ErrorMessage() string {
	return m.banner.Message()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case spinner.TickMsg:
		if !m.loading && !m.sending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case MessagesLoadedMsg:
		if msg.ChatID != m.chat.ID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.banner.SetError(msg.Err)
			return m, nil
		}
		m.transcript.Set(msg.Messages)
		m.syncViewport()
		return m, nil

	case SendResultMsg:
		if msg.ChatID != m.chat.ID {
			return m, nil
		}
		return m.handleSendResult(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleSendResult finishes one optimistic send: on success the
// assistant reply lands after the kept placeholder, on failure the
// placeholder is rolled back. Both paths pin the view to the bottom so
// the outcome is visible.
func (m Model) handleSendResult(msg SendResultMsg) Model {
	m.sending = false
	m.pendingID = ""

	if msg.Err != nil {
		m.transcript.RemoveByID(msg.PlaceholderID)
		m.banner.SetError(msg.Err)
		m.syncViewport()
		return m
	}

	m.transcript.Append(msg.Reply)
	m.syncViewport()
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	// The composer is frozen while a send is in flight; only navigation
	// and scrolling stay live.
	if m.sending && msg.Type != tea.KeyEsc && msg.Type != tea.KeyPgUp && msg.Type != tea.KeyPgDown {
		return m, nil
	}

	switch {
	case msg.Type == tea.KeyEsc:
		return m, func() tea.Msg { return BackMsg{} }

	case msg.Type == tea.KeyEnter && msg.Alt:
		// Alt+Enter inserts a literal newline into the draft.
		m.input.InsertString("\n")
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.submit()

	case msg.Type == tea.KeyPgUp || msg.Type == tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the optimistic half of the send protocol: append the
// placeholder, clear the composer, fire the request. A blank draft is a
// silent no-op and a second Enter while sending is ignored.
func (m Model) submit() (Model, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	placeholder := model.NewLocalUserMessage(m.chat.ID, content)
	m.transcript.Append(placeholder)
	m.pendingID = placeholder.ID
	m.sending = true
	m.banner.Clear()
	m.input.Reset()
	m.syncViewport()

	return m, tea.Batch(
		SendMessageCmd(m.client, m.chat.ID, placeholder.ID, content),
		m.spin.Tick,
	)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height

	chromeHeight := composerHeight + 5 // header, borders, help line
	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = msg.Width
		m.viewport.Height = vpHeight
	}
	m.input.SetWidth(msg.Width - 4)

	m.syncViewport()
	return m
}

// syncViewport re-renders the transcript into the viewport and pins it
// to the newest message. Every transcript change routes through here,
// rollbacks included.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
