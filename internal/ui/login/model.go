// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/ui/components"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// Mode selects which auth request the form submits.
type Mode int

const (
	ModeLogin Mode = iota
	ModeRegister
)

// Field focus positions in the form's focus ring.
const (
	fieldEmail = iota
	fieldPassword
	fieldCount
)

// =============================================================================
// LOGIN MODEL
// =============================================================================

// Model is the sign-in / registration screen.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	mode     Mode
	email    textinput.Model
	password textinput.Model
	focus    int

	// submitting guards against duplicate auth requests while one is in
	// flight; all form input is ignored until the result arrives.
	submitting bool
	spin       spinner.Model
	banner     *components.ErrorBanner

	width  int
	height int
}

// Authenticated is the callback message consumed by the owning app; the
// screen re-exports it so the app does not import api for this.
type Authenticated struct {
	Token string
}

// New creates the login screen in login mode with the email field
// focused.
func New(theme *styles.Theme, client *api.Client) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "> "
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "> "
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:    theme,
		client:   client,
		mode:     ModeLogin,
		email:    email,
		password: password,
		spin:     sp,
		banner:   components.NewErrorBanner(theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Mode returns the current form mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Submitting reports whether an auth request is in flight.
func (m Model) Submitting() bool {
	return m.submitting
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
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case AuthResultMsg:
		m.submitting = false
		if msg.Err != nil {
			m.banner.SetError(msg.Err)
			return m, nil
		}
		// Hand the token upward; the app owns the session store.
		return m, func() tea.Msg { return Authenticated{Token: msg.Token} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focus = (m.focus + fieldCount - 1) % fieldCount
		} else {
			m.focus = (m.focus + 1) % fieldCount
		}
		return m.applyFocus(), nil

	case "ctrl+t":
		if m.mode == ModeLogin {
			m.mode = ModeRegister
		} else {
			m.mode = ModeLogin
		}
		m.banner.Clear()
		return m, nil

	case "enter":
		if m.focus == fieldEmail {
			m.focus = fieldPassword
			return m.applyFocus(), nil
		}
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldEmail:
		m.email, cmd = m.email.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) applyFocus() Model {
	m.email.Blur()
	m.password.Blur()
	switch m.focus {
	case fieldEmail:
		m.email.Focus()
	case fieldPassword:
		m.password.Focus()
	}
	return m
}

// submit validates the form and fires the auth request for the current
// mode. Validation failures surface in the banner without a request.
func (m Model) submit() (Model, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()

	if email == "" || password == "" {
		m.banner.Set("email and password are required")
		return m, nil
	}

	m.banner.Clear()
	m.submitting = true

	var auth tea.Cmd
	if m.mode == ModeRegister {
		auth = RegisterCmd(m.client, email, password)
	} else {
		auth = LoginCmd(m.client, email, password)
	}
	return m, tea.Batch(auth, m.spin.Tick)
}
