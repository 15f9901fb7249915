// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/termplay/internal/state"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const fieldCount = int(state.FieldRegisterConfirmPassword) + 1

// Model renders the latest snapshot and turns key presses into inputs for
// the Store. It never changes application state itself: form edits are
// echoed locally for responsiveness and sent as [state.Edit] inputs.
type Model struct {
	dispatcher *state.Dispatcher

	state  state.ApplicationState
	inputs [fieldCount]textinput.Model
	focus  focus

	spinner    spinner.Model
	validation string
}

// NewModel returns a model showing the startup state.
func NewModel(dispatcher *state.Dispatcher) Model {
	m := Model{
		dispatcher: dispatcher,
		focus:      focusLoginInput,
	}

	placeholders := [fieldCount]string{
		state.FieldLogin:                   "login",
		state.FieldPassword:                "password",
		state.FieldRegisterLogin:           "e-mail",
		state.FieldRegisterConfirmLogin:    "repeat e-mail",
		state.FieldRegisterPassword:        "password",
		state.FieldRegisterConfirmPassword: "repeat password",
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		in.Width = 40
		switch state.Field(i) {
		case state.FieldPassword, state.FieldRegisterPassword, state.FieldRegisterConfirmPassword:
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		m.inputs[i] = in
	}
	m.inputs[state.FieldLogin].Focus()

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.MiniDot

	return m
}

// Init implements [tea.Model].
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		return m.applySnapshot(msg.state)
	case spinner.TickMsg:
		if m.state.ConnectionStatus.Phase != state.PhaseConnecting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) applySnapshot(next state.ApplicationState) (tea.Model, tea.Cmd) {
	prev := m.state
	m.state = next

	var cmds []tea.Cmd

	if next.IsDefault() && !prev.IsDefault() {
		for i := range m.inputs {
			m.inputs[i].SetValue(next.FieldValue(state.Field(i)))
		}
		m.validation = ""
		cmds = append(cmds, m.setFocus(focusLoginInput))
	} else if next.Page() != prev.Page() {
		m.validation = ""
		cmds = append(cmds, m.setFocus(focusOrder(next.Page())[0]))
	}

	if next.ConnectionStatus.Phase == state.PhaseConnecting && prev.ConnectionStatus.Phase != state.PhaseConnecting {
		cmds = append(cmds, m.spinner.Tick)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return m, m.dispatch(state.ActionExit)
	}

	if m.state.ShowExitConfirmation {
		switch {
		case key.Matches(msg, keys.yes):
			return m, m.dispatch(state.ActionExit)
		case key.Matches(msg, keys.no):
			return m, m.dispatch(state.ActionCancelExit)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, m.dispatch(state.ActionPreExit)
	case key.Matches(msg, keys.disconnect):
		return m, m.dispatch(state.ActionDisconnect)
	}

	if m.state.IsLogged {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.tab):
		return m, m.setFocus(cycle(m.state.Page(), m.focus, 1))
	case key.Matches(msg, keys.backtab):
		return m, m.setFocus(cycle(m.state.Page(), m.focus, -1))
	case key.Matches(msg, keys.enter):
		return m.activate()
	}

	f, ok := m.focus.field()
	if !ok {
		return m, nil
	}

	before := m.inputs[f].Value()
	var cmd tea.Cmd
	m.inputs[f], cmd = m.inputs[f].Update(msg)
	if after := m.inputs[f].Value(); after != before {
		m.validation = ""
		return m, tea.Batch(cmd, m.edit(f, after))
	}
	return m, cmd
}

// activate handles enter on the focused element.
func (m Model) activate() (tea.Model, tea.Cmd) {
	if _, isInput := m.focus.field(); isInput {
		return m, m.setFocus(cycle(m.state.Page(), m.focus, 1))
	}

	switch m.focus {
	case focusLoginButton:
		return m, m.dispatch(state.ActionLogin)
	case focusToRegisterButton:
		return m, m.dispatch(state.ActionShowRegister)
	case focusBackButton:
		return m, m.dispatch(state.ActionShowLogin)
	case focusRegisterButton:
		if msg := validateRegistration(m.form()); msg != "" {
			m.validation = msg
			return m, nil
		}
		m.validation = ""
		return m, m.dispatch(state.ActionRegister)
	}
	return m, nil
}

// validateRegistration checks the register form before it is sent.
func validateRegistration(s state.ApplicationState) string {
	switch {
	case strings.TrimSpace(s.RegisterLogin) == "" || s.RegisterPassword == "":
		return "E-mail and password are required"
	case s.RegisterLogin != s.RegisterConfirmLogin:
		return "E-mail addresses do not match"
	case s.RegisterPassword != s.RegisterConfirmPassword:
		return "Passwords do not match"
	default:
		return ""
	}
}

// form returns the snapshot with the form fields as currently typed. Edits
// may still be queued for the Store, so the inputs are the freshest source.
func (m Model) form() state.ApplicationState {
	s := m.state
	for i := range m.inputs {
		s = s.WithField(state.Field(i), m.inputs[i].Value())
	}
	return s
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if cur, ok := m.focus.field(); ok {
		m.inputs[cur].Blur()
	}
	m.focus = f
	if next, ok := f.field(); ok {
		return m.inputs[next].Focus()
	}
	return nil
}

func (m Model) dispatch(a state.Action) tea.Cmd {
	if err := m.dispatcher.Dispatch(a); err != nil {
		return tea.Quit
	}
	return nil
}

func (m Model) edit(f state.Field, value string) tea.Cmd {
	if err := m.dispatcher.Edit(f, value); err != nil {
		return tea.Quit
	}
	return nil
}
