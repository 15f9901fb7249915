// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/termplay/internal/queue"
	"github.com/MKhiriev/termplay/internal/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) (Model, *queue.Queue[state.Input]) {
	t.Helper()
	inputs := queue.New[state.Input]()
	return NewModel(state.NewDispatcher(inputs)), inputs
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func drain(q *queue.Queue[state.Input]) []state.Input {
	var got []state.Input
	for {
		v, ok := q.TryRecv()
		if !ok {
			return got
		}
		got = append(got, v)
	}
}

var (
	keyTab    = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter  = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlC  = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlD  = tea.KeyMsg{Type: tea.KeyCtrlD}
	keyYes    = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}
	keyNo     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}
	keyShiftT = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func TestModel_TypingSendsEdits(t *testing.T) {
	m, inputs := newTestModel(t)

	m = typeText(t, m, "ab")

	assert.Equal(t, []state.Input{
		state.Edit{Field: state.FieldLogin, Value: "a"},
		state.Edit{Field: state.FieldLogin, Value: "ab"},
	}, drain(inputs))
	assert.Equal(t, "ab", m.inputs[state.FieldLogin].Value())
}

func TestModel_TabMovesFocus(t *testing.T) {
	m, inputs := newTestModel(t)

	m = press(t, m, keyTab)
	assert.Equal(t, focusPasswordInput, m.focus)

	m = typeText(t, m, "x")
	assert.Equal(t, []state.Input{state.Edit{Field: state.FieldPassword, Value: "x"}}, drain(inputs))

	m = press(t, m, keyShiftT, keyShiftT)
	assert.Equal(t, focusToRegisterButton, m.focus)
}

func TestModel_EnterOnInputMovesOn(t *testing.T) {
	m, inputs := newTestModel(t)

	m = press(t, m, keyEnter)

	assert.Equal(t, focusPasswordInput, m.focus)
	assert.Empty(t, drain(inputs))
}

func TestModel_LoginButtonDispatchesLogin(t *testing.T) {
	m, inputs := newTestModel(t)

	m = typeText(t, m, "u")
	m = press(t, m, keyTab)
	m = typeText(t, m, "p")
	press(t, m, keyTab, keyEnter)

	assert.Equal(t, []state.Input{
		state.Edit{Field: state.FieldLogin, Value: "u"},
		state.Edit{Field: state.FieldPassword, Value: "p"},
		state.ActionLogin,
	}, drain(inputs))
}

func TestModel_RegisterButtonOpensRegisterPage(t *testing.T) {
	m, inputs := newTestModel(t)

	m = press(t, m, keyTab, keyTab, keyTab, keyEnter)
	assert.Equal(t, []state.Input{state.ActionShowRegister}, drain(inputs))

	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{IsRegistering: true}})
	assert.Equal(t, focusRegisterLoginInput, m.focus)
	assert.Contains(t, m.View(), "REGISTER")
}

func TestModel_RegistrationValidation(t *testing.T) {
	tests := []struct {
		name   string
		values [4]string
		want   string
	}{
		{name: "empty", want: "E-mail and password are required"},
		{name: "e-mail mismatch", values: [4]string{"a@b.c", "a@b.d", "p", "p"}, want: "E-mail addresses do not match"},
		{name: "password mismatch", values: [4]string{"a@b.c", "a@b.c", "p", "q"}, want: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, inputs := newTestModel(t)
			m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{IsRegistering: true}})

			for _, v := range tt.values {
				m = typeText(t, m, v)
				m = press(t, m, keyTab)
			}
			drain(inputs)

			m = press(t, m, keyTab, keyEnter)

			assert.Equal(t, focusRegisterButton, m.focus)
			assert.Equal(t, tt.want, m.validation)
			assert.Contains(t, m.View(), tt.want)
			assert.Empty(t, drain(inputs))
		})
	}
}

func TestModel_ValidRegistrationDispatches(t *testing.T) {
	m, inputs := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{IsRegistering: true}})

	for _, v := range []string{"a@b.c", "a@b.c", "pw", "pw"} {
		m = typeText(t, m, v)
		m = press(t, m, keyTab)
	}
	drain(inputs)

	m = press(t, m, keyTab, keyEnter)

	assert.Empty(t, m.validation)
	assert.Equal(t, []state.Input{state.ActionRegister}, drain(inputs))
}

func TestModel_BackButton(t *testing.T) {
	m, inputs := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{IsRegistering: true}})

	press(t, m, keyShiftT, keyShiftT, keyEnter)

	assert.Equal(t, []state.Input{state.ActionShowLogin}, drain(inputs))
}

func TestModel_ExitConfirmation(t *testing.T) {
	m, inputs := newTestModel(t)

	m = press(t, m, keyEsc)
	assert.Equal(t, []state.Input{state.ActionPreExit}, drain(inputs))

	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{ShowExitConfirmation: true}})
	assert.Contains(t, m.View(), "Exit termplay?")

	m = press(t, m, keyNo)
	assert.Equal(t, []state.Input{state.ActionCancelExit}, drain(inputs))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.Empty(t, drain(inputs), "other keys are swallowed by the dialog")

	press(t, m, keyYes)
	assert.Equal(t, []state.Input{state.ActionExit}, drain(inputs))
}

func TestModel_GlobalKeys(t *testing.T) {
	m, inputs := newTestModel(t)

	m = press(t, m, keyCtrlD)
	press(t, m, keyCtrlC)

	assert.Equal(t, []state.Input{state.ActionDisconnect, state.ActionExit}, drain(inputs))
}

func TestModel_ResetClearsForm(t *testing.T) {
	m, inputs := newTestModel(t)

	m = typeText(t, m, "user")
	m = press(t, m, keyTab)
	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{Login: "user", ConnectionStatus: state.Connecting()}})
	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{}})
	drain(inputs)

	assert.Empty(t, m.inputs[state.FieldLogin].Value())
	assert.Equal(t, focusLoginInput, m.focus)
}

func TestModel_ConnectingStartsSpinner(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, snapshotMsg{state: state.ApplicationState{ConnectionStatus: state.Connecting()}})

	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Connecting...")
}

func TestModel_ErroredShowsHumanMessage(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{
		ConnectionStatus: state.Errored("dial tcp 127.0.0.1:1: connect: connection refused"),
		ErrorMessage:     "dial tcp 127.0.0.1:1: connect: connection refused",
	}})

	assert.Contains(t, m.View(), "No network or server unavailable")
}

func TestModel_LoggedInIgnoresTyping(t *testing.T) {
	m, inputs := newTestModel(t)
	m, _ = update(t, m, snapshotMsg{state: state.ApplicationState{IsLogged: true, Login: "bob"}})

	m = typeText(t, m, "x")

	assert.Empty(t, drain(inputs))
	assert.Contains(t, m.View(), "Logged in as bob")
}

func TestModel_ClosedQueueQuits(t *testing.T) {
	m, inputs := newTestModel(t)
	inputs.Close()

	_, cmd := update(t, m, keyEsc)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCycle(t *testing.T) {
	assert.Equal(t, focusPasswordInput, cycle(state.PageLogin, focusLoginInput, 1))
	assert.Equal(t, focusLoginInput, cycle(state.PageLogin, focusToRegisterButton, 1))
	assert.Equal(t, focusToRegisterButton, cycle(state.PageLogin, focusLoginInput, -1))
	assert.Equal(t, focusRegisterLoginInput, cycle(state.PageRegister, focusLoginButton, 1))
}

func TestHumanizeConnectError(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "tls: failed to verify certificate: x509: unknown authority", want: "Server certificate is not trusted"},
		{in: "lookup nowhere: no such host", want: "No network or server unavailable (lookup nowhere: no such host)"},
		{in: "something else", want: "something else"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeConnectError(tt.in))
	}
}
