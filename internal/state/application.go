// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import "github.com/MKhiriev/termplay/internal/protocol"

// Page is the page the UI shows. It is derived from
// [ApplicationState.IsRegistering].
type Page uint8

const (
	PageLogin Page = iota
	PageRegister
)

// ApplicationState is the snapshot of everything the user sees. It is a
// value: copies are independent and the zero value is the state at startup.
type ApplicationState struct {
	IsLogged                bool
	IsRegistering           bool
	Login                   string
	Password                string
	RegisterLogin           string
	RegisterConfirmLogin    string
	RegisterPassword        string
	RegisterConfirmPassword string
	ErrorMessage            string
	ShowExitConfirmation    bool
	ConnectionStatus        ConnectionStatus
}

// Page returns the active page.
func (s ApplicationState) Page() Page {
	if s.IsRegistering {
		return PageRegister
	}
	return PageLogin
}

// IsDefault reports whether s equals the startup state.
func (s ApplicationState) IsDefault() bool {
	return s == ApplicationState{}
}

// WithField returns s with field f set to value.
func (s ApplicationState) WithField(f Field, value string) ApplicationState {
	switch f {
	case FieldLogin:
		s.Login = value
	case FieldPassword:
		s.Password = value
	case FieldRegisterLogin:
		s.RegisterLogin = value
	case FieldRegisterConfirmLogin:
		s.RegisterConfirmLogin = value
	case FieldRegisterPassword:
		s.RegisterPassword = value
	case FieldRegisterConfirmPassword:
		s.RegisterConfirmPassword = value
	}
	return s
}

// FieldValue returns the content of field f.
func (s ApplicationState) FieldValue(f Field) string {
	switch f {
	case FieldLogin:
		return s.Login
	case FieldPassword:
		return s.Password
	case FieldRegisterLogin:
		return s.RegisterLogin
	case FieldRegisterConfirmLogin:
		return s.RegisterConfirmLogin
	case FieldRegisterPassword:
		return s.RegisterPassword
	case FieldRegisterConfirmPassword:
		return s.RegisterConfirmPassword
	default:
		return ""
	}
}

// CommandFor builds the command a connect action sends once the connection is
// up. It reports false for actions that send nothing.
func (s ApplicationState) CommandFor(a Action) (protocol.UserCommand, bool) {
	switch a {
	case ActionRegister:
		return protocol.RegisterCommand{Login: s.RegisterLogin, Password: s.RegisterPassword}, true
	case ActionLogin:
		return protocol.LoginCommand{Login: s.Login, Password: s.Password}, true
	default:
		return nil, false
	}
}

// ApplyEvent returns the state after the server event ev. Applying the same
// event twice yields the same state. Unknown events leave s unchanged.
//
// A register response returns the status to Idle and shows its message; a
// successful one also switches back to the login page. A login response does
// the same and sets IsLogged from the outcome.
func ApplyEvent(s ApplicationState, ev protocol.ServerEvent) ApplicationState {
	switch e := ev.(type) {
	case protocol.RegisterResponseEvent:
		s.ConnectionStatus = Idle()
		s.ErrorMessage = e.Message
		if e.Success {
			s.IsRegistering = false
		}
	case protocol.LoginResponseEvent:
		s.ConnectionStatus = Idle()
		s.ErrorMessage = e.Message
		s.IsLogged = e.Success
	}
	return s
}
