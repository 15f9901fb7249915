// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

// Input is anything the UI sends to the Store: an [Action] or an [Edit].
type Input interface {
	isInput()
}

// Action is a user intent. It carries no payload; the credentials a Login or
// Register needs are read from the form fields already held in
// [ApplicationState].
type Action uint8

const (
	ActionNone Action = iota
	ActionLogin
	ActionShowRegister
	ActionShowLogin
	ActionRegister
	ActionDisconnect
	ActionPreExit
	ActionCancelExit
	ActionExit
)

func (Action) isInput() {}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionLogin:
		return "login"
	case ActionShowRegister:
		return "show_register"
	case ActionShowLogin:
		return "show_login"
	case ActionRegister:
		return "register"
	case ActionDisconnect:
		return "disconnect"
	case ActionPreExit:
		return "pre_exit"
	case ActionCancelExit:
		return "cancel_exit"
	case ActionExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Field names one form input of the login and register pages.
type Field uint8

const (
	FieldLogin Field = iota
	FieldPassword
	FieldRegisterLogin
	FieldRegisterConfirmLogin
	FieldRegisterPassword
	FieldRegisterConfirmPassword
)

func (f Field) String() string {
	switch f {
	case FieldLogin:
		return "login"
	case FieldPassword:
		return "password"
	case FieldRegisterLogin:
		return "register_login"
	case FieldRegisterConfirmLogin:
		return "register_confirm_login"
	case FieldRegisterPassword:
		return "register_password"
	case FieldRegisterConfirmPassword:
		return "register_confirm_password"
	default:
		return "unknown"
	}
}

// Edit replaces the content of one form field.
type Edit struct {
	Field Field
	Value string
}

func (Edit) isInput() {}
