// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/termplay/internal/state"

// focus is the focusable element of a page. The set is closed: every page
// lists its elements in order and tab cycles through that list.
type focus int

const (
	focusLoginInput focus = iota
	focusPasswordInput
	focusLoginButton
	focusToRegisterButton

	focusRegisterLoginInput
	focusRegisterConfirmLoginInput
	focusRegisterPasswordInput
	focusRegisterConfirmPasswordInput
	focusBackButton
	focusRegisterButton
)

var (
	loginOrder = []focus{
		focusLoginInput,
		focusPasswordInput,
		focusLoginButton,
		focusToRegisterButton,
	}
	registerOrder = []focus{
		focusRegisterLoginInput,
		focusRegisterConfirmLoginInput,
		focusRegisterPasswordInput,
		focusRegisterConfirmPasswordInput,
		focusBackButton,
		focusRegisterButton,
	}
)

func focusOrder(p state.Page) []focus {
	if p == state.PageRegister {
		return registerOrder
	}
	return loginOrder
}

// cycle returns the element delta steps away from f on page p. An element
// that is not on p restarts at the first one.
func cycle(p state.Page, f focus, delta int) focus {
	order := focusOrder(p)
	for i, candidate := range order {
		if candidate == f {
			return order[((i+delta)%len(order)+len(order))%len(order)]
		}
	}
	return order[0]
}

// field returns the form field behind f, if f is an input.
func (f focus) field() (state.Field, bool) {
	switch f {
	case focusLoginInput:
		return state.FieldLogin, true
	case focusPasswordInput:
		return state.FieldPassword, true
	case focusRegisterLoginInput:
		return state.FieldRegisterLogin, true
	case focusRegisterConfirmLoginInput:
		return state.FieldRegisterConfirmLogin, true
	case focusRegisterPasswordInput:
		return state.FieldRegisterPassword, true
	case focusRegisterConfirmPasswordInput:
		return state.FieldRegisterConfirmPassword, true
	default:
		return 0, false
	}
}
