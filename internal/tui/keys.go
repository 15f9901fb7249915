// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	disconnect key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "exit")),
	tab:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	disconnect: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "disconnect")),
	yes:        key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	no:         key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
}

// helpLine renders the key hints of bindings separated by " │ ".
func helpLine(bindings ...key.Binding) string {
	var s string
	for i, b := range bindings {
		if i > 0 {
			s += " │ "
		}
		h := b.Help()
		s += h.Key + ": " + h.Desc
	}
	return s
}
