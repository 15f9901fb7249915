// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/termplay/internal/state"
	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

// View implements [tea.Model].
func (m Model) View() string {
	var page string
	switch {
	case m.state.IsLogged:
		page = m.viewLoggedIn()
	case m.state.Page() == state.PageRegister:
		page = m.viewRegister()
	default:
		page = m.viewLogin()
	}

	if m.state.ShowExitConfirmation {
		page = lipgloss.JoinVertical(lipgloss.Left, page, "", m.viewExitModal())
	}

	return appStyle.Render(page)
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(m.inputRow("Login    ", state.FieldLogin))
	b.WriteString(m.inputRow("Password ", state.FieldPassword))
	b.WriteString("\n")
	b.WriteString(m.button("Login", focusLoginButton))
	b.WriteString("  ")
	b.WriteString(m.button("Register", focusToRegisterButton))
	b.WriteString("\n")

	return renderPage("LOGIN", b.String(), m.statusLine(),
		helpLine(keys.tab, keys.enter, keys.esc, keys.disconnect, keys.quit))
}

func (m Model) viewRegister() string {
	var b strings.Builder
	b.WriteString(m.inputRow("E-mail           ", state.FieldRegisterLogin))
	b.WriteString(m.inputRow("Repeat e-mail    ", state.FieldRegisterConfirmLogin))
	b.WriteString(m.inputRow("Password         ", state.FieldRegisterPassword))
	b.WriteString(m.inputRow("Repeat password  ", state.FieldRegisterConfirmPassword))
	b.WriteString("\n")
	b.WriteString(m.button("Back", focusBackButton))
	b.WriteString("  ")
	b.WriteString(m.button("Register", focusRegisterButton))
	b.WriteString("\n")

	return renderPage("REGISTER", b.String(), m.statusLine(),
		helpLine(keys.tab, keys.enter, keys.esc, keys.disconnect, keys.quit))
}

func (m Model) viewLoggedIn() string {
	body := "Logged in as " + m.state.Login + "\n"
	if m.state.ErrorMessage != "" {
		body += "\n" + m.state.ErrorMessage + "\n"
	}
	return renderPage("TERMPLAY", body, "", helpLine(keys.esc, keys.quit))
}

func (m Model) viewExitModal() string {
	content := "Exit termplay?\n\n" + helpLine(keys.yes, keys.no)
	return overlayBoxStyle.Render(content)
}

func (m Model) inputRow(label string, f state.Field) string {
	return label + "│ [" + m.inputs[f].View() + "]\n"
}

func (m Model) button(label string, f focus) string {
	text := "[" + label + "]"
	if m.focus == f {
		return focusedStyle.Render(text)
	}
	return text
}

// statusLine shows the connection phase and the last message.
func (m Model) statusLine() string {
	var parts []string

	switch st := m.state.ConnectionStatus; st.Phase {
	case state.PhaseConnecting:
		parts = append(parts, m.spinner.View()+" Connecting...")
	case state.PhaseConnected:
		parts = append(parts, "Connected, waiting for the server...")
	case state.PhaseErrored:
		parts = append(parts, errorStyle.Render("Error: "+humanizeConnectError(st.Message)))
	}

	if m.validation != "" {
		parts = append(parts, errorStyle.Render(m.validation))
	} else if m.state.ErrorMessage != "" && m.state.ConnectionStatus.Phase != state.PhaseErrored {
		parts = append(parts, m.state.ErrorMessage)
	}

	return strings.Join(parts, "\n")
}

func renderPage(title, data, status, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(strings.TrimRight(data, "\n"))
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	if status != "" {
		b.WriteString("\n")
		b.WriteString(status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}
