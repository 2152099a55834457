package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	// returnTo is the route the guard bounced the user from; after a
	// successful login navigation resumes there.
	returnTo string
}

func newLoginModel() loginModel {
	identifier := textinput.New()
	identifier.Placeholder = "username or email"
	identifier.CharLimit = 120
	identifier.Width = 40
	identifier.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{identifier, password}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("Identifier │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back  tab next field  enter submit"))
	return b.String()
}

func (m loginModel) focusNext() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) focusPrev() loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
