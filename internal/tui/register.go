package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newRegisterModel() registerModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 50
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password (8+ chars, letters and digits)"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	firstName := textinput.New()
	firstName.Placeholder = "first name (optional)"
	firstName.CharLimit = 100
	firstName.Width = 40

	lastName := textinput.New()
	lastName.Placeholder = "last name (optional)"
	lastName.CharLimit = 100
	lastName.Width = 40

	return registerModel{
		inputs: []textinput.Model{username, email, password, repeat, firstName, lastName},
	}
}

func (m registerModel) View() string {
	labels := []string{
		"Username   ",
		"Email      ",
		"Password   ",
		"Repeat     ",
		"First name ",
		"Last name  ",
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Register"))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
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

func (m registerModel) focusNext() registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m registerModel) focusPrev() registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
