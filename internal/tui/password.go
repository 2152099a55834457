package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type passwordModel struct {
	inputs     []textinput.Model
	focus      int
	logoutAll  bool
	submitting bool
	errMsg     string
	status     string
}

func newPasswordModel() passwordModel {
	current := textinput.New()
	current.Placeholder = "current password"
	current.CharLimit = 256
	current.Width = 40
	current.EchoMode = textinput.EchoPassword
	current.EchoCharacter = '*'
	current.Focus()

	newPass := textinput.New()
	newPass.Placeholder = "new password (8+ chars, letters and digits)"
	newPass.CharLimit = 256
	newPass.Width = 40
	newPass.EchoMode = textinput.EchoPassword
	newPass.EchoCharacter = '*'

	repeat := textinput.New()
	repeat.Placeholder = "repeat new password"
	repeat.CharLimit = 256
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	return passwordModel{inputs: []textinput.Model{current, newPass, repeat}}
}

func (m passwordModel) View() string {
	labels := []string{"Current  ", "New      ", "Repeat   "}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Change password"))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	checkbox := "[ ]"
	if m.logoutAll {
		checkbox = "[x]"
	}
	b.WriteString("\n")
	b.WriteString(checkbox)
	b.WriteString(" log out other devices (space to toggle)\n")

	if m.submitting {
		b.WriteString("\n[Changing...]\n")
	} else {
		b.WriteString("\n[Change]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc back  tab next field  enter submit"))
	return b.String()
}

func (m passwordModel) focusNext() passwordModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m passwordModel) focusPrev() passwordModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
