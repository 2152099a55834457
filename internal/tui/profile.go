package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/avelichko/go-cms-client/models"
)

type profileModel struct {
	user    *models.User
	loading bool
	status  string

	editing    bool
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProfileModel() profileModel {
	return profileModel{loading: true}
}

func (m profileModel) startEditing() profileModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40
	email.Focus()

	firstName := textinput.New()
	firstName.Placeholder = "first name"
	firstName.CharLimit = 100
	firstName.Width = 40

	lastName := textinput.New()
	lastName.Placeholder = "last name"
	lastName.CharLimit = 100
	lastName.Width = 40

	if m.user != nil {
		email.SetValue(m.user.Email)
		firstName.SetValue(m.user.FirstName)
		lastName.SetValue(m.user.LastName)
	}

	m.editing = true
	m.focus = 0
	m.errMsg = ""
	m.inputs = []textinput.Model{email, firstName, lastName}
	return m
}

// update builds the partial payload: only fields that differ from the
// current record are sent.
func (m profileModel) update() models.ProfileUpdate {
	var upd models.ProfileUpdate
	if m.user == nil {
		return upd
	}

	if v := strings.TrimSpace(m.inputs[0].Value()); v != m.user.Email {
		upd.Email = &v
	}
	if v := strings.TrimSpace(m.inputs[1].Value()); v != m.user.FirstName {
		upd.FirstName = &v
	}
	if v := strings.TrimSpace(m.inputs[2].Value()); v != m.user.LastName {
		upd.LastName = &v
	}
	return upd
}

func (m profileModel) View() string {
	if m.loading {
		return titleStyle.Render("Profile") + "\n\nLoading...\n"
	}
	if m.editing {
		return m.editView()
	}

	out := titleStyle.Render("Profile") + "\n\n"
	if m.user != nil {
		out += fmt.Sprintf("Username:   %s\n", m.user.Username)
		out += fmt.Sprintf("Email:      %s\n", m.user.Email)
		out += fmt.Sprintf("First name: %s\n", valueOrDash(m.user.FirstName))
		out += fmt.Sprintf("Last name:  %s\n", valueOrDash(m.user.LastName))
		if m.user.IsAdmin {
			out += "Role:       admin\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("e edit  p change password  esc back")
	return out
}

func (m profileModel) editView() string {
	labels := []string{"Email      ", "First name ", "Last name  "}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Edit profile"))
	b.WriteString("\n\n")
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString("│ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel  tab next field  enter save"))
	return b.String()
}

func (m profileModel) focusNext() profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m profileModel) focusPrev() profileModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
