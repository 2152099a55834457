package tui

import (
	"fmt"
	"strings"

	"github.com/avelichko/go-cms-client/internal/guard"
	"github.com/avelichko/go-cms-client/models"
)

type menuItem struct {
	label string
	route string
}

type homeModel struct {
	idx  int
	user *models.User
}

func newHomeModel() homeModel {
	return homeModel{}
}

// items builds the menu for the current session. Guarded entries stay
// visible when logged out; selecting one runs through the access guard
// and lands on the login screen.
func (m homeModel) items(authenticated bool) []menuItem {
	items := []menuItem{
		{label: "Articles", route: guard.RouteArticles},
		{label: "WordPress posts", route: guard.RouteWordPress},
	}

	if authenticated {
		items = append(items,
			menuItem{label: "New article", route: guard.RouteArticleCreate},
			menuItem{label: "Profile", route: guard.RouteProfile},
		)
	} else {
		items = append(items,
			menuItem{label: "Log in", route: guard.RouteLogin},
			menuItem{label: "Register", route: guard.RouteRegister},
		)
	}

	return items
}

func (m homeModel) View(authenticated bool) string {
	out := titleStyle.Render("CMS Client") + "\n\n"

	if m.user != nil {
		out += fmt.Sprintf("Signed in as %s", m.user.DisplayName())
		if m.user.IsAdmin {
			out += "  (admin)"
		}
		out += "\n\n"
	}

	for i, item := range m.items(authenticated) {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item.label + "\n"
	}

	help := "enter select  q quit"
	if authenticated {
		help = "enter select  x log out  q quit"
	}
	out += "\n" + helpStyle.Render(strings.TrimSpace(help))

	return out
}
