package tui

import (
	"fmt"

	"github.com/avelichko/go-cms-client/models"
)

type articleDetailModel struct {
	article *models.Article
	loading bool
	status  string
}

func (m articleDetailModel) View(admin bool) string {
	if m.loading || m.article == nil {
		return titleStyle.Render("Article") + "\n\nLoading...\n"
	}

	a := m.article
	out := titleStyle.Render(a.Title) + "\n\n"
	if a.Author != "" {
		out += fmt.Sprintf("Author: %s\n", a.Author)
	}
	if a.PublishedDate != "" {
		out += fmt.Sprintf("Published: %s\n", a.PublishedDate)
	}
	if a.UpdatedAt != "" {
		out += fmt.Sprintf("Updated: %s\n", a.UpdatedAt)
	}
	out += "\n" + a.Content + "\n"

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "c copy  esc back"
	if admin {
		help = "e edit  d delete  c copy  esc back"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
