package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/avelichko/go-cms-client/models"
)

const articlesPageSize = 10

type articlesListModel struct {
	items   []models.Article
	idx     int
	offset  int
	loading bool
	spinner spinner.Model
	status  string
}

func newArticlesListModel() articlesListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return articlesListModel{spinner: s, loading: true}
}

func (m articlesListModel) current() (models.Article, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Article{}, false
	}
	return m.items[m.idx], true
}

func (m articlesListModel) View(authenticated bool) string {
	header := titleStyle.Render("Articles")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No articles\n"
	} else {
		for i, article := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			author := article.Author
			if author == "" {
				author = "unknown"
			}
			out += fmt.Sprintf("%s#%-4d %s  (%s)\n", cursor, article.ID, article.Title, author)
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "enter open  r reload  esc back  q quit"
	if authenticated {
		help = "enter open  n new  r reload  esc back  q quit"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
