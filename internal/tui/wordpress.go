package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/avelichko/go-cms-client/models"
)

const wordpressPageSize = 10

type wordpressListModel struct {
	items   []models.WordPressPost
	idx     int
	loading bool
	spinner spinner.Model
}

func newWordPressListModel() wordpressListModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return wordpressListModel{spinner: s, loading: true}
}

func (m wordpressListModel) current() (models.WordPressPost, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.WordPressPost{}, false
	}
	return m.items[m.idx], true
}

func (m wordpressListModel) View() string {
	header := titleStyle.Render("WordPress posts")
	if m.loading {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if m.loading {
		out += "Loading...\n"
	} else if len(m.items) == 0 {
		out += "No posts\n"
	} else {
		for i, post := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s%s  (%s, %s)\n", cursor, post.Title, post.AuthorName, post.Date)
		}
	}

	out += "\n" + helpStyle.Render("enter open  r reload  esc back  q quit")
	return out
}

type wordpressDetailModel struct {
	post    *models.WordPressPost
	loading bool
}

func (m wordpressDetailModel) View() string {
	if m.loading || m.post == nil {
		return titleStyle.Render("WordPress post") + "\n\nLoading...\n"
	}

	p := m.post
	out := titleStyle.Render(p.Title) + "\n\n"
	out += fmt.Sprintf("Author: %s\n", p.AuthorName)
	out += fmt.Sprintf("Date:   %s\n", p.Date)
	out += "\n" + p.Content + "\n"
	out += "\n" + helpStyle.Render("esc back")
	return out
}
