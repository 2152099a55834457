package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/avelichko/go-cms-client/models"
)

// articleFormModel is shared between the create and edit screens. In edit
// mode articleID is non-zero and inputs are pre-filled with the current
// record.
type articleFormModel struct {
	title      textinput.Model
	author     textinput.Model
	content    textarea.Model
	focus      int
	submitting bool
	errMsg     string

	articleID int64
}

func newArticleFormModel(article *models.Article) articleFormModel {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200
	title.Width = 60
	title.Focus()

	author := textinput.New()
	author.Placeholder = "author (optional)"
	author.CharLimit = 100
	author.Width = 60

	content := textarea.New()
	content.Placeholder = "content"
	content.SetWidth(60)
	content.SetHeight(10)

	m := articleFormModel{title: title, author: author, content: content}
	if article != nil {
		m.articleID = article.ID
		m.title.SetValue(article.Title)
		m.author.SetValue(article.Author)
		m.content.SetValue(article.Content)
	}
	return m
}

func (m articleFormModel) editing() bool { return m.articleID != 0 }

func (m articleFormModel) draft() models.ArticleDraft {
	return models.ArticleDraft{
		Title:   strings.TrimSpace(m.title.Value()),
		Content: m.content.Value(),
		Author:  strings.TrimSpace(m.author.Value()),
	}
}

func (m articleFormModel) View() string {
	heading := "New article"
	if m.editing() {
		heading = "Edit article"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString("Title  │ [")
	b.WriteString(m.title.View())
	b.WriteString("]\n")
	b.WriteString("Author │ [")
	b.WriteString(m.author.View())
	b.WriteString("]\n\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

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
	b.WriteString(helpStyle.Render("esc cancel  tab next field  ctrl+s save"))
	return b.String()
}

const articleFormFields = 3

func (m articleFormModel) focusNext() articleFormModel {
	m.blur()
	m.focus = (m.focus + 1) % articleFormFields
	m.focusCurrent()
	return m
}

func (m articleFormModel) focusPrev() articleFormModel {
	m.blur()
	m.focus = (m.focus - 1 + articleFormFields) % articleFormFields
	m.focusCurrent()
	return m
}

func (m *articleFormModel) blur() {
	m.title.Blur()
	m.author.Blur()
	m.content.Blur()
}

func (m *articleFormModel) focusCurrent() {
	switch m.focus {
	case 0:
		m.title.Focus()
	case 1:
		m.author.Focus()
	case 2:
		m.content.Focus()
	}
}
