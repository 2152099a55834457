package tui

import (
	"github.com/avelichko/go-cms-client/internal/session"
	"github.com/avelichko/go-cms-client/models"
)

type authResultMsg struct {
	outcome session.AuthOutcome
	err     error
}

type loggedOutMsg struct {
	err error
}

type userChangedMsg struct {
	user *models.User
}

type articlesLoadedMsg struct {
	articles []models.Article
	err      error
}

type articleLoadedMsg struct {
	article *models.Article
	err     error
}

type mutationDoneMsg struct {
	resp models.MutationResponse
	err  error
}

type postsLoadedMsg struct {
	posts []models.WordPressPost
	err   error
}

type postLoadedMsg struct {
	post *models.WordPressPost
	err  error
}

type profileLoadedMsg struct {
	user *models.User
	err  error
}

type profileSavedMsg struct {
	user *models.User
	err  error
}

type passwordChangedMsg struct {
	outcome session.AuthOutcome
	err     error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
