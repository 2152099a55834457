// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package tui is the terminal front end of the CMS client, built on
// Bubble Tea. Screens are sub-models dispatched by appModel; navigation
// between them goes through the access guard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avelichko/go-cms-client/internal/articles"
	"github.com/avelichko/go-cms-client/internal/guard"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/session"
	"github.com/avelichko/go-cms-client/models"
)

// Services bundles everything the screens call into.
type Services struct {
	Session   *session.Manager
	Articles  *articles.Service
	WordPress *articles.WordPressService
	Guard     *guard.Guard
}

type TUI struct {
	services *Services
}

func New(services *Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services}, nil
}

// Run drives the interactive session until the user quits. Current-user
// publications from the session manager are forwarded into the program as
// messages so the header stays accurate after background refreshes.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	model.home.user = t.services.Session.CurrentUser()

	p := tea.NewProgram(model, tea.WithAltScreen())

	subID := t.services.Session.Subscribe(func(user *models.User) {
		// Send blocks until the program loop picks the message up, and
		// publications fire synchronously inside service calls.
		go p.Send(userChangedMsg{user: user})
	})
	defer t.services.Session.Unsubscribe(subID)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if errors.Is(result.err, ErrUserQuit) {
		return nil
	}
	return result.err
}
