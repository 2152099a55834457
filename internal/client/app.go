// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package client assembles the CMS client application: configuration,
// storage, transport adapters, the session manager, the data facades, the
// background refresh job and the terminal UI.
package client

import (
	"context"
	"fmt"

	"github.com/avelichko/go-cms-client/internal/adapter"
	"github.com/avelichko/go-cms-client/internal/articles"
	"github.com/avelichko/go-cms-client/internal/config"
	"github.com/avelichko/go-cms-client/internal/guard"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/session"
	"github.com/avelichko/go-cms-client/internal/store"
	"github.com/avelichko/go-cms-client/internal/tui"
	"github.com/avelichko/go-cms-client/internal/validators"
	"github.com/avelichko/go-cms-client/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	services *tui.Services
	ui       *tui.TUI
	refresh  *workers.RefreshJob
	logger   *logger.Logger
}

// NewApp wires the full dependency graph from a validated config.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	authAPI, err := adapter.NewHTTPAuthAdapter(cfg.API, storages.Sessions, log)
	if err != nil {
		return nil, fmt.Errorf("create auth adapter: %w", err)
	}

	articlesGQL, err := adapter.NewGraphQLClient(cfg.GraphQL.ArticlesURL, cfg.API, storages.Sessions, log)
	if err != nil {
		return nil, fmt.Errorf("create articles graphql client: %w", err)
	}

	validator := validators.NewInputValidator()
	sessions := session.NewManager(storages.Sessions, authAPI, validator, log)
	articlesSvc := articles.NewService(articlesGQL, validator, log)

	var wordpressSvc *articles.WordPressService
	if cfg.GraphQL.WordPressURL != "" {
		wordpressGQL, err := adapter.NewGraphQLClient(cfg.GraphQL.WordPressURL, cfg.API, storages.Sessions, log)
		if err != nil {
			return nil, fmt.Errorf("create wordpress graphql client: %w", err)
		}
		wordpressSvc = articles.NewWordPressService(wordpressGQL, log)
	}

	services := &tui.Services{
		Session:   sessions,
		Articles:  articlesSvc,
		WordPress: wordpressSvc,
		Guard:     guard.NewGuard(sessions),
	}

	ui, err := tui.New(services, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		services: services,
		ui:       ui,
		refresh:  workers.NewRefreshJob(sessions, log),
		logger:   log,
	}, nil
}

// Run starts the background refresh job and hands the terminal to the UI
// until the user quits.
func (a *App) Run() error {
	ctx := context.Background()

	a.refresh.Start(ctx, a.cfg.Workers.RefreshInterval)
	defer a.refresh.Stop()

	return a.ui.Run(ctx)
}
