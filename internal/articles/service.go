// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package articles is the data-access facade over the two GraphQL
// endpoints: the CMS articles schema (reads and mutations) and the
// read-only WordPress bridge. The facade keeps no cache: watchers are a
// refetch registry, and every mutation re-executes the registered queries
// it affects so observers always see server state.
package articles

import (
	"context"
	"sync"

	"github.com/avelichko/go-cms-client/internal/adapter"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/validators"
	"github.com/avelichko/go-cms-client/models"
)

type listWatcher struct {
	limit  int
	offset int
	fn     func([]models.Article)
}

type detailWatcher struct {
	articleID int64
	fn        func(*models.Article)
}

// Service executes article queries and mutations. Construct with
// NewService; the zero value is not usable.
type Service struct {
	gql       adapter.GraphQLExecutor
	validator validators.Validator
	logger    *logger.Logger

	mu             sync.Mutex
	nextWatchID    int64
	listWatchers   map[int64]listWatcher
	detailWatchers map[int64]detailWatcher
}

// NewService builds the articles facade over the given executor.
func NewService(gql adapter.GraphQLExecutor, validator validators.Validator, log *logger.Logger) *Service {
	return &Service{
		gql:            gql,
		validator:      validator,
		logger:         log,
		listWatchers:   make(map[int64]listWatcher),
		detailWatchers: make(map[int64]detailWatcher),
	}
}

// List fetches an article page. The summary field set omits content.
// Null entries in the bulk result are dropped before return, same as the
// WordPress reads.
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.Article, error) {
	var payload struct {
		Articles []*models.Article `json:"articles"`
	}
	err := s.gql.Execute(ctx, queryGetArticles, map[string]any{
		"limit":  limit,
		"offset": offset,
	}, &payload)
	if err != nil {
		return nil, err
	}

	articles := make([]models.Article, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if article == nil {
			continue
		}
		articles = append(articles, *article)
	}
	if dropped := len(payload.Articles) - len(articles); dropped > 0 {
		s.logger.Warn().Int("dropped", dropped).Msg("null entries in article list")
	}

	return articles, nil
}

// Get fetches a single article with its content. A missing article comes
// back as adapter.ErrEmptyData from the executor.
func (s *Service) Get(ctx context.Context, articleID int64) (*models.Article, error) {
	var payload struct {
		Article *models.Article `json:"article"`
	}
	err := s.gql.Execute(ctx, queryGetArticle, map[string]any{
		"articleId": articleID,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.Article == nil {
		return nil, adapter.ErrEmptyData
	}

	return payload.Article, nil
}

// WatchList registers fn for list refetches and delivers the current page
// immediately. The returned id cancels the watch via Unwatch.
func (s *Service) WatchList(ctx context.Context, limit, offset int, fn func([]models.Article)) (int64, error) {
	page, err := s.List(ctx, limit, offset)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.nextWatchID++
	id := s.nextWatchID
	s.listWatchers[id] = listWatcher{limit: limit, offset: offset, fn: fn}
	s.mu.Unlock()

	fn(page)
	return id, nil
}

// WatchArticle registers fn for detail refetches of one article and
// delivers the current record immediately.
func (s *Service) WatchArticle(ctx context.Context, articleID int64, fn func(*models.Article)) (int64, error) {
	article, err := s.Get(ctx, articleID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.nextWatchID++
	id := s.nextWatchID
	s.detailWatchers[id] = detailWatcher{articleID: articleID, fn: fn}
	s.mu.Unlock()

	fn(article)
	return id, nil
}

// Unwatch removes a watch registered by WatchList or WatchArticle.
// Unknown ids are ignored.
func (s *Service) Unwatch(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.listWatchers, id)
	delete(s.detailWatchers, id)
}

// Create publishes a new article. The draft needs title and content; it
// is validated locally first. After the mutation completes, registered
// list watches are refetched.
func (s *Service) Create(ctx context.Context, draft models.ArticleDraft) (models.MutationResponse, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.MutationResponse{}, err
	}

	variables := map[string]any{
		"title":   draft.Title,
		"content": draft.Content,
	}
	if draft.Author != "" {
		variables["author"] = draft.Author
	}

	var payload struct {
		CreateArticle models.MutationResponse `json:"createArticle"`
	}
	if err := s.gql.Execute(ctx, mutationCreateArticle, variables, &payload); err != nil {
		return models.MutationResponse{}, err
	}

	s.refetch(ctx, 0)
	return payload.CreateArticle, nil
}

// Update applies a partial article mutation; empty draft fields are left
// untouched server-side. After the mutation completes, registered list
// watches and detail watches on this article are refetched.
func (s *Service) Update(ctx context.Context, articleID int64, draft models.ArticleDraft) (models.MutationResponse, error) {
	fields := draft.SetFields()
	if len(fields) == 0 {
		return models.MutationResponse{}, ErrNothingToUpdate
	}
	if err := s.validator.Validate(ctx, draft, fields...); err != nil {
		return models.MutationResponse{}, err
	}

	variables := map[string]any{"articleId": articleID}
	if draft.Title != "" {
		variables["title"] = draft.Title
	}
	if draft.Content != "" {
		variables["content"] = draft.Content
	}
	if draft.Author != "" {
		variables["author"] = draft.Author
	}

	var payload struct {
		UpdateArticle models.MutationResponse `json:"updateArticle"`
	}
	if err := s.gql.Execute(ctx, mutationUpdateArticle, variables, &payload); err != nil {
		return models.MutationResponse{}, err
	}

	s.refetch(ctx, articleID)
	return payload.UpdateArticle, nil
}

// Delete removes an article. After the mutation completes, registered
// list watches are refetched.
func (s *Service) Delete(ctx context.Context, articleID int64) (models.MutationResponse, error) {
	var payload struct {
		DeleteArticle models.MutationResponse `json:"deleteArticle"`
	}
	err := s.gql.Execute(ctx, mutationDeleteArticle, map[string]any{
		"articleId": articleID,
	}, &payload)
	if err != nil {
		return models.MutationResponse{}, err
	}

	s.refetch(ctx, 0)
	return payload.DeleteArticle, nil
}

// refetch re-executes registered queries after a mutation: every list
// watch, plus detail watches matching articleID when it is non-zero. A
// failed refetch is logged and skipped so one broken watch cannot fail
// the mutation that triggered it.
func (s *Service) refetch(ctx context.Context, articleID int64) {
	s.mu.Lock()
	lists := make([]listWatcher, 0, len(s.listWatchers))
	for _, w := range s.listWatchers {
		lists = append(lists, w)
	}
	details := make([]detailWatcher, 0, len(s.detailWatchers))
	for _, w := range s.detailWatchers {
		if articleID != 0 && w.articleID == articleID {
			details = append(details, w)
		}
	}
	s.mu.Unlock()

	for _, w := range lists {
		page, err := s.List(ctx, w.limit, w.offset)
		if err != nil {
			s.logger.Err(err).Msg("list refetch failed")
			continue
		}
		w.fn(page)
	}

	for _, w := range details {
		article, err := s.Get(ctx, w.articleID)
		if err != nil {
			s.logger.Err(err).Msg("article refetch failed")
			continue
		}
		w.fn(article)
	}
}
