// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package articles

import (
	"context"

	"github.com/avelichko/go-cms-client/internal/adapter"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/models"
)

// WordPressService reads posts from the WordPress GraphQL bridge. The
// bridge is read-only and served from a separate endpoint, so it gets its
// own executor.
type WordPressService struct {
	gql    adapter.GraphQLExecutor
	logger *logger.Logger
}

// NewWordPressService builds the read-only WordPress facade.
func NewWordPressService(gql adapter.GraphQLExecutor, log *logger.Logger) *WordPressService {
	return &WordPressService{gql: gql, logger: log}
}

// ListPosts fetches up to limit posts. The bridge pads bulk results with
// null entries for posts it failed to resolve; those are dropped here so
// callers only ever see complete records.
func (s *WordPressService) ListPosts(ctx context.Context, limit int) ([]models.WordPressPost, error) {
	var payload struct {
		WordPressPosts []*models.WordPressPost `json:"wordpressPosts"`
	}
	err := s.gql.Execute(ctx, queryGetWordPressPosts, map[string]any{
		"limit": limit,
	}, &payload)
	if err != nil {
		return nil, err
	}

	posts := make([]models.WordPressPost, 0, len(payload.WordPressPosts))
	for _, post := range payload.WordPressPosts {
		if post == nil {
			continue
		}
		posts = append(posts, *post)
	}
	if dropped := len(payload.WordPressPosts) - len(posts); dropped > 0 {
		s.logger.Warn().Int("dropped", dropped).Msg("null entries in wordpress post list")
	}

	return posts, nil
}

// GetPost fetches a single post by its opaque string id. A missing post
// comes back as adapter.ErrEmptyData.
func (s *WordPressService) GetPost(ctx context.Context, postID string) (*models.WordPressPost, error) {
	var payload struct {
		WordPressPost *models.WordPressPost `json:"wordpressPost"`
	}
	err := s.gql.Execute(ctx, queryGetWordPressPost, map[string]any{
		"postId": postID,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if payload.WordPressPost == nil {
		return nil, adapter.ErrEmptyData
	}

	return payload.WordPressPost, nil
}
