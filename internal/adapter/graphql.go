package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/avelichko/go-cms-client/internal/config"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/store"
	"github.com/avelichko/go-cms-client/internal/utils"
)

// graphQLRequest is the standard GraphQL POST body.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLResponse is the standard GraphQL response envelope. Data is kept
// raw so the caller decides the target shape.
type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

type graphQLClient struct {
	client   *utils.HTTPClient
	endpoint string
	tokens   store.TokenStore
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewGraphQLClient constructs a [GraphQLExecutor] bound to a single GraphQL
// endpoint URL. The same implementation serves both the articles endpoint
// and the external WordPress endpoint; they differ only in URL and in the
// queries sent through them.
//
// Returns an error if endpoint is empty or not a valid URL.
func NewGraphQLClient(endpoint string, apiCfg config.ClientAPI, tokens store.TokenStore, logger *logger.Logger) (GraphQLExecutor, error) {
	normalized, err := normalizeBaseURL(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid graphql endpoint: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(apiCfg.RequestTimeout)

	return &graphQLClient{
		client:   client,
		endpoint: normalized,
		tokens:   tokens,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}, nil
}

// Execute implements [GraphQLExecutor]. It POSTs the operation to the
// endpoint, distinguishes the three failure layers (transport, GraphQL
// errors array, empty data), and decodes the data object into out.
func (g *graphQLClient) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", g.ids.Generate()).
		SetBody(graphQLRequest{Query: query, Variables: variables})

	if token, err := g.tokens.Get(ctx, store.SlotAccessToken); err == nil && token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	} else if err != nil && !errors.Is(err, store.ErrSlotNotFound) {
		g.logger.Err(err).Msg("error reading access token, sending unauthenticated graphql request")
	}

	resp, err := req.Post(g.endpoint)
	if err != nil {
		return fmt.Errorf("graphql request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var gqlResp graphQLResponse
	if err = json.Unmarshal(resp.Body(), &gqlResp); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	if len(gqlResp.Errors) > 0 {
		messages := make([]string, 0, len(gqlResp.Errors))
		for _, e := range gqlResp.Errors {
			messages = append(messages, e.Message)
		}
		return fmt.Errorf("%w: %s", ErrGraphQLErrors, strings.Join(messages, "; "))
	}

	if len(gqlResp.Data) == 0 || string(gqlResp.Data) == "null" {
		return ErrEmptyData
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}

	return nil
}
