package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/avelichko/go-cms-client/internal/config"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/store"
	"github.com/avelichko/go-cms-client/internal/utils"
	"github.com/avelichko/go-cms-client/models"
	"github.com/go-resty/resty/v2"
)

type httpAuthAdapter struct {
	client *utils.HTTPClient
	tokens store.TokenStore
	ids    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHTTPAuthAdapter constructs an HTTP/REST implementation of [AuthAPI].
// It normalises and validates the base URL from apiCfg.Address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. The token store is consulted on every request; the
// adapter itself never caches credentials.
//
// Returns an error if apiCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPAuthAdapter(apiCfg config.ClientAPI, tokens store.TokenStore, logger *logger.Logger) (AuthAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(apiCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid auth api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(apiCfg.RequestTimeout)

	return &httpAuthAdapter{client: client, tokens: tokens, ids: utils.NewUUIDGenerator(), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [AuthAPI]. It POSTs the registration payload to
// POST /api/auth/register and returns the decoded envelope. Token storage
// is the session layer's responsibility, not the adapter's.
func (h *httpAuthAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.postEnvelope(ctx, "/api/auth/register", req, false)
}

// Login implements [AuthAPI]. It POSTs the credentials to
// POST /api/auth/login. A 4xx response carrying a decodable envelope is
// returned as an application-level refusal (Success=false, nil error) so
// the caller can surface the server message without branching on status
// codes.
func (h *httpAuthAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.postEnvelope(ctx, "/api/auth/login", req, false)
}

// Logout implements [AuthAPI]. It POSTs the refresh token to
// POST /api/auth/logout with the bearer header attached when available.
// The caller clears local session state regardless of the outcome.
func (h *httpAuthAdapter) Logout(ctx context.Context, refreshToken string) error {
	resp, err := h.request(ctx, true).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RefreshRequest{RefreshToken: refreshToken}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Refresh implements [AuthAPI]. It exchanges the refresh token for a new
// access token via POST /api/auth/refresh.
func (h *httpAuthAdapter) Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error) {
	return h.postEnvelope(ctx, "/api/auth/refresh", models.RefreshRequest{RefreshToken: refreshToken}, false)
}

// GetProfile implements [AuthAPI]. It GETs the current account record from
// GET /api/auth/me using the stored access token as bearer credential.
func (h *httpAuthAdapter) GetProfile(ctx context.Context) (models.AuthResponse, error) {
	var envelope models.AuthResponse

	resp, err := h.request(ctx, true).
		SetResult(&envelope).
		SetError(&envelope).
		Get("/api/auth/me")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("get profile request: %w", err)
	}

	return finishEnvelope(envelope, resp)
}

// UpdateProfile implements [AuthAPI]. It PUTs a partial profile mutation to
// PUT /api/auth/me using the stored access token as bearer credential.
func (h *httpAuthAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.AuthResponse, error) {
	var envelope models.AuthResponse

	resp, err := h.request(ctx, true).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&envelope).
		SetError(&envelope).
		Put("/api/auth/me")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("update profile request: %w", err)
	}

	return finishEnvelope(envelope, resp)
}

// ChangePassword implements [AuthAPI]. It forwards the password change to
// POST /api/auth/change-password using the stored access token.
func (h *httpAuthAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.AuthResponse, error) {
	return h.postEnvelope(ctx, "/api/auth/change-password", req, true)
}

func (h *httpAuthAdapter) postEnvelope(ctx context.Context, path string, body any, authed bool) (models.AuthResponse, error) {
	var envelope models.AuthResponse

	resp, err := h.request(ctx, authed).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&envelope).
		SetError(&envelope).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("auth request %s: %w", path, err)
	}

	return finishEnvelope(envelope, resp)
}

// finishEnvelope resolves the two failure layers: an error status with a
// decodable envelope is an application-level refusal and is handed back to
// the caller as data; anything else maps to a transport sentinel.
func finishEnvelope(envelope models.AuthResponse, resp *resty.Response) (models.AuthResponse, error) {
	if resp.IsError() && !envelope.Success && envelope.Message != "" {
		return envelope, nil
	}
	if err := mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return envelope, nil
}

// request prepares an outgoing call: context, request id, and, when authed
// is set and a token exists in the store, the Authorization bearer header.
// A missing token omits the header entirely.
func (h *httpAuthAdapter) request(ctx context.Context, authed bool) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", h.ids.Generate())

	if !authed {
		return req
	}

	token, err := h.tokens.Get(ctx, store.SlotAccessToken)
	if err != nil {
		if !errors.Is(err, store.ErrSlotNotFound) {
			h.logger.Err(err).Msg("error reading access token, sending unauthenticated request")
		}
		return req
	}
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}

	return req
}
