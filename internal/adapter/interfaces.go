// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package adapter provides transport-layer abstractions for communicating
// with the CMS backend services.
//
// Two abstractions live here: [AuthAPI], the REST client for the
// /api/auth/* endpoints, and [GraphQLExecutor], the generic client used for
// both the articles GraphQL endpoint and the external WordPress GraphQL
// endpoint. Both read the current access token from the token store at
// request time and attach it as an Authorization bearer header when present.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/avelichko/go-cms-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// AuthAPI defines the client contract for the auth REST API. Every method
// maps to one endpoint and returns the decoded JSON envelope. An envelope
// with Success=false and a nil error is an application-level refusal; a
// non-nil error is a transport or server failure.
type AuthAPI interface {
	// Register creates a new account via POST /api/auth/register.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates via POST /api/auth/login. The request carries
	// either a username or an email, never both.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Logout invalidates refreshToken server-side via POST
	// /api/auth/logout. Callers must clear local state regardless of the
	// returned error.
	Logout(ctx context.Context, refreshToken string) error

	// Refresh exchanges refreshToken for a new access token via
	// POST /api/auth/refresh.
	Refresh(ctx context.Context, refreshToken string) (models.AuthResponse, error)

	// GetProfile fetches the current account via GET /api/auth/me.
	// Requires a stored access token.
	GetProfile(ctx context.Context) (models.AuthResponse, error)

	// UpdateProfile applies a partial profile mutation via
	// PUT /api/auth/me. Requires a stored access token.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.AuthResponse, error)

	// ChangePassword forwards a password change via
	// POST /api/auth/change-password. Requires a stored access token.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.AuthResponse, error)
}

// GraphQLExecutor executes a single GraphQL operation and decodes the
// "data" object into out. Implementations must return [ErrGraphQLErrors]
// when the response carries a non-empty errors array and [ErrEmptyData]
// when no data object is present; the two conditions are distinguishable
// from transport failures via [errors.Is].
type GraphQLExecutor interface {
	Execute(ctx context.Context, query string, variables map[string]any, out any) error
}
