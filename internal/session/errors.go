// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package session

import "errors"

var (
	// ErrNoRefreshToken is returned by RefreshAccessToken when no refresh
	// token is stored.
	ErrNoRefreshToken = errors.New("no refresh token stored")

	// ErrRefreshRejected is returned when the auth API refused the token
	// exchange.
	ErrRefreshRejected = errors.New("refresh token rejected")

	// ErrProfileUnavailable is returned when a profile operation succeeded
	// at the transport level but carried no user record.
	ErrProfileUnavailable = errors.New("profile unavailable")
)
