// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package session owns the client-side authentication state: the current
// user, the stored token pair, and every operation against the auth REST
// API. It is the only writer of the token store; the transport layer reads
// the access-token slot on its own.
//
// The current-user publication is observable through Subscribe. Every
// state transition (startup load, login, registration, profile update,
// logout) notifies subscribers synchronously before the triggering
// operation returns, so an observer notified of success never reads a
// stale state afterwards.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/avelichko/go-cms-client/internal/adapter"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/store"
	"github.com/avelichko/go-cms-client/internal/validators"
	"github.com/avelichko/go-cms-client/models"
)

// AuthOutcome is the caller-facing result of login and registration.
// OK=false with a Message is an application-level refusal (wrong password,
// taken username); the session state is untouched in that case.
type AuthOutcome struct {
	OK      bool
	Message string
	User    *models.User
}

// Subscriber receives the current user on every publication. A nil user
// means the session is unauthenticated.
type Subscriber func(*models.User)

// Manager owns the session state. Construct it with NewManager; the zero
// value is not usable.
type Manager struct {
	tokens    store.TokenStore
	api       adapter.AuthAPI
	validator validators.Validator
	logger    *logger.Logger

	mu          sync.RWMutex
	current     *models.User
	subscribers map[int64]Subscriber
	nextSubID   int64
}

// NewManager constructs the session manager and loads the cached user from
// the token store. A malformed cached value is logged and discarded; the
// session then starts unauthenticated. No network calls are made here.
func NewManager(tokens store.TokenStore, api adapter.AuthAPI, validator validators.Validator, log *logger.Logger) *Manager {
	m := &Manager{
		tokens:      tokens,
		api:         api,
		validator:   validator,
		logger:      log,
		subscribers: make(map[int64]Subscriber),
	}

	m.loadUserFromStorage()

	return m
}

func (m *Manager) loadUserFromStorage() {
	raw, err := m.tokens.Get(context.Background(), store.SlotCurrentUser)
	if err != nil {
		if !errors.Is(err, store.ErrSlotNotFound) {
			m.logger.Err(err).Msg("error reading cached user")
		}
		return
	}

	var user models.User
	if err = json.Unmarshal([]byte(raw), &user); err != nil {
		m.logger.Err(err).Msg("discarding malformed cached user")
		return
	}

	m.publish(&user)
}

// Login authenticates against the auth API. An identifier containing "@"
// is sent as an email, otherwise as a username. On success both tokens and
// the user profile are persisted and the new user is published before the
// outcome is returned.
func (m *Manager) Login(ctx context.Context, identifier, password string) (AuthOutcome, error) {
	req := models.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Username = identifier
	}

	resp, err := m.api.Login(ctx, req)
	if err != nil {
		return AuthOutcome{}, err
	}

	return m.settleAuthResponse(ctx, resp)
}

// Register creates a new account. A successful registration yields an
// authenticated session identical to Login's postcondition. The payload is
// validated locally before the network call.
func (m *Manager) Register(ctx context.Context, req models.RegisterRequest) (AuthOutcome, error) {
	if err := m.validator.Validate(ctx, req); err != nil {
		return AuthOutcome{}, err
	}

	resp, err := m.api.Register(ctx, req)
	if err != nil {
		return AuthOutcome{}, err
	}

	return m.settleAuthResponse(ctx, resp)
}

// settleAuthResponse applies the shared login/registration postcondition:
// a success envelope carrying an access token establishes the session; a
// refusal is handed back without touching local state.
func (m *Manager) settleAuthResponse(ctx context.Context, resp models.AuthResponse) (AuthOutcome, error) {
	if !resp.Success || resp.AccessToken == "" {
		return AuthOutcome{OK: false, Message: resp.Message}, nil
	}

	if err := m.handleAuthSuccess(ctx, resp); err != nil {
		return AuthOutcome{}, err
	}

	return AuthOutcome{OK: true, Message: resp.Message, User: resp.User}, nil
}

func (m *Manager) handleAuthSuccess(ctx context.Context, resp models.AuthResponse) error {
	if err := m.tokens.Set(ctx, store.SlotAccessToken, resp.AccessToken); err != nil {
		return err
	}
	if resp.RefreshToken != "" {
		if err := m.tokens.Set(ctx, store.SlotRefreshToken, resp.RefreshToken); err != nil {
			return err
		}
	}
	if resp.User != nil {
		if err := m.cacheUser(ctx, resp.User); err != nil {
			return err
		}
		m.publish(resp.User)
	}

	return nil
}

func (m *Manager) cacheUser(ctx context.Context, user *models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	return m.tokens.Set(ctx, store.SlotCurrentUser, string(raw))
}

// Logout invalidates the refresh token server-side and clears all local
// session state. The local clear happens regardless of the remote outcome:
// a network failure during logout must never leave the client appearing
// authenticated. The remote error is logged, not returned.
func (m *Manager) Logout(ctx context.Context) error {
	refreshToken, err := m.tokens.Get(ctx, store.SlotRefreshToken)
	if err != nil && !errors.Is(err, store.ErrSlotNotFound) {
		m.logger.Err(err).Msg("error reading refresh token during logout")
	}

	if remoteErr := m.api.Logout(ctx, refreshToken); remoteErr != nil {
		m.logger.Err(remoteErr).Msg("remote logout failed, clearing local session anyway")
	}

	if err = m.tokens.ClearAll(ctx); err != nil {
		return err
	}

	m.publish(nil)
	return nil
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. On success only the access-token slot is overwritten.
func (m *Manager) RefreshAccessToken(ctx context.Context) error {
	refreshToken, err := m.tokens.Get(ctx, store.SlotRefreshToken)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return ErrNoRefreshToken
		}
		return err
	}

	resp, err := m.api.Refresh(ctx, refreshToken)
	if err != nil {
		return err
	}
	if !resp.Success || resp.AccessToken == "" {
		return ErrRefreshRejected
	}

	return m.tokens.Set(ctx, store.SlotAccessToken, resp.AccessToken)
}

// GetProfile fetches the account record from the auth API and, on success,
// re-publishes and re-caches the current user.
func (m *Manager) GetProfile(ctx context.Context) (*models.User, error) {
	resp, err := m.api.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, ErrProfileUnavailable
	}

	if err = m.cacheUser(ctx, resp.User); err != nil {
		return nil, err
	}
	m.publish(resp.User)

	return resp.User, nil
}

// UpdateProfile applies a partial profile mutation. On success the fresh
// server copy replaces both the published current user and its cache.
func (m *Manager) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	if err := m.validator.Validate(ctx, update); err != nil {
		return nil, err
	}

	resp, err := m.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	if !resp.Success || resp.User == nil {
		return nil, ErrProfileUnavailable
	}

	if err = m.cacheUser(ctx, resp.User); err != nil {
		return nil, err
	}
	m.publish(resp.User)

	return resp.User, nil
}

// ChangePassword forwards a password change to the auth API. No local
// state changes; other sessions may be invalidated server-side when
// req.LogoutAllDevices is set.
func (m *Manager) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (AuthOutcome, error) {
	if err := m.validator.Validate(ctx, req); err != nil {
		return AuthOutcome{}, err
	}

	resp, err := m.api.ChangePassword(ctx, req)
	if err != nil {
		return AuthOutcome{}, err
	}

	return AuthOutcome{OK: resp.Success, Message: resp.Message}, nil
}

// IsAuthenticated reports whether a non-empty access token is stored.
// The cached profile plays no part: token absence always means
// unauthenticated.
func (m *Manager) IsAuthenticated() bool {
	token, err := m.tokens.Get(context.Background(), store.SlotAccessToken)
	if err != nil {
		return false
	}

	return token != ""
}

// IsAdmin reports whether a current user is published with the admin flag
// set. Unknown state is never admin.
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current != nil && m.current.IsAdmin
}

// CurrentUser returns a copy of the published current user, or nil when
// unauthenticated.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}

	u := *m.current
	return &u
}

// Subscribe registers fn for current-user publications and immediately
// invokes it with the present state. The returned id cancels the
// subscription via Unsubscribe.
func (m *Manager) Subscribe(fn Subscriber) int64 {
	m.mu.Lock()
	m.nextSubID++
	id := m.nextSubID
	m.subscribers[id] = fn
	current := m.current
	m.mu.Unlock()

	fn(current)
	return id
}

// Unsubscribe removes a subscription. Unknown ids are ignored.
func (m *Manager) Unsubscribe(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.subscribers, id)
}

func (m *Manager) publish(user *models.User) {
	m.mu.Lock()
	m.current = user
	subs := make([]Subscriber, 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(user)
	}
}
