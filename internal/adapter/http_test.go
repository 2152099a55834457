// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avelichko/go-cms-client/internal/config"
	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/store"
	"github.com/avelichko/go-cms-client/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTokenStore is an in-memory TokenStore used to drive the adapters in
// tests without touching SQLite.
type memTokenStore struct {
	slots map[string]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{slots: make(map[string]string)}
}

func (m *memTokenStore) Set(_ context.Context, slot, value string) error {
	m.slots[slot] = value
	return nil
}

func (m *memTokenStore) Get(_ context.Context, slot string) (string, error) {
	v, ok := m.slots[slot]
	if !ok {
		return "", store.ErrSlotNotFound
	}
	return v, nil
}

func (m *memTokenStore) Clear(_ context.Context, slot string) error {
	delete(m.slots, slot)
	return nil
}

func (m *memTokenStore) ClearAll(_ context.Context) error {
	m.slots = make(map[string]string)
	return nil
}

// mintTestToken signs a realistic short JWT so Authorization headers in
// tests look like production traffic.
func mintTestToken(t *testing.T, sub string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte("test-sign-key"))
	require.NoError(t, err)
	return signed
}

// newTestAdapter creates an httpAuthAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string, tokens store.TokenStore) *httpAuthAdapter {
	t.Helper()
	apiCfg := config.ClientAPI{Address: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPAuthAdapter(apiCfg, tokens, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAuthAdapter)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Empty(t, req.Email)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success:      true,
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			TokenType:    "bearer",
			User:         &models.User{ID: 1, Username: "alice", IsAdmin: true, IsActive: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "access-token", got.AccessToken)
	assert.Equal(t, "refresh-token", got.RefreshToken)
	require.NotNil(t, got.User)
	assert.True(t, got.User.IsAdmin)
}

func TestLogin_EmailPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.com", req.Email)
		assert.Empty(t, req.Username)

		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: true, AccessToken: "t"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
}

func TestLogin_ApplicationFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: false, Message: "invalid credentials"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong"})

	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "invalid credentials", got.Message)
}

func TestLogin_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal server error"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bob", req.Username)
		assert.Equal(t, "Bob", req.FirstName)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success:     true,
			AccessToken: "access-token",
			User:        &models.User{ID: 2, Username: "bob"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.Register(context.Background(), models.RegisterRequest{
		Username: "bob", Email: "bob@example.com", Password: "pw123456", FirstName: "Bob",
	})

	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, int64(2), got.User.ID)
}

// ── Logout ──────────────────────────────────────────────────────────────────

func TestLogout_SendsRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/logout", r.URL.Path)

		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "the-refresh-token", req.RefreshToken)

		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	require.NoError(t, a.Logout(context.Background(), "the-refresh-token"))
}

func TestLogout_ServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	err := a.Logout(context.Background(), "the-refresh-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── GetProfile / bearer attachment ──────────────────────────────────────────

func TestGetProfile_AttachesBearer(t *testing.T) {
	token := mintTestToken(t, "1")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			User:    &models.User{ID: 1, Username: "alice"},
		})
	}))
	defer srv.Close()

	tokens := newMemTokenStore()
	require.NoError(t, tokens.Set(context.Background(), store.SlotAccessToken, token))

	a := newTestAdapter(t, srv.URL, tokens)
	got, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", got.User.Username)
}

func TestGetProfile_NoToken_OmitsHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.Header["Authorization"]
		assert.False(t, present, "Authorization header must be omitted, not sent empty")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: false, Message: "missing token"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.False(t, got.Success)
	assert.Equal(t, "missing token", got.Message)
}

// ── UpdateProfile ───────────────────────────────────────────────────────────

func TestUpdateProfile_SendsOnlySetFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "first_name")
		assert.NotContains(t, raw, "email")
		assert.NotContains(t, raw, "last_name")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			User:    &models.User{ID: 1, Username: "alice", FirstName: "Alice"},
		})
	}))
	defer srv.Close()

	first := "Alice"
	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.UpdateProfile(context.Background(), models.ProfileUpdate{FirstName: &first})

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.User.FirstName)
}

// ── ChangePassword ──────────────────────────────────────────────────────────

func TestChangePassword_Payload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/change-password", r.URL.Path)

		var req models.ChangePasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-pw", req.CurrentPassword)
		assert.Equal(t, "new-pw1234", req.NewPassword)
		assert.True(t, req.LogoutAllDevices)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: true, Message: "password changed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, newMemTokenStore())
	got, err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{
		CurrentPassword: "old-pw", NewPassword: "new-pw1234", LogoutAllDevices: true,
	})

	require.NoError(t, err)
	assert.True(t, got.Success)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNewHTTPAuthAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPAuthAdapter(config.ClientAPI{}, newMemTokenStore(), logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL_AddsScheme(t *testing.T) {
	got, err := normalizeBaseURL("localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", got)
}
