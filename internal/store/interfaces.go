// Package store provides the client-side persistence layer: a small
// SQLite-backed slot store holding the access token, the refresh token,
// and the cached user profile between process runs.
//
// The store performs no validation, encryption, or expiry tracking; slots
// are opaque strings owned by the session layer.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Well-known slot names. The session layer is the only writer; the
// transport layer reads SlotAccessToken on every outgoing request.
const (
	// SlotAccessToken holds the short-lived bearer credential.
	SlotAccessToken = "access_token"
	// SlotRefreshToken holds the longer-lived refresh credential.
	SlotRefreshToken = "refresh_token"
	// SlotCurrentUser holds the JSON-serialized cached user profile.
	SlotCurrentUser = "current_user"
)

// TokenStore is durable key-value persistence for the three session slots.
// Writes are immediately visible to subsequent reads and survive process
// restarts.
type TokenStore interface {
	// Set stores value under slot, replacing any previous value.
	Set(ctx context.Context, slot, value string) error

	// Get returns the value stored under slot.
	// Returns [ErrSlotNotFound] when the slot is absent; absence is a
	// normal condition, not a failure.
	Get(ctx context.Context, slot string) (string, error)

	// Clear removes the value stored under slot. Clearing an absent slot
	// is not an error.
	Clear(ctx context.Context, slot string) error

	// ClearAll removes every stored slot.
	ClearAll(ctx context.Context) error
}
