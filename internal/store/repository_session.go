package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avelichko/go-cms-client/internal/logger"
)

// sessionRepository is the SQLite-backed implementation of [TokenStore].
// It persists session slots in the "session_slots" table, one row per slot.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [TokenStore] backed by the provided
// database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) TokenStore {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Set implements [TokenStore]. It upserts value under slot so a repeated
// write replaces the previous value in place.
func (r *sessionRepository) Set(ctx context.Context, slot, value string) error {
	if _, err := r.db.ExecContext(ctx, upsertSlot, slot, value); err != nil {
		r.logger.Err(err).Str("slot", slot).Msg("error writing session slot")
		return fmt.Errorf("error writing session slot %q: %w", slot, err)
	}

	return nil
}

// Get implements [TokenStore]. It returns [ErrSlotNotFound] when the slot
// has never been written or has been cleared.
func (r *sessionRepository) Get(ctx context.Context, slot string) (string, error) {
	var value string

	err := r.db.QueryRowContext(ctx, getSlot, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("slot", slot).Msg("error reading session slot")
		return "", fmt.Errorf("error reading session slot %q: %w", slot, err)
	}

	return value, nil
}

// Clear implements [TokenStore]. Clearing an absent slot is a no-op.
func (r *sessionRepository) Clear(ctx context.Context, slot string) error {
	if _, err := r.db.ExecContext(ctx, deleteSlot, slot); err != nil {
		r.logger.Err(err).Str("slot", slot).Msg("error clearing session slot")
		return fmt.Errorf("error clearing session slot %q: %w", slot, err)
	}

	return nil
}

// ClearAll implements [TokenStore]. It removes every stored slot in a
// single statement so a partial logout cannot leave a stale credential.
func (r *sessionRepository) ClearAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteAllSlots); err != nil {
		r.logger.Err(err).Msg("error clearing session slots")
		return fmt.Errorf("error clearing session slots: %w", err)
	}

	return nil
}
