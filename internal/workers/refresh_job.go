// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

// Package workers runs the client's background jobs. The only job today
// is the periodic access-token refresh.
package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/avelichko/go-cms-client/internal/logger"
	"github.com/avelichko/go-cms-client/internal/session"
)

// TokenRefresher is the slice of the session manager the refresh job
// drives.
type TokenRefresher interface {
	IsAuthenticated() bool
	RefreshAccessToken(ctx context.Context) error
}

// RefreshJob periodically exchanges the refresh token for a fresh access
// token. The interval is fixed by configuration; token lifetimes are not
// inspected. A tick while unauthenticated is skipped.
type RefreshJob struct {
	refresher TokenRefresher
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob. The job is idle until Start is
// called.
func NewRefreshJob(refresher TokenRefresher, log *logger.Logger) *RefreshJob {
	return &RefreshJob{refresher: refresher, logger: log}
}

// Start stops any previously running job, then launches a goroutine that
// refreshes the access token every interval. If interval is zero or
// negative it defaults to 10 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *RefreshJob) tick(ctx context.Context) {
	if !j.refresher.IsAuthenticated() {
		return
	}

	err := j.refresher.RefreshAccessToken(ctx)
	switch {
	case err == nil:
	case errors.Is(err, session.ErrNoRefreshToken):
		// logged out between the check and the refresh
	default:
		j.logger.Err(err).Msg("background token refresh failed")
	}
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()
}
