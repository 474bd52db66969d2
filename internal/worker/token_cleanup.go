// Package worker - background maintenance loops.
package worker

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	authsvc "github.com/shaesansv/pet-new/internal/api/auth/service"
	"github.com/shaesansv/pet-new/internal/logger"
)

// TokenCleanupWorker periodically clears expired login tokens off user
// records. Expired tokens are rejected at verification anyway; this keeps
// the records tidy so a stale token cannot linger indefinitely.
type TokenCleanupWorker struct {
	auth     *authsvc.AuthService
	interval time.Duration
}

// NewTokenCleanupWorker creates the worker. Intervals under a minute fall
// back to one hour.
func NewTokenCleanupWorker(auth *authsvc.AuthService, interval time.Duration) *TokenCleanupWorker {
	if interval < time.Minute {
		interval = time.Hour
	}
	return &TokenCleanupWorker{auth: auth, interval: interval}
}

// Start runs the cleanup loop until ctx is cancelled.
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(logrus.Fields{
		"interval": w.interval.String(),
	}).Info("starting token cleanup worker")

	for {
		select {
		case <-ctx.Done():
			log.Info("token cleanup worker stopped")
			return
		case <-ticker.C:
			w.runOnce(ctx, log)
		}
	}
}

// runOnce performs one cleanup pass.
func (w *TokenCleanupWorker) runOnce(ctx context.Context, log *logrus.Logger) {
	cleared, err := w.auth.ClearExpiredTokens(ctx)
	if err != nil {
		log.WithError(err).Error("token cleanup pass failed")
		return
	}
	if cleared > 0 {
		log.WithFields(logrus.Fields{
			"cleared": cleared,
		}).Info("cleared expired login tokens")
	}
}
