package service

import (
	"context"
	"time"

	"github.com/talkboard-dev/talkboard/shared/logger"
)

// TokenPurger is the slice of AuthService the garbage collector needs.
type TokenPurger interface {
	PurgeExpiredTokens() (int64, error)
}

// TokenGC periodically removes expired tokens so the tokens table does not
// grow without bound.
type TokenGC struct {
	purger TokenPurger
}

func NewTokenGC(purger TokenPurger) *TokenGC {
	return &TokenGC{purger: purger}
}

// Start runs the cleanup loop in a background goroutine until ctx is
// cancelled.
func (gc *TokenGC) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	logger.Log.Info("started token GC", "interval", interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := gc.purger.PurgeExpiredTokens()
				if err != nil {
					logger.Log.Error("token GC failed", "error", err)
					continue
				}
				if deleted > 0 {
					logger.Log.Info("token GC completed", "deleted", deleted)
				}
			case <-ctx.Done():
				logger.Log.Info("token GC shutting down")
				return
			}
		}
	}()
}
