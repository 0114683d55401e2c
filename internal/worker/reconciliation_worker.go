package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/config"
	"github.com/leadsfynder/leadsfynder-api/internal/service"
)

// StartReconciliationWorker sweeps stale signup intents on a fixed cadence
// until ctx is cancelled. It cleans up identities orphaned by crashes
// between identity creation and profile insert.
func StartReconciliationWorker(ctx context.Context, authService *service.AuthService, cfg config.SignupConfig, logger *zap.Logger) {
	if authService == nil {
		return
	}

	go func() {
		ticker := time.NewTicker(cfg.ReconcileInterval())
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := authService.ReconcileSignupIntents(ctx, cfg.IntentMaxAge())
				if err != nil {
					logger.Warn("signup intent reconciliation failed", zap.Error(err))
					continue
				}
				if removed > 0 {
					logger.Info("reconciled orphaned identities", zap.Int("removed", removed))
				}
			}
		}
	}()
}
