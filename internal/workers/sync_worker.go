// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/service"
)

// syncWorker runs a full sync on a fixed interval. The first cycle fires
// right at startup so a freshly launched daemon converges without waiting a
// whole interval.
type syncWorker struct {
	svc       service.SyncService
	accountID string
	interval  time.Duration

	logger *logger.Logger
}

// NewSyncWorker creates the periodic full sync worker. If interval is zero or
// negative it defaults to 5 minutes.
func NewSyncWorker(svc service.SyncService, accountID string, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &syncWorker{svc: svc, accountID: accountID, interval: interval, logger: log}
}

// Run implements [Worker]. Sync errors are logged and the ticker keeps going;
// the next cycle gets a fresh chance.
func (w *syncWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	w.sync(ctx)

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("sync worker stopped")
			return
		case <-t.C:
			w.sync(ctx)
		}
	}
}

func (w *syncWorker) sync(ctx context.Context) {
	if err := w.svc.PerformFullSync(ctx, w.accountID); err != nil {
		w.logger.Warn().Err(err).Msg("periodic full sync failed")
	}
}
