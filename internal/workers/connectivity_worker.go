// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/netmon"
	"github.com/MKhiriev/go-family-organizer/internal/service"
)

// connectivityWorker reacts to reachability transitions: regained
// connectivity flushes the pending queue, lost connectivity marks the engine
// offline. An in-flight sync is never force-cancelled; its next network call
// fails on its own.
type connectivityWorker struct {
	svc     service.SyncService
	monitor netmon.Monitor

	logger *logger.Logger
}

// NewConnectivityWorker creates the worker watching monitor's event stream.
func NewConnectivityWorker(svc service.SyncService, monitor netmon.Monitor, log *logger.Logger) Worker {
	return &connectivityWorker{svc: svc, monitor: monitor, logger: log}
}

// Run implements [Worker].
func (w *connectivityWorker) Run(ctx context.Context) {
	w.logger.Info().Msg("connectivity worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("connectivity worker stopped")
			return
		case online, ok := <-w.monitor.Events():
			if !ok {
				return
			}
			if online {
				pushed, err := w.svc.ProcessPendingChanges(ctx)
				if err != nil {
					w.logger.Warn().Err(err).Msg("flush on reconnect failed")
					continue
				}
				w.logger.Info().Int("pushed", pushed).Msg("flushed pending changes on reconnect")
			} else {
				w.svc.MarkOffline()
			}
		}
	}
}
