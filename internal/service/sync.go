// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/adapter"
	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/netmon"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/internal/utils"
	"github.com/MKhiriev/go-family-organizer/models"
)

type syncService struct {
	registry *Registry
	pending  *pendingProcessor
	derive   *derivation
	queue    store.PendingChangeRepository
	metadata store.SyncMetadataRepository
	session  *adapter.Session
	monitor  netmon.Monitor
	status   *statusTracker
	ids      *utils.UUIDGenerator
	cfg      config.Sync

	mu        sync.Mutex
	cancel    context.CancelFunc
	idleTimer *time.Timer

	logger *logger.Logger
}

// NewSyncService wires the sync orchestrator from the local storages, the
// remote gateways, the shared session and the connectivity monitor.
func NewSyncService(storages *store.Storages, gateways *adapter.Gateways, monitor netmon.Monitor, cfg config.Sync, log *logger.Logger) SyncService {
	registry := NewRegistry(storages, gateways, log)
	ids := utils.NewUUIDGenerator()

	return &syncService{
		registry: registry,
		pending:  newPendingProcessor(storages.PendingChanges, registry, cfg.RetryLimit, log),
		derive:   newDerivation(storages.MedicationSchedules, storages.MedicationLogs, storages.PendingChanges, ids, log),
		queue:    storages.PendingChanges,
		metadata: storages.SyncMetadata,
		session:  gateways.Session,
		monitor:  monitor,
		status:   newStatusTracker(),
		ids:      ids,
		cfg:      cfg,
		logger:   log,
	}
}

// PerformFullSync implements [SyncService]. Phases run in a fixed order:
// pending flush, entity pulls by priority, derivation, metadata write.
// Cancellation by a newer cycle is checked between phases; an interrupted
// cycle keeps the entities merged so far and skips the completion bookkeeping.
func (s *syncService) PerformFullSync(ctx context.Context, accountID string) error {
	if !s.monitor.Online() {
		s.status.Set(models.SyncStatus{State: models.SyncStateOffline})
		return nil
	}

	if !s.session.Valid() {
		err := fmt.Errorf("%w: session token missing or expired", ErrNotAuthenticated)
		s.status.Set(models.SyncStatus{State: models.SyncStateFailed, Message: err.Error()})
		return err
	}

	runCtx := s.beginRun(ctx)
	defer s.endRun(runCtx)

	s.logger.Info().Str("account_id", accountID).Msg("full sync started")
	s.status.Set(models.SyncStatus{State: models.SyncStateSyncing, Progress: 0})

	pushed, err := s.pending.Process(runCtx)
	if err != nil {
		return s.finishWithError(runCtx, fmt.Errorf("flush pending changes: %w", err))
	}

	total := pushed
	strategies := s.registry.Ordered()
	for i, syncer := range strategies {
		if err = runCtx.Err(); err != nil {
			s.logger.Info().Str("entity", string(syncer.Type())).Msg("full sync cancelled between phases")
			return err
		}

		s.status.Set(models.SyncStatus{
			State:    models.SyncStateSyncing,
			Entity:   syncer.Type(),
			Progress: float64(i) / float64(len(strategies)),
		})

		applied, err := syncer.Pull(runCtx, accountID)
		if err != nil {
			return s.finishWithError(runCtx, fmt.Errorf("pull %s: %w", syncer.Type(), err))
		}
		total += applied
	}

	if err = runCtx.Err(); err != nil {
		return err
	}

	derived, err := s.derive.Run(runCtx, accountID)
	if err != nil {
		return s.finishWithError(runCtx, fmt.Errorf("derive medication logs: %w", err))
	}
	total += derived

	meta := models.SyncMetadata{AccountID: accountID, LastSyncedAt: time.Now().UTC()}
	if err = s.metadata.Upsert(runCtx, meta); err != nil {
		return s.finishWithError(runCtx, fmt.Errorf("record sync completion: %w", err))
	}

	s.logger.Info().Int("changes", total).Msg("full sync completed")
	s.status.Set(models.SyncStatus{State: models.SyncStateCompleted, ChangeCount: total, Progress: 1})
	s.scheduleIdleReset()

	return nil
}

// beginRun cancels a cycle already in flight and installs this one as the
// current run.
func (s *syncService) beginRun(ctx context.Context) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.idleTimer != nil {
		s.idleTimer.Stop()
		s.idleTimer = nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	return runCtx
}

func (s *syncService) endRun(runCtx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Only release the slot if no newer run has replaced this one.
	if s.cancel != nil && runCtx.Err() == nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *syncService) scheduleIdleReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idleTimer != nil {
		s.idleTimer.Stop()
	}
	s.idleTimer = time.AfterFunc(s.cfg.CompletedDisplayDelay, s.status.SetIdleIfCompleted)
}

// finishWithError publishes the terminal status for a failed cycle. Losing
// the network mid-cycle is not a failure: the engine goes offline with the
// queue intact and the error is swallowed.
func (s *syncService) finishWithError(runCtx context.Context, err error) error {
	if runCtx.Err() != nil {
		// A newer run took over; let it own the status.
		return runCtx.Err()
	}

	if errors.Is(err, ErrNetworkUnavailable) {
		s.logger.Info().Err(err).Msg("full sync interrupted, backend unreachable")
		s.status.Set(models.SyncStatus{State: models.SyncStateOffline})
		return nil
	}

	s.logger.Error().Err(err).Msg("full sync failed")
	s.status.Set(models.SyncStatus{State: models.SyncStateFailed, Message: err.Error()})
	return err
}

// ProcessPendingChanges implements [SyncService].
func (s *syncService) ProcessPendingChanges(ctx context.Context) (int, error) {
	if !s.monitor.Online() {
		return 0, nil
	}

	pushed, err := s.pending.Process(ctx)
	if err != nil && errors.Is(err, ErrNetworkUnavailable) {
		s.status.Set(models.SyncStatus{State: models.SyncStateOffline})
		return pushed, nil
	}

	return pushed, err
}

// QueueChange implements [SyncService].
func (s *syncService) QueueChange(ctx context.Context, entityType models.EntityType, entityID, accountID string, changeType models.ChangeType) error {
	change := models.PendingChange{
		ID:         s.ids.Generate(),
		EntityType: entityType,
		EntityID:   entityID,
		AccountID:  accountID,
		ChangeType: changeType,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.queue.Append(ctx, change); err != nil {
		return fmt.Errorf("queue change: %w", err)
	}

	if s.monitor.Online() {
		go func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Interval)
			defer cancel()

			if _, err := s.ProcessPendingChanges(flushCtx); err != nil {
				s.logger.Warn().Err(err).Msg("async queue flush failed")
			}
		}()
	}

	return nil
}

func (s *syncService) Status() models.SyncStatus {
	return s.status.Get()
}

func (s *syncService) SubscribeStatus() (<-chan models.SyncStatus, func()) {
	return s.status.Subscribe()
}

func (s *syncService) PendingChangesCount(ctx context.Context) (int, error) {
	return s.queue.Count(ctx)
}

// MarkOffline implements [SyncService].
func (s *syncService) MarkOffline() {
	s.status.Set(models.SyncStatus{State: models.SyncStateOffline})
}
