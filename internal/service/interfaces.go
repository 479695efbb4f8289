// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the offline-first synchronization engine: the
// orchestrator that runs full sync cycles, the per-entity sync strategies, the
// pending-change push path, the local derivation step and the observable sync
// status.
package service

import (
	"context"

	"github.com/MKhiriev/go-family-organizer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntitySync is the sync strategy for one entity type. Implementations pair a
// local record store with a remote gateway and know how to merge remote state
// in and how to push a single queued local change out.
type EntitySync interface {
	// Type returns the entity type this strategy handles.
	Type() models.EntityType

	// Pull fetches the full remote record list for the account and merges it
	// into the local store: records absent locally are inserted, records the
	// remote knows a newer version of (or any remote version, under the
	// server-wins policy) are overwritten and marked synced. Local records
	// absent from the remote list are never touched. Pull is idempotent.
	// Returns the number of locally applied remote changes.
	Pull(ctx context.Context, accountID string) (int, error)

	// Push sends one queued local change to the backend, dispatching on the
	// change type from the record's current local state. A missing local
	// record surfaces store.ErrRecordNotFound so the caller can discard the
	// superseded queue entry. Transport failures are returned mapped onto the
	// service error taxonomy.
	Push(ctx context.Context, change models.PendingChange) error
}

// SyncService is the engine's public contract: full sync cycles, the pending
// change queue and the observable status. A single instance serves one
// account and is safe for concurrent use.
type SyncService interface {
	// PerformFullSync runs a complete sync cycle: flush pending changes, pull
	// every entity in priority order, run the local derivation step and
	// record the completion time. While offline it only publishes the
	// offline status and returns nil. A new call cancels a cycle already in
	// flight; cancellation is honored between entity phases, keeping the
	// entities merged so far.
	PerformFullSync(ctx context.Context, accountID string) error

	// ProcessPendingChanges drains the pending queue in FIFO order without
	// running a full cycle. Offline it is a no-op. Failures are isolated per
	// entry except authentication and connectivity loss, which stop the
	// drain. Returns the number of successfully pushed changes.
	ProcessPendingChanges(ctx context.Context) (int, error)

	// QueueChange appends a pending change for a local mutation and, when
	// online, kicks off an asynchronous queue flush.
	QueueChange(ctx context.Context, entityType models.EntityType, entityID, accountID string, changeType models.ChangeType) error

	// Status returns the current sync status value.
	Status() models.SyncStatus

	// SubscribeStatus registers a status observer. The returned cancel
	// function must be called to release the subscription.
	SubscribeStatus() (<-chan models.SyncStatus, func())

	// PendingChangesCount reports how many changes are waiting in the queue.
	PendingChangesCount(ctx context.Context) (int, error)

	// MarkOffline publishes the offline status. Called by the connectivity
	// watcher on an online to offline transition; an in-flight cycle is not
	// force-cancelled, its next network call fails on its own.
	MarkOffline()
}
