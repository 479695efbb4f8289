// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PendingChange is a durable record of a local mutation that has not yet been
// confirmed by the backend. Entries are appended when the mutation happens and
// removed by the sync engine on a successful push, when the referenced record
// no longer exists, or when RetryCount exceeds the retry ceiling. Only the
// sync orchestrator reads or mutates pending changes.
type PendingChange struct {
	ID         string     `json:"id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	AccountID  string     `json:"account_id"`
	ChangeType ChangeType `json:"change_type"`
	CreatedAt  time.Time  `json:"created_at"`
	RetryCount int        `json:"retry_count"`
	LastError  string     `json:"last_error,omitempty"`
}

// SyncMetadata tracks the completion time of the last successful full sync,
// one row per account. It is written only at the end of a full sync that ran
// every phase to completion.
type SyncMetadata struct {
	AccountID    string    `json:"account_id"`
	LastSyncedAt time.Time `json:"last_synced_at"`
}

// SyncState enumerates the observable states of the sync engine.
type SyncState string

const (
	SyncStateIdle      SyncState = "idle"
	SyncStateSyncing   SyncState = "syncing"
	SyncStateCompleted SyncState = "completed"
	SyncStateOffline   SyncState = "offline"
	SyncStateFailed    SyncState = "failed"
)

// SyncStatus is the transient, in-memory status value published by the sync
// orchestrator for the UI indicator. It is never persisted. Entity and
// Progress are populated while State is SyncStateSyncing, ChangeCount when
// State is SyncStateCompleted, and Message when State is SyncStateFailed.
type SyncStatus struct {
	State       SyncState  `json:"state"`
	Entity      EntityType `json:"entity,omitempty"`
	Progress    float64    `json:"progress,omitempty"`
	ChangeCount int        `json:"change_count,omitempty"`
	Message     string     `json:"message,omitempty"`
}
