// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models defines the domain entities of the family organizer and the
// bookkeeping types used by the synchronization engine: the shared sync
// fields every entity embeds, pending outbound changes, per-account sync
// metadata, and the observable sync status.
package models

import "time"

// EntityType identifies which synchronized entity a record or pending change
// belongs to. Values double as the REST resource name and the local table name.
type EntityType string

const (
	EntityProfile            EntityType = "profiles"
	EntityMedication         EntityType = "medications"
	EntityMedicationSchedule EntityType = "medication_schedules"
	EntityAppointment        EntityType = "appointments"
	EntityMedicationLog      EntityType = "medication_logs"
	EntityMoodEntry          EntityType = "mood_entries"
	EntityTodoItem           EntityType = "todos"
)

// ChangeType classifies a pending outbound mutation.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// SyncFields is embedded by every synchronized entity. ID is assigned by
// whichever side creates the record and is globally unique. UpdatedAt is the
// last-write-wins timestamp and must be non-decreasing across writes. Synced
// is local-only: it means the local copy matches the last known remote state
// and never travels over the wire. Deleted is the soft-delete tombstone; the
// backend keeps it on deleted records so other devices pick the deletion up
// on their next pull.
type SyncFields struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	UpdatedAt time.Time `json:"updated_at"`
	Synced    bool      `json:"-"`
	Deleted   bool      `json:"deleted"`
}

// Meta returns the embedded sync fields. It is the single method of the
// Record constraint, giving generic store and sync code access to the shared
// fields of any entity.
func (f *SyncFields) Meta() *SyncFields {
	return f
}

// Record is the constraint satisfied by a pointer to any synchronized entity.
type Record interface {
	Meta() *SyncFields
}
