// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-family-organizer/internal/config"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

// Storages groups every local repository into a single value that can be
// passed around the service layer: one typed record store per synchronized
// entity, the pending change queue, and the sync metadata store.
type Storages struct {
	Profiles            RecordStore[*models.Profile]
	Medications         RecordStore[*models.Medication]
	MedicationSchedules RecordStore[*models.MedicationSchedule]
	Appointments        RecordStore[*models.Appointment]
	MedicationLogs      MedicationLogStore
	MoodEntries         RecordStore[*models.MoodEntry]
	TodoItems           RecordStore[*models.TodoItem]

	PendingChanges PendingChangeRepository
	SyncMetadata   SyncMetadataRepository
}

// NewStorages initialises the local storage layer: it opens the SQLite file
// from cfg.DSN (creating it if absent), runs pending schema migrations, and
// wires every repository to the shared connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesWithDB(db, log), nil
}

// NewStoragesWithDB wires the repositories onto an already opened and
// migrated database handle. Used by tests that manage the connection
// themselves.
func NewStoragesWithDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Profiles:            newRecordRepository(db, profileSpec(), log),
		Medications:         newRecordRepository(db, medicationSpec(), log),
		MedicationSchedules: newRecordRepository(db, medicationScheduleSpec(), log),
		Appointments:        newRecordRepository(db, appointmentSpec(), log),
		MedicationLogs:      newMedicationLogRepository(db, log),
		MoodEntries:         newRecordRepository(db, moodEntrySpec(), log),
		TodoItems:           newRecordRepository(db, todoItemSpec(), log),
		PendingChanges:      newPendingChangeRepository(db, log),
		SyncMetadata:        newSyncMetadataRepository(db, log),
	}
}
