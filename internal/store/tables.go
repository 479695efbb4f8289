// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

// syncFieldTargets returns the scan targets of the shared leading columns.
// Used by every entity scan function.
func syncFieldTargets(dst *models.SyncFields) []any {
	return []any{&dst.ID, &dst.AccountID, &dst.UpdatedAt, &dst.Synced, &dst.Deleted}
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time.UTC()
	return &t
}

func profileSpec() tableSpec[*models.Profile] {
	return tableSpec[*models.Profile]{
		table:   string(models.EntityProfile),
		columns: []string{"name", "relationship", "birth_date", "color"},
		values: func(p *models.Profile) []any {
			return []any{p.Name, p.Relationship, nullTime(p.BirthDate), p.Color}
		},
		scan: func(row rowScanner) (*models.Profile, error) {
			var p models.Profile
			var birth sql.NullTime
			targets := append(syncFieldTargets(&p.SyncFields),
				&p.Name, &p.Relationship, &birth, &p.Color)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			p.BirthDate = timePtr(birth)
			return &p, nil
		},
	}
}

func medicationSpec() tableSpec[*models.Medication] {
	return tableSpec[*models.Medication]{
		table:   string(models.EntityMedication),
		columns: []string{"profile_id", "name", "dosage", "unit", "instructions", "active"},
		values: func(m *models.Medication) []any {
			return []any{m.ProfileID, m.Name, m.Dosage, m.Unit, m.Instructions, m.Active}
		},
		scan: func(row rowScanner) (*models.Medication, error) {
			var m models.Medication
			targets := append(syncFieldTargets(&m.SyncFields),
				&m.ProfileID, &m.Name, &m.Dosage, &m.Unit, &m.Instructions, &m.Active)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			return &m, nil
		},
	}
}

func medicationScheduleSpec() tableSpec[*models.MedicationSchedule] {
	return tableSpec[*models.MedicationSchedule]{
		table:   string(models.EntityMedicationSchedule),
		columns: []string{"medication_id", "profile_id", "time_of_day", "days_of_week", "active"},
		values: func(s *models.MedicationSchedule) []any {
			return []any{s.MedicationID, s.ProfileID, s.TimeOfDay, s.DaysOfWeek, s.Active}
		},
		scan: func(row rowScanner) (*models.MedicationSchedule, error) {
			var s models.MedicationSchedule
			targets := append(syncFieldTargets(&s.SyncFields),
				&s.MedicationID, &s.ProfileID, &s.TimeOfDay, &s.DaysOfWeek, &s.Active)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			return &s, nil
		},
	}
}

func appointmentSpec() tableSpec[*models.Appointment] {
	return tableSpec[*models.Appointment]{
		table:   string(models.EntityAppointment),
		columns: []string{"profile_id", "title", "location", "provider", "notes", "starts_at", "ends_at"},
		values: func(a *models.Appointment) []any {
			return []any{a.ProfileID, a.Title, a.Location, a.Provider, a.Notes, a.StartsAt.UTC(), a.EndsAt.UTC()}
		},
		scan: func(row rowScanner) (*models.Appointment, error) {
			var a models.Appointment
			targets := append(syncFieldTargets(&a.SyncFields),
				&a.ProfileID, &a.Title, &a.Location, &a.Provider, &a.Notes, &a.StartsAt, &a.EndsAt)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			return &a, nil
		},
	}
}

func medicationLogSpec() tableSpec[*models.MedicationLog] {
	return tableSpec[*models.MedicationLog]{
		table:   string(models.EntityMedicationLog),
		columns: []string{"schedule_id", "medication_id", "profile_id", "scheduled_for", "taken_at", "status"},
		values: func(l *models.MedicationLog) []any {
			return []any{l.ScheduleID, l.MedicationID, l.ProfileID, l.ScheduledFor.UTC(), nullTime(l.TakenAt), l.Status}
		},
		scan: func(row rowScanner) (*models.MedicationLog, error) {
			var l models.MedicationLog
			var taken sql.NullTime
			targets := append(syncFieldTargets(&l.SyncFields),
				&l.ScheduleID, &l.MedicationID, &l.ProfileID, &l.ScheduledFor, &taken, &l.Status)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			l.TakenAt = timePtr(taken)
			return &l, nil
		},
	}
}

func moodEntrySpec() tableSpec[*models.MoodEntry] {
	return tableSpec[*models.MoodEntry]{
		table:   string(models.EntityMoodEntry),
		columns: []string{"profile_id", "mood", "note", "recorded_at"},
		values: func(m *models.MoodEntry) []any {
			return []any{m.ProfileID, m.Mood, m.Note, m.RecordedAt.UTC()}
		},
		scan: func(row rowScanner) (*models.MoodEntry, error) {
			var m models.MoodEntry
			targets := append(syncFieldTargets(&m.SyncFields),
				&m.ProfileID, &m.Mood, &m.Note, &m.RecordedAt)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			return &m, nil
		},
	}
}

func todoItemSpec() tableSpec[*models.TodoItem] {
	return tableSpec[*models.TodoItem]{
		table:   string(models.EntityTodoItem),
		columns: []string{"profile_id", "list_name", "title", "done", "due_at"},
		values: func(t *models.TodoItem) []any {
			return []any{t.ProfileID, t.ListName, t.Title, t.Done, nullTime(t.DueAt)}
		},
		scan: func(row rowScanner) (*models.TodoItem, error) {
			var t models.TodoItem
			var due sql.NullTime
			targets := append(syncFieldTargets(&t.SyncFields),
				&t.ProfileID, &t.ListName, &t.Title, &t.Done, &due)
			if err := row.Scan(targets...); err != nil {
				return nil, err
			}
			t.DueAt = timePtr(due)
			return &t, nil
		},
	}
}

// medicationLogRepository adds the occurrence lookup on top of the generic
// record repository.
type medicationLogRepository struct {
	*recordRepository[*models.MedicationLog]
}

func newMedicationLogRepository(db *DB, log *logger.Logger) *medicationLogRepository {
	return &medicationLogRepository{
		recordRepository: newRecordRepository(db, medicationLogSpec(), log),
	}
}

// SaveBatch implements [MedicationLogStore]. Two devices can derive the same
// occurrence independently under different ids, and the unique
// (schedule_id, scheduled_for) index would make the plain id-keyed upsert
// fail when the other device's log arrives on pull. The incoming row wins:
// local rows holding the same occurrence under another id are removed first,
// and in-batch duplicates collapse to the newest copy.
func (r *medicationLogRepository) SaveBatch(ctx context.Context, recs []*models.MedicationLog) error {
	recs = dedupeByOccurrence(recs)

	for _, rec := range recs {
		query, args, err := sq.Delete(r.spec.table).
			Where(sq.Eq{"schedule_id": rec.ScheduleID, "scheduled_for": rec.ScheduledFor.UTC()}).
			Where(sq.NotEq{"id": rec.ID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return r.recordRepository.SaveBatch(ctx, recs)
}

func dedupeByOccurrence(recs []*models.MedicationLog) []*models.MedicationLog {
	type occurrence struct {
		scheduleID   string
		scheduledFor time.Time
	}

	kept := make(map[occurrence]int, len(recs))
	out := make([]*models.MedicationLog, 0, len(recs))
	for _, rec := range recs {
		key := occurrence{scheduleID: rec.ScheduleID, scheduledFor: rec.ScheduledFor.UTC()}
		if i, dup := kept[key]; dup {
			if rec.UpdatedAt.After(out[i].UpdatedAt) {
				out[i] = rec
			}
			continue
		}
		kept[key] = len(out)
		out = append(out, rec)
	}

	return out
}

// ExistsOccurrence implements [MedicationLogStore].
func (r *medicationLogRepository) ExistsOccurrence(ctx context.Context, scheduleID string, scheduledFor time.Time) (bool, error) {
	query, args, err := sq.Select("COUNT(1)").
		From(r.spec.table).
		Where(sq.Eq{"schedule_id": scheduleID, "scheduled_for": scheduledFor.UTC()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}
