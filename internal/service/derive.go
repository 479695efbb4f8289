// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/internal/utils"
	"github.com/MKhiriev/go-family-organizer/models"
)

// derivation materializes today's expected medication occurrences from the
// active schedules. It is insert-only and keyed on (schedule, scheduled
// instant), so running it any number of times a day produces each occurrence
// exactly once.
type derivation struct {
	schedules store.RecordStore[*models.MedicationSchedule]
	logs      store.MedicationLogStore
	queue     store.PendingChangeRepository
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

func newDerivation(schedules store.RecordStore[*models.MedicationSchedule], logs store.MedicationLogStore, queue store.PendingChangeRepository, ids *utils.UUIDGenerator, log *logger.Logger) *derivation {
	return &derivation{schedules: schedules, logs: logs, queue: queue, ids: ids, now: time.Now, logger: log}
}

// Run creates a "scheduled" medication log for every active schedule due
// today that has no occurrence row yet, and queues a create for each new log
// so other devices see it. Malformed schedules are logged and skipped.
// Returns the number of logs created.
func (d *derivation) Run(ctx context.Context, accountID string) (int, error) {
	schedules, err := d.schedules.List(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("list schedules: %w", err)
	}

	now := d.now()
	created := 0
	for _, sched := range schedules {
		if !sched.Active || sched.Deleted {
			continue
		}
		if !dueOn(sched.DaysOfWeek, now.Weekday()) {
			continue
		}

		scheduledFor, err := occurrenceInstant(sched.TimeOfDay, now)
		if err != nil {
			d.logger.Warn().Err(err).Str("schedule_id", sched.ID).Str("time_of_day", sched.TimeOfDay).Msg("skipping schedule with malformed time of day")
			continue
		}

		exists, err := d.logs.ExistsOccurrence(ctx, sched.ID, scheduledFor)
		if err != nil {
			return created, fmt.Errorf("check occurrence for schedule %s: %w", sched.ID, err)
		}
		if exists {
			continue
		}

		entry := &models.MedicationLog{
			SyncFields: models.SyncFields{
				ID:        d.ids.Generate(),
				AccountID: accountID,
				UpdatedAt: now.UTC(),
			},
			ScheduleID:   sched.ID,
			MedicationID: sched.MedicationID,
			ProfileID:    sched.ProfileID,
			ScheduledFor: scheduledFor,
			Status:       models.LogStatusScheduled,
		}
		if err = d.logs.Insert(ctx, entry); err != nil {
			return created, fmt.Errorf("insert derived log for schedule %s: %w", sched.ID, err)
		}

		change := models.PendingChange{
			ID:         d.ids.Generate(),
			EntityType: models.EntityMedicationLog,
			EntityID:   entry.ID,
			AccountID:  accountID,
			ChangeType: models.ChangeCreate,
			CreatedAt:  now.UTC(),
		}
		if err = d.queue.Append(ctx, change); err != nil {
			return created, fmt.Errorf("queue derived log %s: %w", entry.ID, err)
		}

		created++
	}

	if created > 0 {
		d.logger.Info().Int("created", created).Msg("derived today's medication logs")
	}

	return created, nil
}

// dueOn reports whether a comma-joined day list ("mon,wed,fri", empty meaning
// every day) includes the given weekday.
func dueOn(daysOfWeek string, day time.Weekday) bool {
	daysOfWeek = strings.TrimSpace(daysOfWeek)
	if daysOfWeek == "" {
		return true
	}

	want := strings.ToLower(day.String()[:3])
	for _, d := range strings.Split(daysOfWeek, ",") {
		if strings.TrimSpace(strings.ToLower(d)) == want {
			return true
		}
	}

	return false
}

// occurrenceInstant resolves a schedule's "HH:MM" local time against now's
// date and returns the instant in UTC.
func occurrenceInstant(timeOfDay string, now time.Time) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) != 2 {
		return time.Time{}, fmt.Errorf("invalid time of day %q", timeOfDay)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", timeOfDay)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("invalid minute in %q", timeOfDay)
	}

	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()).UTC(), nil
}
