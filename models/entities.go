// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Profile is a family member the rest of the data hangs off.
type Profile struct {
	SyncFields
	Name         string     `json:"name"`
	Relationship string     `json:"relationship"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Color        string     `json:"color"`
}

// Medication is a prescription or supplement tracked for a profile.
type Medication struct {
	SyncFields
	ProfileID    string `json:"profile_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Unit         string `json:"unit"`
	Instructions string `json:"instructions"`
	Active       bool   `json:"active"`
}

// MedicationSchedule describes when a medication is expected to be taken.
// TimeOfDay is a 24h "HH:MM" local-time string; DaysOfWeek is a comma-joined
// list of lowercase three-letter day names ("mon,wed,fri"), empty meaning
// every day.
type MedicationSchedule struct {
	SyncFields
	MedicationID string `json:"medication_id"`
	ProfileID    string `json:"profile_id"`
	TimeOfDay    string `json:"time_of_day"`
	DaysOfWeek   string `json:"days_of_week"`
	Active       bool   `json:"active"`
}

// Appointment is a calendar entry for a profile.
type Appointment struct {
	SyncFields
	ProfileID string    `json:"profile_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Provider  string    `json:"provider"`
	Notes     string    `json:"notes"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
}

// Medication log statuses.
const (
	LogStatusScheduled = "scheduled"
	LogStatusTaken     = "taken"
	LogStatusSkipped   = "skipped"
)

// MedicationLog is one expected or recorded medication occurrence. Logs for a
// given day are materialized locally from the schedule (see the derivation
// step) and confirmed or skipped by the user afterwards.
type MedicationLog struct {
	SyncFields
	ScheduleID   string     `json:"schedule_id"`
	MedicationID string     `json:"medication_id"`
	ProfileID    string     `json:"profile_id"`
	ScheduledFor time.Time  `json:"scheduled_for"`
	TakenAt      *time.Time `json:"taken_at,omitempty"`
	Status       string     `json:"status"`
}

// MoodEntry is a single mood check-in for a profile.
type MoodEntry struct {
	SyncFields
	ProfileID  string    `json:"profile_id"`
	Mood       string    `json:"mood"`
	Note       string    `json:"note"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TodoItem is an entry on one of the account's shared lists. ProfileID is
// empty for items not assigned to a particular family member.
type TodoItem struct {
	SyncFields
	ProfileID string     `json:"profile_id,omitempty"`
	ListName  string     `json:"list_name"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	DueAt     *time.Time `json:"due_at,omitempty"`
}
