// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// a second pooled connection to :memory: would see a fresh empty database
	db.SetMaxOpenConns(1)
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("unexpected migration error: %v", err)
	}

	// running again must be a no-op
	if err = Migrate(db); err != nil {
		t.Fatalf("unexpected error on repeated migration: %v", err)
	}

	for _, table := range []string{
		"profiles", "medications", "medication_schedules", "appointments",
		"medication_logs", "mood_entries", "todos",
		"pending_changes", "sync_metadata",
	} {
		var name string
		err = db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table,
		).Scan(&name)
		if err != nil {
			t.Errorf("expected table %q to exist: %v", table, err)
		}
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}
