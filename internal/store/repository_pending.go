// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

const pendingChangesTable = "pending_changes"

var pendingColumns = []string{
	"id", "entity_type", "entity_id", "account_id",
	"change_type", "created_at", "retry_count", "last_error",
}

// entityTables whitelists the table name a pending change may resolve
// against. Guards Resolve from interpolating arbitrary strings.
var entityTables = map[models.EntityType]struct{}{
	models.EntityProfile:            {},
	models.EntityMedication:         {},
	models.EntityMedicationSchedule: {},
	models.EntityAppointment:        {},
	models.EntityMedicationLog:      {},
	models.EntityMoodEntry:          {},
	models.EntityTodoItem:           {},
}

type pendingChangeRepository struct {
	db     *DB
	logger *logger.Logger
}

func newPendingChangeRepository(db *DB, log *logger.Logger) *pendingChangeRepository {
	return &pendingChangeRepository{db: db, logger: log}
}

// Append implements [PendingChangeRepository].
func (r *pendingChangeRepository) Append(ctx context.Context, change models.PendingChange) error {
	query, args, err := sq.Insert(pendingChangesTable).
		Columns(pendingColumns...).
		Values(
			change.ID, string(change.EntityType), change.EntityID, change.AccountID,
			string(change.ChangeType), change.CreatedAt.UTC(), change.RetryCount, change.LastError,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListOrdered implements [PendingChangeRepository]. Entries come back oldest
// first so a flush replays a single entity's edits in causal order.
func (r *pendingChangeRepository) ListOrdered(ctx context.Context) ([]models.PendingChange, error) {
	query, args, err := sq.Select(pendingColumns...).
		From(pendingChangesTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var changes []models.PendingChange
	for rows.Next() {
		var ch models.PendingChange
		err = rows.Scan(
			&ch.ID, &ch.EntityType, &ch.EntityID, &ch.AccountID,
			&ch.ChangeType, &ch.CreatedAt, &ch.RetryCount, &ch.LastError,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		changes = append(changes, ch)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

// Count implements [PendingChangeRepository].
func (r *pendingChangeRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM "+pendingChangesTable).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// Fail implements [PendingChangeRepository].
func (r *pendingChangeRepository) Fail(ctx context.Context, id string, lastError string) error {
	query, args, err := sq.Update(pendingChangesTable).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("last_error", lastError).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrPendingChangeNotFound
	}

	return nil
}

// Discard implements [PendingChangeRepository].
func (r *pendingChangeRepository) Discard(ctx context.Context, id string) error {
	query, args, err := sq.Delete(pendingChangesTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Resolve implements [PendingChangeRepository]. Queue removal and the record
// side effect commit together so a crash between them cannot leave the queue
// and the record disagreeing about the push.
func (r *pendingChangeRepository) Resolve(ctx context.Context, change models.PendingChange) error {
	if _, ok := entityTables[change.EntityType]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEntityType, change.EntityType)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	deleteQueue, args, err := sq.Delete(pendingChangesTable).Where(sq.Eq{"id": change.ID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQueue, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	table := string(change.EntityType)
	where := sq.Eq{"id": change.EntityID, "account_id": change.AccountID}

	var recordQuery string
	var recordArgs []any
	if change.ChangeType == models.ChangeDelete {
		recordQuery, recordArgs, err = sq.Delete(table).Where(where).ToSql()
	} else {
		recordQuery, recordArgs, err = sq.Update(table).Set("synced", true).Where(where).ToSql()
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, recordQuery, recordArgs...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
