// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

// syncColumns are the shared columns every entity table starts with, in the
// order the scan functions expect them.
var syncColumns = []string{"id", "account_id", "updated_at", "synced", "deleted"}

type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how one entity maps onto its table: the payload columns
// that follow the shared sync columns, how to extract their values from a
// record, and how to scan a full row back.
type tableSpec[T models.Record] struct {
	table   string
	columns []string
	values  func(rec T) []any
	scan    func(row rowScanner) (T, error)
}

// recordRepository is the generic squirrel-backed implementation of
// [RecordStore]. One instance per entity table, parameterised by its spec.
type recordRepository[T models.Record] struct {
	db     *DB
	spec   tableSpec[T]
	logger *logger.Logger
}

func newRecordRepository[T models.Record](db *DB, spec tableSpec[T], log *logger.Logger) *recordRepository[T] {
	return &recordRepository[T]{db: db, spec: spec, logger: log}
}

func (r *recordRepository[T]) allColumns() []string {
	cols := make([]string, 0, len(syncColumns)+len(r.spec.columns))
	cols = append(cols, syncColumns...)
	cols = append(cols, r.spec.columns...)
	return cols
}

func (r *recordRepository[T]) allValues(rec T) []any {
	meta := rec.Meta()
	vals := make([]any, 0, len(syncColumns)+len(r.spec.columns))
	vals = append(vals, meta.ID, meta.AccountID, meta.UpdatedAt.UTC(), meta.Synced, meta.Deleted)
	vals = append(vals, r.spec.values(rec)...)
	return vals
}

func (r *recordRepository[T]) Get(ctx context.Context, accountID, id string) (T, error) {
	var zero T

	query, args, err := sq.Select(r.allColumns()...).
		From(r.spec.table).
		Where(sq.Eq{"id": id, "account_id": accountID}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rec, err := r.spec.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrRecordNotFound
		}
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *recordRepository[T]) List(ctx context.Context, accountID string) ([]T, error) {
	query, args, err := sq.Select(r.allColumns()...).
		From(r.spec.table).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var recs []T
	for rows.Next() {
		rec, err := r.spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recs, nil
}

func (r *recordRepository[T]) Insert(ctx context.Context, rec T) error {
	query, args, err := sq.Insert(r.spec.table).
		Columns(r.allColumns()...).
		Values(r.allValues(rec)...).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *recordRepository[T]) Update(ctx context.Context, rec T) error {
	meta := rec.Meta()

	builder := sq.Update(r.spec.table).
		Set("updated_at", meta.UpdatedAt.UTC()).
		Set("synced", meta.Synced).
		Set("deleted", meta.Deleted)
	vals := r.spec.values(rec)
	for i, col := range r.spec.columns {
		builder = builder.Set(col, vals[i])
	}

	query, args, err := builder.
		Where(sq.Eq{"id": meta.ID, "account_id": meta.AccountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *recordRepository[T]) Delete(ctx context.Context, accountID, id string) error {
	query, args, err := sq.Delete(r.spec.table).
		Where(sq.Eq{"id": id, "account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SaveBatch implements [RecordStore]. Every record is upserted by id inside
// one transaction so a merged entity pull commits all-or-nothing.
func (r *recordRepository[T]) SaveBatch(ctx context.Context, recs []T) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	suffix := upsertSuffix(r.allColumns())
	for _, rec := range recs {
		query, args, err := sq.Insert(r.spec.table).
			Columns(r.allColumns()...).
			Values(r.allValues(rec)...).
			Suffix(suffix).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// upsertSuffix builds the ON CONFLICT clause updating every non-key column
// from the excluded row.
func upsertSuffix(columns []string) string {
	assignments := make([]string, 0, len(columns)-1)
	for _, col := range columns {
		if col == "id" {
			continue
		}
		assignments = append(assignments, col+" = excluded."+col)
	}
	return "ON CONFLICT(id) DO UPDATE SET " + strings.Join(assignments, ", ")
}
