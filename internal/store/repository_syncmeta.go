// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/models"
)

const syncMetadataTable = "sync_metadata"

type syncMetadataRepository struct {
	db     *DB
	logger *logger.Logger
}

func newSyncMetadataRepository(db *DB, log *logger.Logger) *syncMetadataRepository {
	return &syncMetadataRepository{db: db, logger: log}
}

// Get implements [SyncMetadataRepository].
func (r *syncMetadataRepository) Get(ctx context.Context, accountID string) (models.SyncMetadata, error) {
	query, args, err := sq.Select("account_id", "last_synced_at").
		From(syncMetadataTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var meta models.SyncMetadata
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&meta.AccountID, &meta.LastSyncedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SyncMetadata{}, ErrSyncMetadataNotFound
		}
		return models.SyncMetadata{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

// Upsert implements [SyncMetadataRepository].
func (r *syncMetadataRepository) Upsert(ctx context.Context, meta models.SyncMetadata) error {
	query, args, err := sq.Insert(syncMetadataTable).
		Columns("account_id", "last_synced_at").
		Values(meta.AccountID, meta.LastSyncedAt.UTC()).
		Suffix("ON CONFLICT(account_id) DO UPDATE SET last_synced_at = excluded.last_synced_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
