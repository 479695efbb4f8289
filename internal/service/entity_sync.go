// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-organizer/internal/adapter"
	"github.com/MKhiriev/go-family-organizer/internal/logger"
	"github.com/MKhiriev/go-family-organizer/internal/store"
	"github.com/MKhiriev/go-family-organizer/models"
)

type entitySyncer[T models.Record] struct {
	entity     models.EntityType
	local      store.RecordStore[T]
	remote     adapter.Gateway[T]
	serverWins bool

	logger *logger.Logger
}

// NewEntitySync constructs the [EntitySync] strategy for one entity type over
// its local store and remote gateway. With serverWins set, the remote copy of
// a record always replaces the local one on pull; otherwise the strictly
// newer UpdatedAt wins. A full sync flushes the pending queue before pulling,
// so local edits reach the server before they can lose the comparison.
func NewEntitySync[T models.Record](entity models.EntityType, local store.RecordStore[T], remote adapter.Gateway[T], serverWins bool, log *logger.Logger) EntitySync {
	return &entitySyncer[T]{entity: entity, local: local, remote: remote, serverWins: serverWins, logger: log}
}

func (s *entitySyncer[T]) Type() models.EntityType {
	return s.entity
}

// Pull implements [EntitySync]. The merged records are committed with one
// transactional batch upsert, so a pull either lands completely for this
// entity or not at all.
func (s *entitySyncer[T]) Pull(ctx context.Context, accountID string) (int, error) {
	remote, err := s.remote.List(ctx, accountID)
	if err != nil {
		return 0, mapGatewayError(err)
	}

	local, err := s.local.List(ctx, accountID)
	if err != nil {
		return 0, fmt.Errorf("list local %s: %w", s.entity, err)
	}

	existing := make(map[string]*models.SyncFields, len(local))
	for _, rec := range local {
		meta := rec.Meta()
		existing[meta.ID] = meta
	}

	batch := make([]T, 0, len(remote))
	for _, rec := range remote {
		meta := rec.Meta()

		current, found := existing[meta.ID]
		if !found {
			// Tombstones of records this device never had are not worth
			// materializing.
			if meta.Deleted {
				continue
			}
		} else if !s.serverWins && !meta.UpdatedAt.After(current.UpdatedAt) {
			continue
		}

		meta.Synced = true
		batch = append(batch, rec)
	}

	if len(batch) == 0 {
		return 0, nil
	}

	if err = s.local.SaveBatch(ctx, batch); err != nil {
		return 0, fmt.Errorf("merge %s: %w", s.entity, err)
	}

	s.logger.Debug().Str("entity", string(s.entity)).Int("applied", len(batch)).Msg("pull merged")
	return len(batch), nil
}

// Push implements [EntitySync]. Creates and updates are sent from the
// record's current local state, so a queue entry always pushes the latest
// version no matter how old the entry is. A create answered with a conflict
// falls back to an update (the record already made it to the server); an
// update answered with not-found falls back to a create.
func (s *entitySyncer[T]) Push(ctx context.Context, change models.PendingChange) error {
	switch change.ChangeType {
	case models.ChangeCreate, models.ChangeUpdate:
		rec, err := s.local.Get(ctx, change.AccountID, change.EntityID)
		if err != nil {
			return err
		}

		if change.ChangeType == models.ChangeCreate {
			err = s.remote.Create(ctx, rec)
			if errors.Is(err, adapter.ErrConflict) {
				err = s.remote.Update(ctx, rec)
			}
		} else {
			err = s.remote.Update(ctx, rec)
			if errors.Is(err, adapter.ErrNotFound) {
				err = s.remote.Create(ctx, rec)
			}
		}
		if err != nil {
			return mapGatewayError(err)
		}

	case models.ChangeDelete:
		err := s.remote.Delete(ctx, change.AccountID, change.EntityID)
		if err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return mapGatewayError(err)
		}

	default:
		return fmt.Errorf("unknown change type %q for %s %s", change.ChangeType, change.EntityType, change.EntityID)
	}

	return nil
}
