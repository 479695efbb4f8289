// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-family-organizer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingChange(id string, createdAt time.Time) models.PendingChange {
	return models.PendingChange{
		ID:         id,
		EntityType: models.EntityTodoItem,
		EntityID:   "todo-" + id,
		AccountID:  "acc-1",
		ChangeType: models.ChangeCreate,
		CreatedAt:  createdAt,
	}
}

func TestPendingChanges_AppendAndListOrdered(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-2", base.Add(time.Minute))))
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-1", base)))
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-3", base.Add(2*time.Minute))))

	got, err := storages.PendingChanges.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "ch-1", got[0].ID)
	assert.Equal(t, "ch-2", got[1].ID)
	assert.Equal(t, "ch-3", got[2].ID)

	assert.Equal(t, models.EntityTodoItem, got[0].EntityType)
	assert.Equal(t, models.ChangeCreate, got[0].ChangeType)
	assert.Equal(t, "todo-ch-1", got[0].EntityID)
	assert.Zero(t, got[0].RetryCount)
}

func TestPendingChanges_ListOrderedBreaksTiesByID(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	at := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-b", at)))
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-a", at)))

	got, err := storages.PendingChanges.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ch-a", got[0].ID)
	assert.Equal(t, "ch-b", got[1].ID)
}

func TestPendingChanges_Count(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	count, err := storages.PendingChanges.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	base := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-1", base)))
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-2", base)))

	count, err = storages.PendingChanges.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPendingChanges_FailIncrementsRetryCount(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-1", base)))

	require.NoError(t, storages.PendingChanges.Fail(ctx, "ch-1", "server unavailable"))
	require.NoError(t, storages.PendingChanges.Fail(ctx, "ch-1", "still unavailable"))

	got, err := storages.PendingChanges.ListOrdered(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].RetryCount)
	assert.Equal(t, "still unavailable", got[0].LastError)
}

func TestPendingChanges_FailMissingEntry(t *testing.T) {
	storages := newTestStorages(t)

	err := storages.PendingChanges.Fail(context.Background(), "missing", "boom")
	assert.ErrorIs(t, err, ErrPendingChangeNotFound)
}

func TestPendingChanges_Discard(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.PendingChanges.Append(ctx, pendingChange("ch-1", base)))

	require.NoError(t, storages.PendingChanges.Discard(ctx, "ch-1"))

	count, err := storages.PendingChanges.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// discarding an absent entry is not an error
	assert.NoError(t, storages.PendingChanges.Discard(ctx, "ch-1"))
}

func TestPendingChanges_ResolveMarksRecordSynced(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	todo := &models.TodoItem{
		SyncFields: models.SyncFields{ID: "todo-1", AccountID: "acc-1", UpdatedAt: now},
		ListName:   "groceries",
		Title:      "Milk",
	}
	require.NoError(t, storages.TodoItems.Insert(ctx, todo))

	change := models.PendingChange{
		ID:         "ch-1",
		EntityType: models.EntityTodoItem,
		EntityID:   "todo-1",
		AccountID:  "acc-1",
		ChangeType: models.ChangeCreate,
		CreatedAt:  now,
	}
	require.NoError(t, storages.PendingChanges.Append(ctx, change))

	require.NoError(t, storages.PendingChanges.Resolve(ctx, change))

	count, err := storages.PendingChanges.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	got, err := storages.TodoItems.Get(ctx, "acc-1", "todo-1")
	require.NoError(t, err)
	assert.True(t, got.Synced)
}

func TestPendingChanges_ResolveDeletePurgesTombstone(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	now := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	tombstone := &models.TodoItem{
		SyncFields: models.SyncFields{ID: "todo-1", AccountID: "acc-1", UpdatedAt: now, Deleted: true},
		ListName:   "groceries",
		Title:      "Milk",
	}
	require.NoError(t, storages.TodoItems.Insert(ctx, tombstone))

	change := models.PendingChange{
		ID:         "ch-1",
		EntityType: models.EntityTodoItem,
		EntityID:   "todo-1",
		AccountID:  "acc-1",
		ChangeType: models.ChangeDelete,
		CreatedAt:  now,
	}
	require.NoError(t, storages.PendingChanges.Append(ctx, change))

	require.NoError(t, storages.PendingChanges.Resolve(ctx, change))

	_, err := storages.TodoItems.Get(ctx, "acc-1", "todo-1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestPendingChanges_ResolveRejectsUnknownEntityType(t *testing.T) {
	storages := newTestStorages(t)

	change := models.PendingChange{
		ID:         "ch-1",
		EntityType: "not_a_table; DROP TABLE todos",
		EntityID:   "todo-1",
		AccountID:  "acc-1",
		ChangeType: models.ChangeCreate,
	}
	err := storages.PendingChanges.Resolve(context.Background(), change)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
}

func TestSyncMetadata_GetMissing(t *testing.T) {
	storages := newTestStorages(t)

	_, err := storages.SyncMetadata.Get(context.Background(), "acc-1")
	assert.ErrorIs(t, err, ErrSyncMetadataNotFound)
}

func TestSyncMetadata_UpsertAndGet(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()

	first := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	require.NoError(t, storages.SyncMetadata.Upsert(ctx, models.SyncMetadata{AccountID: "acc-1", LastSyncedAt: first}))

	got, err := storages.SyncMetadata.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got.AccountID)
	assert.True(t, got.LastSyncedAt.Equal(first))

	second := first.Add(time.Hour)
	require.NoError(t, storages.SyncMetadata.Upsert(ctx, models.SyncMetadata{AccountID: "acc-1", LastSyncedAt: second}))

	got, err = storages.SyncMetadata.Get(ctx, "acc-1")
	require.NoError(t, err)
	assert.True(t, got.LastSyncedAt.Equal(second))
}
