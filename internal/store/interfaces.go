package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-family-organizer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// RecordStore is the typed local repository for one synchronized entity.
// List returns every record for the account including soft-deleted
// tombstones; the sync engine needs them for diffing, and the thin CRUD
// layer above filters tombstones out for display.
type RecordStore[T models.Record] interface {
	Get(ctx context.Context, accountID, id string) (T, error)
	List(ctx context.Context, accountID string) ([]T, error)
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
	Delete(ctx context.Context, accountID, id string) error

	// SaveBatch upserts all records in a single transaction. The sync
	// strategies use it to commit one entity's merged pull atomically.
	SaveBatch(ctx context.Context, recs []T) error
}

// MedicationLogStore extends the plain record store with the occurrence
// lookup the local derivation step needs to stay idempotent.
type MedicationLogStore interface {
	RecordStore[*models.MedicationLog]

	// ExistsOccurrence reports whether a log row already exists for the
	// exact (schedule, scheduled instant) pair.
	ExistsOccurrence(ctx context.Context, scheduleID string, scheduledFor time.Time) (bool, error)
}

// PendingChangeRepository is the durable queue of outbound local mutations.
// It is owned by the sync orchestrator; nothing else reads or writes it.
type PendingChangeRepository interface {
	Append(ctx context.Context, change models.PendingChange) error

	// ListOrdered returns all queued changes ordered by CreatedAt so a flush
	// preserves the causal order of a single entity's edits.
	ListOrdered(ctx context.Context) ([]models.PendingChange, error)

	Count(ctx context.Context) (int, error)

	// Fail records a push failure: retry_count is incremented and last_error
	// replaced. The entry stays queued for the next flush.
	Fail(ctx context.Context, id string, lastError string) error

	// Discard removes a queue entry without touching the referenced record.
	// Used for superseded entries and entries past the retry ceiling.
	Discard(ctx context.Context, id string) error

	// Resolve finishes a successfully pushed change in one transaction:
	// the queue entry is removed and, for creates and updates, the local
	// record is marked synced; for deletes the local tombstone row is purged.
	Resolve(ctx context.Context, change models.PendingChange) error
}

// SyncMetadataRepository stores the per-account timestamp of the last
// successful full sync.
type SyncMetadataRepository interface {
	Get(ctx context.Context, accountID string) (models.SyncMetadata, error)
	Upsert(ctx context.Context, meta models.SyncMetadata) error
}
