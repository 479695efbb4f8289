// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a query or update targets an entity
	// record (identified by id and account_id) that does not exist in the
	// local database. The sync engine uses it to detect superseded pending
	// changes whose record has since been removed.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrPendingChangeNotFound is returned when a queue operation targets a
	// pending change entry that no longer exists.
	ErrPendingChangeNotFound = errors.New("pending change was not found")

	// ErrSyncMetadataNotFound is returned when no sync metadata row exists
	// for the requested account, i.e. the account has never completed a full
	// sync on this device.
	ErrSyncMetadataNotFound = errors.New("sync metadata was not found")

	// ErrUnknownEntityType is returned when a pending change references an
	// entity type the store has no table for. This indicates a corrupted
	// queue entry and the change should be discarded.
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
