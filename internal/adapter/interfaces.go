// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the family organizer backend.
//
// The primary abstraction is [Gateway], which decouples the sync service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPGateway]) built on resty; every entity resource is exposed by the
// backend under /api/{resource} and shares the same CRUD shape, so a single
// generic implementation serves all entity types.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-family-organizer/models"
)

// Gateway defines transport-agnostic communication with a single backend
// entity resource. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type Gateway[T models.Record] interface {
	// List fetches all remote records of this resource owned by accountID,
	// including soft-deleted ones. Returns an error if the request fails or
	// the response cannot be decoded.
	List(ctx context.Context, accountID string) ([]T, error)

	// Create sends a new record to the backend. The record keeps its
	// client-generated ID. Returns an error if the request fails or the
	// server responds with a non-2xx status.
	Create(ctx context.Context, rec T) error

	// Update replaces the remote record identified by rec's ID with rec.
	// Returns [ErrConflict] (wrapped) if the server rejects the write, or
	// [ErrNotFound] (wrapped) if the record no longer exists remotely.
	Update(ctx context.Context, rec T) error

	// Delete soft-deletes the remote record with the given id. Returns
	// [ErrNotFound] (wrapped) if the record is already gone.
	Delete(ctx context.Context, accountID, id string) error
}
