package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-family-organizer/internal/adapter"
)

var (
	// ErrNotAuthenticated means the session token is missing, expired or was
	// rejected by the backend. Fatal to the current sync run; nothing is
	// retried until a fresh token is supplied.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNetworkUnavailable means the backend could not be reached at all.
	// The run stops, queued changes stay queued, and the engine reports
	// itself offline.
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrServerUnavailable means the backend responded but is failing.
	// Affected pushes are retried up to the retry ceiling.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrConflictDetected means the backend rejected a write because of a
	// concurrent modification.
	ErrConflictDetected = errors.New("sync conflict detected")

	// ErrDataCorruption means a payload could not be decoded. The affected
	// record is logged and skipped; the run continues.
	ErrDataCorruption = errors.New("corrupted sync payload")
)

// mapGatewayError translates transport-level sentinels from the adapter
// package into the sync taxonomy so the rest of the engine never has to know
// which transport is in use. Errors that carry no adapter sentinel pass
// through unchanged.
func mapGatewayError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrNotAuthenticated, err)
	case errors.Is(err, adapter.ErrUnreachable):
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	case errors.Is(err, adapter.ErrServer):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrConflictDetected, err)
	case errors.Is(err, adapter.ErrDecodeResponse):
		return fmt.Errorf("%w: %w", ErrDataCorruption, err)
	default:
		return err
	}
}
