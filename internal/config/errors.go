package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAccountConfigs indicates a missing account identifier.
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid backend adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates invalid sync engine settings
	// (for example, zero sync interval or retry ceiling).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
