// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the sync daemon needs before it starts.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Account.ID == "" {
		return ErrInvalidAccountConfigs
	}

	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval <= 0 || cfg.Sync.RetryLimit <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
