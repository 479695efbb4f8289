// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env, resolving
// variable names from the `env` and `envPrefix` tags on [StructuredConfig].
// Env is the lowest-priority configuration layer; flags and the optional JSON
// file are merged on top by the builder.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error parsing env configs: %w", err)
	}

	return nil
}
