// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env, using
// the `env`/`envPrefix` tags declared on [StructuredConfig]. Unset variables
// leave their fields at zero values so the later sources (flags, JSON file)
// can fill them in.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env config: %w", err)
	}

	return nil
}
