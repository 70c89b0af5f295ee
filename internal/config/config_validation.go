// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An absent BASE_URL is already rejected by the resolver; a BASE_URL that is
// set but empty is reported here as [ErrConfigMissing] naming the key.
func (cfg *StructuredConfig) validate() error {
	if cfg.Upstream.BaseURL == "" {
		return fmt.Errorf("%w: %s", ErrConfigMissing, baseURLKey)
	}

	if cfg.Server.MaxConcurrentRequests < 0 {
		return fmt.Errorf("%w: SERVER_MAX_CONCURRENT_REQUESTS must not be negative", ErrInvalidServerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return nil
}
