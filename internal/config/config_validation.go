// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Defaults are expected to be applied already.
//
// Upstream API keys are optional: the endpoints that need them
// report a configuration error at request time.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open connections must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.RateLimitRPS < 0 || cfg.Server.RateLimitBurst < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if budget := cfg.UpstreamBudget(); cfg.Server.RequestTimeout <= budget {
		return fmt.Errorf("%w: request timeout %s must exceed the upstream budget %s",
			ErrInvalidServerConfigs, cfg.Server.RequestTimeout, budget)
	}

	if cfg.Adapter.Perenual.RetryDelay < 0 || cfg.Adapter.Perenual.Timeout < 0 || cfg.Adapter.Gemini.Timeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidAdapterConfigs)
	}

	return nil
}
