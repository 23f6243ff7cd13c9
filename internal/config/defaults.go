// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	EnvironmentProduction = "production"

	DefaultTokenIssuer            = "plant-pal"
	DefaultTokenDuration          = 7 * 24 * time.Hour
	DefaultCookieName             = "token"
	DefaultHTTPAddress            = ":5000"
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultRateLimitRPS           = 2
	DefaultRateLimitBurst         = 10
	DefaultMaxOpenConns           = 10
	DefaultPerenualBaseURL        = "https://perenual.com/api"
	DefaultPerenualTimeout        = 10 * time.Second
	DefaultPerenualRetryDelay     = 2500 * time.Millisecond
	DefaultGeminiModel            = "gemini-2.0-flash"
	DefaultGeminiTimeout          = 30 * time.Second
	DefaultSuggestionsTTL         = 10 * time.Minute
	DefaultDetailsTTL             = 24 * time.Hour
	DefaultLimiterCleanupInterval = time.Minute
	DefaultLimiterIdleTTL         = 3 * time.Minute

	// RequestTimeoutMargin is what a request keeps for writing its response
	// after the slowest upstream chain has timed out.
	RequestTimeoutMargin = 5 * time.Second
)

// applyDefaults fills every zero field that has a default.
func (cfg *StructuredConfig) applyDefaults() {
	setDefault(&cfg.App.TokenIssuer, DefaultTokenIssuer)
	setDefault(&cfg.App.TokenDuration, DefaultTokenDuration)
	setDefault(&cfg.App.CookieName, DefaultCookieName)

	setDefault(&cfg.Storage.DB.MaxOpenConns, DefaultMaxOpenConns)

	setDefault(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setDefault(&cfg.Server.ShutdownTimeout, DefaultShutdownTimeout)
	setDefault(&cfg.Server.RateLimitRPS, DefaultRateLimitRPS)
	setDefault(&cfg.Server.RateLimitBurst, DefaultRateLimitBurst)

	setDefault(&cfg.Adapter.Perenual.BaseURL, DefaultPerenualBaseURL)
	setDefault(&cfg.Adapter.Perenual.Timeout, DefaultPerenualTimeout)
	setDefault(&cfg.Adapter.Perenual.RetryDelay, DefaultPerenualRetryDelay)
	setDefault(&cfg.Adapter.Gemini.Model, DefaultGeminiModel)
	setDefault(&cfg.Adapter.Gemini.Timeout, DefaultGeminiTimeout)
	setDefault(&cfg.Server.RequestTimeout, max(DefaultRequestTimeout, cfg.UpstreamBudget()+RequestTimeoutMargin))

	setDefault(&cfg.Cache.SuggestionsTTL, DefaultSuggestionsTTL)
	setDefault(&cfg.Cache.DetailsTTL, DefaultDetailsTTL)

	setDefault(&cfg.Workers.LimiterCleanupInterval, DefaultLimiterCleanupInterval)
	setDefault(&cfg.Workers.LimiterIdleTTL, DefaultLimiterIdleTTL)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}

// UpstreamBudget is the longest time a single request can wait on upstreams:
// either one model call, or a rate-limited directory lookup followed by the
// retry delay and a second lookup.
func (cfg *StructuredConfig) UpstreamBudget() time.Duration {
	directory := 2*cfg.Adapter.Perenual.Timeout + cfg.Adapter.Perenual.RetryDelay
	return max(directory, cfg.Adapter.Gemini.Timeout)
}
