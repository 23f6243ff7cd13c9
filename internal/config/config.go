// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// plant-pal server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds session, cookie and versioning settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener, timeouts and rate limiting settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds credentials and endpoints of the upstream services
	// (plant directory and language model).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Cache holds the lifetimes of the upstream response caches.
	Cache Cache `envPrefix:"CACHE_"`

	// Workers holds configuration for background maintenance jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control sessions
// and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session remains valid.
	// Defaults to 7 days.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CookieName is the name of the session cookie. Defaults to "token".
	// Env: APP_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// Environment is "production" or anything else. Production sessions
	// are issued with the Secure cookie attribute.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is exposed via the /api/health endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the server runs in production mode.
func (a App) IsProduction() bool {
	return a.Environment == EnvironmentProduction
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database. A postgres:// or
	// postgresql:// URL opens PostgreSQL through pgx. A file: URI, a *.db
	// path or :memory: opens SQLite. Other values are rejected at startup.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns bounds the connection pool. Defaults to 10.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format. Defaults to ":5000".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request. It must exceed [StructuredConfig.UpstreamBudget]. Defaults to
	// 30s or the upstream budget plus [RequestTimeoutMargin], whichever is larger.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown. Defaults to 10s.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// StaticDir is the built single-page application. Empty disables
	// static file serving.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// RateLimitRPS is the sustained per-client request rate on the
	// directory and advisor routes. Defaults to 2.
	// Env: SERVER_RATE_LIMIT_RPS
	RateLimitRPS float64 `env:"RATE_LIMIT_RPS"`

	// RateLimitBurst is the per-client burst size. Defaults to 10.
	// Env: SERVER_RATE_LIMIT_BURST
	RateLimitBurst int `env:"RATE_LIMIT_BURST"`
}

// Adapter holds configuration for upstream integrations.
type Adapter struct {
	Perenual Perenual `envPrefix:"PERENUAL_"`
	Gemini   Gemini   `envPrefix:"GEMINI_"`
}

// Perenual configures the plant directory client.
type Perenual struct {
	// BaseURL defaults to https://perenual.com/api.
	// Env: ADAPTER_PERENUAL_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is optional at startup; without it the directory endpoints
	// answer with a configuration error.
	// Env: ADAPTER_PERENUAL_API_KEY
	APIKey string `env:"API_KEY"`

	// Timeout bounds a single upstream call. Defaults to 10s.
	// Env: ADAPTER_PERENUAL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// RetryDelay is the pause before the single retry on HTTP 429.
	// Defaults to 2.5s.
	// Env: ADAPTER_PERENUAL_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`
}

// Gemini configures the language model client.
type Gemini struct {
	// APIKey is optional at startup; without it the advisor endpoints
	// answer 503.
	// Env: ADAPTER_GEMINI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model defaults to gemini-2.0-flash.
	// Env: ADAPTER_GEMINI_MODEL
	Model string `env:"MODEL"`

	// Timeout bounds a single model call. Defaults to 30s.
	// Env: ADAPTER_GEMINI_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Cache holds cache lifetimes.
type Cache struct {
	// SuggestionsTTL defaults to 10m.
	// Env: CACHE_SUGGESTIONS_TTL
	SuggestionsTTL time.Duration `env:"SUGGESTIONS_TTL"`

	// DetailsTTL defaults to 24h.
	// Env: CACHE_DETAILS_TTL
	DetailsTTL time.Duration `env:"DETAILS_TTL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// LimiterCleanupInterval is how often idle rate limiter entries are
	// dropped. Defaults to 1m.
	// Env: WORKERS_LIMITER_CLEANUP_INTERVAL
	LimiterCleanupInterval time.Duration `env:"LIMITER_CLEANUP_INTERVAL"`

	// LimiterIdleTTL is how long a client may stay silent before its
	// limiter is dropped. Defaults to 3m.
	// Env: WORKERS_LIMITER_IDLE_TTL
	LimiterIdleTTL time.Duration `env:"LIMITER_IDLE_TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. .env file in the working directory (never overrides the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Defaults are applied to every field still empty after the merge.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
