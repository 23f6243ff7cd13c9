// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files.
// Durations are written as strings ("30s", "168h").
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		CookieName    string   `json:"cookie_name"`
		Environment   string   `json:"environment"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		StaticDir       string   `json:"static_dir"`
		RateLimitRPS    float64  `json:"rate_limit_rps"`
		RateLimitBurst  int      `json:"rate_limit_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		Perenual struct {
			BaseURL    string   `json:"base_url"`
			APIKey     string   `json:"api_key"`
			Timeout    Duration `json:"timeout"`
			RetryDelay Duration `json:"retry_delay"`
		} `json:"perenual,omitempty"`
		Gemini struct {
			APIKey  string   `json:"api_key"`
			Model   string   `json:"model"`
			Timeout Duration `json:"timeout"`
		} `json:"gemini,omitempty"`
	} `json:"adapter,omitempty"`

	Cache struct {
		SuggestionsTTL Duration `json:"suggestions_ttl"`
		DetailsTTL     Duration `json:"details_ttl"`
	} `json:"cache,omitempty"`

	Workers struct {
		LimiterCleanupInterval Duration `json:"limiter_cleanup_interval"`
		LimiterIdleTTL         Duration `json:"limiter_idle_ttl"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			CookieName:    j.App.CookieName,
			Environment:   j.App.Environment,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),
			StaticDir:       j.Server.StaticDir,
			RateLimitRPS:    j.Server.RateLimitRPS,
			RateLimitBurst:  j.Server.RateLimitBurst,
		},
		Adapter: Adapter{
			Perenual: Perenual{
				BaseURL:    j.Adapter.Perenual.BaseURL,
				APIKey:     j.Adapter.Perenual.APIKey,
				Timeout:    time.Duration(j.Adapter.Perenual.Timeout),
				RetryDelay: time.Duration(j.Adapter.Perenual.RetryDelay),
			},
			Gemini: Gemini{
				APIKey:  j.Adapter.Gemini.APIKey,
				Model:   j.Adapter.Gemini.Model,
				Timeout: time.Duration(j.Adapter.Gemini.Timeout),
			},
		},
		Cache: Cache{
			SuggestionsTTL: time.Duration(j.Cache.SuggestionsTTL),
			DetailsTTL:     time.Duration(j.Cache.DetailsTTL),
		},
		Workers: Workers{
			LimiterCleanupInterval: time.Duration(j.Workers.LimiterCleanupInterval),
			LimiterIdleTTL:         time.Duration(j.Workers.LimiterIdleTTL),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
