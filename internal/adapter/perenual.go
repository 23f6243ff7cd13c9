// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/plant-pal/internal/config"
	"github.com/MKhiriev/plant-pal/internal/logger"
	"github.com/MKhiriev/plant-pal/internal/metrics"
	"github.com/MKhiriev/plant-pal/internal/utils"
	"github.com/MKhiriev/plant-pal/models"
)

const perenualService = "perenual"

type perenualDirectory struct {
	client   *utils.HTTPClient
	apiKey   string
	recorder metrics.Recorder
	logger   *logger.Logger
}

// NewPerenualDirectory constructs a [PlantDirectory] for a Perenual-compatible
// API rooted at cfg.BaseURL. An empty cfg.APIKey is allowed; every lookup then
// fails with [ErrMissingCredential] without touching the network.
func NewPerenualDirectory(cfg config.Perenual, recorder metrics.Recorder, logger *logger.Logger) PlantDirectory {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &perenualDirectory{
		client:   utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.Timeout),
		apiKey:   strings.TrimSpace(cfg.APIKey),
		recorder: recorder,
		logger:   logger,
	}
}

func (p *perenualDirectory) Configured() bool {
	return p.apiKey != ""
}

// SearchSpecies implements [PlantDirectory] with GET /species-list?key=&q=.
func (p *perenualDirectory) SearchSpecies(ctx context.Context, query string) ([]models.SpeciesSuggestion, error) {
	var list speciesList
	err := p.get(ctx, "/species-list", map[string]string{"q": query}, &list)
	if err != nil {
		return nil, err
	}

	suggestions := make([]models.SpeciesSuggestion, 0, len(list.Data))
	for _, record := range list.Data {
		if s, ok := record.suggestion(); ok {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}

// SpeciesDetails implements [PlantDirectory] with GET /species/details/{id}?key=.
func (p *perenualDirectory) SpeciesDetails(ctx context.Context, id int64) (models.SpeciesDetail, error) {
	var record speciesRecord
	err := p.get(ctx, "/species/details/"+strconv.FormatInt(id, 10), nil, &record)
	if err != nil {
		return models.SpeciesDetail{}, err
	}
	return record.detail(id), nil
}

func (p *perenualDirectory) get(ctx context.Context, path string, params map[string]string, out any) (err error) {
	if !p.Configured() {
		return ErrMissingCredential
	}

	start := time.Now()
	defer func() {
		p.recorder.ObserveUpstream(perenualService, outcome(err), time.Since(start))
	}()

	resp, err := p.request(ctx, params).Get(path)
	if err != nil {
		err = withoutURL(err)
		logger.FromContext(ctx).Err(err).Str("func", "*perenualDirectory.get").Str("path", path).Msg("species directory request failed")
		return fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "*perenualDirectory.get").
			Str("path", path).
			Int("status", resp.StatusCode()).
			Msg("species directory answered with an error status")
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrUpstream, err)
	}
	return nil
}

func (p *perenualDirectory) request(ctx context.Context, params map[string]string) *resty.Request {
	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("key", p.apiKey)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	return req
}

// withoutURL drops the request URL from transport errors; it carries the
// API key as a query parameter.
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
