// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"encoding/json"
	"html"
	"sort"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/plant-pal/models"
)

// Field fallbacks shared by the search and the detail path. The first
// non-empty candidate wins.
//
//	scientific_name  string | [string]                      joined with ", "
//	sunlight         string | [string]                      joined with ", "
//	watering         watering_general_benchmark "value unit", then watering
//	description      string | [string] | {key: [string]}    joined with " "
//	image            default_image.medium_url, regular_url, small_url,
//	                 thumbnail, original_url
var imageKeys = []string{"medium_url", "regular_url", "small_url", "thumbnail", "original_url"}

const (
	listSeparator = ", "
	textSeparator = " "
)

var textPolicy = bluemonday.StrictPolicy()

// speciesRecord keeps every field raw so that an unexpected shape in one
// field leaves the others usable.
type speciesRecord struct {
	ID             json.RawMessage `json:"id"`
	CommonName     json.RawMessage `json:"common_name"`
	ScientificName json.RawMessage `json:"scientific_name"`
	Sunlight       json.RawMessage `json:"sunlight"`
	Watering       json.RawMessage `json:"watering"`
	WateringBench  json.RawMessage `json:"watering_general_benchmark"`
	Description    json.RawMessage `json:"description"`
	DefaultImage   json.RawMessage `json:"default_image"`
}

type speciesList struct {
	Data []speciesRecord `json:"data"`
}

func (r speciesRecord) suggestion() (models.SpeciesSuggestion, bool) {
	id, ok := recordID(r.ID)
	if !ok {
		return models.SpeciesSuggestion{}, false
	}
	return models.SpeciesSuggestion{
		ID:             id,
		CommonName:     flatten(r.CommonName, listSeparator),
		ScientificName: flatten(r.ScientificName, listSeparator),
	}, true
}

func (r speciesRecord) detail(fallbackID int64) models.SpeciesDetail {
	id, ok := recordID(r.ID)
	if !ok {
		id = fallbackID
	}
	return models.SpeciesDetail{
		ID:                id,
		CommonName:        flatten(r.CommonName, listSeparator),
		ScientificName:    flatten(r.ScientificName, listSeparator),
		Sunlight:          flatten(r.Sunlight, listSeparator),
		WateringFrequency: r.watering(),
		Description:       flatten(r.Description, textSeparator),
		Image:             firstImage(r.DefaultImage),
	}
}

func (r speciesRecord) watering() string {
	if v := benchmark(r.WateringBench); v != "" {
		return v
	}
	return flatten(r.Watering, listSeparator)
}

// benchmark renders {"value": "7-10", "unit": "days"} as "7-10 days".
func benchmark(raw json.RawMessage) string {
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) != nil {
		return ""
	}
	// the directory sends the value as a quoted string, e.g. "\"7-10\"".
	value := strings.TrimSpace(strings.Trim(flatten(obj["value"], listSeparator), `"`))
	if value == "" {
		return ""
	}
	return strings.TrimSpace(value + " " + flatten(obj["unit"], listSeparator))
}

func firstImage(raw json.RawMessage) string {
	var obj map[string]json.RawMessage
	if json.Unmarshal(raw, &obj) != nil {
		return ""
	}
	for _, key := range imageKeys {
		var u string
		if json.Unmarshal(obj[key], &u) == nil {
			if u = strings.TrimSpace(u); u != "" {
				return u
			}
		}
	}
	return ""
}

func recordID(raw json.RawMessage) (int64, bool) {
	s := strings.Trim(string(bytes.TrimSpace(raw)), `"`)
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// flatten turns a string, a number, an array or an object of arrays into a
// single line of plain text. Anything else is "".
func flatten(raw json.RawMessage, sep string) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	switch raw[0] {
	case '"':
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return ""
		}
		return clean(s)
	case '[':
		var items []json.RawMessage
		if json.Unmarshal(raw, &items) != nil {
			return ""
		}
		return join(items, sep)
	case '{':
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) != nil {
			return ""
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]json.RawMessage, 0, len(keys))
		for _, k := range keys {
			items = append(items, obj[k])
		}
		return join(items, sep)
	case 'n', 't', 'f':
		return ""
	default:
		var n json.Number
		if json.Unmarshal(raw, &n) != nil {
			return ""
		}
		return n.String()
	}
}

func join(items []json.RawMessage, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if s := flatten(item, sep); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, sep)
}

// clean strips markup and collapses whitespace.
func clean(s string) string {
	s = html.UnescapeString(textPolicy.Sanitize(s))
	return strings.Join(strings.Fields(s), " ")
}
