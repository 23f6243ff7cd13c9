// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		sep  string
		want string
	}{
		{"string", `"  Full   sun "`, ", ", "Full sun"},
		{"array", `["full sun", "", "part shade"]`, ", ", "full sun, part shade"},
		{"nested array", `[["a"], "b"]`, ", ", "a, b"},
		{"object of arrays sorted by key", `{"b": ["second"], "a": ["first", "again"]}`, " ", "first again second"},
		{"number", `7`, ", ", "7"},
		{"null", `null`, ", ", ""},
		{"bool", `true`, ", ", ""},
		{"empty", ``, ", ", ""},
		{"markup is stripped", `"<b>Bold</b> <script>x()</script>leaf"`, " ", "Bold leaf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flatten(json.RawMessage(tt.raw), tt.sep))
		})
	}
}

func TestWateringFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"benchmark wins", `{"watering":"Average","watering_general_benchmark":{"value":"7-10","unit":"days"}}`, "7-10 days"},
		{"quoted benchmark value", `{"watering_general_benchmark":{"value":"\"7-10\"","unit":"days"}}`, "7-10 days"},
		{"quoted empty benchmark", `{"watering":"Minimum","watering_general_benchmark":{"value":"\"\"","unit":"days"}}`, "Minimum"},
		{"numeric benchmark", `{"watering_general_benchmark":{"value":5,"unit":"days"}}`, "5 days"},
		{"benchmark without value", `{"watering":"Average","watering_general_benchmark":{"value":null,"unit":"days"}}`, "Average"},
		{"benchmark wrong shape", `{"watering":"Frequent","watering_general_benchmark":"weekly-ish"}`, "Frequent"},
		{"nothing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r speciesRecord
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &r))
			assert.Equal(t, tt.want, r.watering())
		})
	}
}

func TestFirstImage(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"medium preferred", `{"thumbnail":"t","original_url":"o","regular_url":"r","medium_url":"m"}`, "m"},
		{"original last", `{"thumbnail":"t","original_url":"o"}`, "t"},
		{"skips blank", `{"medium_url":" ","regular_url":"r"}`, "r"},
		{"thumbnail last", `{"thumbnail":"t"}`, "t"},
		{"null image", `null`, ""},
		{"wrong shape", `["x"]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstImage(json.RawMessage(tt.raw)))
		})
	}
}

func TestSpeciesRecord_ShapeDrift(t *testing.T) {
	raw := `{"id": 9, "common_name": null, "scientific_name": {"x": 1}, "sunlight": 12, "description": ["One.", "Two."], "default_image": "none"}`

	var r speciesRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &r))

	d := r.detail(100)
	assert.Equal(t, int64(9), d.ID)
	assert.Empty(t, d.CommonName)
	assert.Equal(t, "1", d.ScientificName)
	assert.Equal(t, "12", d.Sunlight)
	assert.Equal(t, "One. Two.", d.Description)
	assert.Empty(t, d.Image)
}

func TestSpeciesRecord_DetailFallbackID(t *testing.T) {
	var r speciesRecord
	require.NoError(t, json.Unmarshal([]byte(`{"common_name":"Fern"}`), &r))

	assert.Equal(t, int64(100), r.detail(100).ID)
	_, ok := r.suggestion()
	assert.False(t, ok)
}
