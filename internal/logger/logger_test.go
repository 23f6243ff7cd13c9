// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "log line: %s", buf.String())
	return entry
}

func TestNewLogger_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("plant-pal-server", WithOutput(&buf))

	l.Info().Str("species", "Ficus lyrata").Msg("plant added")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "plant-pal-server", entry["role"])
	assert.Equal(t, "Ficus lyrata", entry["species"])
	assert.Equal(t, "plant added", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLogger_EntryShape")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_Levels(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)

	tests := []struct {
		name      string
		opts      []Option
		debugSeen bool
		warnSeen  bool
	}{
		{name: "debug by default", debugSeen: true, warnSeen: true},
		{name: "info drops debug", opts: []Option{WithLevel(zerolog.InfoLevel)}, warnSeen: true},
		{name: "error drops warn", opts: []Option{WithLevel(zerolog.ErrorLevel)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewLogger("levels", append(tt.opts, WithOutput(&buf))...)

			l.Debug().Msg("watering checked")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("watering checked")))

			l.Warn().Msg("directory slow")
			assert.Equal(t, tt.warnSeen, bytes.Contains(buf.Bytes(), []byte("directory slow")))
		})
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("advisor", WithOutput(&buf))

	child := parent.GetChildLogger()
	require.NotNil(t, child)
	assert.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("chat answered")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "advisor", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent untouched")
	assert.NotContains(t, decodeEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("nothing attached", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("trace_id", "ctx-trace").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("from context")

		assert.Equal(t, "ctx-trace", decodeEntry(t, &buf)["trace_id"])
	})
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/user/plants", nil)
	assert.NotNil(t, FromRequest(req))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-trace").Logger()
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-trace", decodeEntry(t, &buf)["trace_id"])
}
