// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/plant-pal/internal/cache"
)

var (
	_ Recorder       = (*Collector)(nil)
	_ Recorder       = Nop{}
	_ cache.Observer = (*Collector)(nil)
)

func TestCollector_CacheLookups(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.Hit("suggestions")
	c.Hit("suggestions")
	c.Miss("suggestions")
	c.Miss("details")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("suggestions", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("suggestions", "miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("details", "miss")))
}

func TestCollector_ObserveUpstream(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveUpstream("perenual", "ok", 120*time.Millisecond)
	c.ObserveUpstream("perenual", "rate_limited", 10*time.Millisecond)
	c.ObserveUpstream("gemini", "ok", time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamRequests.WithLabelValues("perenual", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.upstreamRequests.WithLabelValues("perenual", "rate_limited")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.upstreamLatency))
}

func TestCollector_ObserveHTTPRequest(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.ObserveHTTPRequest(http.MethodGet, "/api/user/plants", http.StatusOK, 5*time.Millisecond)
	c.ObserveHTTPRequest(http.MethodGet, "/api/user/plants", http.StatusOK, 7*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.httpRequests.WithLabelValues(http.MethodGet, "/api/user/plants", "200")))
}

func TestNewCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.Hit("details")

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	resp := w.Result()
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `plantpal_cache_lookups_total{cache="details",result="hit"} 1`))
}
