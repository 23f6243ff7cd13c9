// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics for the HTTP API, the species
// caches and the upstream clients, and exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "plantpal"

// Recorder is the subset of [Collector] used by the HTTP middleware and the
// upstream adapters.
type Recorder interface {
	Hit(cache string)
	Miss(cache string)
	ObserveUpstream(service, outcome string, duration time.Duration)
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Collector records metrics into a Prometheus registry.
type Collector struct {
	cacheLookups     *prometheus.CounterVec
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Species cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		upstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Calls to the species directory and the language model by outcome.",
		}, []string{"service", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of upstream calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Handled API requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "API request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.cacheLookups,
		c.upstreamRequests,
		c.upstreamLatency,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// Hit records a cache hit. Together with Miss it satisfies cache.Observer.
func (c *Collector) Hit(cache string) {
	c.cacheLookups.WithLabelValues(cache, "hit").Inc()
}

// Miss records a cache miss, expired entries included.
func (c *Collector) Miss(cache string) {
	c.cacheLookups.WithLabelValues(cache, "miss").Inc()
}

// ObserveUpstream records one upstream call.
func (c *Collector) ObserveUpstream(service, outcome string, duration time.Duration) {
	c.upstreamRequests.WithLabelValues(service, outcome).Inc()
	c.upstreamLatency.WithLabelValues(service).Observe(duration.Seconds())
}

// ObserveHTTPRequest records one handled API request. route is the chi
// route pattern, not the raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every observation.
type Nop struct{}

func (Nop) Hit(string)                                            {}
func (Nop) Miss(string)                                           {}
func (Nop) ObserveUpstream(string, string, time.Duration)         {}
func (Nop) ObserveHTTPRequest(string, string, int, time.Duration) {}
