// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache provides a process-local, time-expiring key/value store used
// in front of slow or rate-limited upstream calls.
//
// Entries expire lazily: an entry older than its TTL is removed when it is
// read, not by a background sweeper. There is no size bound.
package cache

import (
	"sync"
	"time"
)

// Cache is the cache-aside contract used by services.
type Cache[K comparable, V any] interface {
	// Get returns the value stored under key if it is younger than the TTL.
	// A stale entry is evicted and reported as a miss.
	Get(key K) (V, bool)

	// Put stores value under key, stamping it with the current time.
	Put(key K, value V)

	// Evict removes key, if present.
	Evict(key K)

	// Len returns the number of stored entries, including stale ones not
	// yet read.
	Len() int
}

// Clock returns the current time. Tests inject a fake one.
type Clock func() time.Time

// Observer is notified about every lookup outcome.
type Observer interface {
	Hit(cacheName string)
	Miss(cacheName string)
}

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is a mutex-guarded map with per-entry timestamps.
type TTL[K comparable, V any] struct {
	name     string
	ttl      time.Duration
	now      Clock
	observer Observer

	mu      sync.Mutex
	entries map[K]entry[V]
}

// Option configures a TTL cache.
type Option[K comparable, V any] func(*TTL[K, V])

// WithClock replaces time.Now.
func WithClock[K comparable, V any](clock Clock) Option[K, V] {
	return func(c *TTL[K, V]) {
		c.now = clock
	}
}

// WithObserver reports hits and misses to o.
func WithObserver[K comparable, V any](o Observer) Option[K, V] {
	return func(c *TTL[K, V]) {
		c.observer = o
	}
}

// NewTTL creates an empty cache named name whose entries live for ttl.
func NewTTL[K comparable, V any](name string, ttl time.Duration, opts ...Option[K, V]) *TTL[K, V] {
	c := &TTL[K, V]{
		name:    name,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[K]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TTL[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	c.observe(ok)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *TTL[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

func (c *TTL[K, V]) Evict(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

func (c *TTL[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Name returns the label used for metrics.
func (c *TTL[K, V]) Name() string {
	return c.name
}

func (c *TTL[K, V]) observe(hit bool) {
	if c.observer == nil {
		return
	}
	if hit {
		c.observer.Hit(c.name)
		return
	}
	c.observer.Miss(c.name)
}
