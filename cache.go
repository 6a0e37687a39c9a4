// cache.go: the cache facade — ties the recency list, the clock, and the
// metrics registry together behind a single coordinating lock.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"sync"
	"time"
)

// Cache is a thread-safe, in-memory LRU cache with optional TTL
// expiration, generic over any Value implementation V.
//
// All mutating operations, and Get (which promotes its key), run under a
// single writer-exclusive lock: a plain sync.RWMutex is used with Get
// taking the write side, since a hit reorders the recency list. Len and
// Metrics take the read side.
type Cache[V Value] struct {
	mu sync.RWMutex

	capacity int
	ttlNanos int64

	clock     Clock
	logger    Logger
	collector MetricsCollector
	metrics   *Registry

	list *recencyList

	onEvict  func(key int64, value interface{})
	onExpire func(key int64, value interface{})

	memoryBytes int64
}

// New constructs a Cache with the given configuration. It returns a
// ConfigError if Capacity < 1 or TTL < 0. Put, Get, Remove, Clear, Len and
// Metrics on the returned Cache are infallible by contract.
func New[V Value](cfg Config) (*Cache[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Cache[V]{
		capacity:  cfg.Capacity,
		ttlNanos:  int64(cfg.TTL),
		clock:     cfg.Clock,
		logger:    cfg.Logger,
		collector: cfg.MetricsCollector,
		metrics:   &Registry{},
		list:      newRecencyList(cfg.Capacity),
		onEvict:   cfg.OnEvict,
		onExpire:  cfg.OnExpire,
	}

	c.logger.Info("cache created", "capacity", cfg.Capacity, "ttl_ns", c.ttlNanos)
	return c, nil
}

// sizeOf returns the structural memory estimate for a single entry: a
// fixed per-entry overhead (approximating the recency-list node and hash
// slot) plus the value's own SizeEstimate.
func sizeOf(v Value) int64 {
	return int64(entryOverhead) + int64(v.SizeEstimate())
}

// Put admits key/value, replacing any existing entry for key and evicting
// the tail entry if the cache is now over capacity. Never fails.
//
// Replacing an existing key never counts as an eviction; only the tail
// drop triggered by exceeding capacity does.
func (c *Cache[V]) Put(key int64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.clock.Now()

	if old, present := c.list.unlink(key); present {
		c.memoryBytes -= sizeOf(old.(V))
	}

	c.list.pushFront(key, value, start)
	c.memoryBytes += sizeOf(value)

	if c.list.len() > c.capacity {
		evictedKey, evictedValue, ok := c.list.popBack()
		if ok {
			c.memoryBytes -= sizeOf(evictedValue.(V))
			c.metrics.RecordEviction()
			c.collector.RecordEviction()
			if c.onEvict != nil {
				c.onEvict(evictedKey, evictedValue)
			}
			c.logger.Debug("evicted entry", "key", evictedKey)
		}
	}

	c.metrics.setMemoryBytes(c.memoryBytes)

	elapsed := durationSince(c.clock, start)
	c.metrics.RecordWrite(elapsed)
	c.collector.RecordWrite(elapsed)
}

// Get retrieves the value for key. On a hit it promotes the entry to the
// front of the recency list and returns a copy of the value. On a miss, or
// on an entry found expired, it returns the zero value of V and false; an
// expired entry is eagerly removed.
func (c *Cache[V]) Get(key int64) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	start := c.clock.Now()
	var zero V

	idx := c.list.find(key)
	if idx == nilIndex {
		elapsed := durationSince(c.clock, start)
		c.metrics.RecordRead(elapsed, false)
		c.collector.RecordRead(elapsed, false)
		return zero, false
	}

	node := c.list.at(idx)
	if c.ttlNanos > 0 {
		now := c.clock.Now()
		if now-node.insertedAt >= c.ttlNanos {
			expiredKey := node.key
			expiredValue := node.value
			c.list.unlink(expiredKey)
			c.memoryBytes -= sizeOf(expiredValue.(V))
			c.metrics.setMemoryBytes(c.memoryBytes)

			c.metrics.RecordExpired()
			c.collector.RecordExpired()
			if c.onExpire != nil {
				c.onExpire(expiredKey, expiredValue)
			}
			c.logger.Debug("expired entry on access", "key", expiredKey)

			elapsed := durationSince(c.clock, start)
			c.metrics.RecordRead(elapsed, false)
			c.collector.RecordRead(elapsed, false)
			return zero, false
		}
	}

	c.list.promote(idx)
	value := node.value.(V)

	elapsed := durationSince(c.clock, start)
	c.metrics.RecordRead(elapsed, true)
	c.collector.RecordRead(elapsed, true)
	return value, true
}

// Remove deletes key from the cache, reporting whether it was present.
// Never fails; counters are not affected (removal is neither a hit/miss
// nor an eviction).
func (c *Cache[V]) Remove(key int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.list.unlink(key)
	if !ok {
		return false
	}
	c.memoryBytes -= sizeOf(value.(V))
	c.metrics.setMemoryBytes(c.memoryBytes)
	return true
}

// Clear drops every entry. Counters are left untouched, per spec.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.clear()
	c.memoryBytes = 0
	c.metrics.setMemoryBytes(0)
}

// Len returns the current number of entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.list.len()
}

// Capacity returns the configured maximum number of entries.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Metrics returns a snapshot of the cache's operational counters.
func (c *Cache[V]) Metrics() MetricsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.metrics.Snapshot()
}

// SetTTL changes the cache's TTL at runtime. It takes effect on the next
// access to each entry; it does not retroactively evict already-stale
// entries. ttl must be >= 0.
func (c *Cache[V]) SetTTL(ttl time.Duration) error {
	if ttl < 0 {
		return NewErrInvalidTTL(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttlNanos = int64(ttl)
	return nil
}

// SetCapacity shrinks or grows the cache's capacity at runtime, evicting
// tail entries immediately if the new capacity is smaller than the current
// length. Returns the number of entries evicted as a result. capacity must
// be >= 1.
func (c *Cache[V]) SetCapacity(capacity int) (evicted int, err error) {
	if capacity < 1 {
		return 0, NewErrInvalidCapacity(capacity)
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.capacity = capacity
	for c.list.len() > c.capacity {
		evictedKey, evictedValue, ok := c.list.popBack()
		if !ok {
			break
		}
		c.memoryBytes -= sizeOf(evictedValue.(V))
		c.metrics.RecordEviction()
		c.collector.RecordEviction()
		if c.onEvict != nil {
			c.onEvict(evictedKey, evictedValue)
		}
		evicted++
	}
	if evicted > 0 {
		c.metrics.setMemoryBytes(c.memoryBytes)
	}
	return evicted, nil
}

// durationSince returns the elapsed duration between start and now,
// measured with the cache's own Clock rather than time.Now, so fake
// clocks in tests produce deterministic (zero, by default) latencies.
func durationSince(clock Clock, start int64) time.Duration {
	return time.Duration(clock.Now() - start)
}
