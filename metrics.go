// metrics.go: thread-safe operational counters and derived statistics
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives per-operation notifications. Cache's own
// Registry implements it; embedders can plug in their own (a Prometheus or
// OpenTelemetry exporter, for instance) by supplying Config.MetricsCollector
// and reading Cache.Metrics() alongside it. Implementations must be safe
// for concurrent use and must not block.
type MetricsCollector interface {
	RecordRead(elapsed time.Duration, hit bool)
	RecordWrite(elapsed time.Duration)
	RecordEviction()
	RecordExpired()
}

// NoOpMetricsCollector discards everything. It is the default.
type NoOpMetricsCollector struct{}

func (NoOpMetricsCollector) RecordRead(elapsed time.Duration, hit bool) {}
func (NoOpMetricsCollector) RecordWrite(elapsed time.Duration)          {}
func (NoOpMetricsCollector) RecordEviction()                           {}
func (NoOpMetricsCollector) RecordExpired()                            {}

// Registry is the cache's built-in MetricsCollector: atomic counters for
// hits/misses/puts/evictions/expired, cumulative read/write durations, and
// a separately-maintained memory estimate (updated by the cache facade
// directly, since only it knows per-entry sizes).
//
// Counter updates are atomic with respect to concurrent readers; a
// Snapshot need not be atomic across fields.
type Registry struct {
	hits        int64
	misses      int64
	puts        int64
	evictions   int64
	expired     int64
	readTimeNs  int64
	writeTimeNs int64
	memoryBytes int64
}

// RecordRead accounts for a completed Get.
func (r *Registry) RecordRead(elapsed time.Duration, hit bool) {
	if hit {
		atomic.AddInt64(&r.hits, 1)
	} else {
		atomic.AddInt64(&r.misses, 1)
	}
	atomic.AddInt64(&r.readTimeNs, elapsed.Nanoseconds())
}

// RecordWrite accounts for a completed Put.
func (r *Registry) RecordWrite(elapsed time.Duration) {
	atomic.AddInt64(&r.puts, 1)
	atomic.AddInt64(&r.writeTimeNs, elapsed.Nanoseconds())
}

// RecordEviction accounts for a tail eviction under capacity pressure.
func (r *Registry) RecordEviction() {
	atomic.AddInt64(&r.evictions, 1)
}

// RecordExpired accounts for an entry found expired on access.
func (r *Registry) RecordExpired() {
	atomic.AddInt64(&r.expired, 1)
}

// setMemoryBytes updates the structural memory estimate. Called by the
// cache facade, which alone knows the current per-entry sizes.
func (r *Registry) setMemoryBytes(n int64) {
	atomic.StoreInt64(&r.memoryBytes, n)
}

// Snapshot returns a consistent-enough view of the raw counters; derived
// statistics are available as MetricsSnapshot methods. Individual fields
// may be minutely skewed relative to each other under concurrent load.
func (r *Registry) Snapshot() MetricsSnapshot {
	hits := atomic.LoadInt64(&r.hits)
	misses := atomic.LoadInt64(&r.misses)
	puts := atomic.LoadInt64(&r.puts)
	evictions := atomic.LoadInt64(&r.evictions)
	expired := atomic.LoadInt64(&r.expired)
	readTimeNs := atomic.LoadInt64(&r.readTimeNs)
	writeTimeNs := atomic.LoadInt64(&r.writeTimeNs)
	memoryBytes := atomic.LoadInt64(&r.memoryBytes)

	return MetricsSnapshot{
		Hits:        uint64(hits),
		Misses:      uint64(misses),
		Puts:        uint64(puts),
		Evictions:   uint64(evictions),
		Expired:     uint64(expired),
		ReadTimeNs:  readTimeNs,
		WriteTimeNs: writeTimeNs,
		MemoryBytes: memoryBytes,
	}
}

// MetricsSnapshot is a consistent-enough view of a Registry at one instant,
// with derived convenience methods mirroring the named accessors
// (get_avg_read_time, get_memory_usage) of the system this cache replaces.
type MetricsSnapshot struct {
	Hits        uint64
	Misses      uint64
	Puts        uint64
	Evictions   uint64
	Expired     uint64
	ReadTimeNs  int64
	WriteTimeNs int64
	MemoryBytes int64
}

// HitRate returns hits / (hits + misses), or 0 when no reads have happened.
func (s MetricsSnapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// AvgReadTime returns the mean duration of a Get call, or 0 when no reads
// have happened.
func (s MetricsSnapshot) AvgReadTime() time.Duration {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return time.Duration(s.ReadTimeNs / int64(total))
}

// AvgWriteTime returns the mean duration of a Put call, or 0 when no writes
// have happened.
func (s MetricsSnapshot) AvgWriteTime() time.Duration {
	if s.Puts == 0 {
		return 0
	}
	return time.Duration(s.WriteTimeNs / int64(s.Puts))
}
