// clock.go: monotonic time source for cache freshness and metrics timing
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"sync"

	timecache "github.com/agilira/go-timecache"
)

// Clock is a monotonic, non-decreasing nanosecond time source. It is
// injectable so tests can advance time deterministically without sleeping.
//
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current time in nanoseconds. It must never return a
	// value smaller than any value it has previously returned.
	Now() int64
}

// SystemClock is the default Clock, backed by go-timecache's cached
// monotonic clock. It avoids a syscall on every call, which matters here
// because Put and Get both sample the clock on every invocation.
type SystemClock struct{}

// Now returns the current time in nanoseconds since an arbitrary epoch.
func (SystemClock) Now() int64 {
	return timecache.CachedTimeNano()
}

// ManualClock is a fake Clock for tests. It starts at the timestamp given to
// NewManualClock (0 for the zero value) and only advances when Advance or
// Set is called, so TTL expiry can be exercised deterministically.
type ManualClock struct {
	mu  sync.Mutex
	now int64
}

// NewManualClock returns a ManualClock starting at the given nanosecond
// timestamp.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current simulated time.
func (c *ManualClock) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the simulated clock forward by delta nanoseconds. delta
// must be non-negative; the clock never moves backward.
func (c *ManualClock) Advance(delta int64) {
	if delta < 0 {
		return
	}
	c.mu.Lock()
	c.now += delta
	c.mu.Unlock()
}

// Set moves the simulated clock to an absolute timestamp, if it is not
// earlier than the current one.
func (c *ManualClock) Set(now int64) {
	c.mu.Lock()
	if now > c.now {
		c.now = now
	}
	c.mu.Unlock()
}
