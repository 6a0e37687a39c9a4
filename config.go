// config.go: configuration for the cache
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package lrucache

import "time"

// DefaultCapacity is used by DefaultConfig; New itself requires an explicit
// Capacity and rejects anything less than 1.
const DefaultCapacity = 10_000

// Config holds configuration parameters for the cache.
type Config struct {
	// Capacity is the maximum number of entries the cache can hold.
	// Must be >= 1. There is no default: New returns a ConfigError if it
	// is left at the zero value.
	Capacity int

	// TTL is the time-to-live for cache entries. If 0, entries never
	// expire. Must be >= 0. Default: 0 (no expiration).
	TTL time.Duration

	// Logger is used for structural event logging. If nil, NoOpLogger is
	// used. Default: NoOpLogger.
	Logger Logger

	// Clock provides current time for TTL and metrics timing. If nil, a
	// default implementation is used. Default: SystemClock.
	Clock Clock

	// MetricsCollector receives per-operation notifications in addition to
	// the cache's own Registry (reachable via Metrics()). If nil,
	// NoOpMetricsCollector is used. Use this to integrate with Prometheus,
	// DataDog, StatsD, or other monitoring systems.
	MetricsCollector MetricsCollector

	// OnEvict is called synchronously when an entry is evicted under
	// capacity pressure. Must be fast and non-blocking; it runs under the
	// cache's lock.
	OnEvict func(key int64, value interface{})

	// OnExpire is called synchronously when an entry is found expired on
	// access. Must be fast and non-blocking; it runs under the cache's
	// lock.
	OnExpire func(key int64, value interface{})
}

// validate checks configuration parameters, rejecting invalid ones and
// filling in defaults for everything else. Capacity and TTL are checked
// eagerly: construction refuses an invalid config outright rather than
// silently clamping it.
func (c *Config) validate() error {
	if c.Capacity < 1 {
		return NewErrInvalidCapacity(c.Capacity)
	}
	if c.TTL < 0 {
		return NewErrInvalidTTL(c.TTL)
	}

	if c.Logger == nil {
		c.Logger = NoOpLogger{}
	}
	if c.Clock == nil {
		c.Clock = SystemClock{}
	}
	if c.MetricsCollector == nil {
		c.MetricsCollector = NoOpMetricsCollector{}
	}

	return nil
}

// DefaultConfig returns a configuration with sensible defaults and
// DefaultCapacity. TTL is left at 0 (disabled).
func DefaultConfig() Config {
	return Config{
		Capacity:         DefaultCapacity,
		Logger:           NoOpLogger{},
		Clock:            SystemClock{},
		MetricsCollector: NoOpMetricsCollector{},
	}
}
