// Package lrucache provides a thread-safe, in-memory cache implementation
// combining least-recently-used eviction with optional time-to-live
// expiration, a snapshot-based persistence format, and an operational
// metrics registry.
//
// # Overview
//
// lrucache couples a hash index with a doubly linked recency list so that
// lookup, insertion, promotion on hit, and eviction are all amortized O(1),
// while remaining safe for concurrent access from many goroutines.
//
// # Features
//
//   - Exact LRU eviction: the tail of the recency list is always the least
//     recently get/put-touched entry.
//   - TTL Support: entries older than the configured TTL are removed lazily,
//     on access, and counted as expired rather than evicted.
//   - Generic API: Cache[V] is type-safe over any Value implementation.
//   - Structured Errors: rich error context with stable error codes.
//   - Metrics Collection: hit rate, average latencies, and a structural
//     memory estimate, observable via Metrics().
//   - Snapshot persistence: Save/Load a whole-cache image to a single file,
//     written atomically.
//   - Optional hot-reload of capacity/TTL from a watched config file.
//
// # Quick Start
//
//	cache, err := lrucache.New[lrucache.CourseGroup](lrucache.Config{
//	    Capacity: 10_000,
//	    TTL:      time.Hour,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache.Put(123, lrucache.CourseGroup{ID: 123, Title: "Graph Theory"})
//
//	if group, found := cache.Get(123); found {
//	    fmt.Printf("Group: %s\n", group.Title)
//	}
//
//	stats := cache.Metrics()
//	fmt.Printf("Hit rate: %.2f%%\n", stats.HitRate()*100)
//
// # Persistence
//
// A cache can be snapshotted to a file and restored later, preserving
// recency order:
//
//	if err := cache.Save("cache.json"); err != nil {
//	    log.Fatal(err)
//	}
//	// ... later, possibly in a new process ...
//	restored, _ := lrucache.New[lrucache.CourseGroup](lrucache.Config{Capacity: 10_000})
//	if err := restored.Load("cache.json"); err != nil {
//	    log.Fatal(err)
//	}
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache
