// snapshot_test.go: tests for the snapshot codec
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"path/filepath"
	"testing"
)

func recencyOrder(t *testing.T, c *Cache[CourseGroup], keys []int64) []int64 {
	t.Helper()
	var order []int64
	c.mu.RLock()
	c.list.frontToBack(func(key int64, value interface{}, insertedAt int64) {
		order = append(order, key)
	})
	c.mu.RUnlock()
	return order
}

func TestSnapshot_RoundTripPreservesRecencyOrder(t *testing.T) {
	clock := NewManualClock(0)
	cache := newTestCache(t, 4, 0, clock)

	for i := int64(1); i <= 4; i++ {
		cache.Put(i, group(i, "title"))
	}
	if _, found := cache.Get(2); !found {
		t.Fatal("expected key 2 present")
	}

	path := filepath.Join(t.TempDir(), "cache.json")
	if err := cache.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := newTestCache(t, 4, 0, clock)
	if err := restored.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := recencyOrder(t, restored, nil)
	want := []int64{2, 4, 3, 1}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected recency order %v, got %v", want, got)
		}
	}

	for i := int64(1); i <= 4; i++ {
		v, found := restored.Get(i)
		if !found {
			t.Errorf("expected key %d present after load", i)
			continue
		}
		if v.ID != i {
			t.Errorf("expected value id %d, got %d", i, v.ID)
		}
	}
}

func TestSnapshot_Load_TruncatesToCapacity(t *testing.T) {
	clock := NewManualClock(0)
	source := newTestCache(t, 10, 0, clock)
	for i := int64(1); i <= 5; i++ {
		source.Put(i, group(i, "x"))
	}

	path := filepath.Join(t.TempDir(), "cache.json")
	if err := source.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored := newTestCache(t, 2, 0, clock)
	if err := restored.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if restored.Len() != 2 {
		t.Fatalf("expected truncation to capacity 2, got len %d", restored.Len())
	}
	// The two most recent (5 and 4) must survive; the least-recent (1,2,3)
	// must not.
	for _, key := range []int64{5, 4} {
		if _, found := restored.Get(key); !found {
			t.Errorf("expected most-recent key %d to survive truncation", key)
		}
	}
}

func TestSnapshot_Load_MissingFile(t *testing.T) {
	cache := newTestCache(t, 4, 0, NewManualClock(0))
	err := cache.Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !IsIOError(err) {
		t.Errorf("expected IO error, got %v", err)
	}
}

func TestSnapshot_Load_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, []byte("not json"))

	cache := newTestCache(t, 4, 0, NewManualClock(0))
	err := cache.Load(path)
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
	if !IsFormatError(err) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestSnapshot_Load_UnsupportedVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "future.json")
	writeFile(t, path, []byte(`{"version":99,"capacity":1,"ttl_ns":0,"entries":[]}`))

	cache := newTestCache(t, 4, 0, NewManualClock(0))
	err := cache.Load(path)
	if err == nil {
		t.Fatal("expected error for unsupported version")
	}
	if !IsFormatError(err) {
		t.Errorf("expected format error, got %v", err)
	}
}

func TestSnapshot_Load_FailureLeavesCacheUntouched(t *testing.T) {
	cache := newTestCache(t, 4, 0, NewManualClock(0))
	cache.Put(1, group(1, "a"))

	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	writeFile(t, path, []byte("not json"))

	if err := cache.Load(path); err == nil {
		t.Fatal("expected error")
	}
	if v, found := cache.Get(1); !found || v.Title != "a" {
		t.Error("expected cache contents unchanged after a failed load")
	}
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := writeFileAtomic(path, data); err != nil {
		t.Fatalf("writeFileAtomic: %v", err)
	}
}
