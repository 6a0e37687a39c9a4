// snapshot.go: whole-cache persistence to a single self-describing file
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// snapshotVersion is the current schema version written by Save. Load
// rejects documents with an unknown version.
const snapshotVersion = 1

// snapshotDoc is the on-disk document shape written by Save and read
// back by Load.
type snapshotDoc struct {
	Version  int             `json:"version"`
	Capacity int             `json:"capacity"`
	TTLNanos int64           `json:"ttl_ns"`
	Entries  []snapshotEntry `json:"entries"`
}

// snapshotEntry is one recency-ordered entry, front (most recent) to back.
type snapshotEntry struct {
	Key          int64           `json:"key"`
	Value        json.RawMessage `json:"value"`
	InsertedAtNs int64           `json:"inserted_at_ns"`
}

// Save writes a whole-cache snapshot to path, front-to-back in recency
// order. The write is atomic: the document is written to a temporary file
// in the same directory and then renamed over path, so a crash mid-write
// never leaves a partially written snapshot.
func (c *Cache[V]) Save(path string) error {
	c.mu.RLock()
	doc := snapshotDoc{
		Version:  snapshotVersion,
		Capacity: c.capacity,
		TTLNanos: c.ttlNanos,
		Entries:  make([]snapshotEntry, 0, c.list.len()),
	}

	var marshalErr error
	c.list.frontToBack(func(key int64, value interface{}, insertedAt int64) {
		if marshalErr != nil {
			return
		}
		raw, err := value.(V).Serialize()
		if err != nil {
			marshalErr = err
			return
		}
		doc.Entries = append(doc.Entries, snapshotEntry{
			Key:          key,
			Value:        raw,
			InsertedAtNs: insertedAt,
		})
	})
	c.mu.RUnlock()

	if marshalErr != nil {
		return NewErrFormat(path, marshalErr.Error())
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return NewErrFormat(path, err.Error())
	}

	if err := writeFileAtomic(path, data); err != nil {
		return NewErrIO(path, err)
	}

	c.logger.Info("cache saved", "path", path, "entries", len(doc.Entries))
	return nil
}

// Load replaces the cache's contents from the snapshot at path. The loading
// cache's own configured capacity is respected: if the saved array is
// longer, the tail (least recently used) entries are dropped.
//
// TTL semantics on load: restored entries' ages continue from their saved
// inserted_at_ns, relative to the monotonic clock at load time. No
// clamping is applied. An operator who loads a very old snapshot into a
// cache with a short TTL should expect entries to expire on first access;
// the snapshot is a faithful record of when each entry was last touched,
// not of when the load happened.
//
// Neither an I/O failure nor a malformed document mutates the in-memory
// cache: contents are replaced only after the whole document has been
// read, parsed, and validated.
func (c *Cache[V]) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewErrIO(path, err)
	}

	var doc snapshotDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return NewErrFormat(path, err.Error())
	}
	if doc.Version != snapshotVersion {
		return NewErrUnsupportedVersion(path, doc.Version, snapshotVersion)
	}

	decoded := make([]struct {
		key        int64
		value      V
		insertedAt int64
	}, 0, len(doc.Entries))

	for _, e := range doc.Entries {
		var v V
		if err := json.Unmarshal(e.Value, &v); err != nil {
			return NewErrFormat(path, err.Error())
		}
		decoded = append(decoded, struct {
			key        int64
			value      V
			insertedAt int64
		}{key: e.Key, value: v, insertedAt: e.InsertedAtNs})
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.list.clear()
	c.memoryBytes = 0

	limit := len(decoded)
	if limit > c.capacity {
		limit = c.capacity
	}

	// The array is front-to-back (most recent first). pushFront places each
	// entry ahead of the previous one, so pushing in array order would
	// reverse it; instead insert from the back of the truncated slice
	// forward, leaving the first array element at the head.
	for i := limit - 1; i >= 0; i-- {
		e := decoded[i]
		c.list.pushFront(e.key, e.value, e.insertedAt)
		c.memoryBytes += sizeOf(e.value)
	}
	c.metrics.setMemoryBytes(c.memoryBytes)

	c.logger.Info("cache loaded", "path", path, "entries", limit)
	return nil
}

// writeFileAtomic writes data to path by first writing to a temporary file
// in the same directory, then renaming it over path. Rename is atomic on
// POSIX filesystems, so readers never observe a partially written file.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
