// record.go: the Value contract and a demonstrative Record implementation
//
// The cache core only needs size accounting and a deterministic serialized
// form from a value; it has no opinion on the value's schema. CourseGroup
// below is the example record used by the tests and doc comments, not part
// of the core contract.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import "encoding/json"

// entryOverhead is the fixed per-entry accounting overhead, approximating
// the cost of a recency-list node plus its hash map slot. It is a
// principled estimate, not an allocator query (see Cache.Metrics).
const entryOverhead = 64

// Value is the contract a cached record must satisfy. Any type obeying it
// is admissible as the V in Cache[V].
//
// Serialize's output is embedded verbatim as the "value" field of a
// snapshot entry, so it must be valid JSON; Load reads it back with
// encoding/json.Unmarshal into a V. In practice this means Serialize is
// almost always json.Marshal(v), as it is for CourseGroup below.
type Value interface {
	// Serialize produces a deterministic JSON encoding of the value, used
	// by the snapshot codec.
	Serialize() ([]byte, error)

	// SizeEstimate returns an approximate number of bytes the value
	// occupies, used for the cache's memory_bytes metric.
	SizeEstimate() int
}

// CourseGroup is a demonstrative Record: a student-group listing with a
// handful of text fields, a vote count, and an owning user id. It exists to
// exercise Value in tests and examples; it is not part of the cache core.
type CourseGroup struct {
	ID                int64  `json:"id"`
	Faculty           string `json:"faculty"`
	Course            string `json:"course"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	VotesCount        int    `json:"votes_count"`
	TelegramGroupLink string `json:"telegram_group_link"`
	UserID            int64  `json:"user_id"`
}

// Serialize encodes the group as JSON.
func (g CourseGroup) Serialize() ([]byte, error) {
	return json.Marshal(g)
}

// SizeEstimate sums the byte lengths of the text fields plus a fixed
// overhead for the numeric fields.
func (g CourseGroup) SizeEstimate() int {
	const numericOverhead = 8*3 + 8 // ID, VotesCount, UserID, struct padding
	return len(g.Faculty) + len(g.Course) + len(g.Title) + len(g.Description) +
		len(g.TelegramGroupLink) + numericOverhead
}
