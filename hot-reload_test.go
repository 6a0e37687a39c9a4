// hot-reload_test.go: tests for the pure-logic config parsing helpers
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package lrucache

import (
	"testing"
	"time"
)

func TestParsePositiveInt(t *testing.T) {
	if v, ok := parsePositiveInt(100); !ok || v != 100 {
		t.Errorf("expected 100/true, got %d/%v", v, ok)
	}
	if v, ok := parsePositiveInt(float64(256)); !ok || v != 256 {
		t.Errorf("expected 256/true, got %d/%v", v, ok)
	}
	if _, ok := parsePositiveInt(0); ok {
		t.Error("expected false for zero")
	}
	if _, ok := parsePositiveInt(-5); ok {
		t.Error("expected false for negative")
	}
	if _, ok := parsePositiveInt("100"); ok {
		t.Error("expected false for a non-numeric type")
	}
}

func TestParseDuration(t *testing.T) {
	if d, ok := parseDuration("1h"); !ok || d != time.Hour {
		t.Errorf("expected 1h/true, got %v/%v", d, ok)
	}
	if _, ok := parseDuration("not-a-duration"); ok {
		t.Error("expected false for malformed duration")
	}
	if _, ok := parseDuration(3600); ok {
		t.Error("expected false for a non-string type")
	}
}

func TestParseReloadableConfig_NestedCacheSection(t *testing.T) {
	fallback := ReloadableConfig{Capacity: 10, TTL: time.Minute}
	data := map[string]interface{}{
		"cache": map[string]interface{}{
			"capacity": float64(500),
			"ttl":      "2h",
		},
	}
	got := parseReloadableConfig(data, fallback)
	if got.Capacity != 500 {
		t.Errorf("expected capacity 500, got %d", got.Capacity)
	}
	if got.TTL != 2*time.Hour {
		t.Errorf("expected ttl 2h, got %v", got.TTL)
	}
}

func TestParseReloadableConfig_FlatSection(t *testing.T) {
	fallback := ReloadableConfig{Capacity: 10, TTL: time.Minute}
	data := map[string]interface{}{
		"capacity": float64(20),
	}
	got := parseReloadableConfig(data, fallback)
	if got.Capacity != 20 {
		t.Errorf("expected capacity 20, got %d", got.Capacity)
	}
	if got.TTL != time.Minute {
		t.Errorf("expected ttl unchanged at 1m, got %v", got.TTL)
	}
}

func TestParseReloadableConfig_UnrecognizedDataFallsBack(t *testing.T) {
	fallback := ReloadableConfig{Capacity: 10, TTL: time.Minute}
	got := parseReloadableConfig(map[string]interface{}{"unrelated": true}, fallback)
	if got != fallback {
		t.Errorf("expected fallback unchanged, got %+v", got)
	}
}

func TestParseReloadableConfig_MalformedValuesFallBack(t *testing.T) {
	fallback := ReloadableConfig{Capacity: 10, TTL: time.Minute}
	data := map[string]interface{}{
		"cache": map[string]interface{}{
			"capacity": "not-a-number",
			"ttl":      12345,
		},
	}
	got := parseReloadableConfig(data, fallback)
	if got != fallback {
		t.Errorf("expected fallback preserved for malformed values, got %+v", got)
	}
}
