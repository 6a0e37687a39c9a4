// hot-reload.go: dynamic capacity/TTL reload using Argus
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package lrucache

import (
	"fmt"
	"sync"
	"time"

	"github.com/agilira/argus"
)

// reloadable is the minimal surface HotConfig needs from a Cache[V]; it
// lets HotConfig avoid depending on V.
type reloadable interface {
	SetCapacity(capacity int) (evicted int, err error)
	SetTTL(ttl time.Duration) error
}

// HotConfig watches a configuration file with Argus and applies capacity
// and TTL changes to a live cache without a restart. It wraps a Cache from
// the outside, driving the same SetCapacity/SetTTL calls a caller could
// make directly.
type HotConfig struct {
	cache   reloadable
	watcher *argus.Watcher
	mu      sync.RWMutex
	applied ReloadableConfig

	// OnReload is called after a configuration change has been applied.
	// Must be fast and non-blocking.
	OnReload func(old, new ReloadableConfig)
}

// ReloadableConfig is the subset of Config that HotConfig can change at
// runtime.
type ReloadableConfig struct {
	Capacity int
	TTL      time.Duration
}

// HotConfigOptions configures hot-reload behavior.
type HotConfigOptions struct {
	// ConfigPath is the path to the watched configuration file. Supports
	// any format Argus's universal watcher understands (JSON, YAML, TOML,
	// HCL, INI, Properties).
	ConfigPath string

	// PollInterval is how often to check for changes. Default 1s, minimum
	// 100ms.
	PollInterval time.Duration

	// OnReload is called after a configuration change has been applied.
	OnReload func(old, new ReloadableConfig)

	Logger Logger
}

// NewHotConfig starts watching ConfigPath and applies capacity/ttl changes
// to cache as they are observed.
//
// Expected configuration shape (YAML example):
//
//	cache:
//	  capacity: 10000
//	  ttl: "1h"
//
// Supported keys: cache.capacity (int), cache.ttl (duration string).
func NewHotConfig(cache reloadable, opts HotConfigOptions) (*HotConfig, error) {
	if opts.ConfigPath == "" {
		return nil, fmt.Errorf("config_path is required")
	}
	if opts.PollInterval == 0 {
		opts.PollInterval = time.Second
	} else if opts.PollInterval < 100*time.Millisecond {
		opts.PollInterval = 100 * time.Millisecond
	}
	if opts.Logger == nil {
		opts.Logger = NoOpLogger{}
	}

	hc := &HotConfig{
		cache:    cache,
		OnReload: opts.OnReload,
	}

	argusConfig := argus.Config{PollInterval: opts.PollInterval}
	watcher, err := argus.UniversalConfigWatcherWithConfig(opts.ConfigPath, hc.handleConfigChange, argusConfig)
	if err != nil {
		return nil, err
	}
	hc.watcher = watcher

	return hc, nil
}

// Start begins watching the configuration file.
func (hc *HotConfig) Start() error {
	if hc.watcher.IsRunning() {
		return nil
	}
	return hc.watcher.Start()
}

// Stop stops watching the configuration file.
func (hc *HotConfig) Stop() error {
	return hc.watcher.Stop()
}

// Applied returns the last configuration successfully applied to the
// cache.
func (hc *HotConfig) Applied() ReloadableConfig {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.applied
}

func (hc *HotConfig) handleConfigChange(data map[string]interface{}) {
	hc.mu.Lock()
	old := hc.applied
	next := parseReloadableConfig(data, old)
	hc.mu.Unlock()

	if next.Capacity > 0 && next.Capacity != old.Capacity {
		if _, err := hc.cache.SetCapacity(next.Capacity); err != nil {
			return
		}
	}
	if next.TTL != old.TTL {
		if err := hc.cache.SetTTL(next.TTL); err != nil {
			return
		}
	}

	hc.mu.Lock()
	hc.applied = next
	hc.mu.Unlock()

	if hc.OnReload != nil {
		hc.OnReload(old, next)
	}
}

func parsePositiveInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		if v > 0 {
			return v, true
		}
	case float64:
		if v > 0 {
			return int(v), true
		}
	}
	return 0, false
}

func parseDuration(value interface{}) (time.Duration, bool) {
	if str, ok := value.(string); ok {
		if d, err := time.ParseDuration(str); err == nil {
			return d, true
		}
	}
	return 0, false
}

// parseReloadableConfig extracts capacity/ttl from watched config data,
// falling back to the previously applied values for anything missing or
// malformed.
func parseReloadableConfig(data map[string]interface{}, fallback ReloadableConfig) ReloadableConfig {
	next := fallback

	section, ok := data["cache"].(map[string]interface{})
	if !ok {
		if _, hasCapacity := data["capacity"]; hasCapacity {
			section = data
		} else {
			return next
		}
	}

	if capacity, ok := parsePositiveInt(section["capacity"]); ok {
		next.Capacity = capacity
	}
	if ttl, ok := parseDuration(section["ttl"]); ok {
		next.TTL = ttl
	}

	return next
}
