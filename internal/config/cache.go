// Copyright (c) 2025 AuditorIA
// Licensed under the MIT License. See LICENSE file in the project root for details.

package config

import "sync"

var (
	// Global singleton cache for the loaded configuration.
	// Lives only in process memory and is cleared when the CLI exits.
	globalCache     *Config
	globalCacheLock sync.RWMutex
)

// Get returns the configuration, using the RAM cache if available.
// If not cached, it loads from disk and caches the result. This is the
// main entry point for retrieving CLI settings.
func Get() (Config, error) {
	globalCacheLock.RLock()
	cached := globalCache
	globalCacheLock.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	c, err := Load()
	if err != nil {
		return c, err
	}

	globalCacheLock.Lock()
	globalCache = &c
	globalCacheLock.Unlock()
	return c, nil
}

// ClearCache removes the configuration from RAM (primarily for testing).
func ClearCache() {
	globalCacheLock.Lock()
	defer globalCacheLock.Unlock()
	globalCache = nil
}
