package config

import (
	"errors"
	"sync"
)

var ErrGlobalSet = errors.New("global configuration already set")

var (
	globalMu sync.RWMutex
	global   *Config
)

// SetGlobal publishes cfg for the rest of the process. It can be called
// once; later calls leave the first configuration in place.
func SetGlobal(cfg *Config) error {
	if cfg == nil {
		return errors.New("global configuration must not be nil")
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	if global != nil {
		return ErrGlobalSet
	}
	global = cfg
	return nil
}

// Global returns the published configuration and panics before SetGlobal.
func Global() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if global == nil {
		panic("configuration not loaded")
	}
	return global
}
