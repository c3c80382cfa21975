package config

import (
	"sync"
	"sync/atomic"
)

// Holder publishes the resolved configuration to downstream consumers.
// Readers always observe either the previous or the next config wholesale,
// never a partially updated one; reloads are serialized so no two
// resolutions run concurrently against the same environment view.
type Holder struct {
	mu      sync.Mutex
	current atomic.Pointer[Config]
}

// NewHolder wraps an already-resolved config.
func NewHolder(cfg *Config) *Holder {
	h := &Holder{}
	h.current.Store(cfg)
	return h
}

// Current returns the currently published config. The returned value is
// shared and read-only.
func (h *Holder) Current() *Config {
	return h.current.Load()
}

// Reload resolves a fresh config from path and environment and swaps it in
// atomically. On resolution failure the previous config stays published and
// the error is returned.
func (h *Holder) Reload(path string, environment Environment) (*Config, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cfg, err := Load(path, environment)
	if err != nil {
		return nil, err
	}

	h.current.Store(cfg)
	return cfg, nil
}
