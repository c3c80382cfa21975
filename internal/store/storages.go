// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package store

import (
	"fmt"

	"github.com/merklekv/merkle-kv/internal/config"
)

// New constructs the engine named by the "engine" config key.
func New(engine string) (Store, error) {
	switch engine {
	case config.EngineRWLock:
		return newRWLockStore(), nil
	case config.EngineKV:
		return newKVStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}
