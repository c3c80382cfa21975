// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Environment is an injectable view over process environment lookups.
// The resolver never reads the process environment directly; tests pass
// literal maps and stay deterministic without mutating shared state.
type Environment map[string]string

// SystemEnvironment snapshots the current process environment.
func SystemEnvironment() Environment {
	return Environment(env.ToMap(os.Environ()))
}

// Lookup returns the value for key and whether it is present.
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// overrides is the sparse environment layer applied on top of the file
// config. An unset or empty variable means "no override" — it never clears
// the underlying value.
type overrides struct {
	ClientID       string `env:"CLIENT_ID"`
	ClientPassword string `env:"CLIENT_PASSWORD"`
}

// parseOverrides populates the override layer from the given environment
// view using the caarlos0/env tag mapping.
func parseOverrides(environment Environment) (overrides, error) {
	if environment == nil {
		// a nil map would make the env library fall back to the real
		// process environment, breaking the injectable-lookup contract
		environment = Environment{}
	}

	var o overrides
	err := env.ParseWithOptions(&o, env.Options{
		Environment: map[string]string(environment),
	})
	if err != nil {
		return overrides{}, fmt.Errorf("error getting env overrides: %w", err)
	}

	return o, nil
}
