// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

// Load resolves the node configuration from a document path and an
// environment view, in priority order (higher wins):
//  1. Environment variables (CLIENT_ID, CLIENT_PASSWORD)
//  2. The TOML document at path
//
// With an empty path the compiled-in [Default] stands in for the file layer.
// The returned config is validated and must be treated as read-only.
func Load(path string, environment Environment) (*Config, error) {
	fileCfg := Default()

	if path != "" {
		var err error
		fileCfg, err = parseTOML(path)
		if err != nil {
			return nil, err
		}
		if err := fillSectionDefaults(fileCfg); err != nil {
			return nil, err
		}
	}

	return Resolve(fileCfg, environment)
}

// Resolve applies the environment overrides on top of fileCfg and validates
// the result. It is deterministic: identical inputs always yield an
// identical resolved value. fileCfg is never mutated; the returned config
// shares no memory with it.
//
// Override semantics: a non-empty CLIENT_ID replaces replication.client_id,
// a non-empty CLIENT_PASSWORD replaces replication.client_password. Absent
// or empty variables leave the file value untouched.
func Resolve(fileCfg *Config, environment Environment) (*Config, error) {
	o, err := parseOverrides(environment)
	if err != nil {
		return nil, err
	}

	cfg := fileCfg.clone()
	applyOverrides(cfg, o)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyOverrides overwrites the replication identity fields from the
// override layer. Empty override values are skipped, so the absence of an
// override never clears a file-provided value.
func applyOverrides(cfg *Config, o overrides) {
	if o.ClientID != "" {
		cfg.Replication.ClientID = o.ClientID
	}
	if o.ClientPassword != "" {
		pw := Secret(o.ClientPassword)
		cfg.Replication.ClientPassword = &pw
	}
}
