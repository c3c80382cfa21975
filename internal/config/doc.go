// Package config provides configuration loading, resolution, and validation
// facilities for a merkle-kv node.
//
// Configuration is resolved from two sources with a fixed priority order
// (higher wins):
//  1. Environment variables (CLIENT_ID, CLIENT_PASSWORD)
//  2. TOML config file (or the compiled-in default when no file is given)
//
// The main entry point is [Load], which parses the document, applies the
// environment overrides, and validates the result. The resolved [Config] is
// treated as immutable: downstream consumers hold a read-only reference and
// observe replacements only wholesale, through [Holder].
//
// The broker credential is carried as a [Secret] so that every render path
// (logs, %v/%q formatting, JSON/TOML marshaling) emits a redacted form.
package config
