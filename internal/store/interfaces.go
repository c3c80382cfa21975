// Package store provides the in-memory key/value engines of a merkle-kv
// node. The engine is selected by the "engine" config key: "rwlock" is
// thread-safe and serves concurrent connections, "kv" is a plain map for
// single-owner use.
package store

// Store is the key/value engine consumed by the command server and the
// replication client.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string)

	// Delete removes key and reports whether it existed.
	Delete(key string) bool

	// Len returns the number of stored keys.
	Len() int

	// Snapshot returns a copy of the full key space, used by the
	// anti-entropy worker. The copy is owned by the caller.
	Snapshot() map[string]string
}
