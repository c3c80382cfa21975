// Package workers provides abstractions for managing and running
// background workers of a merkle-kv node.
// It defines the Worker interface, a Workers aggregate that runs multiple
// workers in a unified way, and the anti-entropy worker that periodically
// re-publishes local state to peers.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Publisher forwards key/value state to the replication layer.
type Publisher interface {
	PublishSet(key, value string)
}
