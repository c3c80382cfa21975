// Package replication keeps merkle-kv nodes synchronized through an MQTT
// broker. Every local mutation is published as a JSON event on
// "{topic_prefix}/events"; every node subscribes to the same topic and
// applies foreign events to its local store, which provides eventual
// consistency across the cluster.
//
// The client is the single consumer of the broker credential: it reveals
// the configured secret only when building the connection options.
package replication
