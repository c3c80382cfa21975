// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

// Storage engine identifiers accepted by the "engine" config key.
const (
	EngineRWLock = "rwlock"
	EngineKV     = "kv"
)

// Config is the top-level configuration for a merkle-kv node. It is parsed
// from a TOML document and, after [Resolve], must be treated as read-only.
//
// Struct tags:
//   - toml — key name in the configuration document.
type Config struct {
	// Host is the IP address the TCP command server binds to
	// (e.g. "127.0.0.1" or "0.0.0.0").
	Host string `toml:"host"`

	// Port is the TCP port the command server listens on (1–65535).
	Port int `toml:"port"`

	// StoragePath is the directory where data files are kept. The bundled
	// engines are in-memory, so the path is currently only reserved.
	StoragePath string `toml:"storage_path"`

	// Engine selects the storage engine: [EngineRWLock] (thread-safe,
	// default) or [EngineKV] (single-owner map).
	Engine string `toml:"engine"`

	// SyncIntervalSeconds is how often the anti-entropy worker re-publishes
	// local state to peers, in seconds.
	SyncIntervalSeconds uint64 `toml:"sync_interval_seconds"`

	// Replication holds the MQTT replication settings.
	Replication ReplicationConfig `toml:"replication"`
}

// ReplicationConfig configures MQTT-based replication between nodes.
// Nodes stay synchronized by publishing updates through a shared broker,
// which provides eventual consistency across the cluster.
type ReplicationConfig struct {
	// Enabled reports whether this node participates in replication.
	Enabled bool `toml:"enabled"`

	// MQTTBroker is the hostname or IP of the broker
	// (e.g. "localhost", "mqtt.example.com").
	MQTTBroker string `toml:"mqtt_broker"`

	// MQTTPort is the broker port (1883 plain, 8883 TLS).
	MQTTPort int `toml:"mqtt_port"`

	// TopicPrefix namespaces the pub/sub topics of this cluster
	// (e.g. "merkle_kv"; events travel on "{prefix}/events").
	TopicPrefix string `toml:"topic_prefix"`

	// ClientID uniquely identifies this node's broker session. Must be
	// unique across the cluster. Overridable via the CLIENT_ID environment
	// variable; never empty after resolution.
	ClientID string `toml:"client_id"`

	// ClientPassword is the optional broker authentication credential.
	// A nil pointer means "not set", which is distinct from an empty
	// secret. Overridable via the CLIENT_PASSWORD environment variable.
	ClientPassword *Secret `toml:"client_password"`
}

// Default returns the compiled-in configuration used when no document is
// supplied: a local development node with replication disabled.
func Default() *Config {
	return &Config{
		Host:                "127.0.0.1",
		Port:                7379,
		StoragePath:         "data",
		Engine:              EngineRWLock,
		SyncIntervalSeconds: 60,
		Replication: ReplicationConfig{
			Enabled:        false,
			MQTTBroker:     "localhost",
			MQTTPort:       1883,
			TopicPrefix:    "merkle_kv",
			ClientID:       "node1",
			ClientPassword: nil,
		},
	}
}

// clone returns a deep copy so that a resolved config never aliases the
// caller's input.
func (c *Config) clone() *Config {
	out := *c
	if c.Replication.ClientPassword != nil {
		pw := *c.Replication.ClientPassword
		out.Replication.ClientPassword = &pw
	}
	return &out
}
