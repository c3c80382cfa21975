// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

import "fmt"

// validate checks that a resolved [Config] satisfies all node invariants
// before it is handed to the bootstrap. Violations are reported as
// *MissingRequiredFieldError or *InvalidFieldError naming the offending
// document key; messages never echo a secret value.
func (c *Config) validate() error {
	if c.Host == "" {
		return &MissingRequiredFieldError{Field: "host"}
	}
	if err := validatePort("port", c.Port); err != nil {
		return err
	}
	if c.StoragePath == "" {
		return &MissingRequiredFieldError{Field: "storage_path"}
	}
	if c.Engine != EngineRWLock && c.Engine != EngineKV {
		return &InvalidFieldError{
			Field:  "engine",
			Reason: fmt.Sprintf("must be %q or %q", EngineRWLock, EngineKV),
		}
	}
	if c.SyncIntervalSeconds < 1 {
		return &InvalidFieldError{
			Field:  "sync_interval_seconds",
			Reason: "must be at least 1",
		}
	}

	return c.Replication.validate()
}

func (r *ReplicationConfig) validate() error {
	if r.MQTTBroker == "" {
		return &MissingRequiredFieldError{Field: "replication.mqtt_broker"}
	}
	if err := validatePort("replication.mqtt_port", r.MQTTPort); err != nil {
		return err
	}
	if r.TopicPrefix == "" {
		return &MissingRequiredFieldError{Field: "replication.topic_prefix"}
	}
	if r.ClientID == "" {
		return &MissingRequiredFieldError{Field: "replication.client_id"}
	}

	return nil
}

func validatePort(field string, port int) error {
	if port < 1 || port > 65535 {
		return &InvalidFieldError{
			Field:  field,
			Reason: "must be between 1 and 65535",
		}
	}

	return nil
}
