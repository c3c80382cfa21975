// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package config

import (
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog"
)

// Summary is the log-safe view of a [ReplicationConfig]. It exposes the
// client id verbatim and only the presence and length of the credential.
// All diagnostic rendering of replication settings must go through
// [Describe] (or the zerolog object marshalers below, which share it).
type Summary struct {
	Enabled        bool
	Broker         string
	TopicPrefix    string
	ClientID       string
	ClientPassword string
}

// Describe produces a human-readable summary safe for logs. The credential
// is rendered as "[SET] (length: N)" or "[NOT SET]", never in plaintext.
func Describe(r ReplicationConfig) Summary {
	return Summary{
		Enabled:        r.Enabled,
		Broker:         net.JoinHostPort(r.MQTTBroker, strconv.Itoa(r.MQTTPort)),
		TopicPrefix:    r.TopicPrefix,
		ClientID:       r.ClientID,
		ClientPassword: describePassword(r.ClientPassword),
	}
}

// String renders the summary as a single diagnostic line.
func (s Summary) String() string {
	return fmt.Sprintf(
		"replication enabled=%t broker=%s topic_prefix=%s client_id=%s client_password=%s",
		s.Enabled, s.Broker, s.TopicPrefix, s.ClientID, s.ClientPassword,
	)
}

func describePassword(pw *Secret) string {
	if pw == nil {
		return NotSet
	}
	return pw.String()
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so that
// log.Info().Object("config", cfg) emits the redacted view.
func (c Config) MarshalZerologObject(e *zerolog.Event) {
	e.Str("host", c.Host).
		Int("port", c.Port).
		Str("storage_path", c.StoragePath).
		Str("engine", c.Engine).
		Uint64("sync_interval_seconds", c.SyncIntervalSeconds).
		Object("replication", c.Replication)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler through the
// same redaction as [Describe].
func (r ReplicationConfig) MarshalZerologObject(e *zerolog.Event) {
	s := Describe(r)
	e.Bool("enabled", s.Enabled).
		Str("broker", s.Broker).
		Str("topic_prefix", s.TopicPrefix).
		Str("client_id", s.ClientID).
		Str("client_password", s.ClientPassword)
}
