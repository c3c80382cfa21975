package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDescribe_PasswordSet verifies the log-safe summary for a configured
// credential.
func TestDescribe_PasswordSet(t *testing.T) {
	r := ReplicationConfig{
		Enabled:        true,
		MQTTBroker:     "localhost",
		MQTTPort:       1883,
		TopicPrefix:    "merkle_kv",
		ClientID:       "node1",
		ClientPassword: secretPtr("secret123"),
	}

	s := Describe(r)

	assert.True(t, s.Enabled)
	assert.Equal(t, "localhost:1883", s.Broker)
	assert.Equal(t, "merkle_kv", s.TopicPrefix)
	assert.Equal(t, "node1", s.ClientID)
	assert.Equal(t, "[SET] (length: 9)", s.ClientPassword)
}

// TestDescribe_PasswordNotSet verifies the absent-credential form.
func TestDescribe_PasswordNotSet(t *testing.T) {
	s := Describe(Default().Replication)

	assert.Equal(t, "[NOT SET]", s.ClientPassword)
}

// TestDescribe_NeverContainsSecret verifies that no summary field carries
// the raw credential.
func TestDescribe_NeverContainsSecret(t *testing.T) {
	r := Default().Replication
	r.ClientPassword = secretPtr("super_secret")

	s := Describe(r)

	for _, field := range []string{s.Broker, s.TopicPrefix, s.ClientID, s.ClientPassword, s.String()} {
		assert.NotContains(t, field, "super_secret")
	}
}

// TestMarshalZerologObject_Redacts verifies that logging a config through
// the object marshaler emits the redacted credential and the verbatim
// client id.
func TestMarshalZerologObject_Redacts(t *testing.T) {
	// Arrange
	cfg := Default()
	cfg.Replication.ClientID = "node1"
	cfg.Replication.ClientPassword = secretPtr("secret123")
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	// Act
	log.Info().Object("config", cfg).Msg("resolved configs")

	// Assert
	out := buf.String()
	assert.NotContains(t, out, "secret123")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	configField, ok := entry["config"].(map[string]any)
	require.True(t, ok)
	replication, ok := configField["replication"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "node1", replication["client_id"])
	assert.Equal(t, "[SET] (length: 9)", replication["client_password"])
}
