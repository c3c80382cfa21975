package replication

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merklekv/merkle-kv/internal/config"
	"github.com/merklekv/merkle-kv/internal/logger"
	"github.com/merklekv/merkle-kv/internal/store"
)

func testReplicationConfig() config.ReplicationConfig {
	return config.ReplicationConfig{
		Enabled:     true,
		MQTTBroker:  "localhost",
		MQTTPort:    1883,
		TopicPrefix: "test_cluster",
		ClientID:    "node1",
	}
}

func secretPtr(s string) *config.Secret {
	sec := config.Secret(s)
	return &sec
}

func newTestClient(t *testing.T) (*Client, store.Store) {
	t.Helper()
	st, err := store.New("rwlock")
	require.NoError(t, err)
	return NewClient(testReplicationConfig(), st, logger.Nop()), st
}

// TestClientOptions_BrokerAndIdentity verifies the broker URL and session
// identity derived from the config.
func TestClientOptions_BrokerAndIdentity(t *testing.T) {
	cfg := testReplicationConfig()

	opts := clientOptions(cfg)

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "tcp", opts.Servers[0].Scheme)
	assert.Equal(t, "localhost:1883", opts.Servers[0].Host)
	assert.Equal(t, "node1", opts.ClientID)
	assert.True(t, opts.CleanSession)
	assert.True(t, opts.AutoReconnect)
}

// TestClientOptions_NoPassword verifies that without a credential no
// authentication fields are set.
func TestClientOptions_NoPassword(t *testing.T) {
	opts := clientOptions(testReplicationConfig())

	assert.Empty(t, opts.Username)
	assert.Empty(t, opts.Password)
}

// TestClientOptions_PasswordPairsEmptyUsername verifies the password-only
// authentication convention: credential set, username explicitly blank.
func TestClientOptions_PasswordPairsEmptyUsername(t *testing.T) {
	cfg := testReplicationConfig()
	cfg.ClientPassword = secretPtr("broker_secret")

	opts := clientOptions(cfg)

	assert.Equal(t, "", opts.Username)
	assert.Equal(t, "broker_secret", opts.Password)
}

// TestEventsTopic verifies the topic layout.
func TestEventsTopic(t *testing.T) {
	c, _ := newTestClient(t)

	assert.Equal(t, "test_cluster/events", c.eventsTopic())
}

// TestNewEvent_Fields verifies stamping and the JSON wire shape.
func TestNewEvent_Fields(t *testing.T) {
	ev := NewEvent(OpSet, "k1", "v1", "node1")

	assert.NotEmpty(t, ev.ID)
	assert.Positive(t, ev.TimestampMS)

	payload, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "SET", decoded["op"])
	assert.Equal(t, "k1", decoded["key"])
	assert.Equal(t, "v1", decoded["value"])
	assert.Equal(t, "node1", decoded["source"])
}

// TestNewEvent_DeleteOmitsValue verifies that DELETE events carry no value
// field on the wire.
func TestNewEvent_DeleteOmitsValue(t *testing.T) {
	payload, err := json.Marshal(NewEvent(OpDelete, "k1", "", "node1"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	_, hasValue := decoded["value"]
	assert.False(t, hasValue)
}

// TestApply_ForeignSet verifies that a foreign SET lands in the store.
func TestApply_ForeignSet(t *testing.T) {
	c, st := newTestClient(t)

	c.apply(NewEvent(OpSet, "k1", "v1", "node2"))

	v, ok := st.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

// TestApply_ForeignDelete verifies that a foreign DELETE removes the key.
func TestApply_ForeignDelete(t *testing.T) {
	c, st := newTestClient(t)
	st.Set("k1", "v1")

	c.apply(NewEvent(OpDelete, "k1", "", "node2"))

	_, ok := st.Get("k1")
	assert.False(t, ok)
}

// TestApply_SkipsOwnEvents verifies that events echoed back by the broker
// are dropped by source id.
func TestApply_SkipsOwnEvents(t *testing.T) {
	c, st := newTestClient(t)
	st.Set("k1", "local_value")

	c.apply(NewEvent(OpSet, "k1", "echoed_value", "node1"))
	c.apply(NewEvent(OpDelete, "k1", "", "node1"))

	v, ok := st.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "local_value", v)
}

// TestApply_UnknownOp verifies that unknown operations are ignored.
func TestApply_UnknownOp(t *testing.T) {
	c, st := newTestClient(t)

	c.apply(Event{Op: "TRUNCATE", Key: "k1", Source: "node2"})

	assert.Zero(t, st.Len())
}

// fakeMessage implements mqtt.Message for handler tests.
type fakeMessage struct {
	topic   string
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return qosAtLeastOnce }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return m.topic }
func (m *fakeMessage) MessageID() uint16 { return 0 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

// TestHandleMessage_AppliesDecodedEvent verifies the broker-facing handler
// end to end: decode then apply.
func TestHandleMessage_AppliesDecodedEvent(t *testing.T) {
	c, st := newTestClient(t)
	payload, err := json.Marshal(NewEvent(OpSet, "k1", "v1", "node2"))
	require.NoError(t, err)

	c.handleMessage(nil, &fakeMessage{topic: c.eventsTopic(), payload: payload})

	v, ok := st.Get("k1")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)
}

// TestHandleMessage_DropsGarbage verifies that undecodable payloads are
// dropped without touching the store.
func TestHandleMessage_DropsGarbage(t *testing.T) {
	c, st := newTestClient(t)

	c.handleMessage(nil, &fakeMessage{topic: c.eventsTopic(), payload: []byte("{not json")})

	assert.Zero(t, st.Len())
}
