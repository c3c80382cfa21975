package replication

import (
	"time"

	"github.com/google/uuid"
)

// Op is the replicated mutation kind.
type Op string

const (
	OpSet    Op = "SET"
	OpDelete Op = "DELETE"
)

// Event is one replicated mutation. Source carries the originating node's
// client id so that subscribers can drop their own events when the broker
// echoes them back.
type Event struct {
	ID          string `json:"id"`
	Op          Op     `json:"op"`
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	Source      string `json:"source"`
	TimestampMS int64  `json:"timestamp_ms"`
}

// NewEvent stamps a mutation with a fresh id and the current time.
func NewEvent(op Op, key, value, source string) Event {
	return Event{
		ID:          uuid.NewString(),
		Op:          op,
		Key:         key,
		Value:       value,
		Source:      source,
		TimestampMS: time.Now().UnixMilli(),
	}
}
