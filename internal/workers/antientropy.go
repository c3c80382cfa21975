// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package workers

import (
	"time"

	"github.com/merklekv/merkle-kv/internal/logger"
	"github.com/merklekv/merkle-kv/internal/store"
)

// IntervalSource yields the anti-entropy interval for the next cycle. It is
// consulted before every sleep, so a reloaded sync_interval_seconds takes
// effect without restarting the worker.
type IntervalSource func() time.Duration

// AntiEntropy periodically re-publishes the full local key space to the
// replication topic, repairing peers that missed live events.
// TODO: replace the full-snapshot broadcast with Merkle-tree diffing so
// only divergent ranges travel.
type AntiEntropy struct {
	interval IntervalSource
	store    store.Store
	pub      Publisher
	log      *logger.Logger
	stop     chan struct{}
}

// NewAntiEntropy builds the worker; interval tracks the
// sync_interval_seconds config key.
func NewAntiEntropy(interval IntervalSource, st store.Store, pub Publisher, log *logger.Logger) *AntiEntropy {
	return &AntiEntropy{
		interval: interval,
		store:    st,
		pub:      pub,
		log:      log,
		stop:     make(chan struct{}),
	}
}

// Run starts the sync loop in the background.
func (w *AntiEntropy) Run() {
	go w.loop()
}

// Stop terminates the sync loop. Safe to call once.
func (w *AntiEntropy) Stop() {
	close(w.stop)
}

func (w *AntiEntropy) loop() {
	for {
		timer := time.NewTimer(w.interval())

		select {
		case <-timer.C:
			w.syncOnce()
		case <-w.stop:
			timer.Stop()
			return
		}
	}
}

func (w *AntiEntropy) syncOnce() {
	snapshot := w.store.Snapshot()
	for key, value := range snapshot {
		w.pub.PublishSet(key, value)
	}

	w.log.Debug().Int("keys", len(snapshot)).Msg("anti-entropy sync published")
}
