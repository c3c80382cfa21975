// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package replication

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/merklekv/merkle-kv/internal/config"
	"github.com/merklekv/merkle-kv/internal/logger"
	"github.com/merklekv/merkle-kv/internal/store"
)

// publish/subscribe quality of service: at-least-once, matching the
// idempotent SET/DELETE application.
const qosAtLeastOnce = 1

// Client replicates mutations through the MQTT broker named by the resolved
// replication config. It implements the command server's Publisher.
type Client struct {
	cfg   config.ReplicationConfig
	store store.Store
	log   *logger.Logger
	mqtt  mqtt.Client
}

// NewClient builds a broker client from an already-resolved config. No
// network traffic happens until Connect.
func NewClient(cfg config.ReplicationConfig, st store.Store, log *logger.Logger) *Client {
	c := &Client{
		cfg:   cfg,
		store: st,
		log:   log,
	}
	c.mqtt = mqtt.NewClient(clientOptions(cfg))

	return c
}

// clientOptions translates the resolved config into broker connection
// options. When a password is configured the username is set to the empty
// string: brokers that accept password-only authentication expect the
// credential paired with a blank username.
func clientOptions(cfg config.ReplicationConfig) *mqtt.ClientOptions {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL(cfg)).
		SetClientID(cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true)

	if cfg.ClientPassword != nil {
		opts.SetUsername("")
		opts.SetPassword(cfg.ClientPassword.Reveal())
	}

	return opts
}

func brokerURL(cfg config.ReplicationConfig) string {
	return "tcp://" + net.JoinHostPort(cfg.MQTTBroker, strconv.Itoa(cfg.MQTTPort))
}

// eventsTopic returns the cluster's mutation topic.
func (c *Client) eventsTopic() string {
	return c.cfg.TopicPrefix + "/events"
}

// Connect establishes the broker session and subscribes to the cluster's
// event topic. ctx bounds the whole handshake.
func (c *Client) Connect(ctx context.Context) error {
	if err := waitToken(ctx, c.mqtt.Connect()); err != nil {
		return fmt.Errorf("error connecting to broker %s: %w", brokerURL(c.cfg), err)
	}

	if err := waitToken(ctx, c.mqtt.Subscribe(c.eventsTopic(), qosAtLeastOnce, c.handleMessage)); err != nil {
		return fmt.Errorf("error subscribing to %s: %w", c.eventsTopic(), err)
	}

	c.log.Info().
		Str("topic", c.eventsTopic()).
		Str("client_id", c.cfg.ClientID).
		Msg("replication connected")

	return nil
}

// Close tears the broker session down, allowing in-flight messages a short
// drain.
func (c *Client) Close() {
	c.mqtt.Disconnect(250)
}

// PublishSet replicates a local SET.
func (c *Client) PublishSet(key, value string) {
	c.publish(NewEvent(OpSet, key, value, c.cfg.ClientID))
}

// PublishDelete replicates a local DELETE.
func (c *Client) PublishDelete(key string) {
	c.publish(NewEvent(OpDelete, key, "", c.cfg.ClientID))
}

func (c *Client) publish(ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		c.log.Error().Err(err).Msg("error encoding replication event")
		return
	}

	token := c.mqtt.Publish(c.eventsTopic(), qosAtLeastOnce, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			c.log.Error().Err(err).Str("key", ev.Key).Msg("error publishing replication event")
		}
	}()
}

func (c *Client) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var ev Event
	if err := json.Unmarshal(msg.Payload(), &ev); err != nil {
		c.log.Warn().Err(err).Str("topic", msg.Topic()).Msg("dropping undecodable replication event")
		return
	}

	c.apply(ev)
}

// apply executes a replicated mutation against the local store. Events that
// originated here come back through the broker and are dropped by source id.
func (c *Client) apply(ev Event) {
	if ev.Source == c.cfg.ClientID {
		return
	}

	switch ev.Op {
	case OpSet:
		c.store.Set(ev.Key, ev.Value)
	case OpDelete:
		c.store.Delete(ev.Key)
	default:
		c.log.Warn().Str("op", string(ev.Op)).Msg("dropping replication event with unknown op")
		return
	}

	c.log.Debug().
		Str("op", string(ev.Op)).
		Str("key", ev.Key).
		Str("source", ev.Source).
		Msg("applied replication event")
}

func waitToken(ctx context.Context, token mqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
