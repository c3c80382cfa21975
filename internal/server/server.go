// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The merkle-kv Authors

package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"sync"
	"syscall"

	"github.com/merklekv/merkle-kv/internal/logger"
	"github.com/merklekv/merkle-kv/internal/store"
)

// Publisher forwards local mutations to the replication layer. A nil
// Publisher (replication disabled) is valid; mutations then stay local.
type Publisher interface {
	PublishSet(key, value string)
	PublishDelete(key string)
}

// Server is the TCP command server. Construct with NewServer, then either
// RunServer (blocking, signal-driven) or Start/Shutdown (tests, embedding).
type Server struct {
	addr  string
	store store.Store
	pub   Publisher
	log   *logger.Logger

	mu    sync.Mutex
	ln    net.Listener
	conns map[net.Conn]struct{}
	wg    sync.WaitGroup
}

// NewServer creates a command server bound to addr ("host:port") backed by
// the given engine. pub may be nil when replication is disabled.
func NewServer(addr string, st store.Store, pub Publisher, log *logger.Logger) *Server {
	return &Server{
		addr:  addr,
		store: st,
		pub:   pub,
		log:   log,
		conns: make(map[net.Conn]struct{}),
	}
}

// Start begins listening and serving connections in the background.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	s.wg.Add(1)
	go s.acceptLoop(ln)

	return nil
}

// Addr returns the bound address, or nil before Start. Useful with a
// ":0" port in tests.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// RunServer starts the server and blocks until a termination signal, then
// shuts down gracefully.
func (s *Server) RunServer() {
	if err := s.run(); err != nil {
		s.log.Error().Err(err).Msg("error running command server")
	}
}

func (s *Server) run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Start(); err != nil {
		return err
	}
	s.log.Info().Str("addr", s.Addr().String()).Msg("command server listening")

	<-ctx.Done()
	s.Shutdown()
	s.log.Info().Msg("command server shutdown gracefully")

	return nil
}

// Shutdown stops accepting connections, closes the open ones, and waits for
// all handlers to finish.
func (s *Server) Shutdown() {
	s.mu.Lock()
	if s.ln != nil {
		s.ln.Close()
	}
	for conn := range s.conns {
		conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Server) acceptLoop(ln net.Listener) {
	defer s.wg.Done()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Warn().Err(err).Msg("accept failed")
			continue
		}

		s.mu.Lock()
		s.conns[conn] = struct{}{}
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.conns, conn)
		s.mu.Unlock()
	}()

	serveConn(conn, s.store, s.pub)
}
