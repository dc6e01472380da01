// Package nats runs an embedded, in-process NATS server with JetStream for
// local persistence.
package nats

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/partsync/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is an embedded JetStream server together with its in-process
// client connection.
type Server struct {
	ns *server.Server
	nc *nats.Conn
	js jetstream.JetStream
}

// Start launches a JetStream server storing its data under dataDir and
// connects to it in-process. No network port is opened.
func Start(dataDir string) (*Server, error) {
	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	logger.Debug("nats: starting embedded server in %s", dataDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   dataDir,
		DontListen: true,
		NoSigs:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("nats server not ready after %s", readyTimeout)
	}

	nc, err := nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		ns.Shutdown()
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		ns.Shutdown()
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	logger.Debug("nats: server ready")
	return &Server{ns: ns, nc: nc, js: js}, nil
}

// JetStream returns the JetStream context for the connection.
func (s *Server) JetStream() jetstream.JetStream {
	return s.js
}

// Close drains the connection and shuts the server down. It gives up waiting
// after a few seconds rather than hang the process on exit.
func (s *Server) Close() error {
	if s == nil {
		return nil
	}

	if s.nc != nil {
		done := make(chan error, 1)
		go func() { done <- s.nc.Drain() }()
		select {
		case err := <-done:
			if err != nil {
				logger.Warn("nats: drain failed, closing: %v", err)
				s.nc.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("nats: drain timed out, closing")
			s.nc.Close()
		}
	}

	if s.ns == nil {
		return nil
	}
	s.ns.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.ns.WaitForShutdown()
		close(stopped)
	}()
	select {
	case <-stopped:
		logger.Debug("nats: server stopped")
		return nil
	case <-time.After(shutdownTimeout):
		return errors.New("nats server shutdown timed out")
	}
}
