// Package server exposes the swap optimizer over HTTP.
//
// Routes:
//
//	POST /optimize  run one optimization and return the result envelope
//	GET  /healthz   liveness probe
//	GET  /metrics   Prometheus exposition
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/logger"
)

// Config holds the listener settings.
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig listens on :5001. WriteTimeout stays generous because a
// single optimization may run for a while.
func DefaultConfig() Config {
	return Config{
		Addr:         ":5001",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  time.Minute,
	}
}

// Server represents the HTTP server lifecycle.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

// New constructs a Server serving handler.
func New(log logger.Logger, cfg Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.httpServer.Addr }

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.log.Noticef("starting http server on %s", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server: listen")
	}
	return nil
}

// Shutdown gracefully terminates all active connections.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Noticef("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}
