package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/time/rate"
)

const (
	defaultName    = "nictagadm"
	defaultVersion = "dev"
)

// Server is a small read-only HTTP server. System routes are always present;
// API routes are supplied with WithHandler.
type Server struct {
	name     string
	version  string
	config   *Config
	handlers map[string]http.HandlerFunc

	limiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
	addr  string

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported on the index route.
func WithName(name string) Option {
	return func(s *Server) {
		s.name = name
	}
}

// WithVersion sets the server version reported on the index route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithHandler registers API routes. Each handler is wrapped with the request
// id, rate limit, method and timeout middleware.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		for path, h := range handlers {
			s.handlers[path] = h
		}
	}
}

// New creates a Server.
func New(opts ...Option) *Server {
	s := &Server{
		name:     defaultName,
		version:  defaultVersion,
		config:   DefaultConfig(),
		handlers: make(map[string]http.HandlerFunc),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.limiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)

	return s
}

// Handler returns the fully routed handler.
func (s *Server) Handler() http.Handler {
	return s.setupRoutes()
}

// Addr returns the address the server is listening on, or "" before Run binds.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.addr
}

func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	s.ready = ready
	s.mu.Unlock()
}

// Run listens and serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Address, strconv.Itoa(s.config.Port))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s.httpServer = &http.Server{
		Handler:      s.setupRoutes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	s.mu.Lock()
	s.addr = ln.Addr().String()
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	s.setReady(true)
	slog.Info("server listening",
		slog.String("name", s.name),
		slog.String("address", s.Addr()),
	)

	if sent, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Warn("failed to notify service manager", slog.String("error", err.Error()))
	} else if sent {
		slog.Debug("notified service manager of readiness")
	}

	select {
	case err := <-errCh:
		s.setReady(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	s.setReady(false)
	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		slog.Debug("failed to notify service manager of shutdown", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
