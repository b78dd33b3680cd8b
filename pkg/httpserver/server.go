package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

type config struct {
	addr              string
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
	writeTimeout      time.Duration
	idleTimeout       time.Duration
	shutdownTimeout   time.Duration
	server            *http.Server
	logger            *slog.Logger
	startHooks        []func(*slog.Logger)
	stopHooks         []func(*slog.Logger)
}

// Server wraps http.Server with signal handling and graceful shutdown.
type Server struct {
	cfg *config

	mu     sync.Mutex
	srv    *http.Server
	addr   net.Addr
	closed bool
}

// New returns a configured Server listening on :8080 unless WithAddr says
// otherwise.
func New(opts ...Option) *Server {
	cfg := &config{
		addr:              ":8080",
		readHeaderTimeout: 10 * time.Second,
		shutdownTimeout:   5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg}
}

// Run serves handler until ctx is canceled, SIGINT or SIGTERM arrives, or
// Shutdown is called. A clean shutdown returns nil. Listen and serve
// failures are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrClosed)
	case s.srv != nil:
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}

	srv := s.httpServer(handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, err)
	}
	s.srv = srv
	s.addr = ln.Addr()
	s.mu.Unlock()

	log := s.cfg.logger.With(slog.String("addr", ln.Addr().String()))
	for _, h := range s.cfg.startHooks {
		h(log)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
		shutdownErr := s.Shutdown(context.Background())
		if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return shutdownErr
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Join(ErrStart, err)
	}
}

func (s *Server) httpServer(handler http.Handler) *http.Server {
	srv := s.cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = s.cfg.addr
	}
	if srv.ReadTimeout == 0 {
		srv.ReadTimeout = s.cfg.readTimeout
	}
	if srv.ReadHeaderTimeout == 0 {
		srv.ReadHeaderTimeout = s.cfg.readHeaderTimeout
	}
	if srv.WriteTimeout == 0 {
		srv.WriteTimeout = s.cfg.writeTimeout
	}
	if srv.IdleTimeout == 0 {
		srv.IdleTimeout = s.cfg.idleTimeout
	}
	srv.Handler = handler
	return srv
}

// Addr returns the bound address while Run is serving, or nil.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Shutdown drains in-flight requests within the shutdown timeout and runs
// the stop hooks. Repeated calls are no-ops. Calling it before Run makes
// Run fail with ErrClosed.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv, wasClosed := s.srv, s.closed
	s.closed = true
	s.mu.Unlock()

	if srv == nil || wasClosed {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)

	for _, h := range s.cfg.stopHooks {
		h(s.cfg.logger)
	}

	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
