// Package server exposes editing sessions over HTTP.
//
// Every session owns one surface. Clients create a session, read its
// catalog and surface views, and post intents one at a time:
//
//	GET    /healthz
//	POST   /sessions
//	GET    /sessions/{id}
//	GET    /sessions/{id}/catalog
//	GET    /sessions/{id}/surface
//	POST   /sessions/{id}/intents
//	DELETE /sessions/{id}
//
// Errors are returned as {"error": {"code": ..., "message": ...}} with the
// status chosen by [StatusFor].
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/gridboard/pkg/layout"
	"github.com/matzehuels/gridboard/pkg/notify"
	"github.com/matzehuels/gridboard/pkg/session"
)

const (
	defaultCleanupInterval = time.Minute
	shutdownTimeout        = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second
	maxBodyBytes           = 64 << 10
)

// Server serves the session API.
type Server struct {
	seed            layout.Layout
	store           session.Store
	ttl             time.Duration
	cleanupInterval time.Duration
	logger          *log.Logger
	publisher       notify.Publisher
	router          chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and engine logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPublisher sets the change publisher handed to every session engine.
func WithPublisher(p notify.Publisher) Option {
	return func(s *Server) {
		if p != nil {
			s.publisher = p
		}
	}
}

// WithSessionTTL sets the lifetime of new sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Server) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithCleanupInterval sets how often expired sessions are swept.
func WithCleanupInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.cleanupInterval = d
		}
	}
}

// New creates a server whose sessions all start from seed.
func New(seed layout.Layout, store session.Store, opts ...Option) *Server {
	s := &Server{
		seed:            seed,
		store:           store,
		ttl:             session.DefaultTTL,
		cleanupInterval: defaultCleanupInterval,
		logger:          log.Default(),
		publisher:       notify.NewNull(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.NotFound(s.handleNotFound)
	r.Get("/healthz", s.handleHealth)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/catalog", s.handleCatalog)
			r.Get("/surface", s.handleSurface)
			r.Post("/intents", s.handleIntent)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx ends, sweeping expired sessions
// in the background.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr, "session_ttl", s.ttl)

	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			err := httpServer.Shutdown(shutdownCtx)
			cancel()
			if err != nil {
				return fmt.Errorf("shutdown http server: %w", err)
			}
			return nil
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve http: %w", err)
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Server) sweep(ctx context.Context) {
	n, err := s.store.Cleanup(ctx)
	if err != nil {
		s.logger.Warn("session cleanup", "err", err)
		return
	}
	if n > 0 {
		s.logger.Debug("expired sessions removed", "count", n)
	}
}
