// Package server exposes the board over a small JSON HTTP API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/haneul-labs/meritboard/internal/board"
	"github.com/haneul-labs/meritboard/internal/source"
)

// Server is the meritboard API server.
type Server struct {
	board  *board.Board
	cached *source.Cached
	port   int
	watch  bool
	path   string
	logger *slog.Logger
}

// Config holds configuration for the API server.
type Config struct {
	Board  *board.Board
	Cached *source.Cached
	Port   int
	Watch  bool
	Path   string
	Logger *slog.Logger
}

// NewServer creates a new API server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		board:  cfg.Board,
		cached: cfg.Cached,
		port:   cfg.Port,
		watch:  cfg.Watch,
		path:   cfg.Path,
		logger: logger,
	}
}

// Serve starts the API server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting API server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
	)
	SetupRoutes(r, s.board, s.logger)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch && s.cached != nil {
		eg.Go(func() error {
			return source.Watch(egctx, s.path, s.cached, s.logger)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
