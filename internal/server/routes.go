package server

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/haneul-labs/meritboard/internal/board"
)

// SetupRoutes registers the API routes.
func SetupRoutes(router chi.Router, b *board.Board, logger *slog.Logger) {
	handlers := NewHandlers(b, logger)

	router.Route("/api", func(r chi.Router) {
		r.Get("/periods", handlers.Periods)
		r.Route("/periods/{period}", func(r chi.Router) {
			r.Get("/records", handlers.Records)
			r.Get("/days", handlers.Days)
			r.Get("/months", handlers.Months)
			r.Get("/groups", handlers.Groups)
		})
	})
}
