package queries

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
)

// SetupRoutes configures routes for the query runner feature.
func SetupRoutes(
	router chi.Router,
	exec *executor.Executor,
	sessionStore sessions.Store,
	notify *notifier.Notifier,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(exec, sessionStore, notify, logger, isDev)

	router.Get("/queries", handlers.QueryPage)
	router.Post("/api/queries/run", handlers.RunSSE)

	return nil
}
