package profile

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/profile"
)

// SetupRoutes configures routes for the country profile feature.
func SetupRoutes(
	router chi.Router,
	reporter *profile.Reporter,
	sessionStore sessions.Store,
	logger *slog.Logger,
	isDev bool,
) error {
	handlers := NewHandlers(reporter, sessionStore, logger, isDev)

	router.Get("/profile", handlers.ProfilePage)
	router.Post("/api/profile/series", handlers.SeriesSSE)

	return nil
}
