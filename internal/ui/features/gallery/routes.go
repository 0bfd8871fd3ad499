package gallery

import (
	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
)

// SetupRoutes configures routes for the gallery feature.
func SetupRoutes(router chi.Router, g *gallery.Gallery, notify *notifier.Notifier, isDev bool) error {
	handlers := NewHandlers(g, notify, isDev)

	router.Get("/gallery", handlers.GalleryPage)
	router.Get("/gallery/updates", handlers.GalleryUpdates)
	router.Get("/gallery/assets/{file}", handlers.Asset)

	return nil
}
