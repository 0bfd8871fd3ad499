// Package gallery provides the gallery view: the fixed set of exploratory
// charts with a notice for every image that is missing.
package gallery

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/ui/features/common"
	"github.com/leapstack-labs/edudash/internal/ui/features/common/components"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the gallery feature.
type Handlers struct {
	gallery  *gallery.Gallery
	notifier *notifier.Notifier
	isDev    bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(g *gallery.Gallery, notify *notifier.Notifier, isDev bool) *Handlers {
	return &Handlers{
		gallery:  g,
		notifier: notify,
		isDev:    isDev,
	}
}

// GalleryPage renders every item, resolved against the assets directory at
// request time.
func (h *Handlers) GalleryPage(w http.ResponseWriter, r *http.Request) {
	shell := common.ShellData{Title: "Gallery", CurrentPath: "/gallery", IsDev: h.isDev}
	if err := components.Page(shell, GalleryPage(h.gallery.Items())).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GalleryUpdates is the long-lived SSE endpoint for the gallery page. It
// sends nothing up front; the grid is re-sent each time the assets change.
func (h *Handlers) GalleryUpdates(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe(notifier.TopicGallery)
	defer h.notifier.Unsubscribe(notifier.TopicGallery, updates)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.PatchElementTempl(Grid(h.gallery.Items())); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// Asset serves a catalogued image. Any other name is a 404, so the handler
// never exposes the rest of the assets directory.
func (h *Handlers) Asset(w http.ResponseWriter, r *http.Request) {
	item, ok := h.gallery.Lookup(chi.URLParam(r, "file"))
	if !ok || !item.Exists {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, item.Path)
}
