// Package router sets up HTTP routes for the UI server.
package router

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/profile"
	galleryFeature "github.com/leapstack-labs/edudash/internal/ui/features/gallery"
	profileFeature "github.com/leapstack-labs/edudash/internal/ui/features/profile"
	queriesFeature "github.com/leapstack-labs/edudash/internal/ui/features/queries"
	statusFeature "github.com/leapstack-labs/edudash/internal/ui/features/status"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/leapstack-labs/edudash/internal/ui/resources"
	"github.com/starfederation/datastar-go/datastar"
)

// Deps are the components the routes serve.
type Deps struct {
	Executor       *executor.Executor
	Reporter       *profile.Reporter
	Gallery        *gallery.Gallery
	Status         statusFeature.Source
	StatusInterval time.Duration
	SessionStore   sessions.Store
	Notifier       *notifier.Notifier
	Logger         *slog.Logger
	IsDev          bool
}

// SetupRoutes configures all routes for the UI server.
func SetupRoutes(router chi.Router, deps Deps) error {
	// Hot reload endpoint for dev mode
	if deps.IsDev {
		setupReload(router)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/queries", http.StatusFound)
	})

	// Feature routes
	if err := queriesFeature.SetupRoutes(router, deps.Executor, deps.SessionStore, deps.Notifier, deps.Logger, deps.IsDev); err != nil {
		return err
	}

	if err := galleryFeature.SetupRoutes(router, deps.Gallery, deps.Notifier, deps.IsDev); err != nil {
		return err
	}

	if err := profileFeature.SetupRoutes(router, deps.Reporter, deps.SessionStore, deps.Logger, deps.IsDev); err != nil {
		return err
	}

	if err := statusFeature.SetupRoutes(router, deps.Status, deps.Notifier, deps.StatusInterval); err != nil {
		return err
	}

	return nil
}

func setupReload(router chi.Router) {
	reloadChan := make(chan struct{}, 1)
	var hotReloadOnce sync.Once

	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		sse := datastar.NewSSE(w, r)
		reload := func() { _ = sse.ExecuteScript("window.location.reload()") }
		hotReloadOnce.Do(reload)
		select {
		case <-reloadChan:
			reload()
		case <-r.Context().Done():
		}
	})

	router.Get("/hotreload", func(w http.ResponseWriter, _ *http.Request) {
		select {
		case reloadChan <- struct{}{}:
		default:
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}
