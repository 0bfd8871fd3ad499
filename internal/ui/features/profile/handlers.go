// Package profile provides the country profile view: a country picker and
// the adult literacy line of the selected country.
package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/profile"
	"github.com/leapstack-labs/edudash/internal/ui/features/common"
	"github.com/leapstack-labs/edudash/internal/ui/features/common/components"
	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the country profile feature.
type Handlers struct {
	reporter     *profile.Reporter
	sessionStore sessions.Store
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(reporter *profile.Reporter, sessionStore sessions.Store, logger *slog.Logger, isDev bool) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		reporter:     reporter,
		sessionStore: sessionStore,
		logger:       logger,
		isDev:        isDev,
	}
}

// ProfilePage renders the country list and the series of the remembered
// country, or of the first country when none is remembered or it has gone
// from the store.
func (h *Handlers) ProfilePage(w http.ResponseWriter, r *http.Request) {
	shell := common.ShellData{Title: "Country Profile", CurrentPath: "/profile", IsDev: h.isDev}
	page := components.Page(shell, ProfilePage(h.buildPageData(r)))
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handlers) buildPageData(r *http.Request) PageData {
	remembered := common.Recall(h.sessionStore, r, common.KeyCountry)

	p, err := h.reporter.Load(r.Context(), remembered)
	var unknown *core.UnknownCountryError
	if errors.As(err, &unknown) {
		h.logger.Debug("remembered country no longer listed", slog.String("country", remembered))
		p, err = h.reporter.Load(r.Context(), "")
	}
	if err != nil {
		return PageData{Error: format.Error(err)}
	}

	return PageData{
		Countries: p.Countries,
		Selected:  p.Selected,
		Series:    &p.Series,
	}
}

// SeriesSSE loads the series of the selected country and patches the chart.
func (h *Handlers) SeriesSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals SeriesSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.PatchElementTempl(chartError("Failed to read signals: " + err.Error()))
		return
	}

	if err := common.Remember(h.sessionStore, w, r, common.KeyCountry, signals.Country); err != nil {
		h.logger.Warn("failed to save session", slog.Any("error", err))
	}

	sse := datastar.NewSSE(w, r)

	series, err := h.reporter.SeriesFor(r.Context(), signals.Country)
	if err != nil {
		if err := sse.PatchElementTempl(chartError(format.Error(err))); err != nil {
			_ = sse.ConsoleError(err)
		}
		return
	}

	if err := sse.PatchElementTempl(Chart(series)); err != nil {
		_ = sse.ConsoleError(err)
	}
}
