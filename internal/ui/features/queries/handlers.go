// Package queries provides the query runner view: pick a catalog label, run
// it and show the rows.
package queries

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/ui/features/common"
	"github.com/leapstack-labs/edudash/internal/ui/features/common/components"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/starfederation/datastar-go/datastar"
)

// Handlers provides HTTP handlers for the query runner feature.
type Handlers struct {
	executor     *executor.Executor
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger
	isDev        bool
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(exec *executor.Executor, sessionStore sessions.Store, notify *notifier.Notifier, logger *slog.Logger, isDev bool) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{
		executor:     exec,
		sessionStore: sessionStore,
		notifier:     notify,
		logger:       logger,
		isDev:        isDev,
	}
}

// QueryPage renders the query runner with the last label the user ran
// preselected.
func (h *Handlers) QueryPage(w http.ResponseWriter, r *http.Request) {
	labels := h.executor.Catalog().Labels()

	selected := common.Recall(h.sessionStore, r, common.KeyLabel)
	if _, err := h.executor.Catalog().StatementFor(selected); err != nil && len(labels) > 0 {
		selected = labels[0]
	}

	shell := common.ShellData{Title: "Query Runner", CurrentPath: "/queries", IsDev: h.isDev}
	page := components.Page(shell, QueryPage(PageData{Labels: labels, Selected: selected}))
	if err := page.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RunSSE executes the selected catalog query and patches the results slot.
func (h *Handlers) RunSSE(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE (SSE consumes the request body)
	var signals RunSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		sse := datastar.NewSSE(w, r)
		_ = sse.PatchElementTempl(Results(Outcome{Error: "Failed to read signals: " + err.Error()}))
		return
	}

	if err := common.Remember(h.sessionStore, w, r, common.KeyLabel, signals.Label); err != nil {
		h.logger.Warn("failed to save session", slog.Any("error", err))
	}

	sse := datastar.NewSSE(w, r)

	outcome := Outcome{Label: signals.Label}
	table, err := h.executor.Run(r.Context(), signals.Label)
	if h.notifier != nil {
		h.notifier.Broadcast(notifier.TopicStatus)
	}
	if err != nil {
		outcome.Error = format.Error(err)
	} else {
		outcome.Table = table
	}

	if err := sse.PatchElementTempl(Results(outcome)); err != nil {
		_ = sse.ConsoleError(err)
	}
}

func signalsJSON(label string) string {
	b, _ := json.Marshal(RunSignals{Label: label})
	return string(b)
}
