// Package status streams the reachability of the configured store to the
// navigation bar.
package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/starfederation/datastar-go/datastar"
)

// DefaultInterval is how often an open status stream re-checks the store.
const DefaultInterval = 30 * time.Second

// Source is the part of adapter.Provider the status check needs.
type Source interface {
	adapter.Connector
	Address() string
	Open() int64
}

// Report is the outcome of one reachability check.
type Report struct {
	Store     string
	Reachable bool
	Open      int64
	Message   string
}

// Handlers provides HTTP handlers for the status feature.
type Handlers struct {
	source   Source
	notifier *notifier.Notifier
	interval time.Duration
}

// NewHandlers creates a new Handlers instance. A zero interval uses
// DefaultInterval.
func NewHandlers(source Source, notify *notifier.Notifier, interval time.Duration) *Handlers {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Handlers{source: source, notifier: notify, interval: interval}
}

// SetupRoutes configures routes for the status feature.
func SetupRoutes(router chi.Router, source Source, notify *notifier.Notifier, interval time.Duration) error {
	handlers := NewHandlers(source, notify, interval)
	router.Get("/api/status", handlers.StatusSSE)
	return nil
}

// Check opens and releases one connection.
func (h *Handlers) Check(ctx context.Context) Report {
	r := Report{Store: h.source.Address()}
	conn, err := h.source.Acquire(ctx)
	if err != nil {
		r.Message = format.Error(err)
		return r
	}
	h.source.Release(conn)
	r.Reachable = true
	r.Open = h.source.Open()
	r.Message = "connected"
	return r
}

// StatusSSE sends the status right away and again on every tick or
// TopicStatus broadcast, until the client goes away.
func (h *Handlers) StatusSSE(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	updates := h.notifier.Subscribe(notifier.TopicStatus)
	defer h.notifier.Unsubscribe(notifier.TopicStatus, updates)

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	ctx := r.Context()
	for {
		if err := sse.PatchElementTempl(Badge(h.Check(ctx))); err != nil {
			_ = sse.ConsoleError(err)
		}
		select {
		case <-ctx.Done():
			return
		case <-updates:
		case <-ticker.C:
		}
	}
}

func (r Report) class() string {
	if r.Reachable {
		return "up"
	}
	return "down"
}
