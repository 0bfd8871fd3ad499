// Package ui provides the web dashboard: the query runner, the gallery and
// the country profile.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/profile"
	statusFeature "github.com/leapstack-labs/edudash/internal/ui/features/status"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/leapstack-labs/edudash/internal/ui/resources"
	"github.com/leapstack-labs/edudash/internal/ui/router"
	"golang.org/x/sync/errgroup"
)

// Server is the main UI server.
type Server struct {
	executor       *executor.Executor
	reporter       *profile.Reporter
	gallery        *gallery.Gallery
	status         statusFeature.Source
	statusInterval time.Duration
	sessionStore   *sessions.CookieStore
	port           int
	watch          bool
	logger         *slog.Logger
	notifier       *notifier.Notifier
}

// Config holds configuration for the UI server.
type Config struct {
	Executor       *executor.Executor
	Reporter       *profile.Reporter
	Gallery        *gallery.Gallery
	Status         statusFeature.Source
	StatusInterval time.Duration
	Port           int
	Watch          bool
	SessionSecret  string
	Logger         *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.MaxAge(86400 * 30) // 30 days
	sessionStore.Options.Path = "/"
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		executor:       cfg.Executor,
		reporter:       cfg.Reporter,
		gallery:        cfg.Gallery,
		status:         cfg.Status,
		statusInterval: cfg.StatusInterval,
		sessionStore:   sessionStore,
		port:           cfg.Port,
		watch:          cfg.Watch,
		logger:         logger,
		notifier:       notifier.New(),
	}
}

// Handler builds the routed, middleware-wrapped handler.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	err := router.SetupRoutes(r, router.Deps{
		Executor:       s.executor,
		Reporter:       s.reporter,
		Gallery:        s.gallery,
		Status:         s.status,
		StatusInterval: s.statusInterval,
		SessionStore:   s.sessionStore,
		Notifier:       s.notifier,
		Logger:         s.logger,
		IsDev:          s.IsDev(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	handler, err := s.Handler()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Refresh open gallery pages when images change
	if s.watch && s.gallery != nil {
		eg.Go(func() error {
			return s.gallery.Watch(egctx, s.logger, func() {
				s.notifier.Broadcast(notifier.TopicGallery)
			})
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// IsDev returns true when the binary was built with the dev tag.
func (s *Server) IsDev() bool {
	return resources.Dev
}

// Notifier returns the server's notifier for SSE updates.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}
