// Package sqlite provides a pure-Go SQLite adapter for edudash.
// It backs local development and the test fixtures.
package sqlite

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/edudash/pkg/adapter"

	_ "modernc.org/sqlite" // sqlite driver
)

var dialect = &adapter.Dialect{
	Name:        "sqlite",
	Placeholder: adapter.PlaceholderQuestion,
	Goose:       "sqlite3",
}

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{
		BaseSQLAdapter: adapter.BaseSQLAdapter{Logger: logger},
	}
}

// Dialect returns the SQL dialect for this adapter.
func (a *Adapter) Dialect() *adapter.Dialect {
	return dialect
}

// Connect opens the database file at cfg.Path, falling back to cfg.Database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = cfg.Database
	}
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to sqlite", slog.String("path", path))

	if err := a.Open(ctx, "sqlite", buildSQLiteDSN(path, cfg.Options)); err != nil {
		return err
	}
	a.Cfg = cfg
	return nil
}

// buildSQLiteDSN appends a busy timeout so concurrent dashboard requests on
// the same file wait instead of failing with SQLITE_BUSY.
func buildSQLiteDSN(path string, opts map[string]string) string {
	if path == ":memory:" {
		return path
	}
	timeout := "5000"
	if v, ok := opts["busy_timeout"]; ok {
		timeout = v
	}
	return "file:" + path + "?_pragma=busy_timeout(" + timeout + ")"
}

var _ adapter.Adapter = (*Adapter)(nil)
