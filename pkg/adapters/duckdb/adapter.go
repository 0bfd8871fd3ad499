// Package duckdb provides a DuckDB adapter for edudash.
//
// DuckDB is useful for exploring exported datasets locally. The dataset
// migrations do not target DuckDB, so tables must already exist in the file.
package duckdb

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/edudash/pkg/adapter"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

var dialect = &adapter.Dialect{
	Name:        "duckdb",
	Placeholder: adapter.PlaceholderQuestion,
}

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
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

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))

	if err := a.Open(ctx, "duckdb", path); err != nil {
		return err
	}
	a.Cfg = cfg
	return nil
}

var _ adapter.Adapter = (*Adapter)(nil)
