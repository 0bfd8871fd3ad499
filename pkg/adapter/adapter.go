// Package adapter provides the database adapter contract and the connection
// provider used by edudash to reach the relational store.
//
// Concrete adapter implementations are in pkg/adapters/ subdirectories and
// register themselves by type name in init().
package adapter

import (
	"context"
	"database/sql"

	"github.com/leapstack-labs/edudash/pkg/core"
)

type (
	// Config is an alias for core.AdapterConfig.
	Config = core.AdapterConfig

	// Rows is an alias for core.Rows.
	Rows = core.Rows
)

// Adapter defines the interface that all database adapters must implement.
// An adapter holds exactly one short-lived connection to the store.
type Adapter interface {
	// Connect opens and verifies the connection using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the connection and releases resources.
	Close() error

	// Exec executes a SQL statement that doesn't return rows.
	Exec(ctx context.Context, sql string, args ...any) error

	// Query executes a SQL statement that returns rows.
	// Arguments are bound to the dialect's placeholders, never interpolated.
	Query(ctx context.Context, sql string, args ...any) (*Rows, error)

	// DB exposes the underlying handle for migrations and bulk loads.
	DB() *sql.DB

	// Dialect returns the SQL dialect of this adapter.
	Dialect() *Dialect
}
