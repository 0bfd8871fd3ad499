// Package dataset prepares a store for the dashboard: it creates the three
// literacy tables with goose migrations and loads them from CSV exports.
package dataset

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

func setup(d *adapter.Dialect) error {
	if !d.SupportsMigrations() {
		name := "unknown"
		if d != nil {
			name = d.Name
		}
		return fmt.Errorf("migrations are not supported for %s stores", name)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.Goose); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs all pending dataset migrations.
func Migrate(db *sql.DB, d *adapter.Dialect) error {
	if db == nil {
		return fmt.Errorf("database not opened")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setup(d); err != nil {
		return err
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Version returns the current migration version.
func Version(db *sql.DB, d *adapter.Dialect) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("database not opened")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	if err := setup(d); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}
