// Package teststore builds migrated SQLite stores for package tests.
package teststore

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/leapstack-labs/edudash/internal/dataset"
	"github.com/leapstack-labs/edudash/internal/testutil"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	_ "github.com/leapstack-labs/edudash/pkg/adapters/sqlite" // registers "sqlite"
	"github.com/stretchr/testify/require"
)

// Store is a file-backed SQLite database with the dataset schema applied.
// A file is used instead of :memory: because every Acquire opens a new handle.
type Store struct {
	Config   adapter.Config
	Provider *adapter.Provider
}

// New creates an empty, migrated store under t.TempDir().
func New(t testing.TB) *Store {
	t.Helper()

	cfg := adapter.Config{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "literacy.db"),
	}
	s := &Store{
		Config:   cfg,
		Provider: adapter.NewProvider(cfg, adapter.WithLogger(testutil.NewTestLogger(t))),
	}

	a, err := s.Provider.Acquire(context.Background())
	require.NoError(t, err)
	defer s.Provider.Release(a)

	require.NoError(t, dataset.Migrate(a.DB(), a.Dialect()))
	return s
}

// Exec runs statements against the store on a fresh connection.
func (s *Store) Exec(t testing.TB, stmts ...string) {
	t.Helper()

	a, err := s.Provider.Acquire(context.Background())
	require.NoError(t, err)
	defer s.Provider.Release(a)

	for _, stmt := range stmts {
		require.NoError(t, a.Exec(context.Background(), stmt), stmt)
	}
}

// Literacy inserts one literacy_rates row with only the adult both-sexes rate set.
// A nil value stores NULL.
func (s *Store) Literacy(t testing.TB, country string, year int, value *float64) {
	t.Helper()

	a, err := s.Provider.Acquire(context.Background())
	require.NoError(t, err)
	defer s.Provider.Release(a)

	require.NoError(t, a.Exec(context.Background(),
		"INSERT INTO literacy_rates (country, year, adult_literacy_rate__population_both_sexes) VALUES (?, ?, ?)",
		country, year, value))
}

// F returns a pointer to v, for nullable fixture values.
func F(v float64) *float64 {
	return &v
}

// Seed loads every <table>.csv found in dir.
func (s *Store) Seed(t testing.TB, dir string) {
	t.Helper()

	a, err := s.Provider.Acquire(context.Background())
	require.NoError(t, err)
	defer s.Provider.Release(a)

	_, err = dataset.Seed(context.Background(), a.DB(), a.Dialect(), dir, testutil.NewTestLogger(t))
	require.NoError(t, err)
}

// NewSeeded creates a store loaded with the shared fixture dataset, which has
// at least one matching row for every catalog query.
func NewSeeded(t testing.TB) *Store {
	t.Helper()
	s := New(t)
	s.Seed(t, SeedsDir())
	return s
}

// SeedsDir returns the directory holding the shared fixture CSVs.
func SeedsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", "seeds")
}
