package duckdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Connect(t *testing.T) {
	tests := []struct {
		name      string
		setupPath func(t *testing.T) string
		verify    func(t *testing.T, path string)
	}{
		{
			name: "in-memory",
			setupPath: func(_ *testing.T) string {
				return ":memory:"
			},
		},
		{
			name: "default path",
			setupPath: func(_ *testing.T) string {
				return ""
			},
		},
		{
			name: "file-based",
			setupPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "literacy.duckdb")
			},
			verify: func(t *testing.T, path string) {
				_, err := os.Stat(path)
				assert.False(t, os.IsNotExist(err), "database file was not created")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			adp := New(nil)

			dbPath := tt.setupPath(t)
			require.NoError(t, adp.Connect(ctx, core.AdapterConfig{Type: "duckdb", Path: dbPath}))
			defer func() { _ = adp.Close() }()

			assert.True(t, adp.IsConnected())
			if tt.verify != nil {
				tt.verify(t, dbPath)
			}
		})
	}
}

func TestAdapter_NotConnected(t *testing.T) {
	tests := []struct {
		name      string
		operation func(ctx context.Context, adp *Adapter) error
	}{
		{
			name: "exec without connect",
			operation: func(ctx context.Context, adp *Adapter) error {
				return adp.Exec(ctx, "SELECT 1")
			},
		},
		{
			name: "query without connect",
			operation: func(ctx context.Context, adp *Adapter) error {
				_, err := adp.Query(ctx, "SELECT 1")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.operation(context.Background(), New(nil))
			assert.Error(t, err, "expected error when operating without connection")
		})
	}
}

func TestAdapter_QueryWithArgs(t *testing.T) {
	ctx := context.Background()
	adp := New(nil)

	require.NoError(t, adp.Connect(ctx, core.AdapterConfig{Path: ":memory:"}))
	defer func() { _ = adp.Close() }()

	require.NoError(t, adp.Exec(ctx, `
		CREATE TABLE literacy_rates (
			country VARCHAR,
			year INTEGER,
			adult_literacy_rate__population_both_sexes DOUBLE
		)
	`))
	require.NoError(t, adp.Exec(ctx, `
		INSERT INTO literacy_rates VALUES
			('Testland', 2010, 65.0),
			('Testland', 2015, 70.0),
			('Otherland', 2015, 90.0)
	`))

	rows, err := adp.Query(ctx,
		"SELECT year, adult_literacy_rate__population_both_sexes FROM literacy_rates WHERE country = ? ORDER BY year",
		"Testland")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var years []int
	for rows.Next() {
		var year int
		var value float64
		require.NoError(t, rows.Scan(&year, &value))
		years = append(years, year)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []int{2010, 2015}, years)
}

func TestAdapter_Dialect(t *testing.T) {
	d := New(nil).Dialect()
	assert.Equal(t, "duckdb", d.Name)
	assert.Equal(t, "?", d.FormatPlaceholder(1))
	assert.False(t, d.SupportsMigrations())
}
