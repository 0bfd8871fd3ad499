package dataset

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leapstack-labs/edudash/internal/testutil"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/adapters/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) (*sql.DB, *adapter.Dialect) {
	t.Helper()
	adp := sqlite.New(nil)
	require.NoError(t, adp.Connect(context.Background(), adapter.Config{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "literacy.db"),
	}))
	t.Cleanup(func() { _ = adp.Close() })
	return adp.DB(), adp.Dialect()
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestMigrate(t *testing.T) {
	db, d := openSQLite(t)

	require.NoError(t, Migrate(db, d))

	version, err := Version(db, d)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	for _, table := range Tables {
		assert.Equal(t, 0, countRows(t, db, table.Name), table.Name)
	}

	// Idempotent.
	require.NoError(t, Migrate(db, d))
}

func TestMigrate_PrimaryKey(t *testing.T) {
	db, d := openSQLite(t)
	require.NoError(t, Migrate(db, d))

	_, err := db.Exec("INSERT INTO gdp_schooling (country, year) VALUES ('Chad', 2020)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO gdp_schooling (country, year) VALUES ('Chad', 2020)")
	assert.Error(t, err, "(country, year) must be unique")
}

func TestMigrate_Unsupported(t *testing.T) {
	db, _ := openSQLite(t)

	err := Migrate(db, &adapter.Dialect{Name: "duckdb"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported for duckdb")

	assert.Error(t, Migrate(nil, &adapter.Dialect{Goose: "sqlite3"}))
}

func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		content  string
		wantRows int
		wantErr  string
	}{
		{
			name:     "literacy rows with nulls",
			table:    "literacy_rates",
			content:  "country,year,adult_literacy_rate__population_both_sexes,owid_region\nTestland,2010,65.0,Africa\nTestland,2015,,Africa\n",
			wantRows: 2,
		},
		{
			name:     "header case and spacing",
			table:    "illiteracy_population",
			content:  "Country, Year ,illiteracy_percent\nIndia,2000,38.5\n",
			wantRows: 1,
		},
		{
			name:    "unknown column",
			table:   "gdp_schooling",
			content: "country,year,population\nChad,2020,1\n",
			wantErr: `has no column "population"`,
		},
		{
			name:    "missing key column",
			table:   "gdp_schooling",
			content: "country,gdp_per_capita\nChad,700\n",
			wantErr: `must include "year"`,
		},
		{
			name:    "bad number",
			table:   "gdp_schooling",
			content: "country,year,gdp_per_capita\nChad,2020,lots\n",
			wantErr: "line 2: column gdp_per_capita: invalid number",
		},
		{
			name:    "bad year",
			table:   "gdp_schooling",
			content: "country,year\nChad,twenty\n",
			wantErr: "invalid integer",
		},
		{
			name:    "unknown table",
			table:   "users",
			content: "country,year\n",
			wantErr: `unknown table "users"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, d := openSQLite(t)
			require.NoError(t, Migrate(db, d))

			path := writeFile(t, t.TempDir(), "data.csv", tt.content)
			n, err := LoadCSV(context.Background(), db, d, tt.table, path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, n)
			assert.Equal(t, tt.wantRows, countRows(t, db, tt.table))
		})
	}
}

func TestLoadCSV_EmptyCellIsNull(t *testing.T) {
	db, d := openSQLite(t)
	require.NoError(t, Migrate(db, d))

	path := writeFile(t, t.TempDir(), "lit.csv",
		"country,year,adult_literacy_rate__population_both_sexes\nTestland,2015,\n")
	_, err := LoadCSV(context.Background(), db, d, "literacy_rates", path)
	require.NoError(t, err)

	var v sql.NullFloat64
	require.NoError(t, db.QueryRow(
		"SELECT adult_literacy_rate__population_both_sexes FROM literacy_rates WHERE country = ?", "Testland").Scan(&v))
	assert.False(t, v.Valid)
}

func TestLoadCSV_AtomicOnFailure(t *testing.T) {
	db, d := openSQLite(t)
	require.NoError(t, Migrate(db, d))

	path := writeFile(t, t.TempDir(), "gdp.csv",
		"country,year,gdp_per_capita\nChad,2019,700\nChad,2020,oops\n")
	_, err := LoadCSV(context.Background(), db, d, "gdp_schooling", path)
	require.Error(t, err)

	assert.Equal(t, 0, countRows(t, db, "gdp_schooling"), "failed load must not leave partial rows")
}

func TestLoadCSV_MissingFile(t *testing.T) {
	db, d := openSQLite(t)
	_, err := LoadCSV(context.Background(), db, d, "gdp_schooling", filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open CSV file")
}

func TestInsertStatement(t *testing.T) {
	cols := []Column{{"country", Text}, {"year", Integer}}

	assert.Equal(t, "INSERT INTO gdp_schooling (country, year) VALUES (?, ?)",
		insertStatement("gdp_schooling", cols, &adapter.Dialect{Placeholder: adapter.PlaceholderQuestion}))
	assert.Equal(t, "INSERT INTO gdp_schooling (country, year) VALUES ($1, $2)",
		insertStatement("gdp_schooling", cols, &adapter.Dialect{Placeholder: adapter.PlaceholderDollar}))
}

func TestSeed(t *testing.T) {
	db, d := openSQLite(t)
	require.NoError(t, Migrate(db, d))

	dir := t.TempDir()
	writeFile(t, dir, "literacy_rates.csv", "country,year,adult_literacy_rate__population_both_sexes\nTestland,2010,65\nTestland,2015,70\n")
	writeFile(t, dir, "gdp_schooling.csv", "country,year,gdp_per_capita\nTestland,2015,1200\n")

	results, err := Seed(context.Background(), db, d, dir, testutil.NewTestLogger(t))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, SeedResult{Table: "literacy_rates", File: filepath.Join(dir, "literacy_rates.csv"), Rows: 2}, results[0])
	assert.True(t, results[1].Skipped)
	assert.Equal(t, "illiteracy_population", results[1].Table)
	assert.Equal(t, 1, results[2].Rows)
}

func TestSeed_StopsOnError(t *testing.T) {
	db, d := openSQLite(t)
	require.NoError(t, Migrate(db, d))

	dir := t.TempDir()
	writeFile(t, dir, "literacy_rates.csv", "country,bogus\nX,1\n")

	_, err := Seed(context.Background(), db, d, dir, nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "seed literacy_rates:"))

	_, err = Seed(context.Background(), db, d, "", nil)
	assert.Error(t, err)
}
