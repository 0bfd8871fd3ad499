package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPostgresDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   adapter.Config
		expected string
	}{
		{
			name: "basic connection",
			config: adapter.Config{
				Host:     "localhost",
				Port:     5432,
				Database: "global_literacy",
				Username: "user",
				Password: "pass",
			},
			expected: "host=localhost port=5432 dbname=global_literacy sslmode=disable user=user password=pass",
		},
		{
			name: "with custom sslmode",
			config: adapter.Config{
				Host:     "prod.example.com",
				Port:     5432,
				Database: "global_literacy",
				Username: "admin",
				Options:  map[string]string{"sslmode": "require"},
			},
			expected: "host=prod.example.com port=5432 dbname=global_literacy sslmode=require user=admin",
		},
		{
			name: "defaults",
			config: adapter.Config{
				Database: "edu",
			},
			expected: "host=localhost port=5432 dbname=edu sslmode=disable",
		},
		{
			name: "custom port and timezone",
			config: adapter.Config{
				Host:     "db.example.com",
				Port:     5433,
				Database: "analytics",
				Username: "analyst",
				Options:  map[string]string{"timezone": "UTC"},
			},
			expected: "host=db.example.com port=5433 dbname=analytics sslmode=disable user=analyst timezone=UTC",
		},
		{
			name: "quotes credentials with spaces and quotes",
			config: adapter.Config{
				Host:     "localhost",
				Database: "global_literacy",
				Username: "edu user",
				Password: `it's a\pass`,
			},
			expected: `host=localhost port=5432 dbname=global_literacy sslmode=disable user='edu user' password='it\'s a\\pass'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dsn := buildPostgresDSN(tt.config)
			assert.Equal(t, tt.expected, dsn)
		})
	}
}

func TestBuildPostgresDSN_ParsesBack(t *testing.T) {
	dsn := buildPostgresDSN(adapter.Config{
		Host:     "db.example.com",
		Database: "global literacy",
		Username: "edu",
		Password: `p@ss 'w\rd`,
	})

	cfg, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "db.example.com", cfg.Host)
	assert.Equal(t, "global literacy", cfg.Database)
	assert.Equal(t, "edu", cfg.User)
	assert.Equal(t, `p@ss 'w\rd`, cfg.Password)
}

func TestDSNValue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"", "''"},
		{"two words", "'two words'"},
		{"o'brien", `'o\'brien'`},
		{`back\slash`, `'back\\slash'`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dsnValue(tt.in), tt.in)
	}
}

func TestAdapter_Dialect(t *testing.T) {
	d := New(nil).Dialect()
	assert.Equal(t, "postgres", d.Name)
	assert.Equal(t, "$2", d.FormatPlaceholder(2))
	assert.True(t, d.SupportsMigrations())
}

func TestAdapter_Registered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("postgres"))
}

func TestAdapter_NotConnected(t *testing.T) {
	adp := New(nil)
	ctx := context.Background()

	err := adp.Exec(ctx, "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not established")

	_, err = adp.Query(ctx, "SELECT 1")
	require.Error(t, err)
	assert.Nil(t, adp.DB())
}
