package mysql

import (
	"context"
	"testing"

	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMySQLDSN(t *testing.T) {
	tests := []struct {
		name     string
		config   adapter.Config
		expected string
	}{
		{
			name: "local defaults",
			config: adapter.Config{
				Database: "Global_literacy",
				Username: "root",
			},
			expected: "root@tcp(localhost:3306)/Global_literacy?parseTime=true",
		},
		{
			name: "with password and port",
			config: adapter.Config{
				Host:     "db.example.com",
				Port:     3307,
				Database: "Global_literacy",
				Username: "reader",
				Password: "secret",
			},
			expected: "reader:secret@tcp(db.example.com:3307)/Global_literacy?parseTime=true",
		},
		{
			name: "with tls option",
			config: adapter.Config{
				Host:     "db.example.com",
				Database: "edu",
				Username: "reader",
				Options:  map[string]string{"tls": "skip-verify"},
			},
			expected: "reader@tcp(db.example.com:3306)/edu?parseTime=true&tls=skip-verify",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildMySQLDSN(tt.config))
		})
	}
}

func TestBuildMySQLDSN_ReadTimeout(t *testing.T) {
	dsn := buildMySQLDSN(adapter.Config{
		Database: "edu",
		Options:  map[string]string{"read_timeout": "5s"},
	})
	assert.Contains(t, dsn, "readTimeout=5s")
}

func TestAdapter_Dialect(t *testing.T) {
	d := New(nil).Dialect()
	assert.Equal(t, "mysql", d.Name)
	assert.Equal(t, "?", d.FormatPlaceholder(3))
	assert.Equal(t, "mysql", d.Goose)
}

func TestAdapter_Registered(t *testing.T) {
	assert.True(t, adapter.IsRegistered("mysql"))
}

func TestAdapter_NotConnected(t *testing.T) {
	adp := New(nil)
	err := adp.Exec(context.Background(), "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection not established")
}
