package format

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/leapstack-labs/edudash/pkg/core"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, "NULL"},
		{"string", "Zambia", "Zambia"},
		{"int", 42, "42"},
		{"int64", int64(2020), "2020"},
		{"float", 99.5, "99.5"},
		{"whole float", 65.0, "65"},
		{"float32", float32(0.5), "0.5"},
		{"bytes", []byte("65.00"), "65.00"},
		{"bool", true, "true"},
		{"time", time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC), "2020-01-02T03:04:05Z"},
		{"other", struct{ A int }{1}, "{1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Value(tt.input))
		})
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0", Count(0))
	assert.Equal(t, "999", Count(999))
	assert.Equal(t, "12,345", Count(12345))
	assert.Equal(t, "1 row", Rows(1))
	assert.Equal(t, "0 rows", Rows(0))
	assert.Equal(t, "1,024 rows", Rows(1024))
}

func TestDuration(t *testing.T) {
	assert.Equal(t, "500µs", Duration(500*time.Microsecond+123))
	assert.Equal(t, "1ms", Duration(1234567*time.Nanosecond))
	assert.Equal(t, "12ms", Duration(12*time.Millisecond+300*time.Microsecond))
	assert.Equal(t, "1.5s", Duration(1500*time.Millisecond))
}

func TestSuccess(t *testing.T) {
	assert.Equal(t, "Query executed successfully (1 row)", Success(1))
	assert.Equal(t, "Query executed successfully (1,500 rows)", Success(1500))
}

func TestError(t *testing.T) {
	refused := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil", nil, ""},
		{
			"connection",
			&core.ConnectionError{Store: "mysql://localhost:3306/Global_literacy", Err: refused},
			"Database connection failed: dial tcp 127.0.0.1:3306: connect: connection refused",
		},
		{
			"connect timeout",
			&core.ConnectionError{Store: "mysql://x", Err: &core.TimeoutError{Operation: "connect", Timeout: 10 * time.Second}},
			"Database connection failed: connect timed out after 10s",
		},
		{
			"query",
			&core.QueryExecutionError{Label: "1. x", Err: errors.New("no such column: gdp")},
			"Error executing query: no such column: gdp",
		},
		{
			"wrapped timeout",
			fmt.Errorf("run: %w", &core.TimeoutError{Operation: "query", Timeout: 30 * time.Second}),
			"Error executing query: query timed out after 30s",
		},
		{"other", &core.UnknownLabelError{Label: "14. nope"}, `unknown query "14. nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Error(tt.err))
		})
	}
}
