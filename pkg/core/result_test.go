package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultTable_Empty(t *testing.T) {
	var nilTable *ResultTable
	assert.True(t, nilTable.Empty())
	assert.Equal(t, 0, nilTable.Len())

	empty := &ResultTable{Columns: []string{"country"}}
	assert.True(t, empty.Empty())

	filled := &ResultTable{Columns: []string{"country"}, Rows: [][]any{{"Chad"}}}
	assert.False(t, filled.Empty())
	assert.Equal(t, 1, filled.Len())
}

func TestCountryTimeSeries_Valid(t *testing.T) {
	s := &CountryTimeSeries{
		Country: "Testland",
		Points: []Point{
			{Year: 2010, Value: 65, Valid: true},
			{Year: 2012},
			{Year: 2015, Value: 70, Valid: true},
		},
	}

	assert.False(t, s.Empty())
	assert.Equal(t, []Point{
		{Year: 2010, Value: 65, Valid: true},
		{Year: 2015, Value: 70, Valid: true},
	}, s.Valid())

	var none *CountryTimeSeries
	assert.True(t, none.Empty())
	assert.Nil(t, none.Valid())
}

func TestAdapterConfig_Address(t *testing.T) {
	tests := []struct {
		name string
		cfg  AdapterConfig
		want string
	}{
		{"network with port", AdapterConfig{Type: "mysql", Host: "localhost", Port: 3306, Database: "Global_literacy", Password: "secret"}, "mysql://localhost:3306/Global_literacy"},
		{"network without port", AdapterConfig{Type: "postgres", Host: "db", Database: "edu"}, "postgres://db/edu"},
		{"file", AdapterConfig{Type: "sqlite", Path: "data/edu.db"}, "sqlite:data/edu.db"},
		{"database only", AdapterConfig{Type: "duckdb", Database: "edu.duckdb"}, "duckdb:edu.duckdb"},
		{"type only", AdapterConfig{Type: "duckdb"}, "duckdb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Address())
			assert.NotContains(t, tt.cfg.Address(), "secret")
		})
	}
}
