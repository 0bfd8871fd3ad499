package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/leapstack-labs/edudash/pkg/adapter"
)

// LoadCSV inserts every record of the CSV file at path into table.
//
// The header must name a subset of the table's known columns and include
// country and year. Empty cells become NULL. All rows are inserted in a single
// transaction using bound parameters; on any error nothing is written.
func LoadCSV(ctx context.Context, db *sql.DB, d *adapter.Dialect, table, path string) (int, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the configured seeds directory
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return loadRecords(ctx, db, d, table, f)
}

func loadRecords(ctx context.Context, db *sql.DB, d *adapter.Dialect, tableName string, r io.Reader) (int, error) {
	if db == nil {
		return 0, fmt.Errorf("database not opened")
	}
	table, ok := TableNamed(tableName)
	if !ok {
		return 0, fmt.Errorf("unknown table %q", tableName)
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns, err := resolveColumns(table, header)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, insertStatement(table.Name, columns, d))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)

		args, err := convertRecord(columns, record)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("line %d: failed to insert into %s: %w", line, table.Name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return count, nil
}

func resolveColumns(table Table, header []string) ([]Column, error) {
	columns := make([]Column, 0, len(header))
	seen := make(map[string]bool, len(header))
	for _, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		col, ok := table.Column(name)
		if !ok {
			return nil, fmt.Errorf("table %s has no column %q", table.Name, h)
		}
		if seen[name] {
			return nil, fmt.Errorf("column %q appears twice in header", name)
		}
		seen[name] = true
		columns = append(columns, col)
	}
	for _, required := range []string{"country", "year"} {
		if !seen[required] {
			return nil, fmt.Errorf("CSV header for %s must include %q", table.Name, required)
		}
	}
	return columns, nil
}

func insertStatement(table string, columns []Column, d *adapter.Dialect) string {
	names := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
		params[i] = d.FormatPlaceholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", //nolint:gosec // identifiers come from the fixed table list
		table, strings.Join(names, ", "), strings.Join(params, ", "))
}

func convertRecord(columns []Column, record []string) ([]any, error) {
	if len(record) != len(columns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(columns), len(record))
	}
	args := make([]any, len(columns))
	for i, col := range columns {
		raw := strings.TrimSpace(record[i])
		if raw == "" {
			args[i] = nil
			continue
		}
		switch col.Kind {
		case Integer:
			v, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("column %s: invalid integer %q", col.Name, raw)
			}
			args[i] = v
		case Real:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: invalid number %q", col.Name, raw)
			}
			args[i] = v
		default:
			args[i] = raw
		}
	}
	return args, nil
}
