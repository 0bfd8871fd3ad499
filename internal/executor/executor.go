// Package executor runs catalog queries and materializes their results.
package executor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/core"
)

// DefaultTimeout bounds a single catalog query.
const DefaultTimeout = 30 * time.Second

// Executor runs catalog statements, one connection per run.
type Executor struct {
	catalog *catalog.Catalog
	conns   adapter.Connector
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithTimeout overrides DefaultTimeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New creates an executor over cat using conns for connections.
func New(cat *catalog.Catalog, conns adapter.Connector, opts ...Option) *Executor {
	e := &Executor{
		catalog: cat,
		conns:   conns,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the executor serves.
func (e *Executor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Run executes the statement registered under label and returns every row.
//
// Zero rows is a successful, empty result. Errors are *core.UnknownLabelError,
// *core.ConnectionError, *core.TimeoutError or *core.QueryExecutionError.
// The connection is released on every path.
func (e *Executor) Run(ctx context.Context, label string) (*core.ResultTable, error) {
	stmt, err := e.catalog.StatementFor(label)
	if err != nil {
		return nil, err
	}
	if err := checkReadOnly(stmt); err != nil {
		return nil, &core.QueryExecutionError{Label: label, Err: err}
	}

	runID := uuid.NewString()
	log := e.logger.With(slog.String("run_id", runID), slog.String("label", label))

	conn, err := e.conns.Acquire(ctx)
	if err != nil {
		log.Error("query aborted", slog.Any("error", err))
		return nil, err
	}
	defer e.conns.Release(conn)

	queryCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	table, err := materialize(queryCtx, conn, stmt)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(queryCtx.Err(), context.DeadlineExceeded) {
			err = &core.TimeoutError{Operation: "query", Timeout: e.timeout, Err: err}
		} else {
			err = &core.QueryExecutionError{Label: label, Err: err}
		}
		log.Error("query failed", slog.Duration("took", elapsed), slog.Any("error", err))
		return nil, err
	}

	table.Label = label
	table.Elapsed = elapsed
	log.Info("query executed", slog.Int("rows", table.Len()), slog.Duration("took", elapsed))
	return table, nil
}

func materialize(ctx context.Context, conn adapter.Adapter, stmt string) (*core.ResultTable, error) {
	rows, err := conn.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	table := &core.ResultTable{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		values := make([]any, len(cols))
		valuePtrs := make([]any, len(cols))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i, v := range values {
			values[i] = normalize(v)
		}
		table.Rows = append(table.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// normalize converts driver-owned byte slices into strings so rows are safe
// to keep after the cursor advances.
func normalize(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// checkReadOnly rejects anything other than a single SELECT or WITH statement.
func checkReadOnly(stmt string) error {
	s := strings.TrimSpace(stripLeadingComments(stmt))
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	if strings.Contains(s, ";") {
		return fmt.Errorf("only a single statement may be executed")
	}

	keyword := strings.ToUpper(firstWord(s))
	if keyword != "SELECT" && keyword != "WITH" {
		return fmt.Errorf("only read-only statements may be executed, got %q", keyword)
	}
	return nil
}

func stripLeadingComments(s string) string {
	for {
		s = strings.TrimSpace(s)
		switch {
		case strings.HasPrefix(s, "--"):
			i := strings.IndexByte(s, '\n')
			if i < 0 {
				return ""
			}
			s = s[i+1:]
		case strings.HasPrefix(s, "/*"):
			i := strings.Index(s, "*/")
			if i < 0 {
				return ""
			}
			s = s[i+2:]
		default:
			return s
		}
	}
}

func firstWord(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '('
	})
	if end < 0 {
		return s
	}
	return s[:end]
}
