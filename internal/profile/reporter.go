// Package profile builds the per-country adult literacy time series.
package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/leapstack-labs/edudash/pkg/adapter"
	"github.com/leapstack-labs/edudash/pkg/core"
)

// DefaultTimeout bounds each profile query.
const DefaultTimeout = 30 * time.Second

const listCountriesSQL = "SELECT DISTINCT country FROM literacy_rates ORDER BY country"

// seriesSQL has a single placeholder for the country, formatted per dialect.
const seriesSQL = "SELECT year, adult_literacy_rate__population_both_sexes FROM literacy_rates WHERE country = %s ORDER BY year"

// Reporter answers country list and time series requests.
type Reporter struct {
	conns   adapter.Connector
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithTimeout overrides DefaultTimeout. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(r *Reporter) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reporter) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a reporter.
func New(conns adapter.Connector, opts ...Option) *Reporter {
	r := &Reporter{
		conns:   conns,
		timeout: DefaultTimeout,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ListCountries returns the distinct countries present in literacy_rates,
// strictly ascending. It reads the store on every call.
func (r *Reporter) ListCountries(ctx context.Context) ([]string, error) {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.conns.Release(conn)

	return r.listCountries(ctx, conn)
}

// SeriesFor returns the adult literacy series of country ordered by year.
// A country without rows yields an empty series, not an error.
func (r *Reporter) SeriesFor(ctx context.Context, country string) (*core.CountryTimeSeries, error) {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.conns.Release(conn)

	return r.seriesFor(ctx, conn, country)
}

// Load runs a whole profile session on one connection: it lists the
// countries and fetches the series of selected. An empty selected picks the
// first country; a selected value outside the list is a
// *core.UnknownCountryError.
func (r *Reporter) Load(ctx context.Context, selected string) (*core.CountryProfile, error) {
	conn, err := r.conns.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer r.conns.Release(conn)

	countries, err := r.listCountries(ctx, conn)
	if err != nil {
		return nil, err
	}

	p := &core.CountryProfile{Countries: countries}
	if len(countries) == 0 {
		if selected != "" {
			return nil, &core.UnknownCountryError{Country: selected}
		}
		return p, nil
	}

	if selected == "" {
		selected = countries[0]
	} else if !contains(countries, selected) {
		return nil, &core.UnknownCountryError{Country: selected}
	}

	series, err := r.seriesFor(ctx, conn, selected)
	if err != nil {
		return nil, err
	}
	p.Selected = selected
	p.Series = *series
	return p, nil
}

func (r *Reporter) listCountries(ctx context.Context, conn adapter.Adapter) ([]string, error) {
	queryCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := conn.Query(queryCtx, listCountriesSQL)
	if err != nil {
		return nil, r.wrap(queryCtx, "list countries", err)
	}
	defer func() { _ = rows.Close() }()

	var raw []string
	for rows.Next() {
		var country sql.NullString
		if err := rows.Scan(&country); err != nil {
			return nil, r.wrap(queryCtx, "list countries", err)
		}
		if country.Valid {
			raw = append(raw, country.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(queryCtx, "list countries", err)
	}

	countries := normalizeCountries(raw)
	r.logger.Debug("countries listed", slog.Int("count", len(countries)))
	return countries, nil
}

func (r *Reporter) seriesFor(ctx context.Context, conn adapter.Adapter, country string) (*core.CountryTimeSeries, error) {
	queryCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	stmt := fmt.Sprintf(seriesSQL, conn.Dialect().FormatPlaceholder(1))
	rows, err := conn.Query(queryCtx, stmt, country)
	if err != nil {
		return nil, r.wrap(queryCtx, "country series", err)
	}
	defer func() { _ = rows.Close() }()

	series := &core.CountryTimeSeries{Country: country, Points: []core.Point{}}
	for rows.Next() {
		var year int
		var value sql.NullFloat64
		if err := rows.Scan(&year, &value); err != nil {
			return nil, r.wrap(queryCtx, "country series", err)
		}
		series.Points = append(series.Points, core.Point{Year: year, Value: value.Float64, Valid: value.Valid})
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(queryCtx, "country series", err)
	}

	r.logger.Debug("series loaded", slog.String("country", country), slog.Int("points", len(series.Points)))
	return series, nil
}

func (r *Reporter) wrap(queryCtx context.Context, op string, err error) error {
	if errors.Is(queryCtx.Err(), context.DeadlineExceeded) {
		err = &core.TimeoutError{Operation: op, Timeout: r.timeout, Err: err}
	} else {
		err = &core.QueryExecutionError{Label: op, Err: err}
	}
	r.logger.Error("profile query failed", slog.String("operation", op), slog.Any("error", err))
	return err
}

// normalizeCountries sorts and deduplicates, so the result is strictly
// ascending whatever collation the store used.
func normalizeCountries(in []string) []string {
	out := make([]string, 0, len(in))
	out = append(out, in...)
	sort.Strings(out)

	j := 0
	for i, c := range out {
		if i > 0 && c == out[j-1] {
			continue
		}
		out[j] = c
		j++
	}
	return out[:j]
}

func contains(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}
