package core

import "time"

// CatalogEntry is one predefined analytical statement offered to the user.
type CatalogEntry struct {
	Label     string `json:"label" yaml:"label"`
	Statement string `json:"statement" yaml:"statement"`
}

// ResultTable is the tabular materialization of one query's rows.
// Every row holds exactly len(Columns) values, in the order the store returned them.
type ResultTable struct {
	Label   string        `json:"label,omitempty" yaml:"label,omitempty"`
	Columns []string      `json:"columns" yaml:"columns"`
	Rows    [][]any       `json:"rows" yaml:"rows"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// Empty reports whether the query returned no rows.
// An empty table is a valid outcome, not an error.
func (t *ResultTable) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// Len returns the number of rows.
func (t *ResultTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Point is a single (year, value) observation. Valid is false when the
// store holds NULL for that year.
type Point struct {
	Year  int     `json:"year" yaml:"year"`
	Value float64 `json:"value" yaml:"value"`
	Valid bool    `json:"valid" yaml:"valid"`
}

// CountryTimeSeries is the adult literacy indicator of one country,
// ordered ascending by year.
type CountryTimeSeries struct {
	Country string  `json:"country" yaml:"country"`
	Points  []Point `json:"points" yaml:"points"`
}

// Empty reports whether the series has no rows.
func (s *CountryTimeSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// Valid returns only the points that carry a value.
func (s *CountryTimeSeries) Valid() []Point {
	if s == nil {
		return nil
	}
	out := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		if p.Valid {
			out = append(out, p)
		}
	}
	return out
}

// CountryProfile is the outcome of one profile session: the country list
// and the series of the selected country, read over a single connection.
type CountryProfile struct {
	Countries []string          `json:"countries" yaml:"countries"`
	Selected  string            `json:"selected" yaml:"selected"`
	Series    CountryTimeSeries `json:"series" yaml:"series"`
}
