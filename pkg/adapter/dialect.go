package adapter

import "strconv"

// PlaceholderStyle is the bind parameter syntax of a dialect.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses ? for every parameter.
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses $1, $2, ... for parameters.
	PlaceholderDollar
)

// Dialect describes the SQL flavour spoken by an adapter.
type Dialect struct {
	Name        string
	Placeholder PlaceholderStyle
	// Goose is the dialect name understood by goose migrations.
	// Empty when migrations are not supported for this store.
	Goose string
}

// FormatPlaceholder returns the placeholder for the n-th (1-based) parameter.
func (d *Dialect) FormatPlaceholder(n int) string {
	if d != nil && d.Placeholder == PlaceholderDollar {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// SupportsMigrations reports whether the dataset migrations can run on this dialect.
func (d *Dialect) SupportsMigrations() bool {
	return d != nil && d.Goose != ""
}
