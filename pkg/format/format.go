// Package format renders query values and counts for display.
package format

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/leapstack-labs/edudash/pkg/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Null is how SQL NULL is displayed.
const Null = "NULL"

var printer = message.NewPrinter(language.English)

// Value renders a scalar from a result row.
func Value(v any) string {
	switch x := v.(type) {
	case nil:
		return Null
	case string:
		return x
	case []byte:
		return string(x)
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// Float renders a number with the fewest digits that round-trip.
func Float(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Count renders an integer with thousands separators, e.g. 12,345.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Rows renders a row count such as "1 row" or "1,024 rows".
func Rows(n int) string {
	if n == 1 {
		return "1 row"
	}
	return Count(n) + " rows"
}

// Duration renders an elapsed time rounded for humans.
func Duration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}

// Messages shown to users for the two outcomes of a query.
const (
	EmptyResult = "No data found."
	EmptySeries = "No data available."
)

// Success renders the notice shown after a query returns n rows.
func Success(n int) string {
	return fmt.Sprintf("Query executed successfully (%s)", Rows(n))
}

// Error renders err as a one-line message for users. Store failures keep the
// driver message but drop the address.
func Error(err error) string {
	var (
		connErr    *core.ConnectionError
		timeoutErr *core.TimeoutError
		queryErr   *core.QueryExecutionError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &connErr):
		return "Database connection failed: " + connErr.Err.Error()
	case errors.As(err, &timeoutErr):
		return "Error executing query: " + timeoutErr.Error()
	case errors.As(err, &queryErr):
		return "Error executing query: " + queryErr.Err.Error()
	default:
		return err.Error()
	}
}
