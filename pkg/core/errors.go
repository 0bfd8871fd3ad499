package core

import (
	"fmt"
	"strings"
	"time"
)

// ConfigurationError is returned when the store configuration is invalid.
// It collects every problem found so the user sees them all at once.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	if len(e.Problems) == 1 {
		return "invalid configuration: " + e.Problems[0]
	}
	return "invalid configuration:\n  - " + strings.Join(e.Problems, "\n  - ")
}

// ConnectionError is returned when the store cannot be reached or refuses
// the credentials. It ends the current interaction.
type ConnectionError struct {
	Store string
	Err   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection failed (%s): %v", e.Store, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryExecutionError is returned when a statement fails while running.
type QueryExecutionError struct {
	Label string
	Err   error
}

func (e *QueryExecutionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("error executing query: %v", e.Err)
	}
	return fmt.Sprintf("error executing query %q: %v", e.Label, e.Err)
}

func (e *QueryExecutionError) Unwrap() error { return e.Err }

// TimeoutError is returned when a store call exceeds its deadline.
type TimeoutError struct {
	Operation string
	Timeout   time.Duration
	Err       error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s timed out after %s", e.Operation, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// UnknownLabelError is returned when a label is not part of the catalog.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("unknown query %q", e.Label)
}

// UnknownCountryError is returned when a selected country is not in the
// current country list.
type UnknownCountryError struct {
	Country string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country %q", e.Country)
}
