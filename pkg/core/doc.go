// Package core defines the shared language of the edudash system.
//
// This package contains:
//   - Domain entities (CatalogEntry, ResultTable, CountryTimeSeries, CountryProfile)
//   - Connection configuration (AdapterConfig)
//   - The error taxonomy surfaced to users (ConnectionError, QueryExecutionError, ...)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
