// Package main is the entry point of the edudash CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/edudash/internal/cli"

	// Register the store adapters
	_ "github.com/leapstack-labs/edudash/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/edudash/pkg/adapters/mysql"
	_ "github.com/leapstack-labs/edudash/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/edudash/pkg/adapters/sqlite"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
