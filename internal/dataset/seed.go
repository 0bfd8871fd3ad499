package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/edudash/pkg/adapter"
)

// SeedResult reports what Seed did for one table.
type SeedResult struct {
	Table   string `json:"table" yaml:"table"`
	File    string `json:"file" yaml:"file"`
	Rows    int    `json:"rows" yaml:"rows"`
	Skipped bool   `json:"skipped" yaml:"skipped"`
}

// Seed loads <table>.csv from dir for each dataset table. Tables without a
// file are skipped. Loading stops at the first failing table.
func Seed(ctx context.Context, db *sql.DB, d *adapter.Dialect, dir string, logger *slog.Logger) ([]SeedResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if dir == "" {
		return nil, fmt.Errorf("seeds directory not configured")
	}

	results := make([]SeedResult, 0, len(Tables))
	for _, table := range Tables {
		path := filepath.Join(dir, table.Name+".csv")
		res := SeedResult{Table: table.Name, File: path}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			logger.Info("no seed file", slog.String("table", table.Name), slog.String("file", path))
			res.Skipped = true
			results = append(results, res)
			continue
		}

		n, err := LoadCSV(ctx, db, d, table.Name, path)
		if err != nil {
			return results, fmt.Errorf("seed %s: %w", table.Name, err)
		}
		logger.Info("seeded table", slog.String("table", table.Name), slog.Int("rows", n))

		res.Rows = n
		results = append(results, res)
	}
	return results, nil
}
