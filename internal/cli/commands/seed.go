package commands

import (
	"fmt"

	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/internal/dataset"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

// seedOutput is the JSON shape of the seed command.
type seedOutput struct {
	SeedsDir      string               `json:"seeds_dir"`
	SchemaVersion int64                `json:"schema_version"`
	Seeds         []dataset.SeedResult `json:"seeds"`
	TotalRows     int                  `json:"total_rows"`
}

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the dataset tables and load CSV seed files",
		Long: `Apply the dataset migrations to the configured store, then load
<table>.csv from the seeds directory for literacy_rates,
illiteracy_population and gdp_schooling. Tables without a file are skipped.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # Seed a local SQLite file
  edudash seed --store sqlite --path literacy.db --seeds-dir ./data

  # Seed MySQL and print JSON
  edudash seed --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSeed(cmd)
		},
	}

	return cmd
}

func runSeed(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	ctx := cmd.Context()

	conn, err := cmdCtx.Provider.Acquire(ctx)
	if err != nil {
		return notice(err)
	}
	defer cmdCtx.Provider.Release(conn)

	if err := dataset.Migrate(conn.DB(), conn.Dialect()); err != nil {
		return err
	}
	version, err := dataset.Version(conn.DB(), conn.Dialect())
	if err != nil {
		return err
	}

	results, err := dataset.Seed(ctx, conn.DB(), conn.Dialect(), cmdCtx.Cfg.SeedsDir, cmdCtx.Logger)
	if err != nil {
		return err
	}

	total := 0
	for _, res := range results {
		total += res.Rows
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(seedOutput{
			SeedsDir:      cmdCtx.Cfg.SeedsDir,
			SchemaVersion: version,
			Seeds:         results,
			TotalRows:     total,
		})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Seeds Loaded"))
		r.Println("")
		for _, res := range results {
			r.Println(output.FormatKeyValue("Table", res.Table))
			if res.Skipped {
				r.Println(output.FormatKeyValue("File", "none"))
			} else {
				r.Println(output.FormatKeyValue("Rows", format.Count(res.Rows)))
			}
			r.Println("")
		}
		r.Println(output.FormatKeyValue("Source Directory", cmdCtx.Cfg.SeedsDir))
		r.Println(output.FormatKeyValue("Total Rows", format.Count(total)))
	default:
		r.Header(2, "Loaded Seeds")
		for _, res := range results {
			if res.Skipped {
				r.StatusLine(res.Table, "skipped", "no seed file")
				continue
			}
			r.StatusLine(res.Table, "success", format.Rows(res.Rows))
		}
		r.Println("")
		r.Muted(fmt.Sprintf("Source: %s (schema version %d)", cmdCtx.Cfg.SeedsDir, version))
	}
	return nil
}
