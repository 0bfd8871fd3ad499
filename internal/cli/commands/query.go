package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Format string
}

// NewQueryCommand creates the query command.
func NewQueryCommand(cat *catalog.Catalog) *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [label|number]",
		Short: "Run a catalog query",
		Long: `Run one of the predefined analytical queries against the store.

A query is selected by its full label or by its position in the catalog.
When invoked without arguments on a terminal, an interactive picker opens.`,
		Example: `  # Run the first query
  edudash query 1

  # Run by label
  edudash query "3. Average Adult Literacy per Continent"

  # Output as CSV
  edudash query 12 --format csv

  # List the catalog
  edudash query list`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return cat.Labels(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, cat, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: "+strings.Join(output.TableFormats, ", "))
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.TableFormats, cobra.ShellCompDirectiveNoFileComp
	})

	cmd.AddCommand(newQueryListCommand(cat))

	return cmd
}

func runQuery(cmd *cobra.Command, cat *catalog.Catalog, args []string, opts *QueryOptions) error {
	var label string
	switch {
	case len(args) > 0:
		resolved, err := cat.Resolve(args[0])
		if err != nil {
			return err
		}
		label = resolved
	case interactive(cmd):
		chosen, err := pick(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), "Queries", cat.Labels())
		if err != nil {
			if errors.Is(err, errNoSelection) {
				return nil
			}
			return err
		}
		label = chosen
	default:
		return errors.New("a query label or number is required (see 'edudash query list')")
	}

	cmdCtx := NewCommandContext(cmd)
	table, err := cmdCtx.Executor(cat).Run(cmd.Context(), label)
	if err != nil {
		return notice(err)
	}

	return renderResult(cmd, table, opts.Format)
}

// renderResult writes the table to stdout and the outcome notice to stderr,
// so machine formats stay clean when piped.
func renderResult(cmd *cobra.Command, table *core.ResultTable, tableFormat string) error {
	if table.Empty() {
		if tableFormat == "json" || tableFormat == "yaml" {
			if err := output.RenderTable(cmd.OutOrStdout(), table, tableFormat); err != nil {
				return err
			}
		}
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), format.EmptyResult)
		return nil
	}

	if err := output.RenderTable(cmd.OutOrStdout(), table, tableFormat); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), format.Success(table.Len()))
	return nil
}

// queryListItem is one catalog entry as rendered by "query list".
type queryListItem struct {
	Number    int    `json:"number"`
	Label     string `json:"label"`
	Statement string `json:"statement,omitempty"`
}

func newQueryListCommand(cat *catalog.Catalog) *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the catalog queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := NewCommandContext(cmd).Renderer

			entries := cat.Entries()
			items := make([]queryListItem, len(entries))
			for i, e := range entries {
				items[i] = queryListItem{Number: i + 1, Label: e.Label}
				if showSQL {
					items[i].Statement = e.Statement
				}
			}

			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(items)
			case output.ModeMarkdown:
				r.Println(output.FormatHeader(1, "Queries"))
				r.Println("")
				for _, it := range items {
					r.Println("- " + it.Label)
					if showSQL {
						r.Println("")
						r.Println("  ```sql")
						r.Println(indent(it.Statement, "  "))
						r.Println("  ```")
					}
				}
			default:
				r.Header(1, "Queries")
				for _, it := range items {
					r.Println(r.Styles().Bold.Render(strconv.Itoa(it.Number)) + "  " + it.Label)
					if showSQL {
						r.Muted(indent(it.Statement, "   "))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSQL, "sql", false, "Include the SQL statement of each query")
	return cmd
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
