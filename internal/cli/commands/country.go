package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/edudash/internal/chart"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

// NewCountryCommand creates the country command group.
func NewCountryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "country",
		Short: "Explore the adult literacy profile of a country",
	}

	cmd.AddCommand(newCountryListCommand())
	cmd.AddCommand(newCountryShowCommand())

	return cmd
}

func newCountryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the countries present in the literacy table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer

			countries, err := cmdCtx.Reporter().ListCountries(cmd.Context())
			if err != nil {
				return notice(err)
			}

			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(countries)
			case output.ModeMarkdown:
				r.Println(output.FormatHeader(1, "Countries"))
				r.Println("")
				for _, c := range countries {
					r.Println("- " + c)
				}
			default:
				r.Header(1, "Countries")
				for _, c := range countries {
					r.Println(c)
				}
				r.Muted(format.Count(len(countries)) + " countries")
			}
			return nil
		},
	}
}

func newCountryShowCommand() *cobra.Command {
	var tableFormat string

	cmd := &cobra.Command{
		Use:   "show [country]",
		Short: "Show the adult literacy series of one country",
		Long: `Show the adult literacy rate of a country by year, with a sparkline.

The country name must match exactly. When omitted on a terminal, an
interactive picker lists the available countries.`,
		Example: `  edudash country show Zambia
  edudash country show "Sub-Saharan Africa" --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			reporter := cmdCtx.Reporter()

			var country string
			switch {
			case len(args) > 0:
				country = args[0]
			case interactive(cmd):
				countries, err := reporter.ListCountries(cmd.Context())
				if err != nil {
					return notice(err)
				}
				chosen, err := pick(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), "Countries", countries)
				if err != nil {
					if errors.Is(err, errNoSelection) {
						return nil
					}
					return err
				}
				country = chosen
			default:
				return errors.New("a country is required (see 'edudash country list')")
			}

			series, err := reporter.SeriesFor(cmd.Context(), country)
			if err != nil {
				return notice(err)
			}
			return renderSeries(cmd, cmdCtx.Renderer, series, tableFormat)
		},
	}

	cmd.Flags().StringVarP(&tableFormat, "format", "f", "table", "Output format: table, json, csv, md, yaml")
	return cmd
}

// seriesTable turns a series into a year/value table; missing values stay nil.
func seriesTable(series *core.CountryTimeSeries) *core.ResultTable {
	t := &core.ResultTable{
		Label:   series.Country,
		Columns: []string{"year", "adult_literacy_rate"},
		Rows:    make([][]any, 0, len(series.Points)),
	}
	for _, p := range series.Points {
		var v any
		if p.Valid {
			v = p.Value
		}
		t.Rows = append(t.Rows, []any{int64(p.Year), v})
	}
	return t
}

func renderSeries(cmd *cobra.Command, r *output.Renderer, series *core.CountryTimeSeries, tableFormat string) error {
	if tableFormat == "json" || tableFormat == "yaml" {
		return output.RenderTable(cmd.OutOrStdout(), seriesTable(series), tableFormat)
	}

	if len(series.Valid()) == 0 {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), format.EmptySeries)
		return nil
	}

	if tableFormat == "table" && r.EffectiveMode() == output.ModeText {
		r.Header(2, series.Country)
		r.Println(r.Styles().Info.Render(chart.Sparkline(series)))
		r.Println("")
	} else if tableFormat == "table" || tableFormat == "md" {
		r.Println(output.FormatHeader(2, series.Country))
		r.Println("")
	}

	return output.RenderTable(cmd.OutOrStdout(), seriesTable(series), tableFormat)
}
