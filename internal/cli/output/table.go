package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/leapstack-labs/edudash/pkg/format"
	"gopkg.in/yaml.v3"
)

// TableFormats lists the formats accepted by RenderTable.
var TableFormats = []string{"table", "json", "csv", "md", "yaml"}

// RenderTable writes a result table in the given format. Table and markdown
// output go through go-pretty.
func RenderTable(w io.Writer, t *core.ResultTable, tableFormat string) error {
	switch tableFormat {
	case "json":
		return renderJSON(w, t)
	case "yaml":
		return renderYAML(w, t)
	case "csv":
		return renderCSV(w, t)
	case "md", "markdown", "table", "":
	default:
		return fmt.Errorf("unknown format %q", tableFormat)
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = format.Value(v)
		}
		tw.AppendRow(r)
	}

	switch tableFormat {
	case "md", "markdown":
		tw.RenderMarkdown()
	default:
		tw.Render()
	}
	return nil
}

// records turns rows into column-keyed maps for json and yaml.
func records(t *core.ResultTable) []map[string]any {
	out := make([]map[string]any, 0, len(t.Rows))
	for _, row := range t.Rows {
		rec := make(map[string]any, len(t.Columns))
		for i, c := range t.Columns {
			rec[c] = row[i]
		}
		out = append(out, rec)
	}
	return out
}

func renderJSON(w io.Writer, t *core.ResultTable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(t))
}

func renderYAML(w io.Writer, t *core.ResultTable) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(t)); err != nil {
		return err
	}
	return enc.Close()
}

// renderCSV writes RFC 4180 CSV; NULL is written as the literal NULL.
func renderCSV(w io.Writer, t *core.ResultTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	record := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, v := range row {
			record[i] = format.Value(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
