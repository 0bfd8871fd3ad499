package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/edudash/internal/cli/output"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/pkg/format"
	"github.com/spf13/cobra"
)

// galleryOutput is the JSON shape of the gallery command.
type galleryOutput struct {
	Dir     string         `json:"dir"`
	Items   []gallery.Item `json:"items"`
	Missing int            `json:"missing"`
}

// NewGalleryCommand creates the gallery command.
func NewGalleryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Check the exploratory chart images",
		Long: `List the gallery images in display order and report which files are
missing from the assets directory. A missing image never hides the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.Renderer
			g := gallery.New(cmdCtx.Cfg.UI.AssetsDir)
			items := g.Items()

			switch r.EffectiveMode() {
			case output.ModeJSON:
				return r.JSON(galleryOutput{Dir: g.Dir(), Items: items, Missing: g.Missing()})
			case output.ModeMarkdown:
				r.Println(output.FormatHeader(1, "Gallery"))
				r.Println("")
				r.Println(output.FormatKeyValue("Assets", g.Dir()))
				r.Println("")
				for _, it := range items {
					if it.Exists {
						r.Println("- " + it.Title + " (`" + it.File + "`)")
					} else {
						r.Println("- " + it.Title + ": " + it.Notice())
					}
				}
			default:
				r.Header(1, "Gallery")
				r.KeyValue("Assets", g.Dir())

				tw := table.NewWriter()
				tw.SetOutputMirror(r.Writer())
				tw.SetStyle(table.StyleLight)
				tw.AppendHeader(table.Row{"#", "Title", "File", "Status"})
				s := r.Styles()
				for i, it := range items {
					status := s.Success.Render("ok")
					if !it.Exists {
						status = s.Warning.Render(it.Notice())
					}
					tw.AppendRow(table.Row{i + 1, it.Title, it.File, status})
				}
				tw.Render()
			}

			if n := g.Missing(); n > 0 {
				r.Warning(format.Count(n) + " of " + format.Count(len(items)) + " images missing")
			}
			return nil
		},
	}

	cmd.Flags().String("assets-dir", "", "Directory holding the gallery images")
	return cmd
}
