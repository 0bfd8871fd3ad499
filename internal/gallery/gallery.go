// Package gallery resolves the dashboard's fixed set of exploratory chart
// images against an assets directory.
package gallery

import (
	"os"
	"path/filepath"
)

// Entry is a catalogued gallery image.
type Entry struct {
	Title string `json:"title" yaml:"title"`
	File  string `json:"file" yaml:"file"`
}

// Item is an Entry resolved against the assets directory.
type Item struct {
	Entry
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
}

// Notice is the per-item message shown when the image file is absent.
func (i Item) Notice() string {
	if i.Exists {
		return ""
	}
	return "File not found: " + i.File
}

// Entries lists the gallery images in display order.
var Entries = []Entry{
	{Title: "Literacy Growth Rate Distribution", File: "Literacy_Growth_Rate_Distribution.png"},
	{Title: "Illiteracy Male vs Female", File: "Average_Youth_Illiteracy_Male_vs_Female.png"},
	{Title: "Average Youth Literacy Rate by Gender", File: "Youth_Literacy_Rate.png"},
	{Title: "Literacy Rate by Income Group", File: "literacy_by_income_group.png"},
	{Title: "Literacy Distribution Across Selected Countries", File: "Literacy_Distribution_Across_Selected_Countries.png"},
	{Title: "Youth Literacy avg vs Year top 8", File: "Top_8_Countries_by_Average_Youth_Literacy.png"},
	{Title: "Bottom 5 Countries by Average Youth Literacy", File: "Bottom_5_Countries_by_Average_Youth_Literacy.png"},
	{Title: "Top 7 Countries with Largest Youth Literacy Gender Gap", File: "Top_7_Countries_with_Largest_Youth_Literacy_Gender_Gap.png"},
}

// Gallery reads image presence from Dir on every call.
type Gallery struct {
	dir     string
	entries []Entry
	byFile  map[string]Entry
}

// New creates a gallery over dir with the default entries.
func New(dir string) *Gallery {
	return NewWithEntries(dir, Entries)
}

// NewWithEntries creates a gallery over dir with custom entries.
func NewWithEntries(dir string, entries []Entry) *Gallery {
	g := &Gallery{
		dir:     dir,
		entries: entries,
		byFile:  make(map[string]Entry, len(entries)),
	}
	for _, e := range entries {
		g.byFile[e.File] = e
	}
	return g
}

// Dir returns the assets directory.
func (g *Gallery) Dir() string {
	return g.dir
}

// Items resolves every entry. A missing file never fails the call; the item
// is returned with Exists false.
func (g *Gallery) Items() []Item {
	items := make([]Item, len(g.entries))
	for i, e := range g.entries {
		items[i] = g.resolve(e)
	}
	return items
}

// Lookup resolves a catalogued file name. Names outside the catalogue, such
// as "../config.yaml", are never resolved.
func (g *Gallery) Lookup(file string) (Item, bool) {
	e, ok := g.byFile[file]
	if !ok {
		return Item{}, false
	}
	return g.resolve(e), true
}

// Missing counts items whose file is absent.
func (g *Gallery) Missing() int {
	n := 0
	for _, it := range g.Items() {
		if !it.Exists {
			n++
		}
	}
	return n
}

func (g *Gallery) resolve(e Entry) Item {
	path := filepath.Join(g.dir, e.File)
	info, err := os.Stat(path)
	return Item{
		Entry:  e,
		Path:   path,
		Exists: err == nil && info.Mode().IsRegular(),
	}
}
