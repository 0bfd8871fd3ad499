// Package catalog holds the fixed menu of analytical queries offered by the
// dashboard. A Catalog is immutable once constructed; build it once at startup
// and pass it to the components that need it.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leapstack-labs/edudash/pkg/core"
)

// Catalog is an ordered, read-only set of labelled statements.
type Catalog struct {
	entries []core.CatalogEntry
	// byLabel maps a label to its index in entries.
	byLabel map[string]int
}

// New builds a catalog from entries in display order.
// Labels must be non-empty and unique; statements must be non-empty.
func New(entries ...core.CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]core.CatalogEntry, 0, len(entries)),
		byLabel: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Label) == "" {
			return nil, fmt.Errorf("catalog entry %d: empty label", i+1)
		}
		if strings.TrimSpace(e.Statement) == "" {
			return nil, fmt.Errorf("catalog entry %q: empty statement", e.Label)
		}
		if _, dup := c.byLabel[e.Label]; dup {
			return nil, fmt.Errorf("catalog entry %q: duplicate label", e.Label)
		}
		c.byLabel[e.Label] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Labels returns the labels in definition order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

// StatementFor returns the statement registered under label.
func (c *Catalog) StatementFor(label string) (string, error) {
	i, ok := c.byLabel[label]
	if !ok {
		return "", &core.UnknownLabelError{Label: label}
	}
	return c.entries[i].Statement, nil
}

// Entries returns a copy of the entries in definition order.
func (c *Catalog) Entries() []core.CatalogEntry {
	out := make([]core.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Resolve accepts either an exact label or a 1-based position and returns the
// matching label. Used by the CLI so users can type "3" instead of the label.
func (c *Catalog) Resolve(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if _, ok := c.byLabel[ref]; ok {
		return ref, nil
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(c.entries) {
		return c.entries[n-1].Label, nil
	}
	return "", &core.UnknownLabelError{Label: ref}
}
