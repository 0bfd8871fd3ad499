package queries

import "github.com/leapstack-labs/edudash/pkg/core"

// ResultsID is the element the run endpoint patches.
const ResultsID = "query-results"

// RunSignals represents the signals sent from the frontend.
type RunSignals struct {
	Label string `json:"label"`
}

// PageData is what the query page renders.
type PageData struct {
	Labels   []string
	Selected string
}

// Outcome is the result of one run as shown to the user. Exactly one of
// Error and Table is meaningful.
type Outcome struct {
	Label string
	Table *core.ResultTable
	Error string
}
