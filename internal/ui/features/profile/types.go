package profile

import "github.com/leapstack-labs/edudash/pkg/core"

// ChartID is the element the series endpoint patches.
const ChartID = "profile-chart"

// Chart dimensions in SVG user units.
const (
	chartWidth  = 720
	chartHeight = 360
)

// SeriesSignals represents the signals sent from the frontend.
type SeriesSignals struct {
	Country string `json:"country"`
}

// PageData is what the profile page renders. Error replaces the whole view
// when the store could not be read.
type PageData struct {
	Countries []string
	Selected  string
	Series    *core.CountryTimeSeries
	Error     string
}
