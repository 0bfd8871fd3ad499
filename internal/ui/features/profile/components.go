package profile

import (
	"encoding/json"
	"strconv"

	"github.com/leapstack-labs/edudash/internal/chart"
	"github.com/leapstack-labs/edudash/pkg/format"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func viewBox(l *chart.Line) string {
	return "0 0 " + num(l.Width) + " " + num(l.Height)
}

func pointLabel(p chart.Plotted) string {
	return strconv.Itoa(p.Year) + ": " + format.Float(p.Value)
}

func signalsJSON(country string) string {
	b, _ := json.Marshal(SeriesSignals{Country: country})
	return string(b)
}
