package chart

import (
	"strings"

	"github.com/leapstack-labs/edudash/pkg/core"
)

var blocks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the series as block characters, one per point, in year
// order. Points without a value are drawn as a space.
func Sparkline(series *core.CountryTimeSeries) string {
	valid := series.Valid()
	if len(valid) == 0 {
		return ""
	}

	lo, hi := valid[0].Value, valid[0].Value
	for _, p := range valid[1:] {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}

	var b strings.Builder
	for _, p := range series.Points {
		if !p.Valid {
			b.WriteRune(' ')
			continue
		}
		idx := len(blocks) - 1
		if hi > lo {
			idx = int((p.Value - lo) / (hi - lo) * float64(len(blocks)-1))
		}
		b.WriteRune(blocks[idx])
	}
	return b.String()
}
