// Package chart turns a country time series into a drawable line chart.
package chart

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/edudash/pkg/core"
)

// Plot margins in chart units.
const (
	marginLeft   = 48.0
	marginRight  = 16.0
	marginTop    = 16.0
	marginBottom = 32.0

	yTickCount = 5
	maxXTicks  = 10
)

// DefaultColor is the stroke of the series line.
const DefaultColor = "#4F46E5"

// Line is a single-series line chart scaled to Width x Height.
type Line struct {
	Title  string `json:"title"`
	XAxis  string `json:"xAxis"`
	YAxis  string `json:"yAxis"`
	Color  string `json:"color"`
	Width  float64
	Height float64

	XMin, XMax int
	YMin, YMax float64

	Points []Plotted
	XTicks []Tick
	YTicks []Tick
}

// Plotted is a data point with its position in chart units. AfterGap is set
// when a missing year lies between it and the previous plotted point.
type Plotted struct {
	Year     int
	Value    float64
	X, Y     float64
	AfterGap bool
}

// Tick is an axis label at Pos (x for the x-axis, y for the y-axis).
type Tick struct {
	Pos   float64
	Label string
}

// Build lays out series in a width x height box. Points without a value are
// not plotted and break the line in two. It returns nil when nothing can be
// drawn.
func Build(series *core.CountryTimeSeries, width, height float64) *Line {
	points := series.Valid()
	if len(points) == 0 || width <= marginLeft+marginRight || height <= marginTop+marginBottom {
		return nil
	}

	l := &Line{
		Title:  series.Country,
		XAxis:  "Year",
		YAxis:  "Adult literacy rate (%)",
		Color:  DefaultColor,
		Width:  width,
		Height: height,
	}

	l.XMin, l.XMax = points[0].Year, points[0].Year
	l.YMin, l.YMax = points[0].Value, points[0].Value
	for _, p := range points[1:] {
		l.XMin = min(l.XMin, p.Year)
		l.XMax = max(l.XMax, p.Year)
		l.YMin = min(l.YMin, p.Value)
		l.YMax = max(l.YMax, p.Value)
	}
	if l.XMin == l.XMax {
		l.XMin--
		l.XMax++
	}
	if pad := (l.YMax - l.YMin) * 0.05; pad > 0 {
		l.YMin -= pad
		l.YMax += pad
	} else {
		l.YMin--
		l.YMax++
	}

	l.Points = make([]Plotted, 0, len(points))
	gap := false
	for _, p := range series.Points {
		if !p.Valid {
			gap = len(l.Points) > 0
			continue
		}
		l.Points = append(l.Points, Plotted{
			Year:     p.Year,
			Value:    p.Value,
			X:        l.x(float64(p.Year)),
			Y:        l.y(p.Value),
			AfterGap: gap,
		})
		gap = false
	}

	l.XTicks = l.xTicks(points)
	l.YTicks = l.yTicks()
	return l
}

// PlotLeft, PlotRight, PlotTop and PlotBottom bound the drawing area.
func (l *Line) PlotLeft() float64   { return marginLeft }
func (l *Line) PlotRight() float64  { return l.Width - marginRight }
func (l *Line) PlotTop() float64    { return marginTop }
func (l *Line) PlotBottom() float64 { return l.Height - marginBottom }

// Polylines returns one SVG polyline point list per unbroken run of values,
// in year order.
func (l *Line) Polylines() []string {
	var lines []string
	var b strings.Builder
	for i, p := range l.Points {
		if p.AfterGap {
			lines = append(lines, b.String())
			b.Reset()
		} else if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatCoord(p.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(p.Y))
	}
	if b.Len() > 0 {
		lines = append(lines, b.String())
	}
	return lines
}

func (l *Line) x(year float64) float64 {
	span := float64(l.XMax - l.XMin)
	return marginLeft + (year-float64(l.XMin))/span*(l.PlotRight()-marginLeft)
}

func (l *Line) y(v float64) float64 {
	return l.PlotBottom() - (v-l.YMin)/(l.YMax-l.YMin)*(l.PlotBottom()-marginTop)
}

func (l *Line) xTicks(points []core.Point) []Tick {
	step := (len(points) + maxXTicks - 1) / maxXTicks
	ticks := make([]Tick, 0, maxXTicks+1)
	for i := 0; i < len(points); i += step {
		ticks = append(ticks, Tick{Pos: l.x(float64(points[i].Year)), Label: strconv.Itoa(points[i].Year)})
	}
	if last := points[len(points)-1]; step > 1 && (len(points)-1)%step != 0 {
		ticks = append(ticks, Tick{Pos: l.x(float64(last.Year)), Label: strconv.Itoa(last.Year)})
	}
	return ticks
}

func (l *Line) yTicks() []Tick {
	ticks := make([]Tick, yTickCount)
	for i := range ticks {
		v := l.YMin + (l.YMax-l.YMin)*float64(i)/float64(yTickCount-1)
		ticks[i] = Tick{Pos: l.y(v), Label: strconv.FormatFloat(v, 'f', 1, 64)}
	}
	return ticks
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
