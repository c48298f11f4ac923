package plot

import (
	"fmt"
	"strings"
)

// AxisColor is the stroke colour for axes and tick labels.
const AxisColor = "#94A3B8"

const (
	yGutter   = 8 // columns reserved for y tick labels
	minWidth  = yGutter + 12
	minHeight = 8
)

// Chart is a Canvas with a title row, a y-axis caption row, a plotting
// area and an x axis with tick labels and caption.
//
//	row 0            title
//	row 1            y caption
//	rows 2..h-4      plot area
//	row h-3          x axis
//	row h-2          x tick labels
//	row h-1          x caption
type Chart struct {
	*Canvas
	X, Y Scale
}

// NewChart returns a chart whose plot area maps [xMin, xMax] × [yMin, yMax].
// It returns nil when width or height is too small to draw into.
func NewChart(width, height int, xMin, xMax, yMin, yMax float64) *Chart {
	if width < minWidth || height < minHeight {
		return nil
	}
	left, right := yGutter, width-2
	top, bottom := 2, height-4
	return &Chart{
		Canvas: New(width, height),
		X:      NewScale(xMin, xMax, left, right),
		Y:      NewScale(yMin, yMax, bottom, top),
	}
}

// Pt maps a data point onto the canvas.
func (ch *Chart) Pt(x, y float64) Point {
	return Point{X: ch.X.Map(x), Y: ch.Y.Map(y)}
}

// Title centres s on the first row.
func (ch *Chart) Title(s, color string) {
	ch.TextCentered(ch.width/2, 0, s, color)
}

// Axes draws both axes, yTicks+1 y tick labels and the captions. xTicks of
// zero omits the x tick labels, for charts whose x axis is qualitative.
func (ch *Chart) Axes(xCaption, yCaption string, xTicks, yTicks int) {
	axisRow := ch.height - 3
	originX := ch.X.RangeMin - 1

	ch.VLine(originX, ch.Y.RangeMax, axisRow, '│', AxisColor)
	ch.HLine(originX, ch.X.RangeMax, axisRow, '─', AxisColor)
	ch.Set(originX, axisRow, '└', AxisColor)

	for _, v := range ch.Y.Ticks(yTicks) {
		y := ch.Y.Map(v)
		label := fmt.Sprintf("%*s", yGutter-2, formatTick(v))
		ch.Text(0, y, label, AxisColor)
		ch.Set(originX, y, '┤', AxisColor)
	}

	if xTicks > 0 {
		for _, v := range ch.X.Ticks(xTicks) {
			x := ch.X.Map(v)
			ch.Set(x, axisRow, '┬', AxisColor)
			ch.TextCentered(x, axisRow+1, formatTick(v), AxisColor)
		}
	}

	ch.Text(0, 1, yCaption, AxisColor)
	ch.TextCentered((ch.X.RangeMin+ch.X.RangeMax)/2, ch.height-1, xCaption, AxisColor)
}

// Marker draws a single glyph at a data point.
func (ch *Chart) Marker(x, y float64, glyph rune, color string) Point {
	p := ch.Pt(x, y)
	ch.setClipped(p.X, p.Y, glyph, color)
	return p
}

// Label writes s centred above the data point, shifted to stay inside the
// plot area.
func (ch *Chart) Label(x, y float64, s, color string) {
	p := ch.Pt(x, y)
	row := p.Y - 1
	if row < ch.Y.RangeMax {
		row = p.Y + 1
	}
	n := len([]rune(s))
	col := p.X - n/2
	if col+n > ch.width {
		col = ch.width - n
	}
	if col < ch.X.RangeMin {
		col = ch.X.RangeMin
	}
	ch.Text(col, row, s, color)
}

func formatTick(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	if s == "-0" {
		return "0"
	}
	return strings.TrimSpace(s)
}
