// Package diagram renders thermo geometry as terminal charts.
package diagram

import (
	"fmt"
	"math"

	"github.com/abhisek/thermoviz/internal/plot"
	"github.com/abhisek/thermoviz/internal/thermo"
)

const (
	labelColor = "#F8FAFC"
	pointGlyph = '●'
)

// Reaction draws a single-step energy diagram. It returns nil when the
// area is too small.
func Reaction(path thermo.ReactionPath, width, height int) *plot.Chart {
	ch := plot.NewChart(width, height, 0, 100, path.Range.Min, path.Range.Max)
	if ch == nil {
		return nil
	}
	ch.Title(path.Title, path.PathColor)
	ch.Axes("Reaction Progress", path.AxisLabel, 0, 4)

	pts := make([]plot.Point, len(path.Points))
	for i, p := range path.Points {
		pts[i] = ch.Pt(p.Position, p.Energy)
	}
	ch.Polyline(pts, path.PathColor)

	if a := path.Activation; a != nil {
		from := ch.Pt(a.X1, a.Y1)
		to := ch.Pt(a.X2, a.Y2)
		ch.HArrow(from.X, to.X-1, from.Y, a.Color)
		ch.Text(from.X-len([]rune(a.Label))-1, from.Y, a.Label, a.Color)
	}

	e := path.Enthalpy
	from := ch.Pt(e.X1, path.Points[0].Energy)
	to := ch.Pt(e.X2, path.Points[len(path.Points)-1].Energy)
	ch.Arrow(from.X, from.Y, to.Y, e.Color)
	ch.Text(from.X-len([]rune(e.Label))-1, (from.Y+to.Y)/2, e.Label, e.Color)

	for _, p := range path.Points {
		ch.Marker(p.Position, p.Energy, pointGlyph, path.PathColor)
		ch.Label(p.Position, p.Energy, fmt.Sprintf("%s (%s)", p.Label, formatEnergy(p.Energy)), labelColor)
	}
	return ch
}

// Hess draws the cumulative enthalpy path. Point positions must be the
// normalised fractions from thermo.ComputeHessPath(steps, 0).
func Hess(path thermo.HessPath, width, height int) *plot.Chart {
	ch := plot.NewChart(width, height, 0, 1, path.Range.Min, path.Range.Max)
	if ch == nil {
		return nil
	}
	ch.Title(path.Title, labelColor)
	ch.Axes("Reaction Progress", path.YLabel, 0, 4)

	// Each level is a short horizontal bar; steps connect the bars.
	half := 0.0
	if n := len(path.Points) - 1; n > 0 {
		half = 0.15 / float64(n)
	}
	for _, p := range path.Points {
		l := ch.Pt(math.Max(0, p.Position-half), p.Energy)
		r := ch.Pt(math.Min(1, p.Position+half), p.Energy)
		ch.HLine(l.X, r.X, l.Y, '━', p.Color)
	}
	for _, a := range path.Arrows {
		if a.Direction == thermo.DirectionNone {
			continue
		}
		from := ch.Pt(a.X, a.Y1)
		to := ch.Pt(a.X, a.Y2)
		ch.Arrow(from.X, from.Y, to.Y, a.Color)
		ch.Text(from.X+1, (from.Y+to.Y)/2, a.Label, a.Color)
	}
	for _, p := range path.Points {
		ch.Label(p.Position, p.Energy, fmt.Sprintf("%s: %s kJ", p.Label, formatEnergy(p.Energy)), p.Color)
	}
	return ch
}

// Heating draws the reference heating (or cooling) curve with a marker at
// temp.
func Heating(temp float64, cooling bool, width, height int) *plot.Chart {
	ch := plot.NewChart(width, height, 0, 100, thermo.MinTemp, thermo.MaxTemp)
	if ch == nil {
		return nil
	}
	color := thermo.CurveColor(cooling)
	title := "Heating Curve of Water"
	if cooling {
		title = "Cooling Curve of Water"
	}
	ch.Title(title, color)
	ch.Axes(thermo.HeatAxisLabel(cooling), "Temperature (°C)", 0, 4)

	curve := thermo.CurvePoints(cooling)
	pts := make([]plot.Point, len(curve))
	for i, p := range curve {
		pts[i] = ch.Pt(p.X, p.Temp)
	}
	ch.Polyline(pts, color)

	for _, l := range thermo.CurveLabels(cooling) {
		ch.Label(l.X, l.Temp, l.Text, labelColor)
	}

	t := thermo.ClampTemperature(temp)
	ch.Marker(thermo.MarkerX(t, cooling), t, pointGlyph, thermo.ColorMarker)
	return ch
}

func formatEnergy(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
