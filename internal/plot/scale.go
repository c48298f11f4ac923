// Package plot draws line charts onto a grid of terminal cells.
//
// Coordinates are in cells with the origin at the top-left; X grows
// rightward and Y downward. Scales map data values onto cells.
package plot

import "math"

// Scale maps a continuous domain linearly onto a cell range. The range may
// be inverted (RangeMin > RangeMax), which is how energy axes grow upward.
type Scale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   int
}

// NewScale returns a Scale mapping [d0, d1] onto [r0, r1].
func NewScale(d0, d1 float64, r0, r1 int) Scale {
	return Scale{DomainMin: d0, DomainMax: d1, RangeMin: r0, RangeMax: r1}
}

// maxOvershoot bounds extrapolation to this many range-widths beyond
// either end, so callers never loop over cells far off the canvas.
const maxOvershoot = 1.0

// Map converts v to the nearest cell. Values outside the domain
// extrapolate up to maxOvershoot range-widths. A zero-width or non-finite
// domain, or a non-finite v, maps to RangeMin.
func (s Scale) Map(v float64) int {
	span := s.DomainMax - s.DomainMin
	if span == 0 || !finite(span) || !finite(s.DomainMin) {
		return s.RangeMin
	}
	t := (v - s.DomainMin) / span
	if !finite(t) {
		return s.RangeMin
	}
	t = min(max(t, -maxOvershoot), 1+maxOvershoot)
	return int(math.Round(float64(s.RangeMin) + t*float64(s.RangeMax-s.RangeMin)))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Invert converts a cell back into the domain.
func (s Scale) Invert(cell int) float64 {
	if s.RangeMax == s.RangeMin {
		return s.DomainMin
	}
	t := float64(cell-s.RangeMin) / float64(s.RangeMax-s.RangeMin)
	return s.DomainMin + t*(s.DomainMax-s.DomainMin)
}

// Ticks returns n+1 evenly spaced domain values from DomainMin to DomainMax.
func (s Scale) Ticks(n int) []float64 {
	if n <= 0 {
		return []float64{s.DomainMin}
	}
	out := make([]float64, n+1)
	step := (s.DomainMax - s.DomainMin) / float64(n)
	for i := range out {
		out[i] = s.DomainMin + step*float64(i)
	}
	out[n] = s.DomainMax
	return out
}
