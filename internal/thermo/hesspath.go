package thermo

import (
	"fmt"
	"math"

	"github.com/abhisek/thermoviz/internal/hess"
)

// HessMargin pads the energy range of a Hess diagram.
const HessMargin = 50.0

// Colour tokens for the Hess diagram.
const (
	ColorAbsorbing = "#f44336"
	ColorReleasing = "#4caf50"
	ColorStart     = "#4caf50"
	ColorEnd       = "#f44336"
	ColorMiddle    = "#2196f3"
)

// Direction of a single Hess step.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// MarshalText encodes the direction as its name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// HessPoint is one level on the cumulative enthalpy path.
type HessPoint struct {
	EnergyPoint
	Color string `json:"color"`
}

// StepArrow is the directional indicator between two consecutive points.
type StepArrow struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	X         float64   `json:"x"`
	Y1        float64   `json:"y1"`
	Y2        float64   `json:"y2"`
	Change    float64   `json:"change"`
	Direction Direction `json:"direction"`
	Color     string    `json:"color,omitempty"`
	Label     string    `json:"label,omitempty"`
}

// HessPath is the computed geometry of a Hess's Law energy diagram.
type HessPath struct {
	Points []HessPoint `json:"points"`
	// Arrows has one entry per step; zero-change steps carry
	// DirectionNone and are not drawn.
	Arrows []StepArrow `json:"arrows"`
	Range  EnergyRange `json:"range"`
	Final  float64     `json:"final"`
	Title  string      `json:"title"`
	YLabel string      `json:"yLabel"`
}

// ComputeHessPath lays out the cumulative enthalpy of steps. Positions are
// spread evenly over width; when width is not positive they are the
// normalised fractions (i+1)/n. The final energy equals
// hess.CombinedEnthalpy(steps) exactly.
func ComputeHessPath(steps []hess.ReactionStep, width float64) HessPath {
	n := len(steps)
	path := HessPath{
		Points: make([]HessPoint, 0, n+1),
		Arrows: make([]StepArrow, 0, n),
		Title:  "Hess's Law Energy Diagram",
		YLabel: "Enthalpy (kJ)",
	}

	unit := 1.0
	if width > 0 && n > 0 {
		unit = width / float64(n)
	} else if n > 0 {
		unit = 1 / float64(n)
	}

	energy := 0.0
	lo, hi := 0.0, 0.0
	path.Points = append(path.Points, HessPoint{
		EnergyPoint: EnergyPoint{Position: 0, Energy: 0, Label: "Initial"},
	})
	for i, s := range steps {
		change := s.Effective()
		prev := energy
		energy += change
		lo = math.Min(lo, energy)
		hi = math.Max(hi, energy)

		prevX := path.Points[i].Position
		x := float64(i+1) * unit
		path.Points = append(path.Points, HessPoint{
			EnergyPoint: EnergyPoint{Position: x, Energy: energy, Label: fmt.Sprintf("Step %d", i+1)},
		})

		arrow := StepArrow{
			From:   i,
			To:     i + 1,
			X:      (prevX + x) / 2,
			Y1:     prev,
			Y2:     energy,
			Change: change,
		}
		switch {
		case change > 0:
			arrow.Direction = DirectionUp
			arrow.Color = ColorAbsorbing
		case change < 0:
			arrow.Direction = DirectionDown
			arrow.Color = ColorReleasing
		}
		if arrow.Direction != DirectionNone {
			arrow.Label = fmt.Sprintf("ΔH = %+.1f kJ", change)
		}
		path.Arrows = append(path.Arrows, arrow)
	}

	for i := range path.Points {
		switch {
		case i == 0:
			path.Points[i].Color = ColorStart
		case i == len(path.Points)-1:
			path.Points[i].Color = ColorEnd
		default:
			path.Points[i].Color = ColorMiddle
		}
	}

	path.Final = energy
	path.Range = EnergyRange{Min: lo - HessMargin, Max: hi + HessMargin}
	return path
}

// PartialHessPaths returns the diagrams for the first step, the first two
// steps and all steps, the staged view used when walking through an example.
// Stages that would repeat the full diagram are omitted.
func PartialHessPaths(steps []hess.ReactionStep, width float64) []HessPath {
	var out []HessPath
	for _, k := range []int{1, 2} {
		if k < len(steps) {
			out = append(out, ComputeHessPath(steps[:k], width))
		}
	}
	return append(out, ComputeHessPath(steps, width))
}
