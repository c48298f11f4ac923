package thermo

import (
	"fmt"
	"math"
	"strconv"
)

// Fixed positions on the 0-100 reaction progress axis.
const (
	ReactantX   = 20.0
	TransitionX = 50.0
	ProductX    = 80.0

	// ActivationArrowX is where the horizontal Ea arrow starts; it ends at
	// TransitionX.
	ActivationArrowX = 35.0
	// EnthalpyArrowX is the x position of the vertical ΔH arrow.
	EnthalpyArrowX = 90.0

	// ReactionMargin pads the energy range above and below the path.
	ReactionMargin = 20.0
)

// Colour tokens for the reaction diagram.
const (
	ColorExothermicPath   = "#ff5722"
	ColorEndothermicPath  = "#2196f3"
	ColorExothermicDelta  = "#d32f2f"
	ColorEndothermicDelta = "#2e7d32"
	ColorActivation       = "#9c27b0"
)

// Default diagram inputs.
const (
	DefaultReactantEnergy   = 0.0
	DefaultExothermicDelta  = -100.0
	DefaultEndothermicDelta = 100.0
	DefaultActivationEnergy = 50.0
)

// ViewKind selects which thermodynamic quantity the y-axis shows.
type ViewKind string

const (
	ViewEnthalpy   ViewKind = "enthalpy"
	ViewFreeEnergy ViewKind = "free-energy"
)

// AxisLabel is the y-axis caption for the view.
func (v ViewKind) AxisLabel() string {
	if v == ViewFreeEnergy {
		return "Free Energy (kJ/mol)"
	}
	return "Enthalpy (kJ/mol)"
}

// EnergyPoint is one point on a diagram: Position on the 0-100 progress
// axis and Energy in kJ/mol.
type EnergyPoint struct {
	Position float64 `json:"position"`
	Energy   float64 `json:"energy"`
	Label    string  `json:"label,omitempty"`
}

// DiagramConfig is the input to ComputeReactionPath.
type DiagramConfig struct {
	ReactantEnergy float64 `json:"reactantEnergy"`
	ProductEnergy  float64 `json:"productEnergy"`
	// ActivationEnergy is a magnitude added above the reactant energy.
	ActivationEnergy float64  `json:"activationEnergy"`
	ShowActivation   bool     `json:"showActivation"`
	View             ViewKind `json:"view,omitempty"`
}

// DefaultDiagramConfig returns the exothermic preset with activation shown.
func DefaultDiagramConfig() DiagramConfig {
	return DiagramConfig{
		ReactantEnergy:   DefaultReactantEnergy,
		ProductEnergy:    DefaultReactantEnergy + DefaultExothermicDelta,
		ActivationEnergy: DefaultActivationEnergy,
		ShowActivation:   true,
		View:             ViewEnthalpy,
	}
}

// EnergyRange is the closed interval of energies a diagram spans.
type EnergyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Arrow is an annotation segment in diagram coordinates.
type Arrow struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

// ReactionPath is the computed geometry of a single-step energy diagram.
type ReactionPath struct {
	Points       []EnergyPoint `json:"points"`
	IsExothermic bool          `json:"isExothermic"`
	DeltaH       float64       `json:"deltaH"`

	// TransitionState is the peak energy. Zero when activation is hidden.
	TransitionState float64     `json:"transitionState,omitempty"`
	Range           EnergyRange `json:"range"`

	// Activation is nil when the activation energy is hidden.
	Activation *Arrow `json:"activation,omitempty"`
	Enthalpy   Arrow  `json:"enthalpy"`

	PathColor string `json:"pathColor"`
	AxisLabel string `json:"axisLabel"`
	Title     string `json:"title"`
}

// ComputeReactionPath builds the energy profile for cfg. Identical inputs
// always give identical outputs.
func ComputeReactionPath(cfg DiagramConfig) ReactionPath {
	r, p := cfg.ReactantEnergy, cfg.ProductEnergy
	ea := math.Abs(cfg.ActivationEnergy)

	path := ReactionPath{
		IsExothermic: p < r,
		DeltaH:       p - r,
		AxisLabel:    cfg.View.AxisLabel(),
	}

	hi := math.Max(r, p)
	if cfg.ShowActivation {
		ts := r + ea
		path.TransitionState = ts
		path.Points = []EnergyPoint{
			{Position: ReactantX, Energy: r, Label: "Reactants"},
			{Position: TransitionX, Energy: ts, Label: "Transition State"},
			{Position: ProductX, Energy: p, Label: "Products"},
		}
		path.Activation = &Arrow{
			X1:    ActivationArrowX,
			Y1:    (r + ts) / 2,
			X2:    TransitionX,
			Y2:    (r + ts) / 2,
			Label: "Ea = " + formatNumber(ea) + " kJ/mol",
			Color: ColorActivation,
		}
		hi = math.Max(hi, ts)
	} else {
		path.Points = []EnergyPoint{
			{Position: ReactantX, Energy: r, Label: "Reactants"},
			{Position: ProductX, Energy: p, Label: "Products"},
		}
	}

	path.Range = EnergyRange{
		Min: math.Min(r, p) - ReactionMargin,
		Max: hi + ReactionMargin,
	}

	path.Enthalpy = Arrow{
		X1:    EnthalpyArrowX,
		Y1:    math.Max(r, p),
		X2:    EnthalpyArrowX,
		Y2:    math.Min(r, p),
		Label: fmt.Sprintf("ΔH = %.1f kJ/mol", path.DeltaH),
	}
	if path.IsExothermic {
		path.PathColor = ColorExothermicPath
		path.Enthalpy.Color = ColorExothermicDelta
		path.Title = "Exothermic Reaction Energy Diagram"
	} else {
		path.PathColor = ColorEndothermicPath
		path.Enthalpy.Color = ColorEndothermicDelta
		path.Title = "Endothermic Reaction Energy Diagram"
	}

	return path
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
