package thermo

import (
	"fmt"
	"math"
)

// Water landmarks for the heating curve, in °C.
const (
	MeltingPoint = 0.0
	BoilingPoint = 100.0
	MinTemp      = -50.0
	MaxTemp      = 150.0

	// TransitionBand is the half-width of the mixed-phase window around
	// each landmark.
	TransitionBand = 5.0

	curveEpsilon = 0.1

	DefaultTemperature = 25.0
)

// Colour tokens for the heating curve.
const (
	ColorHeatingCurve = "#ff6d00"
	ColorCoolingCurve = "#1e88e5"
	ColorMarker       = "#e91e63"
)

// Phase is the physical state of water at a temperature.
type Phase string

const (
	PhaseSolid       Phase = "solid"
	PhaseSolidLiquid Phase = "solid-liquid"
	PhaseLiquid      Phase = "liquid"
	PhaseLiquidGas   Phase = "liquid-gas"
	PhaseGas         Phase = "gas"
)

// ClassifyPhase returns the phase of water at temp.
func ClassifyPhase(temp float64) Phase {
	switch {
	case temp < MeltingPoint-TransitionBand:
		return PhaseSolid
	case temp <= MeltingPoint+TransitionBand:
		return PhaseSolidLiquid
	case temp < BoilingPoint-TransitionBand:
		return PhaseLiquid
	case temp <= BoilingPoint+TransitionBand:
		return PhaseLiquidGas
	default:
		return PhaseGas
	}
}

// CurvePoint is a breakpoint of the reference heating curve: X is heat
// added on a 0-100 scale.
type CurvePoint struct {
	X    float64 `json:"x"`
	Temp float64 `json:"temp"`
}

var heatingCurve = []CurvePoint{
	{0, MinTemp},
	{15, MeltingPoint - curveEpsilon},
	{30, MeltingPoint},
	{45, MeltingPoint + curveEpsilon},
	{70, BoilingPoint - curveEpsilon},
	{85, BoilingPoint},
	{100, MaxTemp},
}

// CurvePoints returns the reference curve. When cooling, heat removed runs
// along the axis, so the x positions are mirrored and the order reversed to
// stay left to right.
func CurvePoints(cooling bool) []CurvePoint {
	out := make([]CurvePoint, len(heatingCurve))
	for i, p := range heatingCurve {
		if cooling {
			out[len(out)-1-i] = CurvePoint{X: 100 - p.X, Temp: p.Temp}
		} else {
			out[i] = p
		}
	}
	return out
}

// MarkerX places temp on the curve's x axis by interpolating within the
// segment bounded by the landmark temperatures.
func MarkerX(temp float64, cooling bool) float64 {
	var x float64
	switch {
	case temp <= MinTemp:
		x = 0
	case temp < MeltingPoint:
		x = lerp(temp, MinTemp, MeltingPoint, 0, 15)
	case temp == MeltingPoint:
		x = 30
	case temp < BoilingPoint:
		x = lerp(temp, MeltingPoint+curveEpsilon, BoilingPoint, 45, 70)
	case temp == BoilingPoint:
		x = 85
	case temp < MaxTemp:
		x = lerp(temp, BoilingPoint, MaxTemp, 85, 100)
	default:
		x = 100
	}
	if cooling {
		return 100 - x
	}
	return x
}

func lerp(v, lo, hi, outLo, outHi float64) float64 {
	return outLo + (v-lo)/(hi-lo)*(outHi-outLo)
}

// CurveLabel is a caption anchored at an x position and temperature.
type CurveLabel struct {
	X    float64 `json:"x"`
	Temp float64 `json:"temp"`
	Text string  `json:"text"`
}

// CurveLabels returns the landmark and phase captions for the curve.
func CurveLabels(cooling bool) []CurveLabel {
	labels := []CurveLabel{
		{X: 30, Temp: MeltingPoint, Text: "Melting/Freezing"},
		{X: 85, Temp: BoilingPoint, Text: "Boiling/Condensation"},
		{X: 7.5, Temp: (MinTemp + MeltingPoint) / 2, Text: "Solid"},
		{X: 57.5, Temp: (MeltingPoint + BoilingPoint) / 2, Text: "Liquid"},
		{X: 92.5, Temp: (BoilingPoint + MaxTemp) / 2, Text: "Gas"},
	}
	if cooling {
		for i := range labels {
			labels[i].X = 100 - labels[i].X
		}
	}
	return labels
}

// CurveColor is the stroke colour for the curve direction.
func CurveColor(cooling bool) string {
	if cooling {
		return ColorCoolingCurve
	}
	return ColorHeatingCurve
}

// HeatAxisLabel is the x-axis caption for the curve direction.
func HeatAxisLabel(cooling bool) string {
	if cooling {
		return "Heat Removed (kJ)"
	}
	return "Heat Added (kJ)"
}

// Process describes what is happening to the sample at a temperature.
type Process struct {
	Phase  Phase  `json:"phase"`
	Name   string `json:"name"`
	Energy string `json:"energy"`
}

// ProcessInfo explains the process underway at temp.
func ProcessInfo(temp float64, cooling bool) Process {
	phase := ClassifyPhase(temp)
	p := Process{Phase: phase}
	switch phase {
	case PhaseSolidLiquid:
		if cooling {
			p.Name = "Freezing"
			p.Energy = "Heat energy is being released as bonds form (exothermic)"
		} else {
			p.Name = "Melting (fusion)"
			p.Energy = "Heat energy is being absorbed to break bonds (endothermic)"
		}
	case PhaseLiquidGas:
		if cooling {
			p.Name = "Condensation"
			p.Energy = "Heat energy is being released as intermolecular forces reform (exothermic)"
		} else {
			p.Name = "Vaporization"
			p.Energy = "Heat energy is being absorbed to overcome intermolecular forces (endothermic)"
		}
	default:
		p.Name = fmt.Sprintf("Temperature change in %s phase", phase)
		if cooling {
			p.Energy = "Heat energy is decreasing, reducing molecular kinetic energy (exothermic)"
		} else {
			p.Energy = "Heat energy is increasing molecular kinetic energy (endothermic)"
		}
	}
	return p
}

// SystemKind is the thermodynamic boundary of the sample.
type SystemKind string

const (
	SystemOpen     SystemKind = "open"
	SystemClosed   SystemKind = "closed"
	SystemIsolated SystemKind = "isolated"
)

// SystemKinds lists the kinds in display order.
func SystemKinds() []SystemKind {
	return []SystemKind{SystemOpen, SystemClosed, SystemIsolated}
}

// SystemInfo describes what the system boundary lets through.
func SystemInfo(kind SystemKind) string {
	switch kind {
	case SystemOpen:
		return "Open system: Energy and matter can be exchanged with surroundings"
	case SystemIsolated:
		return "Isolated system: Neither energy nor matter can be exchanged"
	default:
		return "Closed system: Energy can be exchanged, but matter is contained"
	}
}

// Molecular captures how particles behave in a phase, for the molecular
// view beside the curve.
type Molecular struct {
	Speed        float64 `json:"speed"`
	Vibration    float64 `json:"vibration"`
	Color        string  `json:"color"`
	LinkStrength float64 `json:"linkStrength"`
}

// MolecularParams returns particle motion for phase at temp.
func MolecularParams(phase Phase, temp float64) Molecular {
	switch phase {
	case PhaseSolid:
		return Molecular{Speed: 0.1, Vibration: temp / 100 * 0.5, Color: "#3385ff", LinkStrength: 0.9}
	case PhaseSolidLiquid:
		return Molecular{Speed: 0.3, Vibration: 0.8, Color: "#33aaff", LinkStrength: 0.5}
	case PhaseLiquid:
		return Molecular{Speed: 1.0, Vibration: 1.0, Color: "#33ccff", LinkStrength: 0.2}
	case PhaseLiquidGas:
		return Molecular{Speed: 1.5, Vibration: 1.5, Color: "#33ddff", LinkStrength: 0.1}
	default:
		return Molecular{Speed: 2 + (temp-100)/50, Vibration: 2.0, Color: "#33eeff", LinkStrength: 0}
	}
}

// ClampTemperature limits temp to the curve's domain. NaN becomes
// DefaultTemperature.
func ClampTemperature(temp float64) float64 {
	if math.IsNaN(temp) {
		return DefaultTemperature
	}
	if temp < MinTemp {
		return MinTemp
	}
	if temp > MaxTemp {
		return MaxTemp
	}
	return temp
}
