package thermo

// Specific heats (J/g·°C) and latent heats (J/g) of water.
const (
	SpecificHeatIce   = 2.09
	SpecificHeatWater = 4.18
	SpecificHeatSteam = 2.01

	LatentHeatFusion       = 334.0
	LatentHeatVaporization = 2260.0

	// Boltzmann is the Boltzmann constant in J/K.
	Boltzmann = 1.38e-23
	// KelvinOffset converts °C to K.
	KelvinOffset = 273.15
)

// SensibleHeat is Q = m·c·ΔT in joules for mass grams.
func SensibleHeat(mass, specificHeat, deltaT float64) float64 {
	return mass * specificHeat * deltaT
}

// LatentHeat is Q = m·L in joules.
func LatentHeat(mass, latent float64) float64 {
	return mass * latent
}

// HeatTerm is one stage of a multi-stage heating calculation.
type HeatTerm struct {
	Label  string
	Joules float64
}

// WaterHeatingTerms splits heating mass grams of water from one temperature
// to another into its sensible and latent stages, in order. Only heating
// (from < to) is modelled; otherwise no terms are returned.
func WaterHeatingTerms(mass, from, to float64) []HeatTerm {
	if from >= to {
		return nil
	}
	var terms []HeatTerm
	segment := func(label string, c, lo, hi float64) {
		a, b := max(from, lo), min(to, hi)
		if b > a {
			terms = append(terms, HeatTerm{Label: label, Joules: SensibleHeat(mass, c, b-a)})
		}
	}

	segment("Heat ice", SpecificHeatIce, from, MeltingPoint)
	if from <= MeltingPoint && to > MeltingPoint {
		terms = append(terms, HeatTerm{Label: "Melt ice", Joules: LatentHeat(mass, LatentHeatFusion)})
	}
	segment("Heat water", SpecificHeatWater, MeltingPoint, BoilingPoint)
	if from <= BoilingPoint && to > BoilingPoint {
		terms = append(terms, HeatTerm{Label: "Vaporize water", Joules: LatentHeat(mass, LatentHeatVaporization)})
	}
	segment("Heat steam", SpecificHeatSteam, BoilingPoint, to)
	return terms
}

// WaterHeatingEnergy is the sum of WaterHeatingTerms, left to right.
func WaterHeatingEnergy(mass, from, to float64) float64 {
	total := 0.0
	for _, t := range WaterHeatingTerms(mass, from, to) {
		total += t.Joules
	}
	return total
}

// AverageKineticEnergy is (3/2)·k·T for a temperature in °C.
func AverageKineticEnergy(celsius float64) float64 {
	return 1.5 * Boltzmann * (celsius + KelvinOffset)
}

// Formation pairs a formation enthalpy (kJ/mol) with its stoichiometric
// coefficient.
type Formation struct {
	Moles  float64
	DeltaH float64
}

// ReactionEnthalpy is ΣnΔHf°(products) − ΣnΔHf°(reactants).
func ReactionEnthalpy(products, reactants []Formation) float64 {
	return sumFormation(products) - sumFormation(reactants)
}

func sumFormation(fs []Formation) float64 {
	total := 0.0
	for _, f := range fs {
		total += f.Moles * f.DeltaH
	}
	return total
}
