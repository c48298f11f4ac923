// Package practice holds the practice-problem catalog, answer grading and
// the per-session answer overlay.
package practice

import (
	"strconv"

	"github.com/abhisek/thermoviz/internal/hess"
	"github.com/abhisek/thermoviz/internal/thermo"
)

// DefaultTolerance is the grading tolerance when a problem sets none.
const DefaultTolerance = 0.1

// Topic groups problems for filtering.
type Topic string

const (
	TopicAll           Topic = "all"
	TopicThermalEnergy Topic = "thermal-energy"
	TopicEnthalpy      Topic = "enthalpy"
	TopicHessLaw       Topic = "hess-law"
	TopicHeatingCurve  Topic = "heating-curve"
	TopicKineticTheory Topic = "kinetic-theory"
)

// Topics lists every topic in menu order, starting with TopicAll.
func Topics() []Topic {
	return []Topic{TopicAll, TopicThermalEnergy, TopicEnthalpy, TopicHessLaw, TopicHeatingCurve, TopicKineticTheory}
}

// Label is the human-readable topic name.
func (t Topic) Label() string {
	switch t {
	case TopicAll:
		return "All Topics"
	case TopicThermalEnergy:
		return "Thermal Energy"
	case TopicEnthalpy:
		return "Enthalpy"
	case TopicHessLaw:
		return "Hess's Law"
	case TopicHeatingCurve:
		return "Heating/Cooling Curves"
	case TopicKineticTheory:
		return "Kinetic Theory"
	default:
		return string(t)
	}
}

// ParseTopic maps a topic name to a Topic. Empty means TopicAll.
func ParseTopic(s string) (Topic, bool) {
	if s == "" {
		return TopicAll, true
	}
	for _, t := range Topics() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Difficulty of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Problem is a numeric-answer practice question.
type Problem struct {
	ID         string     `json:"id"`
	Topic      Topic      `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Question   string     `json:"question"`

	// Answer is the exact expected value; Display is how it is shown
	// after a wrong attempt.
	Answer    float64 `json:"answer"`
	Display   string  `json:"display"`
	Unit      string  `json:"unit,omitempty"`
	Tolerance float64 `json:"tolerance"`

	Explanation string `json:"explanation"`
	Formula     string `json:"formula"`
	Hint        string `json:"hint"`
}

// Grade checks text against the problem's answer.
func (p Problem) Grade(text string) Result {
	tol := p.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return Grade(text, p.Answer, tol)
}

// CorrectAnswer is the answer as shown to the learner.
func (p Problem) CorrectAnswer() string {
	if p.Display != "" {
		return p.Display
	}
	return strconv.FormatFloat(p.Answer, 'g', -1, 64)
}

// Catalog returns the built-in problems in display order. Answers are
// derived from the same thermo and hess arithmetic the diagrams use.
func Catalog() []Problem {
	return []Problem{
		{
			ID:         "problem1",
			Topic:      TopicThermalEnergy,
			Difficulty: DifficultyEasy,
			Question: "Calculate the thermal energy (in joules) required to raise the temperature of 500g of water from 25°C to 85°C. " +
				"The specific heat capacity of water is 4.18 J/(g·°C).",
			Answer:    thermo.SensibleHeat(500, thermo.SpecificHeatWater, 85-25),
			Display:   "125400",
			Unit:      "J",
			Tolerance: DefaultTolerance,
			Explanation: "To solve this problem, we use the equation: Q = m·c·ΔT, where Q is thermal energy, m is mass, " +
				"c is specific heat capacity, and ΔT is the temperature change.\n\n" +
				"Q = 500g × 4.18 J/(g·°C) × (85°C - 25°C)\n" +
				"Q = 500g × 4.18 J/(g·°C) × 60°C\n" +
				"Q = 125,400 J = 125.4 kJ",
			Formula: "Q = m·c·ΔT",
			Hint:    "Use the specific heat equation with the given mass and temperature change. Make sure your units are consistent.",
		},
		{
			ID:         "problem2",
			Topic:      TopicEnthalpy,
			Difficulty: DifficultyMedium,
			Question: "Calculate the enthalpy change (in kJ) for the reaction: 2H₂(g) + O₂(g) → 2H₂O(g), if the standard enthalpies of formation are: " +
				"ΔHf°[H₂O(g)] = -241.8 kJ/mol, ΔHf°[H₂(g)] = 0 kJ/mol, and ΔHf°[O₂(g)] = 0 kJ/mol.",
			Answer: thermo.ReactionEnthalpy(
				[]thermo.Formation{{Moles: 2, DeltaH: -241.8}},
				[]thermo.Formation{{Moles: 2, DeltaH: 0}, {Moles: 1, DeltaH: 0}},
			),
			Display:   "-483.6",
			Unit:      "kJ",
			Tolerance: DefaultTolerance,
			Explanation: "To calculate the enthalpy change of a reaction, we use the equation: ΔHrxn = Σ(n × ΔHf°)products - Σ(n × ΔHf°)reactants\n\n" +
				"ΔHrxn = [2 mol × ΔHf°(H₂O(g))] - [2 mol × ΔHf°(H₂(g)) + 1 mol × ΔHf°(O₂(g))]\n" +
				"ΔHrxn = [2 mol × (-241.8 kJ/mol)] - [2 mol × 0 kJ/mol + 1 mol × 0 kJ/mol]\n" +
				"ΔHrxn = -483.6 kJ",
			Formula: "ΔHrxn = Σ(n × ΔHf°)products - Σ(n × ΔHf°)reactants",
			Hint:    "Remember that elements in their standard states have ΔHf° = 0 kJ/mol.",
		},
		{
			ID:         "problem3",
			Topic:      TopicHessLaw,
			Difficulty: DifficultyHard,
			Question: "Calculate the enthalpy of formation of propane (C₃H₈) using the following data:\n" +
				"1. C₃H₈(g) + 5O₂(g) → 3CO₂(g) + 4H₂O(l), ΔH = -2220 kJ\n" +
				"2. C(s) + O₂(g) → CO₂(g), ΔH = -393.5 kJ\n" +
				"3. H₂(g) + ½O₂(g) → H₂O(l), ΔH = -285.8 kJ",
			Answer:    hess.CombinedEnthalpy(propaneSteps),
			Display:   "-103.7",
			Unit:      "kJ/mol",
			Tolerance: DefaultTolerance,
			Explanation: "We need the formation reaction: 3C(s) + 4H₂(g) → C₃H₈(g)\n\n" +
				"Combine the given reactions with Hess's Law:\n" +
				"1. Reverse reaction 1: 3CO₂(g) + 4H₂O(l) → C₃H₈(g) + 5O₂(g), ΔH = +2220 kJ\n" +
				"2. Multiply reaction 2 by 3: 3C(s) + 3O₂(g) → 3CO₂(g), ΔH = 3 × (-393.5) = -1180.5 kJ\n" +
				"3. Multiply reaction 3 by 4: 4H₂(g) + 2O₂(g) → 4H₂O(l), ΔH = 4 × (-285.8) = -1143.2 kJ\n\n" +
				"Adding these equations cancels 3CO₂, 4H₂O and 5O₂, leaving:\n" +
				"3C(s) + 4H₂(g) → C₃H₈(g)\n\n" +
				"ΔHf° = 2220 - 1180.5 - 1143.2 = -103.7 kJ/mol",
			Formula: "ΔHf° = Σ(n × ΔHf°)products - Σ(n × ΔHf°)reactants",
			Hint:    "Use Hess's Law to manipulate the given reactions. You'll need to reverse some reactions and multiply by coefficients.",
		},
		{
			ID:         "problem4",
			Topic:      TopicHeatingCurve,
			Difficulty: DifficultyMedium,
			Question: "How much energy (in kJ) is required to convert 50g of ice at -10°C to steam at 120°C? Use the following data:\n" +
				"- Specific heat capacity of ice = 2.09 J/(g·°C)\n" +
				"- Specific heat capacity of water = 4.18 J/(g·°C)\n" +
				"- Specific heat capacity of steam = 2.01 J/(g·°C)\n" +
				"- Heat of fusion of ice = 334 J/g\n" +
				"- Heat of vaporization of water = 2260 J/g",
			Answer:    thermo.WaterHeatingEnergy(50, -10, 120) / 1000,
			Display:   "153.7",
			Unit:      "kJ",
			Tolerance: DefaultTolerance,
			Explanation: "This problem involves multiple steps in the heating curve:\n\n" +
				"1. Heating ice from -10°C to 0°C: Q₁ = m·c_ice·ΔT = 50g × 2.09 J/(g·°C) × 10°C = 1045 J\n\n" +
				"2. Melting ice at 0°C: Q₂ = m·L_fusion = 50g × 334 J/g = 16700 J\n\n" +
				"3. Heating water from 0°C to 100°C: Q₃ = m·c_water·ΔT = 50g × 4.18 J/(g·°C) × 100°C = 20900 J\n\n" +
				"4. Vaporizing water at 100°C: Q₄ = m·L_vaporization = 50g × 2260 J/g = 113000 J\n\n" +
				"5. Heating steam from 100°C to 120°C: Q₅ = m·c_steam·ΔT = 50g × 2.01 J/(g·°C) × 20°C = 2010 J\n\n" +
				"Total energy = Q₁ + Q₂ + Q₃ + Q₄ + Q₅ = 1045 + 16700 + 20900 + 113000 + 2010 = 153655 J = 153.7 kJ",
			Formula: "Qtotal = m·c_ice·ΔT1 + m·L_fusion + m·c_water·ΔT2 + m·L_vaporization + m·c_steam·ΔT3",
			Hint:    "Break the problem into 5 parts: heating ice, melting ice, heating water, vaporizing water, and heating steam.",
		},
		{
			ID:         "problem5",
			Topic:      TopicKineticTheory,
			Difficulty: DifficultyEasy,
			Question: "Calculate the average kinetic energy (in joules) of oxygen (O₂) gas molecules at 27°C. " +
				"The Boltzmann constant is 1.38 × 10⁻²³ J/K.",
			Answer:  thermo.AverageKineticEnergy(27),
			Display: "6.21e-21",
			Unit:    "J",
			// An absolute 0.1 J would accept any tiny number.
			Tolerance: 0.01e-21,
			Explanation: "The average kinetic energy of gas molecules is given by the equation: KE_avg = (3/2)·k·T, " +
				"where k is the Boltzmann constant and T is the temperature in Kelvin.\n\n" +
				"First, convert temperature to Kelvin: T = 27°C + 273.15 = 300.15 K\n\n" +
				"Then calculate: KE_avg = (3/2) × (1.38 × 10⁻²³ J/K) × 300.15 K\n" +
				"KE_avg = 6.21 × 10⁻²¹ J per molecule",
			Formula: "KE_avg = (3/2)·k·T",
			Hint:    "Remember to convert temperature from Celsius to Kelvin by adding 273.15.",
		},
	}
}

// propaneSteps is the Hess combination that forms propane from its
// elements.
var propaneSteps = []hess.ReactionStep{
	{Equation: "C₃H₈(g) + 5O₂(g) → 3CO₂(g) + 4H₂O(l)", DeltaH: -2220, Reversed: true},
	{Equation: "C(s) + O₂(g) → CO₂(g)", DeltaH: -393.5, Scale: 3},
	{Equation: "H₂(g) + ½O₂(g) → H₂O(l)", DeltaH: -285.8, Scale: 4},
}

// Lookup finds a catalog problem by id.
func Lookup(id string) (Problem, bool) {
	for _, p := range Catalog() {
		if p.ID == id {
			return p, true
		}
	}
	return Problem{}, false
}

// Filter returns the problems in topic, keeping order. TopicAll keeps
// everything.
func Filter(problems []Problem, topic Topic) []Problem {
	if topic == TopicAll || topic == "" {
		return append([]Problem(nil), problems...)
	}
	var out []Problem
	for _, p := range problems {
		if p.Topic == topic {
			out = append(out, p)
		}
	}
	return out
}

// FormulaRef is an entry in the formula reference panel.
type FormulaRef struct {
	Name    string
	Formula string
	Note    string
}

// Formulas returns the reference formulas shown beside the problems.
func Formulas() []FormulaRef {
	return []FormulaRef{
		{Name: "Thermal Energy", Formula: "Q = m·c·ΔT", Note: "m is mass, c is specific heat capacity, ΔT is the temperature change"},
		{Name: "Enthalpy of Reaction", Formula: "ΔH°rxn = ΣΔHf°(products) − ΣΔHf°(reactants)", Note: "multiply each ΔHf° by its coefficient"},
		{Name: "Average Kinetic Energy", Formula: "KE_avg = (3/2)·k·T", Note: "k = 1.38 × 10⁻²³ J/K, T in kelvin"},
	}
}
