package hess

// Solution is the worked answer for an example.
type Solution struct {
	Steps         []string `json:"steps"`
	FinalEquation string   `json:"finalEquation"`
	FinalDeltaH   string   `json:"finalDeltaH"`
}

// Example is a Hess's Law exercise: combine Steps to reach TargetDeltaH.
type Example struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	TargetReaction string         `json:"targetReaction"`
	TargetDeltaH   float64        `json:"targetDeltaH"`
	Tolerance      float64        `json:"tolerance"`
	Steps          []ReactionStep `json:"steps"`
	Solution       Solution       `json:"solution"`
}

// Check reports the combined enthalpy of steps and whether it hits the
// example's target.
func (e Example) Check(steps []ReactionStep) (float64, bool) {
	combined := CombinedEnthalpy(steps)
	tol := e.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	return combined, IsWithinTarget(combined, e.TargetDeltaH, tol)
}

var examples = []Example{
	{
		ID:             "co2",
		Title:          "Formation of CO₂ from C and O₂",
		TargetReaction: "C(s) + O₂(g) → CO₂(g)",
		TargetDeltaH:   -393.5,
		Tolerance:      DefaultTolerance,
		Steps: []ReactionStep{
			{
				Equation:    "C(s) + ½O₂(g) → CO(g)",
				DeltaH:      -110.5,
				Description: "First, we have a reaction that produces carbon monoxide.",
			},
			{
				Equation:    "CO(g) + ½O₂(g) → CO₂(g)",
				DeltaH:      -283.0,
				Description: "Then, we have a reaction that converts carbon monoxide to carbon dioxide.",
			},
		},
		Solution: Solution{
			Steps: []string{
				"Step 1: C(s) + ½O₂(g) → CO(g), ΔH = -110.5 kJ/mol",
				"Step 2: CO(g) + ½O₂(g) → CO₂(g), ΔH = -283.0 kJ/mol",
				"Add steps: C(s) + ½O₂(g) + CO(g) + ½O₂(g) → CO(g) + CO₂(g)",
			},
			FinalEquation: "C(s) + O₂(g) → CO₂(g)",
			FinalDeltaH:   "-110.5 + (-283.0) = -393.5 kJ/mol",
		},
	},
	{
		ID:             "ch4",
		Title:          "Formation of CH₄ from C and H₂",
		TargetReaction: "C(s) + 2H₂(g) → CH₄(g)",
		TargetDeltaH:   -74.8,
		Tolerance:      DefaultTolerance,
		Steps: []ReactionStep{
			{
				Equation:    "C(s) + O₂(g) → CO₂(g)",
				DeltaH:      -393.5,
				Description: "First, we have the combustion of carbon.",
			},
			{
				Equation:    "2H₂(g) + O₂(g) → 2H₂O(g)",
				DeltaH:      -483.6,
				Description: "Then, we have the formation of water from hydrogen and oxygen.",
			},
			{
				Equation:    "CH₄(g) + 2O₂(g) → CO₂(g) + 2H₂O(g)",
				DeltaH:      -802.3,
				Description: "Finally, we have the combustion of methane.",
			},
		},
		Solution: Solution{
			Steps: []string{
				"Step 1: Keep first reaction as is: C(s) + O₂(g) → CO₂(g), ΔH = -393.5 kJ/mol",
				"Step 2: Keep second reaction as is: 2H₂(g) + O₂(g) → 2H₂O(g), ΔH = -483.6 kJ/mol",
				"Step 3: Reverse third reaction: CO₂(g) + 2H₂O(g) → CH₄(g) + 2O₂(g), ΔH = +802.3 kJ/mol",
				"Add steps: C(s) + O₂(g) + 2H₂(g) + O₂(g) + CO₂(g) + 2H₂O(g) → CO₂(g) + 2H₂O(g) + CH₄(g) + 2O₂(g)",
			},
			FinalEquation: "C(s) + 2H₂(g) → CH₄(g)",
			FinalDeltaH:   "-393.5 + (-483.6) + (+802.3) = -74.8 kJ/mol",
		},
	},
	{
		ID:             "n2o4",
		Title:          "Formation of N₂O₄ from NO₂",
		TargetReaction: "2NO₂(g) → N₂O₄(g)",
		TargetDeltaH:   -57.2,
		Tolerance:      DefaultTolerance,
		Steps: []ReactionStep{
			{
				Equation:    "½N₂(g) + O₂(g) → NO₂(g)",
				DeltaH:      33.2,
				Description: "First, we have the formation of nitrogen dioxide from nitrogen and oxygen.",
			},
			{
				Equation:    "N₂(g) + 2O₂(g) → N₂O₄(g)",
				DeltaH:      9.2,
				Description: "Then, we have the direct formation of dinitrogen tetroxide.",
			},
		},
		Solution: Solution{
			Steps: []string{
				"Step 1: Reverse the first reaction and multiply by 2: 2NO₂(g) → N₂(g) + 2O₂(g), ΔH = -66.4 kJ/mol",
				"Step 2: Keep the second reaction: N₂(g) + 2O₂(g) → N₂O₄(g), ΔH = +9.2 kJ/mol",
				"Add steps: 2NO₂(g) + N₂(g) + 2O₂(g) → N₂(g) + 2O₂(g) + N₂O₄(g)",
			},
			FinalEquation: "2NO₂(g) → N₂O₄(g)",
			FinalDeltaH:   "-66.4 + 9.2 = -57.2 kJ/mol",
		},
	},
}

// Examples returns the built-in exercises in display order. The returned
// slice and its steps are copies.
func Examples() []Example {
	out := make([]Example, len(examples))
	for i, e := range examples {
		out[i] = e.clone()
	}
	return out
}

// Lookup finds an example by ID.
func Lookup(id string) (Example, bool) {
	for _, e := range examples {
		if e.ID == id {
			return e.clone(), true
		}
	}
	return Example{}, false
}

func (e Example) clone() Example {
	e.Steps = append([]ReactionStep(nil), e.Steps...)
	e.Solution.Steps = append([]string(nil), e.Solution.Steps...)
	return e
}
