package thermo

// SampleReaction is a preset for the reaction diagram. Loading it sets the
// reactant energy to 0 and the product energy to DeltaH.
type SampleReaction struct {
	Key      string  `json:"key"`
	Name     string  `json:"name"`
	Equation string  `json:"equation"`
	DeltaH   float64 `json:"deltaH"`
}

var samples = []SampleReaction{
	{Key: "combustion", Name: "Methane Combustion", Equation: "CH₄ + 2O₂ → CO₂ + 2H₂O", DeltaH: -890},
	{Key: "neutralization", Name: "Acid-Base Neutralization", Equation: "HCl + NaOH → NaCl + H₂O", DeltaH: -56.2},
	{Key: "photosynthesis", Name: "Photosynthesis", Equation: "6CO₂ + 6H₂O → C₆H₁₂O₆ + 6O₂", DeltaH: 2802},
	{Key: "decomposition", Name: "Calcium Carbonate Decomposition", Equation: "CaCO₃ → CaO + CO₂", DeltaH: 178},
}

// Samples returns the preset reactions in display order.
func Samples() []SampleReaction {
	out := make([]SampleReaction, len(samples))
	copy(out, samples)
	return out
}

// LookupSample finds a preset by key.
func LookupSample(key string) (SampleReaction, bool) {
	for _, s := range samples {
		if s.Key == key {
			return s, true
		}
	}
	return SampleReaction{}, false
}

// Apply returns cfg with the sample's energies loaded.
func (s SampleReaction) Apply(cfg DiagramConfig) DiagramConfig {
	cfg.ReactantEnergy = 0
	cfg.ProductEnergy = s.DeltaH
	return cfg
}
