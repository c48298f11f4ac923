package hess

// Walkthrough is the interactive state for one example: which steps are
// reversed or scaled and how far the learner has advanced.
type Walkthrough struct {
	example  Example
	reversed []bool
	scales   []float64
	step     int
}

// NewWalkthrough starts a walkthrough with every step as written.
func NewWalkthrough(e Example) *Walkthrough {
	w := &Walkthrough{example: e}
	w.Reset()
	return w
}

// Example returns the example being worked.
func (w *Walkthrough) Example() Example { return w.example }

// Select switches to another example and resets all state.
func (w *Walkthrough) Select(e Example) {
	w.example = e
	w.Reset()
}

// Reset clears reversals, multipliers and the active step.
func (w *Walkthrough) Reset() {
	n := len(w.example.Steps)
	w.reversed = make([]bool, n)
	w.scales = make([]float64, n)
	for i := range w.scales {
		w.scales[i] = 1
	}
	w.step = 0
}

// ActiveStep is how many steps have been revealed, 0..len(steps).
func (w *Walkthrough) ActiveStep() int { return w.step }

// Next advances one step, stopping at the last.
func (w *Walkthrough) Next() {
	if w.step < len(w.example.Steps) {
		w.step++
	}
}

// Back goes back one step, stopping at zero.
func (w *Walkthrough) Back() {
	if w.step > 0 {
		w.step--
	}
}

// Done reports whether every step has been revealed.
func (w *Walkthrough) Done() bool { return w.step >= len(w.example.Steps) }

// ToggleReverse flips step i. Out of range indexes are ignored.
func (w *Walkthrough) ToggleReverse(i int) {
	if i < 0 || i >= len(w.reversed) {
		return
	}
	w.reversed[i] = !w.reversed[i]
}

// SetReversed sets step i's reversed flag directly.
func (w *Walkthrough) SetReversed(i int, v bool) {
	if i < 0 || i >= len(w.reversed) {
		return
	}
	w.reversed[i] = v
}

// CycleScale moves step i to the next multiplier.
func (w *Walkthrough) CycleScale(i int) {
	if i < 0 || i >= len(w.scales) {
		return
	}
	w.scales[i] = NextScale(w.scales[i])
}

// SetScale sets step i's multiplier. Non-positive values mean 1.
func (w *Walkthrough) SetScale(i int, m float64) {
	if i < 0 || i >= len(w.scales) {
		return
	}
	if m <= 0 {
		m = 1
	}
	w.scales[i] = m
}

// Steps returns the example's steps with the learner's choices applied.
func (w *Walkthrough) Steps() []ReactionStep {
	out := make([]ReactionStep, len(w.example.Steps))
	for i, s := range w.example.Steps {
		s.Reversed = w.reversed[i]
		s.Scale = w.scales[i]
		out[i] = s
	}
	return out
}

// Combined is the current total enthalpy of all steps.
func (w *Walkthrough) Combined() float64 {
	return CombinedEnthalpy(w.Steps())
}

// Matches reports whether the current combination reaches the target.
func (w *Walkthrough) Matches() bool {
	_, ok := w.example.Check(w.Steps())
	return ok
}
