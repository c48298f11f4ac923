package thermo

import (
	"testing"

	"github.com/abhisek/thermoviz/internal/hess"
)

func TestComputeHessPath_MatchesCombinedEnthalpy(t *testing.T) {
	for _, ex := range hess.Examples() {
		flipped := make([]hess.ReactionStep, len(ex.Steps))
		for i, st := range ex.Steps {
			st.Reversed = true
			st.Scale = 2
			flipped[i] = st
		}
		for _, steps := range [][]hess.ReactionStep{ex.Steps, flipped} {
			path := ComputeHessPath(steps, 600)
			if len(path.Points) != len(steps)+1 {
				t.Fatalf("%s: got %d points, want %d", ex.ID, len(path.Points), len(steps)+1)
			}
			want := hess.CombinedEnthalpy(steps)
			if path.Final != want || path.Points[len(steps)].Energy != want {
				t.Errorf("%s: final = %v, want exactly %v", ex.ID, path.Final, want)
			}
		}
	}
}

func TestComputeHessPath_Layout(t *testing.T) {
	steps := []hess.ReactionStep{
		{Equation: "A → B", DeltaH: -100},
		{Equation: "B → C", DeltaH: 40},
		{Equation: "C → D", DeltaH: 0},
	}
	path := ComputeHessPath(steps, 300)

	wantX := []float64{0, 100, 200, 300}
	wantE := []float64{0, -100, -60, -60}
	for i, p := range path.Points {
		if p.Position != wantX[i] || p.Energy != wantE[i] {
			t.Errorf("point %d = (%v, %v), want (%v, %v)", i, p.Position, p.Energy, wantX[i], wantE[i])
		}
	}
	if path.Points[0].Label != "Initial" || path.Points[2].Label != "Step 2" {
		t.Errorf("labels = %q, %q", path.Points[0].Label, path.Points[2].Label)
	}
	if path.Points[0].Color != ColorStart || path.Points[1].Color != ColorMiddle || path.Points[3].Color != ColorEnd {
		t.Errorf("point colours = %s %s %s", path.Points[0].Color, path.Points[1].Color, path.Points[3].Color)
	}

	if len(path.Arrows) != 3 {
		t.Fatalf("got %d arrows, want 3", len(path.Arrows))
	}
	down, up, none := path.Arrows[0], path.Arrows[1], path.Arrows[2]
	if down.Direction != DirectionDown || down.Color != ColorReleasing || down.Label != "ΔH = -100.0 kJ" {
		t.Errorf("first arrow = %+v", down)
	}
	if up.Direction != DirectionUp || up.Color != ColorAbsorbing || up.Label != "ΔH = +40.0 kJ" {
		t.Errorf("second arrow = %+v", up)
	}
	if up.X != 150 {
		t.Errorf("arrow x = %v, want midpoint 150", up.X)
	}
	if none.Direction != DirectionNone || none.Label != "" {
		t.Errorf("zero step arrow = %+v", none)
	}
	if path.Range != (EnergyRange{Min: -150, Max: 50}) {
		t.Errorf("Range = %+v", path.Range)
	}
}

func TestComputeHessPath_NormalisedPositions(t *testing.T) {
	steps := []hess.ReactionStep{{DeltaH: 1}, {DeltaH: 1}, {DeltaH: 1}, {DeltaH: 1}}
	path := ComputeHessPath(steps, 0)
	if got := path.Points[2].Position; got != 0.5 {
		t.Errorf("position = %v, want 0.5", got)
	}
	if got := path.Points[4].Position; got != 1 {
		t.Errorf("last position = %v, want 1", got)
	}
}

func TestComputeHessPath_Empty(t *testing.T) {
	path := ComputeHessPath(nil, 100)
	if len(path.Points) != 1 || path.Final != 0 || len(path.Arrows) != 0 {
		t.Errorf("empty path = %+v", path)
	}
	if path.Range != (EnergyRange{Min: -50, Max: 50}) {
		t.Errorf("Range = %+v", path.Range)
	}
}

func TestComputeHessPath_ReversedStep(t *testing.T) {
	steps := []hess.ReactionStep{{DeltaH: -802.3, Reversed: true}}
	path := ComputeHessPath(steps, 1)
	if path.Final != 802.3 || path.Arrows[0].Direction != DirectionUp {
		t.Errorf("reversed step path = %+v", path)
	}
}

func TestPartialHessPaths(t *testing.T) {
	ex, _ := hess.Lookup("ch4")
	stages := PartialHessPaths(ex.Steps, 300)
	if len(stages) != 3 {
		t.Fatalf("got %d stages, want 3", len(stages))
	}
	for i, n := range []int{2, 3, 4} {
		if len(stages[i].Points) != n {
			t.Errorf("stage %d has %d points, want %d", i, len(stages[i].Points), n)
		}
	}

	two := PartialHessPaths(ex.Steps[:2], 300)
	if len(two) != 2 {
		t.Errorf("two-step example gave %d stages, want 2", len(two))
	}
}
