package gesture

import (
	"math"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		name        string
		target      int
		boundNear   int
		unitExtent  int
		wantFull    int
		wantPartial float64
	}{
		{"two and a half units", 2120, 120, 800, 2, 400},
		{"exact multiple", 1720, 120, 800, 2, 0},
		{"under one unit", 520, 120, 800, 0, 400},
		{"target at bound", 120, 120, 800, 0, 0},
		{"target before bound", 100, 120, 800, 0, 0},
		{"tiny residual", 170, 120, 800, 0, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Decompose(tt.target, tt.boundNear, tt.unitExtent, AxisVertical)
			if p.FullSwipes != tt.wantFull {
				t.Errorf("FullSwipes = %d, want %d", p.FullSwipes, tt.wantFull)
			}
			if math.Abs(p.Partial-tt.wantPartial) > 1e-9 {
				t.Errorf("Partial = %v, want %v", p.Partial, tt.wantPartial)
			}
		})
	}
}

func TestDecomposeAxisSymmetry(t *testing.T) {
	v := Decompose(1500, 100, 600, AxisVertical)
	h := Decompose(1500, 100, 600, AxisHorizontal)
	if v.FullSwipes != h.FullSwipes || v.Partial != h.Partial {
		t.Errorf("decomposition differs across axes: %+v vs %+v", v, h)
	}
	if v.Axis != AxisVertical || h.Axis != AxisHorizontal {
		t.Error("axis not carried through")
	}
}

func TestDecomposeZeroUnitExtent(t *testing.T) {
	p := Decompose(500, 100, 0, AxisVertical)
	if p.FullSwipes != 0 || p.Partial != 0 {
		t.Errorf("degenerate unit extent should yield empty plan, got %+v", p)
	}
}

func TestNeedsPartialThreshold(t *testing.T) {
	// At the threshold the partial is suppressed; a short drag reads as a
	// tap, which could activate whatever is under the finger.
	at := SwipePlan{Partial: 50}
	if at.NeedsPartial(50) {
		t.Error("partial equal to threshold must be suppressed")
	}
	above := SwipePlan{Partial: 50.1}
	if !above.NeedsPartial(50) {
		t.Error("partial above threshold must execute")
	}
	zero := SwipePlan{}
	if zero.NeedsPartial(50) {
		t.Error("zero partial must be suppressed")
	}
}
