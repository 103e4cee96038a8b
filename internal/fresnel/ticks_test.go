package fresnel

import (
	"strings"
	"testing"
)

func TestDegreeTicks_BrewsterReplacesCrowdedMarks(t *testing.T) {
	brewster := radToDeg(airToGlass().BrewsterAngle())
	ticks := degreeTicks{brewsterDeg: brewster}.Ticks(0, 90)

	want := []float64{0, 10, 20, 30, 40, 56.31, 70, 80, 90}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i, tick := range ticks {
		if !nearly(tick.Value, want[i], 1e-9) {
			t.Errorf("tick %d = %g, want %g", i, tick.Value, want[i])
		}
		if !strings.HasSuffix(tick.Label, "°") {
			t.Errorf("tick %d label %q lacks degree sign", i, tick.Label)
		}
	}
}

func TestDegreeTicks_BrewsterOutsideRangeOmitted(t *testing.T) {
	ticks := degreeTicks{brewsterDeg: 120}.Ticks(0, 90)
	for _, tick := range ticks {
		if tick.Value == 50 || tick.Value == 60 {
			t.Errorf("suppressed mark %g present", tick.Value)
		}
		if tick.Value > 90 {
			t.Errorf("tick %g outside the axis", tick.Value)
		}
	}
}

func TestFixedTicks_GridClippedToAxis(t *testing.T) {
	ticks := fixedTicks{min: yTickMin, max: yTickMax, step: yTickStep}.Ticks(-0.05, 1.05)

	want := []float64{0, 0.2, 0.4, 0.6, 0.8}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i, tick := range ticks {
		if !nearly(tick.Value, want[i], 1e-9) {
			t.Errorf("tick %d = %g, want %g", i, tick.Value, want[i])
		}
	}
}
