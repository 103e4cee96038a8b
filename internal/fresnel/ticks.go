package fresnel

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/plot"
)

// degreeTicks labels the incidence axis with a tick every 10° plus one at
// Brewster's angle. The 50° and 60° marks are dropped so the Brewster
// tick does not collide with them (it sits between the two for common
// glass-like indices).
type degreeTicks struct {
	brewsterDeg Real
}

func (dt degreeTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := math.Ceil(min/tickStepDeg) * tickStepDeg; v <= max; v += tickStepDeg {
		if v == 50 || v == 60 {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%g°", v)})
	}
	pow := math.Pow(10, brewsterTickDigits)
	bw := math.Round(dt.brewsterDeg*pow) / pow
	if bw > min && bw < max {
		ticks = append(ticks, plot.Tick{Value: bw, Label: fmt.Sprintf("%g°", bw)})
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i].Value < ticks[j].Value })
	return ticks
}

// fixedTicks places ticks on a fixed arithmetic grid, clipped to the
// axis range.
type fixedTicks struct {
	min, max, step float64
}

func (ft fixedTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for v := ft.min; v <= ft.max+ft.step/2; v += ft.step {
		r := math.Round(v/ft.step) * ft.step
		if r < min || r > max {
			continue
		}
		ticks = append(ticks, plot.Tick{Value: r, Label: fmt.Sprintf("%.1f", r)})
	}
	return ticks
}
