package fresnel

import (
	"gonum.org/v1/gonum/floats"
)

// SweepData holds a sampled sweep over the angle of incidence as parallel
// slices, all of equal length and in ascending angle order. Non-physical
// samples (grazing incidence, past the critical angle) carry the raw
// Inf/NaN the formulas produce; consumers decide what to do with them.
type SweepData struct {
	Iface         Interface
	Degrees       []Real
	Reflection    []Real
	Transmission  []Real
	Reflectance   []Real
	Transmittance []Real
}

// Sweep samples n angles evenly spaced in degrees over [startDeg, endDeg]
// inclusive at both ends and evaluates the interface at each one.
func Sweep(f Interface, startDeg, endDeg Real, n int) *SweepData {
	d := &SweepData{
		Iface:         f,
		Degrees:       make([]Real, n),
		Reflection:    make([]Real, n),
		Transmission:  make([]Real, n),
		Reflectance:   make([]Real, n),
		Transmittance: make([]Real, n),
	}
	floats.Span(d.Degrees, startDeg, endDeg)
	for i, deg := range d.Degrees {
		s := f.Evaluate(degToRad(deg))
		d.Reflection[i] = s.Reflection
		d.Transmission[i] = s.Transmission
		d.Reflectance[i] = s.Reflectance
		d.Transmittance[i] = s.Transmittance
	}
	return d
}

// Len returns the number of samples in the sweep.
func (d *SweepData) Len() int { return len(d.Degrees) }
