package fresnel

// Defaults reproducing the air-to-glass chart.
const (
	N1            = 1.0 // refractive index of air (incidence medium)
	N2            = 1.5 // refractive index of glass (transmission medium)
	SweepSamples  = 100
	SweepStartDeg = 0.0
	SweepEndDeg   = 100.0 // past 90° the tail is non-physical but kept for parity with the axis crop
	PlotOut       = "fresnel_equation_plot.png"
	PlotXMinDeg   = 0.0
	PlotXMaxDeg   = 90.0
	// axis dressing
	tickStepDeg        = 10.0
	brewsterTickDigits = 3 // decimals on the Brewster tick label
	yTickMin           = -0.4
	yTickMax           = 0.8
	yTickStep          = 0.2
)
