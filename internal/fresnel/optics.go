package fresnel

import (
	"fmt"
	"math"
)

type Real = float64

// Interface is a planar boundary between two optical media. N1 is the
// refractive index of the incidence medium, N2 of the transmission
// medium. Both must be > 0.
type Interface struct {
	N1 Real
	N2 Real
}

// Sample holds every derived quantity at a single angle of incidence.
type Sample struct {
	ThetaI        Real // angle of incidence, radians
	Alpha         Real // cos(theta_t)/cos(theta_i) via Snell's law
	Beta          Real // n2/n1
	Reflection    Real // amplitude reflection coefficient r
	Transmission  Real // amplitude transmission coefficient t
	Reflectance   Real // R = r^2
	Transmittance Real // T = alpha*beta*t^2
}

// AlphaBeta returns the two ratios the Fresnel coefficients are built from
// (Griffiths, Introduction to Electrodynamics, eqs. 9.106 and 9.108):
// alpha = sqrt(1-((n1/n2) sin theta)^2)/cos theta, beta = n2/n1.
// At theta = pi/2 alpha diverges (cos = 0); past the critical angle the
// radicand goes negative and alpha is NaN. Both propagate unchanged.
func (f Interface) AlphaBeta(thetaI Real) (alpha, beta Real) {
	s := (f.N1 / f.N2) * math.Sin(thetaI)
	alpha = math.Sqrt(1-s*s) / math.Cos(thetaI)
	beta = f.N2 / f.N1
	return alpha, beta
}

// Coefficients returns the amplitude reflection and transmission
// coefficients r = (alpha-beta)/(alpha+beta) and t = 2/(alpha+beta)
// (eq. 9.109). r vanishes at Brewster's angle where alpha = beta.
func (f Interface) Coefficients(thetaI Real) (r, t Real) {
	alpha, beta := f.AlphaBeta(thetaI)
	r = (alpha - beta) / (alpha + beta)
	t = 2 / (alpha + beta)
	return r, t
}

// Power returns reflectance R = r^2 and transmittance T = alpha*beta*t^2,
// the reflected and transmitted fractions of the incident power
// (eqs. 9.115 and 9.116). R + T = 1 wherever the inputs are real valued.
func (f Interface) Power(thetaI Real) (R, T Real) {
	alpha, beta := f.AlphaBeta(thetaI)
	r := (alpha - beta) / (alpha + beta)
	t := 2 / (alpha + beta)
	return r * r, alpha * beta * t * t
}

// Evaluate computes every derived quantity at one angle of incidence.
func (f Interface) Evaluate(thetaI Real) Sample {
	alpha, beta := f.AlphaBeta(thetaI)
	r := (alpha - beta) / (alpha + beta)
	t := 2 / (alpha + beta)
	return Sample{
		ThetaI:        thetaI,
		Alpha:         alpha,
		Beta:          beta,
		Reflection:    r,
		Transmission:  t,
		Reflectance:   r * r,
		Transmittance: alpha * beta * t * t,
	}
}

// BrewsterAngle returns atan(n2/n1) in radians, the incidence angle at
// which the reflected amplitude vanishes.
func (f Interface) BrewsterAngle() Real {
	return math.Atan(f.N2 / f.N1)
}

func (f Interface) Validate() error {
	if f.N1 <= 0 || f.N2 <= 0 {
		return fmt.Errorf("refractive indices must be > 0, got n1=%v n2=%v", f.N1, f.N2)
	}
	return nil
}
