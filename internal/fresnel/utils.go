package fresnel

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func degToRad(d Real) Real { return d * math.Pi / 180 }

func radToDeg(r Real) Real { return r * 180 / math.Pi }
