package fresnel

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/nao1215/markdown"
)

// WriteReport writes a Markdown summary of the interface: the run
// parameters, Brewster's angle, the normal-incidence values, and an
// energy-conservation check over the physical part of the sweep.
func WriteReport(d *SweepData, w io.Writer) error {
	f := d.Iface
	brewster := f.BrewsterAngle()
	normal := f.Evaluate(0)

	md := markdown.NewMarkdown(w)
	md.H1("Fresnel Interface Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"n1 (incidence medium)", formatReal(f.N1)},
			{"n2 (transmission medium)", formatReal(f.N2)},
			{"Samples", strconv.Itoa(d.Len())},
			{"Sweep", fmt.Sprintf("%g° to %g°", d.Degrees[0], d.Degrees[d.Len()-1])},
		},
	})
	md.PlainText("")

	md.H2("Brewster's Angle")
	md.PlainText(fmt.Sprintf("The reflected amplitude vanishes at atan(n2/n1) = %.4f rad (%.2f°).",
		brewster, radToDeg(brewster)))
	md.PlainText("")

	md.H2("Normal Incidence")
	md.Table(markdown.TableSet{
		Header: []string{"Quantity", "Value"},
		Rows: [][]string{
			{"alpha", formatReal(normal.Alpha)},
			{"beta", formatReal(normal.Beta)},
			{"Reflection coefficient r", formatReal(normal.Reflection)},
			{"Transmission coefficient t", formatReal(normal.Transmission)},
			{"Reflectance R", formatReal(normal.Reflectance)},
			{"Transmittance T", formatReal(normal.Transmittance)},
		},
	})
	md.PlainText("")

	md.H2("Energy Conservation")
	md.PlainText(fmt.Sprintf("Largest |R + T - 1| over finite samples below 90°: %.3g.",
		maxEnergyError(d)))
	return md.Build()
}

// WriteReportFile writes the Markdown summary to path.
func WriteReportFile(d *SweepData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteReport(d, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// maxEnergyError returns the worst deviation of R + T from 1 over the
// physically valid, finite part of the sweep.
func maxEnergyError(d *SweepData) Real {
	var worst Real
	for i := range d.Degrees {
		if d.Degrees[i] >= 90 {
			break
		}
		sum := d.Reflectance[i] + d.Transmittance[i]
		if !isFinite(sum) {
			continue
		}
		if dev := math.Abs(sum - 1); dev > worst {
			worst = dev
		}
	}
	return worst
}

func formatReal(v Real) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
