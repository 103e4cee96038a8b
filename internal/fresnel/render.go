package fresnel

import (
	"image"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	plotWidth  = 12 * vg.Inch
	plotHeight = 6 * vg.Inch
	lineWidth  = 2 // points
)

var (
	reflectColor  = color.RGBA{B: 0xff, A: 0xff}          // blue
	transmitColor = color.RGBA{R: 0xff, G: 0xa5, A: 0xff} // orange
	guideColor    = color.RGBA{G: 0x80, A: 0xff}          // dashed guide lines
)

// curve is one plotted series within a panel.
type curve struct {
	label  string
	values []Real
	color  color.Color
}

// RenderPlot draws the two-panel Fresnel chart (amplitude coefficients on
// the left, power fractions on the right) and writes it as a PNG to path.
// The rendered image is also returned so callers can display it without
// re-reading the file.
func RenderPlot(data *SweepData, path string) (image.Image, error) {
	brewsterDeg := radToDeg(data.Iface.BrewsterAngle())

	left, err := newPanel(panelSpec{
		title:  "Reflection and Transmission Coefficients\nvs Angle of Incidence θi",
		yLabel: "Reflection/Transmission Coefficients",
		yMin:   -0.4, yMax: 1.0,
		brewsterDeg: brewsterDeg,
		degrees:     data.Degrees,
		curves: []curve{
			{"Reflection coefficient r", data.Reflection, reflectColor},
			{"Transmission coefficient t", data.Transmission, transmitColor},
		},
	})
	if err != nil {
		return nil, err
	}
	right, err := newPanel(panelSpec{
		title:  "Reflectance and Transmittance\nvs Angle of Incidence θi",
		yLabel: "Reflectance/Transmittance",
		yMin:   -0.05, yMax: 1.05,
		brewsterDeg: brewsterDeg,
		degrees:     data.Degrees,
		curves: []curve{
			{"Reflectance R", data.Reflectance, reflectColor},
			{"Transmittance T", data.Transmittance, transmitColor},
		},
	})
	if err != nil {
		return nil, err
	}

	img := vgimg.New(plotWidth, plotHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 2,
		PadX: vg.Millimeter * 8, PadTop: vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2, PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(plots, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	w, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		_ = w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return img.Image(), nil
}

type panelSpec struct {
	title       string
	yLabel      string
	yMin, yMax  Real
	brewsterDeg Real
	degrees     []Real
	curves      []curve
}

func newPanel(spec panelSpec) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = spec.title
	p.Title.Padding = vg.Points(10)
	p.X.Label.Text = "Angle of Incidence θi"
	p.Y.Label.Text = spec.yLabel
	p.X.Min, p.X.Max = PlotXMinDeg, PlotXMaxDeg
	p.Y.Min, p.Y.Max = spec.yMin, spec.yMax
	p.X.Tick.Marker = degreeTicks{brewsterDeg: spec.brewsterDeg}
	p.Y.Tick.Marker = fixedTicks{min: yTickMin, max: yTickMax, step: yTickStep}
	p.Add(plotter.NewGrid())

	for _, c := range spec.curves {
		l, err := plotter.NewLine(finiteXYs(spec.degrees, c.values))
		if err != nil {
			return nil, err
		}
		l.LineStyle.Width = vg.Points(lineWidth)
		l.LineStyle.Color = c.color
		p.Add(l)
		p.Legend.Add(c.label, l)
	}

	// zero reference and Brewster guide, as in the reference chart
	zero, err := guideLine(plotter.XYs{
		{X: PlotXMinDeg, Y: 0}, {X: PlotXMaxDeg, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	brewster, err := guideLine(plotter.XYs{
		{X: spec.brewsterDeg, Y: spec.yMin}, {X: spec.brewsterDeg, Y: spec.yMax},
	})
	if err != nil {
		return nil, err
	}
	p.Add(zero, brewster)

	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: 33, Y: 0.2}},
		Labels: []string{"Brewster's angle θB"},
	})
	if err != nil {
		return nil, err
	}
	p.Add(note)

	p.Legend.Top = true
	return p, nil
}

func guideLine(pts plotter.XYs) (*plotter.Line, error) {
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Width = vg.Points(1)
	l.LineStyle.Color = guideColor
	l.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}
	return l, nil
}

// finiteXYs pairs angles with values, skipping any non-finite sample
// (grazing incidence and the past-critical tail of the sweep).
func finiteXYs(xs, ys []Real) plotter.XYs {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	return pts
}
