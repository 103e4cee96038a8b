package fresnel

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderPlot_WritesDecodablePNG(t *testing.T) {
	d := Sweep(airToGlass(), SweepStartDeg, SweepEndDeg, SweepSamples)
	path := filepath.Join(t.TempDir(), "fresnel.png")

	img, err := RenderPlot(d, path)
	if err != nil {
		t.Fatalf("RenderPlot error: %v", err)
	}
	if img == nil || img.Bounds().Dx() == 0 || img.Bounds().Dy() == 0 {
		t.Fatal("returned image is empty")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open saved plot: %v", err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("saved plot is not a PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("file bounds %v != returned bounds %v", decoded.Bounds(), img.Bounds())
	}
}

func TestRenderPlot_BadPath(t *testing.T) {
	d := Sweep(airToGlass(), 0, 90, 10)
	if _, err := RenderPlot(d, filepath.Join(t.TempDir(), "no", "such", "dir", "p.png")); err == nil {
		t.Error("want error for unwritable path")
	}
}

func TestFiniteXYs_DropsNonFiniteSamples(t *testing.T) {
	xs := []Real{0, 10, 20, 30, 40}
	ys := []Real{0.5, math.NaN(), 0.7, math.Inf(1), 0.9}

	pts := finiteXYs(xs, ys)
	if len(pts) != 3 {
		t.Fatalf("got %d points, want 3", len(pts))
	}
	for _, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			t.Errorf("non-finite point survived: %+v", p)
		}
	}
}
