package fresnel

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteReport_SummarizesInterface(t *testing.T) {
	d := Sweep(airToGlass(), SweepStartDeg, SweepEndDeg, SweepSamples)
	var buf bytes.Buffer

	if err := WriteReport(d, &buf); err != nil {
		t.Fatalf("WriteReport error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Fresnel Interface Report",
		"## Brewster's Angle",
		"56.31",
		"## Normal Incidence",
		"## Energy Conservation",
		"1.5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWriteReportFile_CreatesFile(t *testing.T) {
	d := Sweep(airToGlass(), 0, 90, 10)
	path := filepath.Join(t.TempDir(), "report.md")

	if err := WriteReportFile(d, path); err != nil {
		t.Fatalf("WriteReportFile error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("report file is empty")
	}
}

func TestMaxEnergyError_AirToGlass(t *testing.T) {
	d := Sweep(airToGlass(), SweepStartDeg, SweepEndDeg, SweepSamples)
	if worst := maxEnergyError(d); worst > eps {
		t.Errorf("max |R+T-1| = %g, want <= %g", worst, eps)
	}
}
