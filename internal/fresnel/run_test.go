package fresnel

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.PlotOut = filepath.Join(dir, "plot.png")
	cfg.CSVOut = filepath.Join(dir, "sweep.csv")
	cfg.ReportOut = filepath.Join(dir, "report.md")

	if err := Run(cfg); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	f, err := os.Open(cfg.PlotOut)
	if err != nil {
		t.Fatalf("plot not written: %v", err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("plot is not a PNG: %v", err)
	}

	for _, path := range []string{cfg.CSVOut, cfg.ReportOut} {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("artifact not written: %v", err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("artifact %s is empty", path)
		}
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.N2 = -1
	if err := Run(cfg); err == nil {
		t.Error("want error for invalid config")
	}
}
