package fresnel

import (
	"fmt"
	"time"
)

// Run executes one full pipeline pass: sample the sweep, render and save
// the chart, then write the optional CSV and report artifacts. When
// cfg.Show is set the chart is displayed in a window after saving.
func Run(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	iface := Interface{N1: cfg.N1, N2: cfg.N2}
	DebugLog("Interface n1=%g n2=%g, Brewster's angle %.3f°",
		iface.N1, iface.N2, radToDeg(iface.BrewsterAngle()))

	start := time.Now()
	data := Sweep(iface, cfg.SweepStartDeg, cfg.SweepEndDeg, cfg.Samples)
	DebugLog("Sampled %d angles over [%g°, %g°] in %s",
		data.Len(), cfg.SweepStartDeg, cfg.SweepEndDeg, time.Since(start))

	img, err := RenderPlot(data, cfg.PlotOut)
	if err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	fmt.Printf("Saved plot: %s\n", cfg.PlotOut)

	if cfg.CSVOut != "" {
		if err := WriteCSV(data, cfg.CSVOut); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
		fmt.Printf("Saved samples: %s\n", cfg.CSVOut)
	}
	if cfg.ReportOut != "" {
		if err := WriteReportFile(data, cfg.ReportOut); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Printf("Saved report: %s\n", cfg.ReportOut)
	}
	if cfg.Show {
		ShowWindow(img)
	}
	return nil
}
