package fresnel

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config describes one run. Every field is optional in the JSON file;
// zero values fall back to the air-to-glass defaults from const.go.
type Config struct {
	N1            Real   `json:"n1,omitempty"`
	N2            Real   `json:"n2,omitempty"`
	Samples       int    `json:"samples,omitempty"`
	SweepStartDeg Real   `json:"sweepStartDeg,omitempty"`
	SweepEndDeg   Real   `json:"sweepEndDeg,omitempty"`
	PlotOut       string `json:"plotOut,omitempty"`
	CSVOut        string `json:"csvOut,omitempty"`    // empty disables the CSV artifact
	ReportOut     string `json:"reportOut,omitempty"` // empty disables the Markdown report
	Show          bool   `json:"show,omitempty"`      // display the chart in a window after saving
}

// DefaultConfig returns the configuration of a flagless run: air to
// glass, 100 samples over [0°, 100°], PNG in the working directory.
func DefaultConfig() *Config {
	return &Config{
		N1:            N1,
		N2:            N2,
		Samples:       SweepSamples,
		SweepStartDeg: SweepStartDeg,
		SweepEndDeg:   SweepEndDeg,
		PlotOut:       PlotOut,
	}
}

// LoadConfig reads a JSON config from path and fills defaults for any
// field left at its zero value. An empty path yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.N1 == 0 {
		cfg.N1 = N1
	}
	if cfg.N2 == 0 {
		cfg.N2 = N2
	}
	if cfg.Samples <= 0 {
		cfg.Samples = SweepSamples
	}
	if cfg.SweepEndDeg == 0 {
		cfg.SweepEndDeg = SweepEndDeg
	}
	if cfg.PlotOut == "" {
		cfg.PlotOut = PlotOut
	}
	DebugLog("Loaded config from %s: n1=%g, n2=%g, samples=%d, sweep=[%g°, %g°], out=%s",
		path, cfg.N1, cfg.N2, cfg.Samples, cfg.SweepStartDeg, cfg.SweepEndDeg, cfg.PlotOut)
	return &cfg, nil
}

// Validate rejects configurations the formulas or the renderer cannot
// meaningfully process.
func (c *Config) Validate() error {
	if err := (Interface{N1: c.N1, N2: c.N2}).Validate(); err != nil {
		return err
	}
	if c.Samples < 2 {
		return fmt.Errorf("samples must be >= 2, got %d", c.Samples)
	}
	if c.SweepEndDeg <= c.SweepStartDeg {
		return fmt.Errorf("sweep end %g° must be past start %g°", c.SweepEndDeg, c.SweepStartDeg)
	}
	if c.SweepStartDeg < 0 {
		return fmt.Errorf("sweep start must be >= 0°, got %g°", c.SweepStartDeg)
	}
	if c.PlotOut == "" {
		return fmt.Errorf("plot output path is empty")
	}
	return nil
}
