package fresnel

import (
	"os"

	"github.com/kniren/gota/dataframe"
	"github.com/kniren/gota/series"
)

// Frame converts the sweep to a dataframe, one row per sampled angle.
func (d *SweepData) Frame() dataframe.DataFrame {
	return dataframe.New(
		series.New(d.Degrees, series.Float, "theta_deg"),
		series.New(d.Reflection, series.Float, "reflection_coefficient"),
		series.New(d.Transmission, series.Float, "transmission_coefficient"),
		series.New(d.Reflectance, series.Float, "reflectance"),
		series.New(d.Transmittance, series.Float, "transmittance"),
	)
}

// WriteCSV writes the sampled sweep as a CSV table with a header row.
func WriteCSV(d *SweepData, path string) error {
	df := d.Frame()
	if df.Err != nil {
		return df.Err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := df.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
