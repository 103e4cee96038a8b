package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optics-go/fresnelplot/internal/fresnel"
)

// NewRootCmd creates the root command for fresnelplot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fresnelplot",
		Short: "Plot the Fresnel equations for a planar optical interface",
		Long: `fresnelplot evaluates the Fresnel equations (parallel polarization,
Griffiths eqs. 9.106-9.116) for light incident from one medium onto
another and renders a two-panel chart: reflection/transmission amplitude
coefficients on the left, reflectance/transmittance on the right, both
against the angle of incidence, with Brewster's angle marked.

Run with no flags for the air-to-glass chart (n1=1.0, n2=1.5) saved as
fresnel_equation_plot.png in the working directory.`,
		Args:          cobra.NoArgs,
		RunE:          runRootCmd,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringP("config", "c", "", "JSON configuration file")
	cmd.Flags().StringP("out", "o", "", "output PNG path (default "+fresnel.PlotOut+")")
	cmd.Flags().String("csv", "", "also write the sampled sweep as CSV to this path")
	cmd.Flags().String("report", "", "also write a Markdown summary to this path")
	cmd.Flags().Bool("show", false, "display the chart in a window after saving")
	cmd.Flags().Float64("n1", fresnel.N1, "refractive index of the incidence medium")
	cmd.Flags().Float64("n2", fresnel.N2, "refractive index of the transmission medium")
	cmd.Flags().Int("samples", fresnel.SweepSamples, "number of angle samples")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd loads the configuration, applies flag overrides, and runs
// the sample-render-export pipeline.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	fresnel.Debug = verbose

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := fresnel.LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	// Explicit flags win over the config file.
	if cmd.Flags().Changed("n1") {
		cfg.N1, _ = cmd.Flags().GetFloat64("n1")
	}
	if cmd.Flags().Changed("n2") {
		cfg.N2, _ = cmd.Flags().GetFloat64("n2")
	}
	if cmd.Flags().Changed("samples") {
		cfg.Samples, _ = cmd.Flags().GetInt("samples")
	}
	if cmd.Flags().Changed("out") {
		cfg.PlotOut, _ = cmd.Flags().GetString("out")
	}
	if cmd.Flags().Changed("csv") {
		cfg.CSVOut, _ = cmd.Flags().GetString("csv")
	}
	if cmd.Flags().Changed("report") {
		cfg.ReportOut, _ = cmd.Flags().GetString("report")
	}
	if cmd.Flags().Changed("show") {
		cfg.Show, _ = cmd.Flags().GetBool("show")
	}

	return fresnel.Run(cfg)
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
