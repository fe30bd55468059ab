package main

import (
	"errors"
	"io"

	"github.com/dshills/trayimpact/internal/impact"
	"github.com/dshills/trayimpact/internal/logging"
	"github.com/dshills/trayimpact/internal/render"
	"github.com/spf13/cobra"
)

type computeFlags struct {
	state impact.NodeState
	cfg   impact.Config
	outputFlags
}

func newComputeCmd() *cobra.Command {
	f := &computeFlags{}

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the mass avoided and impact score of one node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.OutOrStdout(), f)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&f.state.BaselineMassKg, "baseline-kg", 0, "Conventional material mass per tray (kg)")
	flags.Float64Var(&f.state.ActualMassKg, "actual-kg", 0, "Alternative material mass per tray (kg)")
	flags.Float64Var(&f.state.ThroughputPerDay, "throughput", 0, "Trays processed per day")
	flags.Float64Var(&f.state.WindowDays, "window-days", 0, "Observation window (days)")
	flags.Float64Var(&f.cfg.HazardWeight, "hazard-weight", 1.0, "Risk weight of the conventional material")
	flags.Float64Var(&f.cfg.KarmaPerKg, "karma-per-kg", 1.0, "Karma units per kg avoided")
	flags.StringVar(&f.format, "format", "json", "Output format: json, yaml or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")

	return cmd
}

type computeOutput struct {
	State  impact.NodeState `json:"state" yaml:"state"`
	Config impact.Config    `json:"config" yaml:"config"`
	Result impact.Result    `json:"result" yaml:"result"`
}

func runCompute(w io.Writer, f *computeFlags) error {
	log := logging.New("compute")
	log.Debug("computing node impact",
		"baseline_kg", f.state.BaselineMassKg,
		"actual_kg", f.state.ActualMassKg,
		"throughput", f.state.ThroughputPerDay,
		"window_days", f.state.WindowDays)

	res, err := impact.Compute(f.state, f.cfg)
	if err != nil {
		if errors.Is(err, impact.ErrInvalidArgument) {
			return exitError(3, "%v", err)
		}
		return err
	}
	if f.state.BaselineMassKg < f.state.ActualMassKg {
		log.Debug("alternative heavier than baseline, result clamped to zero")
	}

	out := computeOutput{State: f.state, Config: f.cfg, Result: res}
	output, err := encode(out, f.format, func() string {
		return render.ImpactMarkdown(f.state, f.cfg, res)
	})
	if err != nil {
		return err
	}
	return writeOutput(w, &f.outputFlags, output)
}
