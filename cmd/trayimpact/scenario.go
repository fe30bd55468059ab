package main

import (
	"fmt"
	"io"

	"github.com/dshills/trayimpact/internal/logging"
	"github.com/dshills/trayimpact/internal/render"
	"github.com/dshills/trayimpact/internal/scenario"
	"github.com/spf13/cobra"
)

func newScenarioCmd() *cobra.Command {
	f := &outputFlags{}

	cmd := &cobra.Command{
		Use:   "scenario <name>",
		Short: "Run a built-in tray scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd.OutOrStdout(), args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", "json", "Output format: json, yaml or md")
	cmd.Flags().StringVar(&f.out, "out", "", "Output file path (default: stdout)")

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarioList(cmd.OutOrStdout())
		},
	})
	return cmd
}

func runScenario(w io.Writer, name string, f *outputFlags) error {
	log := logging.New("scenario")

	log.Debug("loading scenario", "name", name)
	s, err := scenario.LoadBuiltin(name)
	if err != nil {
		return exitError(3, "failed to load scenario: %v", err)
	}

	log.Debug("running scenario", "material", s.Tray.MaterialID, "integrated", s.Tray.IntegratedSystem)
	r, err := scenario.Run(s)
	if err != nil {
		return exitError(3, "scenario %s failed: %v", name, err)
	}
	log.Debug("scenario complete",
		"eco_total", r.Eco.EcoScore.TotalScore,
		"node_impact", r.Impact.Result.NodeImpactScore)

	output, err := encode(r, f.format, func() string { return render.Markdown(r) })
	if err != nil {
		return err
	}
	return writeOutput(w, f, output)
}

func runScenarioList(w io.Writer) error {
	names, err := scenario.List()
	if err != nil {
		return err
	}
	for _, n := range names {
		s, err := scenario.LoadBuiltin(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-24s %s\n", n, s.Description)
	}
	return nil
}
