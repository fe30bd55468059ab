package main

import (
	"fmt"
	"io"

	"github.com/dshills/trayimpact/internal/material"
	"github.com/spf13/cobra"
)

func newMaterialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List built-in tray materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterialsList(cmd.OutOrStdout())
		},
	}

	f := &outputFlags{}
	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a built-in tray material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMaterialsShow(cmd.OutOrStdout(), args[0], f)
		},
	}
	show.Flags().StringVar(&f.format, "format", "yaml", "Output format: json or yaml")
	show.Flags().StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	cmd.AddCommand(show)
	return cmd
}

func runMaterialsList(w io.Writer) error {
	ids, err := material.List()
	if err != nil {
		return err
	}
	for _, id := range ids {
		m, err := material.LoadBuiltin(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %s\n", id, m.Name)
	}
	return nil
}

func runMaterialsShow(w io.Writer, id string, f *outputFlags) error {
	m, err := material.LoadBuiltin(id)
	if err != nil {
		return exitError(3, "failed to load material: %v", err)
	}
	if f.format == "md" {
		return exitError(3, "unknown format: %s", f.format)
	}
	output, err := encode(m, f.format, nil)
	if err != nil {
		return err
	}
	return writeOutput(w, f, output)
}
