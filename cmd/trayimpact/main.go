package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dshills/trayimpact/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

type globalFlags struct {
	verbose   bool
	logFormat string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "trayimpact",
		Short:         "Score the impact of replacing conventional trays with biodegradable ones",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if g.verbose {
				level = slog.LevelDebug
			}
			logging.Init(level, g.logFormat, cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&g.verbose, "verbose", false, "Print processing steps to stderr")
	pf.StringVar(&g.logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(newComputeCmd())
	root.AddCommand(newScenarioCmd())
	root.AddCommand(newMaterialsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}
