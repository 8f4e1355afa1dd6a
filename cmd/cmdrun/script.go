package main

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	"github.com/b-harvest/cmdrunner/internal/output"
	"github.com/b-harvest/cmdrunner/internal/script"
)

// NewScriptCmd creates the `script` command for running TOML-described
// command sequences.
func NewScriptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script <file.toml>",
		Short: "Run a TOML-described sequence of commands",
		Long: `Run the steps of a TOML script in order. Each [[step]] names either a
direct argv ("run") or a shell command line ("shell"), with an optional
per-step timeout and continue_on_error flag.

Example script:
  [[step]]
  name = "fetch"
  run = ["git", "fetch", "--all"]

  [[step]]
  name = "build"
  shell = "make build 2>&1 | tee build.log"
  timeout = "5m"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}

			exec, err := buildExecutor(false, 0)
			if err != nil {
				return err
			}

			logger := log.NewNopLogger()
			if verbose {
				logger = log.NewLogger(os.Stderr)
			}

			runner := script.NewRunner(exec, output.DefaultLogger, logger)
			_, err = runner.Run(cmd.Context(), s)
			return err
		},
	}

	return cmd
}
