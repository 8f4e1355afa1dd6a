package main

import (
	"os"

	"github.com/b-harvest/cmdrunner/internal/output"
	"github.com/b-harvest/cmdrunner/pkg/executor"
)

func main() {
	rootCmd := NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		output.DefaultLogger.Error("%v", err)

		// Propagate the child's exit code when the command ran and
		// failed; anything else is a cmdrun error.
		if cmdErr, ok := executor.AsCommandError(err); ok && cmdErr.ExitCode > 0 {
			os.Exit(cmdErr.ExitCode)
		}
		os.Exit(1)
	}
}
