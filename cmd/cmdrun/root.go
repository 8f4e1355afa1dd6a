package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/b-harvest/cmdrunner/internal/config"
	"github.com/b-harvest/cmdrunner/internal/output"
	"github.com/b-harvest/cmdrunner/internal/version"
	"github.com/b-harvest/cmdrunner/pkg/executor"
)

// Global configuration variables
var (
	configPath string // Path to cmdrun.toml (--config flag)
	noColor    bool
	verbose    bool

	// loadedFileConfig holds the parsed cmdrun.toml values.
	loadedFileConfig *config.FileConfig
)

// DefaultHomeDir returns the default per-user config directory.
func DefaultHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cmdrun"
	}
	return filepath.Join(home, ".cmdrun")
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmdrun",
		Short: "Run external programs and shell command lines",
		Long: `cmdrun executes external programs and shell command lines with
combined stdout/stderr capture, optional timeouts, and live streaming.

Examples:
  # Run a program directly (no shell interpretation)
  cmdrun exec ls -la

  # Run a shell command line with pipes and redirection
  cmdrun shell "ps aux | grep postgres"

  # Stream a long-running command's output live
  cmdrun exec --stream make build

  # Run a TOML-described sequence of commands
  cmdrun script deploy.toml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewConfigLoader(DefaultHomeDir(), configPath)
			fileCfg, _, err := loader.LoadFileConfig()
			if err != nil {
				return err
			}
			loadedFileConfig = fileCfg

			// Priority: default < cmdrun.toml < flag
			if !cmd.Flags().Changed("no-color") && fileCfg.NoColor != nil {
				noColor = *fileCfg.NoColor
			}
			if !cmd.Flags().Changed("verbose") && fileCfg.Verbose != nil {
				verbose = *fileCfg.Verbose
			}

			output.DefaultLogger.SetNoColor(noColor)
			output.DefaultLogger.SetVerbose(verbose)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to cmdrun.toml config file")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(NewExecCmd())
	cmd.AddCommand(NewShellCmd())
	cmd.AddCommand(NewScriptCmd())
	cmd.AddCommand(version.NewCmd("cmdrun"))

	return cmd
}

// buildExecutor constructs the production executor from the merged
// configuration. A timeout flag that was explicitly set wins over the
// config file value.
func buildExecutor(timeoutChanged bool, flagTimeout time.Duration) (*executor.OSExecutor, error) {
	var opts []executor.Option

	timeout := flagTimeout
	if !timeoutChanged {
		d, err := loadedFileConfig.TimeoutDuration()
		if err != nil {
			return nil, err
		}
		timeout = d
	}
	if timeout > 0 {
		opts = append(opts, executor.WithTimeout(timeout))
	}

	if loadedFileConfig.Shell != nil && *loadedFileConfig.Shell != "" {
		opts = append(opts, executor.WithShell(*loadedFileConfig.Shell))
	}

	return executor.NewOSExecutor(opts...), nil
}
