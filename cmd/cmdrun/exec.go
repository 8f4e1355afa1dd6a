package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// NewExecCmd creates the `exec` command for direct program execution.
func NewExecCmd() *cobra.Command {
	var (
		stream  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "exec <program> [args...]",
		Short: "Run a program directly, without shell interpretation",
		Long: `Run a program directly with the given arguments. Arguments are passed
verbatim; no shell expansion, globbing or piping happens. Combined
stdout/stderr output is printed once the program exits, unless --stream
forwards it live.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := buildExecutor(cmd.Flags().Changed("timeout"), timeout)
			if err != nil {
				return err
			}

			if stream {
				// Live output is the whole point; no deadline applies.
				return exec.RunStream(cmd.Context(), args[0], args[1:]...)
			}

			out, err := exec.Run(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}
			if out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "Forward output live instead of capturing it")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill the program if it runs longer than this (0 = no limit)")

	return cmd
}
