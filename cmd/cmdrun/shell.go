package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// NewShellCmd creates the `shell` command for shell command lines.
func NewShellCmd() *cobra.Command {
	var (
		stream  bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "shell <command line>",
		Short: "Run a command line through the shell",
		Long: `Run a command line through the shell (` + "`<shell> -c`" + `), giving it
pipes, redirection, globbing and variable expansion. Multiple arguments
are joined with spaces into one command line.

Examples:
  cmdrun shell "ls *.go | wc -l"
  cmdrun shell 'echo $HOME'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exec, err := buildExecutor(cmd.Flags().Changed("timeout"), timeout)
			if err != nil {
				return err
			}
			command := strings.Join(args, " ")

			if stream {
				return exec.ShellStream(cmd.Context(), command)
			}

			out, err := exec.Shell(cmd.Context(), command)
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
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill the command if it runs longer than this (0 = no limit)")

	return cmd
}
