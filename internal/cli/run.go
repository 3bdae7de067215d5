package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	var (
		stdoutPath string
		timeout    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "run [flags] -- <program> [args...]",
		Short: "Run a program, optionally capturing its output to a file",
		Long: `Run a program and exit with its exit code.

With --stdout the program's standard output is written to that file,
replacing any previous content, even when the program fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, err := g.fileSystem(cmd)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			code, err := fsys.SystemRun(ctx, args[0], args[1:], stdoutPath)
			if err != nil {
				return err
			}

			if g.json {
				if err := g.print(cmd, map[string]int{"exit_code": code}, func(io.Writer) {}); err != nil {
					return err
				}
			}
			if code != 0 {
				if !g.json {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s exited with code %d\n", args[0], code)
				}
				return &ExitError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&stdoutPath, "stdout", "o", "", "Write the program's standard output to this file")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Kill the program after this long (0 disables)")
	return cmd
}
