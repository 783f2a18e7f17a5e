// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all commands.
type rootOptions struct {
	Verbose bool
}

// logger returns a text logger on the command's stderr; debug records are
// only emitted with --verbose.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "axisctl",
		Short:         "Inspect and align labeled coordinate systems",
		Long:          "Reads coordinate systems from a YAML file and reports their axes or the result of aligning them.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging of each aligned dimension")

	cmd.AddCommand(newInspectCommand(opts))
	cmd.AddCommand(newAlignCommand(opts, "broadcast", "Outer-join the systems (merge same-named axes)"))
	cmd.AddCommand(newAlignCommand(opts, "intersect", "Inner-join the systems (intersect same-named axes)"))

	return cmd
}
