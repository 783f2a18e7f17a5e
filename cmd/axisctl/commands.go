// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvaxis/coords"
	"github.com/katalvlaran/lvaxis/internal/axisfile"
)

func newInspectCommand(rootOpts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "List the axes of every system",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := loadSystems(args[0])
			if err != nil {
				return err
			}
			rootOpts.logger(cmd).Debug("loaded", "file", args[0], "systems", len(systems))
			for i, cs := range systems {
				writeSystem(cmd.OutOrStdout(), i, cs)
			}
			return nil
		},
	}
}

func newAlignCommand(rootOpts *rootOptions, use, short string) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   use + " <file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			systems, err := loadSystems(args[0])
			if err != nil {
				return err
			}

			align := coords.Broadcast
			if use == "intersect" {
				align = coords.Intersect
			}
			out, trivial, err := align(systems, coords.WithLogger(rootOpts.logger(cmd)))
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if asYAML {
				f, err := axisfile.FromSystems(out)
				if err != nil {
					return err
				}
				data, err := axisfile.Marshal(f)
				if err != nil {
					return err
				}
				_, err = w.Write(data)
				return err
			}
			writeSystem(w, 0, out)
			fmt.Fprintf(w, "trivial: %t\n", trivial)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the result in the input file format")

	return cmd
}

func loadSystems(path string) ([]*coords.System, error) {
	f, err := axisfile.Load(path)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

func writeSystem(w io.Writer, i int, cs *coords.System) {
	fmt.Fprintf(w, "system %d: shape %v\n", i, cs.Shape())
	for d := range cs.Len() {
		n := cs.AxisAt(d)
		v := n.Axis()
		fmt.Fprintf(w, "  %s\t%s\tsize=%d sorted=%t\t%s\n", n.Name(), v.Kind(), v.Size(), v.IsSorted(), v)
	}
}
