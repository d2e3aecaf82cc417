package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecadd/internal/kernel"
	"github.com/cwbudde/algo-vecadd/internal/pipeline"
	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
)

func newKernelsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Short: "List registered add kernels and mark the selected one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := pipeline.NewRunner(opts.cfg, opts.logger)
			if err != nil {
				return err
			}

			features := cpu.DetectFeatures()
			features.ForceGeneric = features.ForceGeneric || opts.cfg.Compute.ForceGeneric

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "arch: %s\n\n", features.Architecture)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tPRIORITY\tSUPPORTED\tSELECTED")
			for _, e := range kernel.Global.ListEntries() {
				selected := ""
				if e.Name == runner.Kernel() {
					selected = "*"
				}
				fmt.Fprintf(tw, "%s\t%d\t%t\t%s\n",
					e.Name, e.Priority, kernel.Supports(features, e.SIMDLevel), selected)
			}
			return tw.Flush()
		},
	}
}
