package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecadd/internal/pipeline"
	"github.com/spf13/cobra"
)

// errIncorrect makes the process exit non-zero when a check fails.
var errIncorrect = errors.New("solution is incorrect")

func newRunCmd(opts *options) *cobra.Command {
	var (
		inputs   []string
		expected string
		output   string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Add two vector files",
		Example: `  vecadd run -i input0.raw,input1.raw -e output.raw
  vecadd run -i a.csv -i b.csv -o sum.raw --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := pipeline.NewRunner(opts.cfg, opts.logger)
			if err != nil {
				return err
			}

			report, err := runner.Run(cmd.Context(), pipeline.Args{
				Inputs:   splitList(inputs),
				Expected: expected,
				Output:   output,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "length: %d\nkernel: %s\n", report.Length, report.Kernel)
				for _, rec := range report.Timings {
					fmt.Fprintf(out, "%-8s %-45s %v\n", rec.Kind, rec.Message, rec.Duration)
				}
				if report.Solution != nil {
					fmt.Fprintln(out, report.Solution.Message)
				}
			}

			if report.Solution != nil && !report.Solution.Correct {
				return errIncorrect
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringSliceVarP(&inputs, "input", "i", nil, "input vector files (exactly two, comma separated or repeated)")
	f.StringVarP(&expected, "expected", "e", "", "expected result to check against")
	f.StringVarP(&output, "output", "o", "", "write the computed vector here")
	f.BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// splitList drops empty entries left by trailing commas.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
