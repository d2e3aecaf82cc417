package main

import (
	"github.com/cwbudde/algo-vecadd/dataset"
	"github.com/cwbudde/algo-vecadd/solution"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check GOT EXPECTED",
		Short: "Compare two vector files within tolerance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			got, err := dataset.Import(args[0])
			if err != nil {
				return err
			}
			want, err := dataset.Import(args[1])
			if err != nil {
				return err
			}

			res := solution.Check(got, want, solution.Tolerance{
				Abs: opts.cfg.Check.AbsTolerance,
				Rel: opts.cfg.Check.RelTolerance,
			})
			if err := res.WriteJSON(cmd.OutOrStdout()); err != nil {
				return err
			}

			if !res.Correct {
				return errIncorrect
			}
			return nil
		},
	}
}
