package main

import (
	"fmt"

	"github.com/cwbudde/algo-vecadd/dataset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var (
		dir  string
		size int
		seed int64
	)

	cmd := &cobra.Command{
		Use:     "generate",
		Short:   "Write a random dataset with its expected sum",
		Example: "  vecadd generate --dir data/0 --size 1024 --seed 7",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := dataset.Generate(dir, size, seed)
			if err != nil {
				return err
			}

			opts.logger.Info("dataset generated",
				zap.String("dir", dir),
				zap.Int("size", size),
				zap.Int64("seed", seed))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p.Input0)
			fmt.Fprintln(out, p.Input1)
			fmt.Fprintln(out, p.Expected)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&dir, "dir", ".", "output directory")
	f.IntVar(&size, "size", 1024, "number of elements")
	f.Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}
