package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mog/golay"
)

func newOctadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "octad <p1> <p2> <p3> <p4> <p5>",
		Short: "Complete five points to their octad",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args)
			if err != nil {
				return err
			}
			o, err := golay.Default().CompleteOctad(v)
			if err != nil {
				return err
			}
			a.logger.Debug("Octad completed", zap.Stringer("points", v), zap.Stringer("octad", o))
			a.printVector(cmd.OutOrStdout(), o)
			return nil
		},
	}
}
