package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
)

func newSextetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sextet <p1> <p2> <p3> <p4>",
		Short: "Complete four points to their ordered sextet",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args)
			if err != nil {
				return err
			}
			s, err := golay.Default().OrderedSextet(v)
			if err != nil {
				return err
			}
			a.logger.Debug("Sextet completed", zap.Stringer("tetrad", v))
			out := cmd.OutOrStdout()
			for _, h := range hexacode.Points() {
				fmt.Fprintf(out, "%v:\n", h)
				a.printVector(out, s.Foursome(h))
			}
			return nil
		},
	}
}
