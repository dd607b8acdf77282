package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mog/golay"
)

func newCodewordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "codeword <point>...",
		Short: "Test membership and decode a set of points to its nearest codeword(s)",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseVector(args)
			if err != nil {
				return err
			}
			code := golay.Default()
			out := cmd.OutOrStdout()

			a.logger.Debug("Decoding", zap.Stringer("vector", v), zap.Int("weight", v.Weight()))
			a.printVector(out, v)
			fmt.Fprintf(out, "weight %d, codeword %t, octad %t\n", v.Weight(), code.IsCodeword(v), code.IsOctad(v))

			n := code.NearestCodeword(v)
			switch n.Kind {
			case golay.Unique:
				fmt.Fprintf(out, "nearest codeword at distance %d:\n", n.Distance)
				a.printVector(out, n.Codeword)
			case golay.Six:
				fmt.Fprintf(out, "six codewords at distance %d:\n", n.Distance)
				for _, w := range n.Codewords {
					a.printVector(out, w)
				}
			}
			return nil
		},
	}
}
