package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

func newCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles <image of 0> ... <image of 23>",
		Short: "Decompose a permutation of the 24 points and test it against the code",
		Args:  cobra.ExactArgs(mog.NumPoints),
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := parsePoints(args)
			if err != nil {
				return err
			}
			sigma, err := perm.FromFunc(func(p mog.Point) mog.Point { return images[p.Index()] })
			if err != nil {
				return err
			}
			a.logger.Debug("Permutation parsed", zap.Int("support", len(sigma.Support())))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, sigma)
			fmt.Fprintf(out, "order %d, automorphism %t\n", sigma.Order(), golay.Default().IsAutomorphism(sigma))
			fmt.Fprintln(out, formatCells(perm.MapInjectiveUnchecked(sigma, cellName)))
			return nil
		},
	}
}

// cellName names a grid cell by column letter and row number, "A1" at the
// top left.
func cellName(p mog.Point) string {
	return fmt.Sprintf("%c%d", 'A'+p.Col.Index(), p.Row.Index()+1)
}

// formatCells renders the cycles of s in cycle notation.
func formatCells(s perm.Sparse[string]) string {
	cycles := s.DisjointCycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteString("(" + strings.Join(c, " ") + ")")
	}
	return b.String()
}
