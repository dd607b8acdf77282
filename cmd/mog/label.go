package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/labelling"
	"github.com/katalvlaran/mog/mog"
)

// LabelFile is the YAML form of a partial labelling: a tetrad whose sextet
// is ordered as golay.Code.OrderedSextet orders it, and labels by point index.
//
//	tetrad: [0, 6, 12, 18]
//	labels:
//	  0: "0"
//	  1: "0"
//	  7: "1"
//	  2: "w"
type LabelFile struct {
	Tetrad []int          `yaml:"tetrad"`
	Labels map[int]string `yaml:"labels"`
}

// loadPartial reads path into a partial labelling.
func loadPartial(path string) (labelling.Partial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return labelling.Partial{}, fmt.Errorf("cannot read labelling: %w", err)
	}
	var lf LabelFile
	if err = yaml.Unmarshal(data, &lf); err != nil {
		return labelling.Partial{}, fmt.Errorf("cannot parse labelling %s: %w", path, err)
	}
	return lf.Partial(golay.Default())
}

// Partial builds the partial labelling described by lf.
func (lf LabelFile) Partial(code *golay.Code) (labelling.Partial, error) {
	args := make([]string, len(lf.Tetrad))
	for i, t := range lf.Tetrad {
		args[i] = fmt.Sprint(t)
	}
	v, err := parseVector(args)
	if err != nil {
		return labelling.Partial{}, err
	}
	sextet, err := code.OrderedSextet(v)
	if err != nil {
		return labelling.Partial{}, err
	}

	p := labelling.New(sextet)
	for i, s := range lf.Labels {
		pts, err := parsePoints([]string{fmt.Sprint(i)})
		if err != nil {
			return labelling.Partial{}, err
		}
		x, err := f4.Parse(s)
		if err != nil {
			return labelling.Partial{}, err
		}
		p = p.With(pts[0], x)
	}
	return p, nil
}

func newLabelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "label <file.yaml>",
		Short: "Classify a partial sextet labelling and complete it when possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPartial(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			st := p.State()
			a.logger.Debug("Partial labelling classified",
				zap.Stringer("labelled", p.Labelled()),
				zap.Stringer("state", st))
			fmt.Fprintln(out, st)

			if st.Kind != labelling.Perfect {
				printAllowed(out, p)
				return nil
			}
			l, err := p.Complete()
			if err != nil {
				return err
			}
			printLabelling(out, l)
			return nil
		},
	}
}

// printLabelling writes the labels as a 4x6 grid and the foursome of each
// point beneath.
func printLabelling(w io.Writer, l golay.Labelling) {
	grid := func(cell func(mog.Point) string) {
		for r := 0; r < f4.Order; r++ {
			row := make([]string, 0, hexacode.Size)
			for c := 0; c < hexacode.Size; c++ {
				row = append(row, cell(mog.PointAt(c+hexacode.Size*r)))
			}
			fmt.Fprintln(w, strings.Join(row, " "))
		}
	}
	fmt.Fprintln(w, "labels:")
	grid(func(p mog.Point) string { return fmt.Sprintf("%-2v", l.Label(p)) })
	fmt.Fprintln(w, "foursomes:")
	grid(func(p mog.Point) string { return fmt.Sprintf("%-2d", l.Foursome(p).Index()) })
}

// printAllowed lists the labels each unlabelled point may still take.
func printAllowed(w io.Writer, p labelling.Partial) {
	allowed := p.AllowedLabels()
	labelled := p.Labelled()
	for _, pt := range mog.Points() {
		if labelled.Has(pt) {
			continue
		}
		xs := allowed.Get(pt)
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = x.String()
		}
		fmt.Fprintf(w, "%v: %s\n", pt, strings.Join(parts, " "))
	}
}
