package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mog/enum"
	"github.com/katalvlaran/mog/mog"
)

// parsePoints reads canonical point indices.
func parsePoints(args []string) ([]mog.Point, error) {
	pts := make([]mog.Point, 0, len(args))
	for _, s := range args {
		i, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", s, err)
		}
		p, err := enum.FromIndex[mog.Point](i)
		if err != nil {
			return nil, fmt.Errorf("bad point %q: %w", s, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// parseVector reads a set of distinct point indices.
func parseVector(args []string) (mog.Vector, error) {
	pts, err := parsePoints(args)
	if err != nil {
		return 0, err
	}
	v := mog.VectorFromPoints(pts...)
	if v.Weight() != len(pts) {
		return 0, fmt.Errorf("repeated point in %v", args)
	}
	return v, nil
}

// printVector writes v in the configured format.
func (a *app) printVector(w io.Writer, v mog.Vector) {
	if a.cfg.Format == FormatList {
		fmt.Fprintln(w, v)
		return
	}
	fmt.Fprint(w, v.Grid())
}
