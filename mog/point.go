package mog

import (
	"fmt"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
)

// NumPoints is the number of MOG points.
const NumPoints = 24

// Point is a cell of the 4×6 MOG grid.
type Point struct {
	Col hexacode.Point
	Row f4.Point
}

// Index implements enum.Enumerable: column + 6·row.
func (p Point) Index() int { return p.Col.Index() + hexacode.Size*p.Row.Index() }

// Cardinality implements enum.Enumerable.
func (Point) Cardinality() int { return NumPoints }

// FromIndex implements enum.Enumerable.
func (Point) FromIndex(i int) Point {
	var col hexacode.Point
	return Point{Col: col.FromIndex(i % hexacode.Size), Row: f4.Point(i / hexacode.Size)}
}

// PointAt returns the point with canonical index i; i must be in 0..23.
func PointAt(i int) Point {
	var p Point
	return p.FromIndex(i)
}

// Points returns the 24 points in canonical order.
func Points() []Point {
	out := make([]Point, NumPoints)
	for i := range out {
		out[i] = PointAt(i)
	}
	return out
}

func (p Point) String() string {
	return fmt.Sprintf("%d", p.Index())
}
