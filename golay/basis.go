package golay

import (
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
)

// Dimension is the dimension of the code.
const Dimension = 12

// col is shorthand for the hexacode point of a MOG column.
func col(side hexacode.Side, pair hexacode.Pair) hexacode.Point {
	return hexacode.Point{Side: side, Pair: pair}
}

// nonZero marks "every row except the top one" in a pattern table.
const nonZero = f4.Point(0xff)

// scoredPatterns are the four basis pictures whose column scores run through
// the hexacode: each entry gives, per column in canonical order, the single
// row selected, or nonZero for the three lower rows.
var scoredPatterns = [4][hexacode.Size]f4.Point{
	{nonZero, f4.One, f4.Zero, f4.One, f4.Alpha, f4.Beta},
	{nonZero, f4.Alpha, f4.Zero, f4.Alpha, f4.Beta, f4.One},
	{f4.One, nonZero, f4.Zero, f4.One, f4.Beta, f4.Alpha},
	{f4.Alpha, nonZero, f4.Zero, f4.Alpha, f4.One, f4.Beta},
}

// standardBasis returns the 12 fixed basis vectors of the code.
func standardBasis() [Dimension]mog.Vector {
	var basis [Dimension]mog.Vector
	n := 0

	// 1) Column pairs: the first column together with each other column.
	first := col(hexacode.Left, hexacode.LeftPair)
	for _, h := range hexacode.Points()[1:] {
		basis[n] = mog.Column(first).Or(mog.Column(h))
		n++
	}

	// 2) Row-value patterns: three lower cells of the first column, the top
	//    cell of the second, and row val across the four remaining columns.
	for _, val := range []f4.Point{f4.One, f4.Alpha, f4.Beta} {
		basis[n] = mog.VectorFromFunc(func(p mog.Point) bool {
			switch p.Col {
			case first:
				return p.Row != f4.Zero
			case col(hexacode.Right, hexacode.LeftPair):
				return p.Row == f4.Zero
			default:
				return p.Row == val
			}
		})
		n++
	}

	// 3) Hexacode-scored patterns.
	for _, pattern := range scoredPatterns {
		basis[n] = mog.VectorFromFunc(func(p mog.Point) bool {
			want := pattern[p.Col.Index()]
			if want == nonZero {
				return p.Row != f4.Zero
			}
			return p.Row == want
		})
		n++
	}

	return basis
}
