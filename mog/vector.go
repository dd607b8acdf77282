package mog

import (
	"math/bits"
	"strings"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/perm"
)

// Vector is a subset of the 24 MOG points.
type Vector uint32

// Full is the vector of all 24 points.
const Full Vector = 1<<NumPoints - 1

// VectorFromPoints returns the set of the given points.
func VectorFromPoints(points ...Point) Vector {
	var v Vector
	for _, p := range points {
		v |= 1 << p.Index()
	}
	return v
}

// VectorFromIndices returns the set of the points with the given indices.
// Indices outside 0..23 are ignored.
func VectorFromIndices(indices ...int) Vector {
	var v Vector
	for _, i := range indices {
		if i >= 0 && i < NumPoints {
			v |= 1 << i
		}
	}
	return v
}

// VectorFromFunc returns {p : f(p)}.
func VectorFromFunc(f func(Point) bool) Vector {
	var v Vector
	for i := 0; i < NumPoints; i++ {
		if f(PointAt(i)) {
			v |= 1 << i
		}
	}
	return v
}

// Column returns the four points of column h.
func Column(h hexacode.Point) Vector {
	return VectorFromFunc(func(p Point) bool { return p.Col == h })
}

// Row returns the six points of row r.
func Row(r f4.Point) Vector {
	return VectorFromFunc(func(p Point) bool { return p.Row == r })
}

// Xor returns the symmetric difference v △ w (vector addition).
func (v Vector) Xor(w Vector) Vector { return v ^ w }

// And returns v ∩ w.
func (v Vector) And(w Vector) Vector { return v & w }

// Or returns v ∪ w.
func (v Vector) Or(w Vector) Vector { return v | w }

// Not returns the complement of v in the 24 points.
func (v Vector) Not() Vector { return ^v & Full }

// Weight returns |v|.
func (v Vector) Weight() int { return bits.OnesCount32(uint32(v & Full)) }

// Has reports whether p ∈ v.
func (v Vector) Has(p Point) bool { return v&(1<<p.Index()) != 0 }

// With returns v ∪ {p}.
func (v Vector) With(p Point) Vector { return v | 1<<p.Index() }

// Without returns v \ {p}.
func (v Vector) Without(p Point) Vector { return v &^ (1 << p.Index()) }

// Contains reports whether w ⊆ v.
func (v Vector) Contains(w Vector) bool { return v&w == w }

// Disjoint reports whether v ∩ w = ∅.
func (v Vector) Disjoint(w Vector) bool { return v&w == 0 }

// Points returns the members of v in canonical order.
func (v Vector) Points() []Point {
	out := make([]Point, 0, v.Weight())
	for x := uint32(v & Full); x != 0; x &= x - 1 {
		out = append(out, PointAt(bits.TrailingZeros32(x)))
	}
	return out
}

// Compare orders vectors lexicographically over canonical index: the first
// index where they differ decides, and the vector containing that point is
// the greater. Returns -1, 0 or +1.
func (v Vector) Compare(w Vector) int {
	a, b := bits.Reverse32(uint32(v)), bits.Reverse32(uint32(w))
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Scores returns, for each column, the sum of the row labels of the selected
// points in that column. For a codeword the scores form a hexacode word.
func (v Vector) Scores() hexacode.Vector {
	var s hexacode.Vector
	for _, p := range v.Points() {
		s[p.Col.Index()] = s[p.Col.Index()].Add(p.Row)
	}
	return s
}

// Permute returns the image {σ(p) : p ∈ v}.
func (v Vector) Permute(sigma perm.Permutation[Point]) Vector {
	var out Vector
	for _, p := range v.Points() {
		out = out.With(sigma.Apply(p))
	}
	return out
}

// Grid renders v as the 4×6 MOG picture, one row per line, '#' for members
// and '.' otherwise, with a gap between column pairs.
func (v Vector) Grid() string {
	var b strings.Builder
	for r := 0; r < f4.Order; r++ {
		for c := 0; c < hexacode.Size; c++ {
			if c > 0 && c%2 == 0 {
				b.WriteByte(' ')
			}
			if v&(1<<(c+hexacode.Size*r)) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (v Vector) String() string {
	pts := v.Points()
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, " ") + "}"
}
