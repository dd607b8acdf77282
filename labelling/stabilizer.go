package labelling

import (
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// Stabilizer describes a permutation of the standard MOG that preserves the
// column sextet: the columns are permuted by Foursomes and the rows of
// column h by Inner[h]. The zero value is the identity.
type Stabilizer struct {
	Foursomes perm.Permutation[hexacode.Point]
	Inner     [hexacode.Size]perm.Permutation[f4.Point]
}

// Permutation returns (h, r) ↦ (Foursomes(h), Inner[h](r)).
func (s Stabilizer) Permutation() perm.Permutation[mog.Point] {
	return perm.MustFromFunc(func(p mog.Point) mog.Point {
		return mog.Point{Col: s.Foursomes.Apply(p.Col), Row: s.Inner[p.Col.Index()].Apply(p.Row)}
	})
}

// Translate adds c to the rows of column h.
func (s Stabilizer) Translate(h hexacode.Point, c f4.Point) Stabilizer {
	s.Inner[h.Index()] = fieldMap(func(x f4.Point) f4.Point { return x.Add(c) }).Mul(s.Inner[h.Index()])
	return s
}

// TranslateAll adds v(h) to the rows of every column h.
func (s Stabilizer) TranslateAll(v hexacode.Vector) Stabilizer {
	for _, h := range hexacode.Points() {
		s = s.Translate(h, v.Component(h))
	}
	return s
}

// Scale multiplies the rows of every column by lambda. A Zero lambda leaves
// s unchanged.
func (s Stabilizer) Scale(lambda f4.Point) Stabilizer {
	if lambda == f4.Zero {
		return s
	}
	m := fieldMap(func(x f4.Point) f4.Point { return x.Mul(lambda) })
	for i := range s.Inner {
		s.Inner[i] = m.Mul(s.Inner[i])
	}
	return s
}

// Conjugate applies the field automorphism to the rows of every column.
func (s Stabilizer) Conjugate() Stabilizer {
	m := fieldMap(f4.Point.Conjugate)
	for i := range s.Inner {
		s.Inner[i] = m.Mul(s.Inner[i])
	}
	return s
}

// Reorder composes the column permutation with sigma.
func (s Stabilizer) Reorder(sigma perm.Permutation[hexacode.Point]) Stabilizer {
	s.Foursomes = s.Foursomes.Mul(sigma)
	return s
}

// Transport carries the standard-picture permutation of s over to the
// labelled sextet: l.Permutation() · s · l.Permutation()⁻¹. It is an
// automorphism of the code exactly when s.Permutation() is.
func Transport(l golay.Labelling, s Stabilizer) perm.Permutation[mog.Point] {
	std := l.Permutation()
	return std.Mul(s.Permutation()).Mul(std.Inverse())
}

// fieldMap tabulates a bijection of F4.
func fieldMap(f func(f4.Point) f4.Point) perm.Permutation[f4.Point] {
	return perm.MustFromFunc(f)
}
