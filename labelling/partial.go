package labelling

import (
	"github.com/katalvlaran/mog/enum"
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// label is an optional F4 label.
type label struct {
	value f4.Point
	set   bool
}

// Partial is an ordered sextet with some points labelled. It is an
// immutable value; With and Without return modified copies.
type Partial struct {
	sextet golay.OrderedSextet
	labels [mog.NumPoints]label
}

// New returns the empty partial labelling of sextet.
func New(sextet golay.OrderedSextet) Partial {
	return Partial{sextet: sextet}
}

// Sextet returns the ordered sextet.
func (p Partial) Sextet() golay.OrderedSextet { return p.sextet }

// Label returns the label of pt and whether it is set.
func (p Partial) Label(pt mog.Point) (f4.Point, bool) {
	l := p.labels[pt.Index()]
	return l.value, l.set
}

// Labelled returns the set of labelled points.
func (p Partial) Labelled() mog.Vector {
	var v mog.Vector
	for i, l := range p.labels {
		if l.set {
			v = v.With(mog.PointAt(i))
		}
	}
	return v
}

// With returns a copy of p with pt labelled x.
func (p Partial) With(pt mog.Point, x f4.Point) Partial {
	p.labels[pt.Index()] = label{value: x, set: true}
	return p
}

// Without returns a copy of p with the label of pt removed.
func (p Partial) Without(pt mog.Point) Partial {
	p.labels[pt.Index()] = label{}
	return p
}

// Clear returns p with every label removed.
func (p Partial) Clear() Partial { return New(p.sextet) }

// PermuteFoursomes reorders the foursomes, keeping every label on its point.
func (p Partial) PermuteFoursomes(sigma perm.Permutation[hexacode.Point]) Partial {
	p.sextet = p.sextet.Permute(sigma)
	return p
}

// AllowedLabels returns, for every point, the labels that keep the state
// out of Overset when put on that point (replacing any label it has).
// Complexity: 96 classifier runs.
func (p Partial) AllowedLabels() enum.Map[mog.Point, []f4.Point] {
	return enum.MapFromFunc(func(pt mog.Point) []f4.Point {
		var allowed []f4.Point
		for _, x := range f4.Elements() {
			if p.With(pt, x).State().Kind != Overset {
				allowed = append(allowed, x)
			}
		}
		return allowed
	})
}

// pointLabelled returns the point of foursome h labelled x.
func (p Partial) pointLabelled(h hexacode.Point, x f4.Point) (mog.Point, bool) {
	for _, pt := range p.sextet.Foursome(h).Points() {
		if v, ok := p.Label(pt); ok && v == x {
			return pt, true
		}
	}
	return mog.Point{}, false
}
