package golay

import (
	"fmt"

	"github.com/katalvlaran/mog/enum"
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// Labelling is an OrderedSextet together with an F4 label per point, each
// foursome carrying every label exactly once (OrderedSextetLabelling).
type Labelling struct {
	sextet OrderedSextet
	labels [mog.NumPoints]f4.Point
}

// StandardLabelling labels the standard sextet by row: point (h, r) has
// foursome h and label r. Its Permutation is the identity.
func StandardLabelling() Labelling {
	l := Labelling{sextet: StandardSextet()}
	for _, p := range mog.Points() {
		l.labels[p.Index()] = p.Row
	}
	return l
}

// Sextet returns the ordered sextet.
func (l Labelling) Sextet() OrderedSextet { return l.sextet }

// Label returns the label of p.
func (l Labelling) Label(p mog.Point) f4.Point { return l.labels[p.Index()] }

// Foursome returns the hexacode point of the foursome containing p.
func (l Labelling) Foursome(p mog.Point) hexacode.Point { return l.sextet.FoursomeOf(p) }

// Labels returns the labels as a total map.
func (l Labelling) Labels() enum.Map[mog.Point, f4.Point] {
	return enum.MapFromFunc(l.Label)
}

// PointAt returns the point of foursome h carrying label r.
func (l Labelling) PointAt(h hexacode.Point, r f4.Point) mog.Point {
	for _, p := range l.sextet.Foursome(h).Points() {
		if l.Label(p) == r {
			return p
		}
	}
	panic(fmt.Sprintf("golay: foursome %v has no point labelled %v", h, r))
}

// PermuteFoursomes moves the foursome at h to σ(h), keeping every label.
func (l Labelling) PermuteFoursomes(sigma perm.Permutation[hexacode.Point]) Labelling {
	return Labelling{sextet: l.sextet.Permute(sigma), labels: l.labels}
}

// AddVector adds v(h) to every label in the foursome at h.
func (l Labelling) AddVector(v hexacode.Vector) Labelling {
	out := l
	for _, h := range hexacode.Points() {
		for _, p := range l.sextet.Foursome(h).Points() {
			out.labels[p.Index()] = l.labels[p.Index()].Add(v.Component(h))
		}
	}
	return out
}

// ScalarMul multiplies every label by λ⁻¹: the point labelled x becomes the
// point labelled x/λ, so the labelling as a map on labels is scaled by λ.
// Returns f4.ErrNoInverse for λ = Zero.
func (l Labelling) ScalarMul(lambda f4.Point) (Labelling, error) {
	inv, err := lambda.Inverse()
	if err != nil {
		return Labelling{}, fmt.Errorf("golay: ScalarMul: %w", err)
	}
	out := l
	for i, x := range l.labels {
		out.labels[i] = x.Mul(inv)
	}
	return out, nil
}

// Conjugate applies the field automorphism to every label.
func (l Labelling) Conjugate() Labelling {
	out := l
	for i, x := range l.labels {
		out.labels[i] = x.Conjugate()
	}
	return out
}

// Validate checks that every foursome carries each label exactly once.
func (l Labelling) Validate() error {
	for _, h := range hexacode.Points() {
		var seen [f4.Order]bool
		for _, p := range l.sextet.Foursome(h).Points() {
			x := l.Label(p)
			if !x.IsValid() || seen[x] {
				return fmt.Errorf("%w: foursome %v repeats label %v", ErrNotLabelling, h, x)
			}
			seen[x] = true
		}
	}
	return nil
}

// Permutation returns p ↦ (foursome(p), label(p)), the map taking this
// labelling to the standard one. Its inverse takes MOG columns to the
// ordered foursomes and row labels to labels. For labellings produced by
// CompleteLabelling it is an automorphism of the code.
func (l Labelling) Permutation() perm.Permutation[mog.Point] {
	return perm.MustFromFunc(func(p mog.Point) mog.Point {
		return mog.Point{Col: l.Foursome(p), Row: l.Label(p)}
	})
}

// Equal reports whether both labellings have the same sextet and labels.
func (l Labelling) Equal(o Labelling) bool {
	return l.sextet.Equal(o.sextet) && l.labels == o.labels
}
