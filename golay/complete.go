package golay

import (
	"fmt"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// The three foursome slots the seed anchors must occupy.
var (
	slotFirst  = hexacode.Point{Side: hexacode.Left, Pair: hexacode.LeftPair}
	slotSecond = hexacode.Point{Side: hexacode.Right, Pair: hexacode.LeftPair}
	slotThird  = hexacode.Point{Side: hexacode.Left, Pair: hexacode.MiddlePair}
)

// unknown marks a standard point whose image is not yet fixed.
const unknown = -1

// CompleteLabelling returns the unique labelling of sextet in which
//
//	p1 (in foursome LeftPair/Left)   is labelled Zero,
//	p2 (in foursome LeftPair/Right)  is labelled Zero,
//	p3 (in foursome LeftPair/Right)  is labelled One,
//	p4 (in foursome MiddlePair/Left) is labelled w,
//
// and p ↦ (foursome(p), label(p)) is an automorphism of the code.
//
// The labelling is found as the automorphism σ taking each standard point
// (h, r) to the point of foursome h labelled r. The four anchors fix σ on
// four standard points; every standard octad with at least five known
// points then has its image pinned by one CompleteOctad lookup, and the
// image restricts the candidates of its remaining points, foursome by
// foursome. When the lookups stall, the smallest candidate set is split and
// each branch is propagated again; a finished σ is accepted only if
// IsAutomorphism holds.
//
// Returns ErrBadAnchors if the anchors are not in the foursomes above or
// p2 == p3.
func (c *Code) CompleteLabelling(sextet OrderedSextet, p1, p2, p3, p4 mog.Point, w f4.Point) (Labelling, error) {
	// 1) Validate the anchors against the sextet slots.
	switch {
	case !sextet.Foursome(slotFirst).Has(p1):
		return Labelling{}, fmt.Errorf("%w: p1=%v not in foursome %v", ErrBadAnchors, p1, slotFirst)
	case !sextet.Foursome(slotSecond).Has(p2), !sextet.Foursome(slotSecond).Has(p3):
		return Labelling{}, fmt.Errorf("%w: p2=%v, p3=%v not in foursome %v", ErrBadAnchors, p2, p3, slotSecond)
	case p2 == p3:
		return Labelling{}, fmt.Errorf("%w: p2 and p3 coincide", ErrBadAnchors)
	case !sextet.Foursome(slotThird).Has(p4):
		return Labelling{}, fmt.Errorf("%w: p4=%v not in foursome %v", ErrBadAnchors, p4, slotThird)
	case !w.IsValid():
		return Labelling{}, fmt.Errorf("%w: label %d", ErrBadAnchors, uint8(w))
	}

	// 2) Seed σ on the standard anchors.
	s := seedSearch{code: c, sextet: sextet}
	var image [mog.NumPoints]int
	for i := range image {
		image[i] = unknown
	}
	image[mog.Point{Col: slotFirst, Row: f4.Zero}.Index()] = p1.Index()
	image[mog.Point{Col: slotSecond, Row: f4.Zero}.Index()] = p2.Index()
	image[mog.Point{Col: slotSecond, Row: f4.One}.Index()] = p3.Index()
	image[mog.Point{Col: slotThird, Row: w}.Index()] = p4.Index()

	// 3) Propagate and branch.
	sigma, ok := s.search(image)
	if !ok {
		panic(fmt.Sprintf("golay: no labelling of %v through anchors %v %v %v %v", sextet.foursomes, p1, p2, p3, p4))
	}

	// 4) Read the labels off σ: point σ(h, r) gets label r.
	l := Labelling{sextet: sextet}
	for std, img := range sigma {
		l.labels[img] = mog.PointAt(std).Row
	}

	// 5) Postcondition.
	if l.Label(p1) != f4.Zero || l.Label(p2) != f4.Zero || l.Label(p3) != f4.One || l.Label(p4) != w {
		panic("golay: completed labelling misses its anchors")
	}
	if err := l.Validate(); err != nil {
		panic(err)
	}
	return l, nil
}

// seedSearch holds the fixed inputs of one CompleteLabelling call.
type seedSearch struct {
	code   *Code
	sextet OrderedSextet
}

// search propagates image and, if it stalls, branches on the standard point
// with the fewest candidates. Returns the full map standard index → point
// index of the first branch that yields an automorphism.
func (s seedSearch) search(image [mog.NumPoints]int) ([mog.NumPoints]int, bool) {
	image, cand, ok := s.propagate(image)
	if !ok {
		return image, false
	}

	// 1) Complete: accept only a genuine automorphism.
	best := unknown
	for std := range image {
		if image[std] == unknown && (best == unknown || cand[std].Weight() < cand[best].Weight()) {
			best = std
		}
	}
	if best == unknown {
		return image, s.isAutomorphism(image)
	}

	// 2) Branch in canonical order of the candidates.
	for _, q := range cand[best].Points() {
		next := image
		next[best] = q.Index()
		if full, ok := s.search(next); ok {
			return full, true
		}
	}
	return image, false
}

// propagate applies octad lookups until no candidate set shrinks to a single
// point. It reports false on a contradiction.
func (s seedSearch) propagate(image [mog.NumPoints]int) ([mog.NumPoints]int, [mog.NumPoints]mog.Vector, bool) {
	var cand [mog.NumPoints]mog.Vector
	for {
		// 1) Known standard points and their (distinct) images.
		var known, used mog.Vector
		for std, img := range image {
			if img == unknown {
				continue
			}
			q := mog.PointAt(img)
			if used.Has(q) {
				return image, cand, false
			}
			known = known.With(mog.PointAt(std))
			used = used.With(q)
		}

		// 2) Initial candidates: the unused points of the matching foursome.
		for std, img := range image {
			if img == unknown {
				cand[std] = s.sextet.Foursome(mog.PointAt(std).Col).And(used.Not())
			}
		}

		// 3) Every standard octad with five known points pins its image octad.
		for _, o := range s.code.octads {
			pts := o.And(known).Points()
			if len(pts) < 5 {
				continue
			}
			var five mog.Vector
			for _, p := range pts[:5] {
				five = five.With(mog.PointAt(image[p.Index()]))
			}
			img, err := s.code.CompleteOctad(five)
			if err != nil {
				panic(err)
			}
			for std, q := range image {
				if q != unknown {
					continue
				}
				if o.Has(mog.PointAt(std)) {
					cand[std] = cand[std].And(img)
				} else {
					cand[std] = cand[std].And(img.Not())
				}
			}
		}

		// 4) Fix singletons; stop when nothing changes.
		changed := false
		for std, q := range image {
			if q != unknown {
				continue
			}
			switch cand[std].Weight() {
			case 0:
				return image, cand, false
			case 1:
				image[std] = cand[std].Points()[0].Index()
				changed = true
			}
		}
		if !changed {
			return image, cand, true
		}
	}
}

// isAutomorphism checks a complete σ against the code.
func (s seedSearch) isAutomorphism(image [mog.NumPoints]int) bool {
	sigma, err := perm.FromFunc(func(p mog.Point) mog.Point { return mog.PointAt(image[p.Index()]) })
	if err != nil {
		return false
	}
	return s.code.IsAutomorphism(sigma)
}
