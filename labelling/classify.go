package labelling

import (
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
)

// labelSet is the set of labels seen in one foursome.
type labelSet struct {
	has   [f4.Order]bool
	count int
}

func (s *labelSet) add(x f4.Point) bool {
	if s.has[x] {
		return false
	}
	s.has[x] = true
	s.count++
	return true
}

// only returns the smallest label in the set.
func (s labelSet) only() f4.Point {
	for _, x := range f4.Elements() {
		if s.has[x] {
			return x
		}
	}
	return f4.Zero
}

// other returns a label of the set different from x.
func (s labelSet) other(x f4.Point) f4.Point {
	for _, y := range f4.Elements() {
		if s.has[y] && y != x {
			return y
		}
	}
	return x
}

// State classifies p. Foursomes are scanned in canonical hexacode order, so
// the result is deterministic.
func (p Partial) State() State {
	overset := State{Kind: Overset}

	// 1) Per-foursome label sets; a label repeated inside a foursome is fatal.
	var sets [hexacode.Size]labelSet
	for _, h := range hexacode.Points() {
		for _, pt := range p.sextet.Foursome(h).Points() {
			if x, ok := p.Label(pt); ok && !sets[h.Index()].add(x) {
				return overset
			}
		}
	}

	// 2) No foursome may carry three or more labels.
	var withLabel []hexacode.Point
	two, haveTwo := hexacode.Point{}, false
	for _, h := range hexacode.Points() {
		switch n := sets[h.Index()].count; {
		case n >= 3:
			return overset
		case n == 2 && !haveTwo:
			two, haveTwo = h, true
		}
		if sets[h.Index()].count > 0 {
			withLabel = append(withLabel, h)
		}
	}

	if !haveTwo {
		return classifySingles(withLabel)
	}

	// 3) Exactly one foursome (T2) may carry two labels.
	for _, h := range hexacode.Points() {
		if h != two && sets[h.Index()].count >= 2 {
			return overset
		}
	}
	twoSet := sets[two.Index()]

	switch len(withLabel) {
	case 1:
		return State{Kind: Underset}

	case 2:
		// The single-label foursome, if adjacent to T2, must share one of its labels.
		for _, h := range withLabel {
			if h == two {
				continue
			}
			if h.Pair == two.Pair && !twoSet.has[sets[h.Index()].only()] {
				return overset
			}
		}
		return State{Kind: Underset}

	case 3:
		// T1 is the single-label foursome adjacent to T2; the third is the other.
		var t1, third hexacode.Point
		haveT1 := false
		for _, h := range withLabel {
			if h != two && h.Pair == two.Pair {
				t1, haveT1 = h, true
			}
		}
		if !haveT1 {
			return overset
		}
		for _, h := range withLabel {
			if h != two && h != t1 {
				third = h
			}
		}
		x := sets[t1.Index()].only()
		if !twoSet.has[x] {
			return overset
		}
		return State{
			Kind:  Perfect,
			X:     x,
			Y:     twoSet.other(x),
			Z:     sets[third.Index()].only(),
			Pair:  two.Pair,
			Side:  t1.Side,
			Third: third,
		}
	}

	return overset
}

// classifySingles handles the case where no foursome has two labels.
func classifySingles(withLabel []hexacode.Point) State {
	switch {
	case len(withLabel) >= 4:
		return State{Kind: Overset}
	case len(withLabel) == 3:
		a, b, c := withLabel[0], withLabel[1], withLabel[2]
		if a.Pair != b.Pair && a.Pair != c.Pair && b.Pair != c.Pair {
			return State{Kind: Overset}
		}
	}
	return State{Kind: Underset}
}
