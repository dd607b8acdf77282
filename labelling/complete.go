package labelling

import (
	"fmt"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/perm"
)

// Complete returns the unique labelling consistent with every label of p.
// Returns ErrNotPerfect when the state is not Perfect (unless
// WithoutPrecondition is given).
//
// The result reads X on both x-anchors, Y on the y-anchor and Z on the
// z-anchor, and every foursome is a bijection onto F4; a violation is a
// defect in the algorithm and panics.
func (p Partial) Complete(opts ...Option) (golay.Labelling, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	code := o.Code
	if code == nil {
		code = golay.Default()
	}

	st := p.State()
	if st.Kind != Perfect {
		if o.CheckPrecondition {
			return golay.Labelling{}, fmt.Errorf("%w: state %v", ErrNotPerfect, st.Kind)
		}
		panic(fmt.Sprintf("labelling: Complete on %v state", st.Kind))
	}

	// 1) Anchors.
	t1, t2 := st.T1(), st.T2()
	point1, _ := p.pointLabelled(t1, st.X)
	point2, _ := p.pointLabelled(t2, st.X)
	point3, _ := p.pointLabelled(t2, st.Y)
	point4, _ := p.pointLabelled(st.Third, st.Z)

	// 2) Canonicalise: T1 → LeftPair/Left, T2 → LeftPair/Right,
	//    Third → MiddlePair/Left. Each move is a code automorphism, which is
	//    why the side swaps come in pairs.
	empty := emptyPair(st.Pair, st.Third.Pair)
	var moves []perm.Permutation[hexacode.Point]
	if st.Side == hexacode.Right {
		moves = append(moves, swapSides(st.Pair, empty))
	}
	if st.Third.Side == hexacode.Right {
		moves = append(moves, swapSides(st.Third.Pair, empty))
	}
	moves = append(moves, pairsToCanonical(st.Pair, st.Third.Pair, empty))

	sextet := p.sextet
	for _, m := range moves {
		sextet = sextet.Permute(m)
	}

	// 3) Seed: labels 0, 0, 1 and z/(x+y) on the anchors.
	sum := st.X.Add(st.Y)
	w, err := st.Z.Div(sum)
	if err != nil {
		panic(err)
	}
	l, err := code.CompleteLabelling(sextet, point1, point2, point3, point4, w)
	if err != nil {
		panic(err)
	}

	// 4) Undo the normalisation: scale by x+y, then add (x x 0 0 x x).
	inv, err := sum.Inverse()
	if err != nil {
		panic(err)
	}
	if l, err = l.ScalarMul(inv); err != nil {
		panic(err)
	}
	l = l.AddVector(hexacode.VectorFromFunc(func(h hexacode.Point) f4.Point {
		if h.Pair == hexacode.MiddlePair {
			return f4.Zero
		}
		return st.X
	}))

	// 5) Move the foursomes back.
	for i := len(moves) - 1; i >= 0; i-- {
		l = l.PermuteFoursomes(moves[i].Inverse())
	}

	// 6) Postcondition.
	if l.Label(point1) != st.X || l.Label(point2) != st.X || l.Label(point3) != st.Y || l.Label(point4) != st.Z {
		panic(fmt.Sprintf("labelling: completion misses anchors of %v", st))
	}
	if !l.Sextet().Equal(p.sextet) {
		panic("labelling: completion changed the foursome order")
	}
	if err = l.Validate(); err != nil {
		panic(err)
	}
	return l, nil
}

// emptyPair returns the pair that is neither a nor b.
func emptyPair(a, b hexacode.Pair) hexacode.Pair {
	for _, q := range []hexacode.Pair{hexacode.LeftPair, hexacode.MiddlePair, hexacode.RightPair} {
		if q != a && q != b {
			return q
		}
	}
	panic("labelling: pairs coincide")
}

// swapSides exchanges the two sides of pairs a and b.
func swapSides(a, b hexacode.Pair) perm.Permutation[hexacode.Point] {
	swap := func(q hexacode.Pair) perm.Permutation[hexacode.Point] {
		return perm.NewSwap(hexacode.Point{Side: hexacode.Left, Pair: q}, hexacode.Point{Side: hexacode.Right, Pair: q})
	}
	return swap(a).Mul(swap(b))
}

// pairsToCanonical moves pair first to LeftPair, second to MiddlePair and
// rest to RightPair, keeping sides.
func pairsToCanonical(first, second, rest hexacode.Pair) perm.Permutation[hexacode.Point] {
	target := map[hexacode.Pair]hexacode.Pair{
		first:  hexacode.LeftPair,
		second: hexacode.MiddlePair,
		rest:   hexacode.RightPair,
	}
	return perm.MustFromFunc(func(h hexacode.Point) hexacode.Point {
		return hexacode.Point{Side: h.Side, Pair: target[h.Pair]}
	})
}
