package labelling_test

import (
	"math/rand"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/labelling"
	"github.com/katalvlaran/mog/mog"
)

// perfectCase is a Perfect partial labelling together with the state and
// anchors it was built from.
type perfectCase struct {
	partial labelling.Partial
	state   labelling.State
	anchors [4]mog.Point // x in T1, x in T2, y in T2, z in Third
}

// randomPerfect builds a Perfect partial labelling on a random sextet.
func randomPerfect(rng *rand.Rand) perfectCase {
	var tetrad mog.Vector
	for _, i := range rng.Perm(mog.NumPoints)[:4] {
		tetrad = tetrad.With(mog.PointAt(i))
	}
	sextet, err := golay.Default().OrderedSextet(tetrad)
	if err != nil {
		panic(err)
	}

	pairs := []hexacode.Pair{hexacode.LeftPair, hexacode.MiddlePair, hexacode.RightPair}
	pair := pairs[rng.Intn(3)]
	side := hexacode.Side(rng.Intn(2))
	var third hexacode.Point
	for {
		third = hexacode.Points()[rng.Intn(hexacode.Size)]
		if third.Pair != pair {
			break
		}
	}
	labels := rng.Perm(f4.Order)
	x, y, z := f4.Point(labels[0]), f4.Point(labels[1]), f4.Point(rng.Intn(f4.Order))

	t1 := hexacode.Point{Side: side, Pair: pair}
	t2 := t1.Sibling()
	pick := func(v mog.Vector) mog.Point {
		pts := v.Points()
		return pts[rng.Intn(len(pts))]
	}
	a1 := pick(sextet.Foursome(t1))
	a2 := pick(sextet.Foursome(t2))
	a3 := pick(sextet.Foursome(t2).Without(a2))
	a4 := pick(sextet.Foursome(third))

	p := labelling.New(sextet).With(a1, x).With(a2, x).With(a3, y).With(a4, z)
	return perfectCase{
		partial: p,
		state: labelling.State{
			Kind: labelling.Perfect, X: x, Y: y, Z: z,
			Pair: pair, Side: side, Third: third,
		},
		anchors: [4]mog.Point{a1, a2, a3, a4},
	}
}

// hp is shorthand for a hexacode point.
func hp(side hexacode.Side, pair hexacode.Pair) hexacode.Point {
	return hexacode.Point{Side: side, Pair: pair}
}
