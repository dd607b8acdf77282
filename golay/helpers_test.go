package golay_test

import (
	"math/rand"

	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// forEachSubset calls fn for every k-subset of the 24 points, in increasing
// bitmask order (Gosper's hack).
func forEachSubset(k int, fn func(v mog.Vector)) {
	v := uint32(1)<<k - 1
	for v <= uint32(mog.Full) {
		fn(mog.Vector(v))
		c := v & -v
		r := v + c
		v = (((r ^ v) >> 2) / c) | r
	}
}

// randomSubset draws k distinct points.
func randomSubset(rng *rand.Rand, k int) mog.Vector {
	var v mog.Vector
	for _, i := range rng.Perm(mog.NumPoints)[:k] {
		v = v.With(mog.PointAt(i))
	}
	return v
}

// pick returns a uniformly chosen point of v.
func pick(rng *rand.Rand, v mog.Vector) mog.Point {
	pts := v.Points()
	return pts[rng.Intn(len(pts))]
}

// randomPermutation draws a permutation of the 24 points.
func randomPermutation(rng *rand.Rand) perm.Permutation[mog.Point] {
	images := rng.Perm(mog.NumPoints)
	return perm.MustFromFunc(func(p mog.Point) mog.Point { return mog.PointAt(images[p.Index()]) })
}
