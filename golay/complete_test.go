package golay_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
)

var (
	slotLL = hexacode.Point{Side: hexacode.Left, Pair: hexacode.LeftPair}
	slotRL = hexacode.Point{Side: hexacode.Right, Pair: hexacode.LeftPair}
	slotLM = hexacode.Point{Side: hexacode.Left, Pair: hexacode.MiddlePair}
)

// TestCompleteLabelling_Standard completes the column sextet through the
// top cells of the first three columns with w = ω. The result is the row
// labelling shifted by the hexacode word (0 0 ω ω ω ω).
func TestCompleteLabelling_Standard(t *testing.T) {
	code := golay.Default()
	l, err := code.CompleteLabelling(golay.StandardSextet(),
		mog.PointAt(0), mog.PointAt(1), mog.PointAt(7), mog.PointAt(2), f4.Alpha)
	require.NoError(t, err)

	shift := hexacode.Vector{0, 0, f4.Alpha, f4.Alpha, f4.Alpha, f4.Alpha}
	require.True(t, l.Equal(golay.StandardLabelling().AddVector(shift)))
	require.True(t, code.IsAutomorphism(l.Permutation()))
}

// TestCompleteLabelling_Random checks anchors, bijectivity and the
// automorphism property on random sextets and anchors.
func TestCompleteLabelling_Random(t *testing.T) {
	code := golay.Default()
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 25; trial++ {
		s, err := code.OrderedSextet(randomSubset(rng, 4))
		require.NoError(t, err)

		p1 := pick(rng, s.Foursome(slotLL))
		p2 := pick(rng, s.Foursome(slotRL))
		p3 := pick(rng, s.Foursome(slotRL).Without(p2))
		p4 := pick(rng, s.Foursome(slotLM))
		w := f4.Point(rng.Intn(f4.Order))

		l, err := code.CompleteLabelling(s, p1, p2, p3, p4, w)
		require.NoError(t, err)
		require.NoError(t, l.Validate())
		require.True(t, l.Sextet().Equal(s))
		require.Equal(t, f4.Zero, l.Label(p1))
		require.Equal(t, f4.Zero, l.Label(p2))
		require.Equal(t, f4.One, l.Label(p3))
		require.Equal(t, w, l.Label(p4))
		require.True(t, code.IsAutomorphism(l.Permutation()), "trial %d", trial)
	}
}

// TestCompleteLabelling_Unique re-completes a labelling from anchors read
// off itself and expects the same labelling back.
func TestCompleteLabelling_Unique(t *testing.T) {
	code := golay.Default()
	rng := rand.New(rand.NewSource(99))
	s, err := code.OrderedSextet(randomSubset(rng, 4))
	require.NoError(t, err)

	l, err := code.CompleteLabelling(s,
		s.Foursome(slotLL).Points()[0],
		s.Foursome(slotRL).Points()[0],
		s.Foursome(slotRL).Points()[1],
		s.Foursome(slotLM).Points()[0],
		f4.Beta)
	require.NoError(t, err)

	for _, w := range f4.Elements() {
		again, err := code.CompleteLabelling(s,
			l.PointAt(slotLL, f4.Zero),
			l.PointAt(slotRL, f4.Zero),
			l.PointAt(slotRL, f4.One),
			l.PointAt(slotLM, w),
			w)
		require.NoError(t, err)
		require.True(t, again.Equal(l), "w=%v", w)
	}
}

// TestCompleteLabelling_BadAnchors checks anchor validation.
func TestCompleteLabelling_BadAnchors(t *testing.T) {
	code := golay.Default()
	s := golay.StandardSextet()
	cases := []struct {
		name           string
		p1, p2, p3, p4 int
		w              f4.Point
	}{
		{"p1 outside", 1, 1, 7, 2, f4.Zero},
		{"p2 outside", 0, 2, 7, 2, f4.Zero},
		{"p3 outside", 0, 1, 8, 2, f4.Zero},
		{"p2 equals p3", 0, 7, 7, 2, f4.Zero},
		{"p4 outside", 0, 1, 7, 3, f4.Zero},
		{"invalid label", 0, 1, 7, 2, f4.Point(9)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := code.CompleteLabelling(s,
				mog.PointAt(tc.p1), mog.PointAt(tc.p2), mog.PointAt(tc.p3), mog.PointAt(tc.p4), tc.w)
			require.True(t, errors.Is(err, golay.ErrBadAnchors), "%v", err)
		})
	}
}
