package labelling_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/labelling"
	"github.com/katalvlaran/mog/mog"
)

// On the column sextet, point i lies in foursome i%6 (column) and row i/6.

// TestState_Scenario walks the labelling scenario from empty to Perfect.
func TestState_Scenario(t *testing.T) {
	p := labelling.New(golay.StandardSextet())
	require.Equal(t, labelling.Underset, p.State().Kind)

	p = p.With(mog.PointAt(0), f4.Zero) // T1 = column 0
	require.Equal(t, labelling.Underset, p.State().Kind)

	p = p.With(mog.PointAt(1), f4.Zero).With(mog.PointAt(7), f4.One) // T2 = column 1
	require.Equal(t, labelling.Underset, p.State().Kind)

	p = p.With(mog.PointAt(2), f4.Alpha) // third foursome, column 2
	st := p.State()
	require.Equal(t, labelling.State{
		Kind:  labelling.Perfect,
		X:     f4.Zero,
		Y:     f4.One,
		Z:     f4.Alpha,
		Pair:  hexacode.LeftPair,
		Side:  hexacode.Left,
		Third: hp(hexacode.Left, hexacode.MiddlePair),
	}, st)
	require.Equal(t, hp(hexacode.Left, hexacode.LeftPair), st.T1())
	require.Equal(t, hp(hexacode.Right, hexacode.LeftPair), st.T2())
	require.Equal(t, "Perfect{x=0 y=1 z=ω pair=Left side=L third=MiddleL}", st.String())
}

// TestState_Table covers the Underset and Overset shapes on the column sextet.
func TestState_Table(t *testing.T) {
	type lab struct {
		point int
		label f4.Point
	}
	cases := []struct {
		name   string
		labels []lab
		want   labelling.Kind
	}{
		{"empty", nil, labelling.Underset},
		{"one label", []lab{{0, f4.Zero}}, labelling.Underset},
		{"repeat in foursome", []lab{{0, f4.One}, {6, f4.One}}, labelling.Overset},
		{"three in foursome", []lab{{0, 0}, {6, 1}, {12, 2}}, labelling.Overset},
		{"two doubles", []lab{{0, 0}, {6, 1}, {3, 0}, {9, 1}}, labelling.Overset},
		{"double alone", []lab{{0, 0}, {6, 1}}, labelling.Underset},
		{"double and adjacent match", []lab{{0, 0}, {6, 1}, {1, 1}}, labelling.Underset},
		{"double and adjacent mismatch", []lab{{0, 0}, {6, 1}, {1, 2}}, labelling.Overset},
		{"double and far single", []lab{{0, 0}, {6, 1}, {4, 3}}, labelling.Underset},
		{"double, two far singles", []lab{{0, 0}, {6, 1}, {2, 3}, {4, 3}}, labelling.Overset},
		{"double, adjacent mismatch, far", []lab{{0, 0}, {6, 1}, {1, 2}, {4, 3}}, labelling.Overset},
		{"double, adjacent, far", []lab{{0, 0}, {6, 1}, {1, 1}, {4, 3}}, labelling.Perfect},
		{"four doubles and singles", []lab{{0, 0}, {6, 1}, {1, 1}, {2, 3}, {4, 3}}, labelling.Overset},
		{"two singles", []lab{{0, 0}, {3, 1}}, labelling.Underset},
		{"three singles, shared pair", []lab{{0, 0}, {1, 2}, {4, 3}}, labelling.Underset},
		{"three singles, three pairs", []lab{{0, 0}, {2, 2}, {4, 3}}, labelling.Overset},
		{"four singles", []lab{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, labelling.Overset},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := labelling.New(golay.StandardSextet())
			for _, l := range tc.labels {
				p = p.With(mog.PointAt(l.point), l.label)
			}
			require.Equal(t, tc.want, p.State().Kind)
		})
	}
}

// TestState_RandomPerfect checks the classifier fields on random Perfect shapes.
func TestState_RandomPerfect(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 200; i++ {
		c := randomPerfect(rng)
		require.Equal(t, c.state, c.partial.State())
	}
}

// TestState_IgnoresOrder checks that the state depends on the labels only.
func TestState_IgnoresOrder(t *testing.T) {
	s := golay.StandardSextet()
	a := labelling.New(s).With(mog.PointAt(4), f4.Beta).With(mog.PointAt(11), f4.One).With(mog.PointAt(5), f4.Beta).With(mog.PointAt(0), f4.Zero)
	b := labelling.New(s).With(mog.PointAt(0), f4.Zero).With(mog.PointAt(5), f4.Beta).With(mog.PointAt(11), f4.One).With(mog.PointAt(4), f4.Beta)
	require.Equal(t, a.State(), b.State())
	require.Equal(t, labelling.Perfect, a.State().Kind)
	require.Equal(t, hexacode.RightPair, a.State().Pair)
	require.Equal(t, hexacode.Left, a.State().Side)
}

// TestKind_String covers the three kinds.
func TestKind_String(t *testing.T) {
	require.Equal(t, "Underset", labelling.Underset.String())
	require.Equal(t, "Perfect", labelling.Perfect.String())
	require.Equal(t, "Overset", labelling.Overset.String())
	require.Equal(t, "Overset", labelling.State{Kind: labelling.Overset}.String())
}
