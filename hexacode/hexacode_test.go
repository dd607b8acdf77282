package hexacode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mog/enum"
	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
)

// TestPointNumbering checks index = side + 2·pair and the round trip.
func TestPointNumbering(t *testing.T) {
	pts := hexacode.Points()
	require.Len(t, pts, hexacode.Size)
	for i, h := range pts {
		require.Equal(t, i, h.Index())
		require.Equal(t, int(h.Side)+2*int(h.Pair), i)
	}
	require.Equal(t, pts, enum.All[hexacode.Point]())

	mr := hexacode.Point{Side: hexacode.Right, Pair: hexacode.MiddlePair}
	require.Equal(t, 3, mr.Index())
	require.Equal(t, hexacode.Point{Side: hexacode.Left, Pair: hexacode.MiddlePair}, mr.Sibling())
	require.True(t, mr.Adjacent(mr.Sibling()))
	require.False(t, mr.Adjacent(mr))
	require.Equal(t, "MiddleR", mr.String())
}

// TestWords checks the size and weight distribution of the hexacode.
func TestWords(t *testing.T) {
	words := hexacode.Words()
	require.Len(t, words, 64)

	seen := make(map[hexacode.Vector]bool, 64)
	weights := make(map[int]int)
	for _, w := range words {
		require.False(t, seen[w], "duplicate word %v", w)
		seen[w] = true
		weights[w.Weight()]++
	}
	require.Equal(t, map[int]int{0: 1, 4: 45, 6: 18}, weights)
}

// TestWords_Closure checks linearity over GF(4).
func TestWords_Closure(t *testing.T) {
	words := hexacode.Words()
	for _, v := range words {
		for _, lambda := range f4.Elements() {
			require.True(t, hexacode.IsWord(v.Scale(lambda)))
		}
		for _, w := range words {
			require.True(t, hexacode.IsWord(v.Add(w)))
		}
	}
}

// TestWords_ConjugateWithRightSwap checks that conjugation preserves the
// hexacode once the two right coordinates are exchanged.
func TestWords_ConjugateWithRightSwap(t *testing.T) {
	plain := 0
	for _, v := range hexacode.Words() {
		c := v.Conjugate()
		if hexacode.IsWord(c) {
			plain++
		}
		c[4], c[5] = c[5], c[4]
		require.True(t, hexacode.IsWord(c), "%v", v)
	}
	require.Less(t, plain, 64)
}

// TestWords_Normaliser checks the vector used to undo completion normalisation.
func TestWords_Normaliser(t *testing.T) {
	for _, x := range f4.Elements() {
		v := hexacode.VectorFromFunc(func(h hexacode.Point) f4.Point {
			if h.Pair == hexacode.MiddlePair {
				return f4.Zero
			}
			return x
		})
		require.True(t, hexacode.IsWord(v), "%v", v)
	}
}

// TestVector_String checks the pair-grouped rendering.
func TestVector_String(t *testing.T) {
	v := hexacode.Vector{f4.Zero, f4.One, f4.Alpha, f4.Beta, f4.Zero, f4.One}
	require.Equal(t, "01 ωω̄ 01", v.String())
	require.Equal(t, f4.Beta, v.Component(hexacode.Point{Side: hexacode.Right, Pair: hexacode.MiddlePair}))
}
