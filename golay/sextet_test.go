package golay_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// TestStandardSextet checks that the column tetrad completes to the columns.
func TestStandardSextet(t *testing.T) {
	s, err := golay.Default().OrderedSextet(mog.Column(hexacode.Point{}))
	require.NoError(t, err)
	require.True(t, s.Equal(golay.StandardSextet()))

	for _, p := range mog.Points() {
		require.Equal(t, p.Col, s.FoursomeOf(p))
	}
}

// TestNewOrderedSextet_Invalid checks weight and overlap validation.
func TestNewOrderedSextet_Invalid(t *testing.T) {
	fs := golay.StandardSextet().Foursomes()

	short := fs
	short[2] = short[2].Without(mog.PointAt(2))
	_, err := golay.NewOrderedSextet(short)
	require.True(t, errors.Is(err, golay.ErrNotSextet))

	overlap := fs
	overlap[1] = overlap[0]
	_, err = golay.NewOrderedSextet(overlap)
	require.True(t, errors.Is(err, golay.ErrNotSextet))

	require.Panics(t, func() { golay.MustOrderedSextet(overlap) })
}

// TestOrderedSextet_Permute checks that Permute moves the foursome at h to σ(h).
func TestOrderedSextet_Permute(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s, err := golay.Default().OrderedSextet(randomSubset(rng, 4))
	require.NoError(t, err)

	sigma, err := perm.NewCycle(hexacode.Points()[0], hexacode.Points()[3], hexacode.Points()[4])
	require.NoError(t, err)
	moved := s.Permute(sigma)
	for _, h := range hexacode.Points() {
		require.Equal(t, s.Foursome(h), moved.Foursome(sigma.Apply(h)))
	}
	require.True(t, moved.Permute(sigma.Inverse()).Equal(s))
	require.False(t, moved.Equal(s))
}
