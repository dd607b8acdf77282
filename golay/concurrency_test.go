package golay_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mog/golay"
	"github.com/katalvlaran/mog/mog"
)

// TestConcurrentReaders shares the code between goroutines: all of them must
// see the same instance and the same answers, and none may outlive the test.
func TestConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)

	const readers = 32
	results := make([]mog.Vector, readers)
	instances := make([]*golay.Code, readers)

	var g errgroup.Group
	for i := 0; i < readers; i++ {
		i := i
		g.Go(func() error {
			code := golay.Default()
			instances[i] = code
			o, err := code.CompleteOctad(mog.VectorFromIndices(0, 1, 2, 3, 4))
			results[i] = o
			return err
		})
	}
	require.NoError(t, g.Wait())

	for i := 1; i < readers; i++ {
		require.Same(t, instances[0], instances[i])
		require.Equal(t, results[0], results[i])
	}
	require.Equal(t, mog.VectorFromIndices(0, 1, 2, 3, 4, 11, 17, 23), results[0])
}
