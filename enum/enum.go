package enum

import "fmt"

// Enumerable is satisfied by point types with a fixed canonical numbering.
// Cardinality and FromIndex must not depend on the receiver value.
type Enumerable[T any] interface {
	comparable
	Index() int
	Cardinality() int
	FromIndex(i int) T
}

// Cardinality returns N for the universe of T.
func Cardinality[T Enumerable[T]]() int {
	var zero T
	return zero.Cardinality()
}

// FromIndex returns the point with canonical index i.
// Returns ErrOutOfRange if i is not in 0..N-1.
func FromIndex[T Enumerable[T]](i int) (T, error) {
	var zero T
	if i < 0 || i >= zero.Cardinality() {
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, zero.Cardinality())
	}
	return zero.FromIndex(i), nil
}

// All returns every value of T in canonical index order.
// Complexity: O(N).
func All[T Enumerable[T]]() []T {
	var zero T
	n := zero.Cardinality()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = zero.FromIndex(i)
	}
	return out
}
