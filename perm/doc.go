// Package perm implements finite permutations over any enum.Enumerable
// point type (field elements, hexacode coordinates, MOG points).
//
// Representation: a Permutation[T] stores its forward and inverse mappings
// as dense index slices of length N = enum.Cardinality[T](). Untouched
// points are fixed, and the zero value is the identity, so permutations can
// be declared without construction.
//
// Construction:
//
//	Identity[T]()              // identity
//	NewSwap(a, b)              // transposition, identity when a == b
//	NewCycle(a, b, c, ...)     // a→b→c→…→a, ErrRepeatedElement on repeats
//	FromFunc(f)                // tabulate f, ErrNotInjective unless bijective
//
// Composition reads left to right:
//
//	p.Mul(q).Apply(x) == q.Apply(p.Apply(x))   // p first, then q
//
// Permutation values are immutable; every operation returns a new value.
// Equal compares the induced mapping only.
//
// DisjointCycles lists the non-trivial cycles, visiting points in canonical
// index order and starting each cycle at its smallest point, so the output
// is reproducible for rendering.
//
// MapInjectiveUnchecked relabels the support through an injection into an
// arbitrary comparable type (for example a grid cell) and returns a Sparse
// permutation on that type. Injectivity is the caller's responsibility.
package perm
