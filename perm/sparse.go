package perm

import "github.com/katalvlaran/mog/enum"

// Sparse is a permutation of an arbitrary comparable type, stored on its
// moved points only. It is produced by MapInjectiveUnchecked for callers that
// need permutations of non-enumerable things such as grid cells.
type Sparse[U comparable] struct {
	forward map[U]U
	inverse map[U]U
	cycles  [][]U
}

// MapInjectiveUnchecked transports p along f: the result sends f(x) to
// f(p(x)) for every moved x.
//
// Precondition: f is injective on the support of p. This is not checked;
// a non-injective f yields an inconsistent result.
func MapInjectiveUnchecked[T enum.Enumerable[T], U comparable](p Permutation[T], f func(T) U) Sparse[U] {
	s := Sparse[U]{forward: map[U]U{}, inverse: map[U]U{}}
	for _, c := range p.DisjointCycles() {
		mapped := make([]U, len(c))
		for i, x := range c {
			mapped[i] = f(x)
		}
		for i, u := range mapped {
			v := mapped[(i+1)%len(mapped)]
			s.forward[u] = v
			s.inverse[v] = u
		}
		s.cycles = append(s.cycles, mapped)
	}
	return s
}

// Apply returns the image of u; unmoved values are fixed.
func (s Sparse[U]) Apply(u U) U {
	if v, ok := s.forward[u]; ok {
		return v
	}
	return u
}

// ApplyInverse returns the preimage of u.
func (s Sparse[U]) ApplyInverse(u U) U {
	if v, ok := s.inverse[u]; ok {
		return v
	}
	return u
}

// DisjointCycles returns the cycles in the order of the source permutation.
func (s Sparse[U]) DisjointCycles() [][]U {
	out := make([][]U, len(s.cycles))
	for i, c := range s.cycles {
		out[i] = append([]U(nil), c...)
	}
	return out
}
