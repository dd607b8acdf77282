package perm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mog/enum"
)

// Permutation is a bijection on T. The zero value is the identity.
type Permutation[T enum.Enumerable[T]] struct {
	// forward[i] is the index of the image of point i; nil means identity.
	forward []int
	// inverse[i] is the index of the preimage of point i.
	inverse []int
}

// Identity returns the identity permutation on T.
func Identity[T enum.Enumerable[T]]() Permutation[T] {
	return Permutation[T]{}
}

// NewSwap returns the transposition of a and b (identity when a == b).
func NewSwap[T enum.Enumerable[T]](a, b T) Permutation[T] {
	if a == b {
		return Identity[T]()
	}
	fwd := identitySlice(enum.Cardinality[T]())
	fwd[a.Index()], fwd[b.Index()] = b.Index(), a.Index()
	return fromForward[T](fwd)
}

// NewCycle returns the cyclic permutation elems[0] → elems[1] → … → elems[0].
// Returns ErrRepeatedElement if any element occurs twice. Zero or one
// elements give the identity.
func NewCycle[T enum.Enumerable[T]](elems ...T) (Permutation[T], error) {
	n := enum.Cardinality[T]()
	seen := make([]bool, n)
	for _, e := range elems {
		if seen[e.Index()] {
			return Identity[T](), fmt.Errorf("%w: %v", ErrRepeatedElement, e)
		}
		seen[e.Index()] = true
	}
	if len(elems) < 2 {
		return Identity[T](), nil
	}

	fwd := identitySlice(n)
	for i, e := range elems {
		fwd[e.Index()] = elems[(i+1)%len(elems)].Index()
	}
	return fromForward[T](fwd), nil
}

// FromFunc tabulates f over every point of T.
// Returns ErrNotInjective if f maps two points to the same image.
// Complexity: O(N).
func FromFunc[T enum.Enumerable[T]](f func(T) T) (Permutation[T], error) {
	var zero T
	n := zero.Cardinality()
	fwd := make([]int, n)
	hit := make([]bool, n)
	for i := 0; i < n; i++ {
		img := f(zero.FromIndex(i))
		j := img.Index()
		if hit[j] {
			return Identity[T](), fmt.Errorf("%w: %v has two preimages", ErrNotInjective, img)
		}
		hit[j] = true
		fwd[i] = j
	}
	return fromForward[T](fwd), nil
}

// MustFromFunc is FromFunc for mappings known to be bijective.
// It panics on a non-injective f.
func MustFromFunc[T enum.Enumerable[T]](f func(T) T) Permutation[T] {
	p, err := FromFunc(f)
	if err != nil {
		panic(err)
	}
	return p
}

// Apply returns the image of x.
func (p Permutation[T]) Apply(x T) T {
	if p.forward == nil {
		return x
	}
	return x.FromIndex(p.forward[x.Index()])
}

// ApplyInverse returns the preimage of x.
func (p Permutation[T]) ApplyInverse(x T) T {
	if p.inverse == nil {
		return x
	}
	return x.FromIndex(p.inverse[x.Index()])
}

// Inverse returns p⁻¹.
func (p Permutation[T]) Inverse() Permutation[T] {
	return Permutation[T]{forward: p.inverse, inverse: p.forward}
}

// Mul returns the composite "p, then q":
//
//	p.Mul(q).Apply(x) == q.Apply(p.Apply(x))
func (p Permutation[T]) Mul(q Permutation[T]) Permutation[T] {
	if p.forward == nil {
		return q
	}
	if q.forward == nil {
		return p
	}
	fwd := make([]int, len(p.forward))
	for i, j := range p.forward {
		fwd[i] = q.forward[j]
	}
	return fromForward[T](fwd)
}

// Equal reports whether p and q induce the same mapping.
func (p Permutation[T]) Equal(q Permutation[T]) bool {
	n := enum.Cardinality[T]()
	for i := 0; i < n; i++ {
		if p.index(i) != q.index(i) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether p fixes every point.
func (p Permutation[T]) IsIdentity() bool {
	return p.Equal(Identity[T]())
}

// Support returns the moved points in canonical order.
func (p Permutation[T]) Support() []T {
	var zero T
	var out []T
	for i, n := 0, zero.Cardinality(); i < n; i++ {
		if p.index(i) != i {
			out = append(out, zero.FromIndex(i))
		}
	}
	return out
}

// DisjointCycles returns the cycles of length ≥ 2. Cycles are ordered by
// their smallest point and each starts at that point.
// Complexity: O(N).
func (p Permutation[T]) DisjointCycles() [][]T {
	var zero T
	n := zero.Cardinality()
	visited := make([]bool, n)
	var cycles [][]T
	for start := 0; start < n; start++ {
		if visited[start] || p.index(start) == start {
			visited[start] = true
			continue
		}
		var cycle []T
		for i := start; !visited[i]; i = p.index(i) {
			visited[i] = true
			cycle = append(cycle, zero.FromIndex(i))
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// Order returns the least k ≥ 1 with p^k = identity.
func (p Permutation[T]) Order() int {
	order := 1
	for _, c := range p.DisjointCycles() {
		order = lcm(order, len(c))
	}
	return order
}

// String renders p in cycle notation, "()" for the identity.
func (p Permutation[T]) String() string {
	cycles := p.DisjointCycles()
	if len(cycles) == 0 {
		return "()"
	}
	var b strings.Builder
	for _, c := range cycles {
		b.WriteByte('(')
		for i, x := range c {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, x)
		}
		b.WriteByte(')')
	}
	return b.String()
}

// index returns the image index of point i.
func (p Permutation[T]) index(i int) int {
	if p.forward == nil {
		return i
	}
	return p.forward[i]
}

// fromForward builds a permutation from a validated forward table.
func fromForward[T enum.Enumerable[T]](fwd []int) Permutation[T] {
	inv := make([]int, len(fwd))
	moved := false
	for i, j := range fwd {
		inv[j] = i
		if i != j {
			moved = true
		}
	}
	if !moved {
		return Identity[T]()
	}
	return Permutation[T]{forward: fwd, inverse: inv}
}

func identitySlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}
