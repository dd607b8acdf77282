package hexacode

import (
	"strings"

	"github.com/katalvlaran/mog/f4"
)

// Vector is a total function Point → GF(4), stored by canonical index.
type Vector [Size]f4.Point

// VectorFromFunc tabulates f over the six points.
func VectorFromFunc(f func(Point) f4.Point) Vector {
	var v Vector
	for i, h := range Points() {
		v[i] = f(h)
	}
	return v
}

// Component returns v at h.
func (v Vector) Component(h Point) f4.Point { return v[h.Index()] }

// Add returns the componentwise sum v + w.
func (v Vector) Add(w Vector) Vector {
	for i := range v {
		v[i] = v[i].Add(w[i])
	}
	return v
}

// Scale returns λ·v.
func (v Vector) Scale(lambda f4.Point) Vector {
	for i := range v {
		v[i] = v[i].Mul(lambda)
	}
	return v
}

// Conjugate applies the field automorphism componentwise.
func (v Vector) Conjugate() Vector {
	for i := range v {
		v[i] = v[i].Conjugate()
	}
	return v
}

// Weight counts the non-zero components.
func (v Vector) Weight() int {
	w := 0
	for _, x := range v {
		if x != f4.Zero {
			w++
		}
	}
	return w
}

func (v Vector) String() string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 && i%2 == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(x.String())
	}
	return b.String()
}
