package hexacode

import "github.com/katalvlaran/mog/f4"

// wordSet holds the 64 hexacode words, built at package init.
var (
	words   []Vector
	wordSet map[Vector]struct{}
)

func init() {
	words = make([]Vector, 0, 64)
	wordSet = make(map[Vector]struct{}, 64)
	for _, a := range f4.Elements() {
		for _, b := range f4.Elements() {
			for _, c := range f4.Elements() {
				phi := func(t f4.Point) f4.Point {
					return a.Mul(t.Mul(t)).Add(b.Mul(t)).Add(c)
				}
				w := Vector{a, b, c, phi(f4.One), phi(f4.Alpha), phi(f4.Beta)}
				words = append(words, w)
				wordSet[w] = struct{}{}
			}
		}
	}
}

// Words returns the 64 hexacode words. The slice is a fresh copy.
func Words() []Vector {
	out := make([]Vector, len(words))
	copy(out, words)
	return out
}

// IsWord reports whether v is a hexacode word.
func IsWord(v Vector) bool {
	_, ok := wordSet[v]
	return ok
}
