package golay

import (
	"fmt"
	"slices"
	"sync"

	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// Size is the number of codewords, 2^Dimension.
const Size = 1 << Dimension

// OctadWeight is the weight of an octad.
const OctadWeight = 8

// expectedSpectrum is the weight histogram every construction must reproduce.
var expectedSpectrum = map[int]int{0: 1, 8: 759, 12: 2576, 16: 759, 24: 1}

// Code is the extended binary Golay code on the MOG points.
// A Code is immutable after construction.
type Code struct {
	basis     [Dimension]mog.Vector
	codewords map[mog.Vector]struct{}
	sorted    []mog.Vector // ascending by Compare
	octads    []mog.Vector // ascending by Compare
}

var defaultCode = sync.OnceValue(func() *Code { return build(standardBasis()) })

// Default returns the shared Golay code, building it on first use.
func Default() *Code { return defaultCode() }

// build spans the basis and checks the code invariants. It panics on any
// violation because the basis is fixed data.
// Complexity: O(2^12 · 12).
func build(basis [Dimension]mog.Vector) *Code {
	c := &Code{
		basis:     basis,
		codewords: make(map[mog.Vector]struct{}, Size),
		sorted:    make([]mog.Vector, 0, Size),
	}

	// 1) Span: XOR the basis vectors selected by every 12-bit coefficient mask.
	for mask := 0; mask < Size; mask++ {
		var w mog.Vector
		for i := 0; i < Dimension; i++ {
			if mask&(1<<i) != 0 {
				w = w.Xor(basis[i])
			}
		}
		c.codewords[w] = struct{}{}
	}
	if len(c.codewords) != Size {
		panic(fmt.Sprintf("golay: basis spans %d codewords, want %d", len(c.codewords), Size))
	}

	// 2) Deterministic order and the octad list.
	for w := range c.codewords {
		c.sorted = append(c.sorted, w)
	}
	slices.SortFunc(c.sorted, mog.Vector.Compare)
	for _, w := range c.sorted {
		if w.Weight() == OctadWeight {
			c.octads = append(c.octads, w)
		}
	}

	// 3) Weight spectrum.
	got := c.WeightHistogram()
	for weight, count := range expectedSpectrum {
		if got[weight] != count {
			panic(fmt.Sprintf("golay: %d codewords of weight %d, want %d", got[weight], weight, count))
		}
	}
	if len(got) != len(expectedSpectrum) {
		panic(fmt.Sprintf("golay: unexpected weight spectrum %v", got))
	}

	return c
}

// Basis returns the 12 basis vectors.
func (c *Code) Basis() [Dimension]mog.Vector { return c.basis }

// Codewords returns all 4096 codewords in ascending Compare order.
func (c *Code) Codewords() []mog.Vector { return slices.Clone(c.sorted) }

// Octads returns the 759 octads in ascending Compare order.
func (c *Code) Octads() []mog.Vector { return slices.Clone(c.octads) }

// WeightHistogram maps each occurring weight to its number of codewords.
func (c *Code) WeightHistogram() map[int]int {
	h := make(map[int]int)
	for _, w := range c.sorted {
		h[w.Weight()]++
	}
	return h
}

// IsCodeword reports whether v is in the code. O(1).
func (c *Code) IsCodeword(v mog.Vector) bool {
	_, ok := c.codewords[v]
	return ok
}

// IsOctad reports whether v is a codeword of weight 8.
func (c *Code) IsOctad(v mog.Vector) bool {
	return v.Weight() == OctadWeight && c.IsCodeword(v)
}

// CompleteOctad returns the unique octad containing the 5-set v.
// Returns ErrInvalidWeight unless |v| = 5.
// Complexity: O(759).
func (c *Code) CompleteOctad(v mog.Vector) (mog.Vector, error) {
	if w := v.Weight(); w != 5 {
		return 0, fmt.Errorf("%w: CompleteOctad needs 5 points, got %d", ErrInvalidWeight, w)
	}
	for _, o := range c.octads {
		if o.Contains(v) {
			return o, nil
		}
	}
	panic(fmt.Sprintf("golay: no octad contains %v", v))
}

// CompleteSextet returns the sextet determined by the tetrad v: the six
// weight-4 vectors c △ v over all codewords c. The result is a partition of
// the 24 points containing v, in descending Compare order.
// Returns ErrInvalidWeight unless |v| = 4.
// Complexity: O(4096).
func (c *Code) CompleteSextet(v mog.Vector) ([6]mog.Vector, error) {
	var out [6]mog.Vector
	if w := v.Weight(); w != 4 {
		return out, fmt.Errorf("%w: CompleteSextet needs 4 points, got %d", ErrInvalidWeight, w)
	}

	seen := make(map[mog.Vector]struct{}, 6)
	for _, w := range c.sorted {
		if d := w.Xor(v); d.Weight() == 4 {
			seen[d] = struct{}{}
		}
	}
	if len(seen) != 6 {
		panic(fmt.Sprintf("golay: tetrad %v completes to %d tetrads, want 6", v, len(seen)))
	}

	n := 0
	var union mog.Vector
	for d := range seen {
		if !union.Disjoint(d) {
			panic(fmt.Sprintf("golay: sextet of %v is not a partition", v))
		}
		union = union.Or(d)
		out[n] = d
		n++
	}
	if union != mog.Full {
		panic(fmt.Sprintf("golay: sextet of %v does not cover all points", v))
	}
	slices.SortFunc(out[:], func(a, b mog.Vector) int { return b.Compare(a) })
	return out, nil
}

// IsAutomorphism reports whether σ maps the code onto itself. By linearity
// it suffices that every basis vector is mapped to a codeword.
func (c *Code) IsAutomorphism(sigma perm.Permutation[mog.Point]) bool {
	for _, b := range c.basis {
		if !c.IsCodeword(b.Permute(sigma)) {
			return false
		}
	}
	return true
}
