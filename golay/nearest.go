package golay

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mog/mog"
)

// NearestKind distinguishes the two possible decoding outcomes.
type NearestKind int

const (
	// Unique: one codeword lies within distance 3.
	Unique NearestKind = iota
	// Six: no codeword within distance 3; exactly six lie at distance 4.
	Six
)

func (k NearestKind) String() string {
	if k == Unique {
		return "Unique"
	}
	return "Six"
}

// Nearest is the result of NearestCodeword.
//
//	Kind == Unique: Codeword and Distance (0..3) are set.
//	Kind == Six:    Codewords holds the six codewords at Distance 4,
//	                in ascending Compare order.
type Nearest struct {
	Kind      NearestKind
	Codeword  mog.Vector
	Distance  int
	Codewords [6]mog.Vector
}

// maxUniqueDistance is the packing radius: balls of radius 3 around distinct
// codewords are disjoint because the minimum distance is 8.
const maxUniqueDistance = 3

// coveringRadius is the largest distance from any vector to the code.
const coveringRadius = 4

// NearestCodeword decodes v to its nearest codeword(s).
// Complexity: O(4096).
func (c *Code) NearestCodeword(v mog.Vector) Nearest {
	var far []mog.Vector
	for _, w := range c.sorted {
		d := w.Xor(v).Weight()
		if d <= maxUniqueDistance {
			return Nearest{Kind: Unique, Codeword: w, Distance: d}
		}
		if d == coveringRadius {
			far = append(far, w)
		}
	}
	if len(far) != 6 {
		panic(fmt.Sprintf("golay: %v has %d codewords at distance 4, want 6", v, len(far)))
	}

	res := Nearest{Kind: Six, Distance: coveringRadius}
	copy(res.Codewords[:], far)
	slices.SortFunc(res.Codewords[:], mog.Vector.Compare)
	return res
}

// NearestSextet returns the sextet whose tetrads are v △ c for the six
// codewords c nearest to v, in descending Compare order. For a tetrad v this
// is CompleteSextet(v).
// Returns ErrUniqueNearest when v is within distance 3 of a codeword.
func (c *Code) NearestSextet(v mog.Vector) ([6]mog.Vector, error) {
	var out [6]mog.Vector
	n := c.NearestCodeword(v)
	if n.Kind != Six {
		return out, fmt.Errorf("%w: distance %d", ErrUniqueNearest, n.Distance)
	}
	for i, w := range n.Codewords {
		out[i] = w.Xor(v)
	}
	slices.SortFunc(out[:], func(a, b mog.Vector) int { return b.Compare(a) })
	return out, nil
}
