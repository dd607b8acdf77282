package golay

import (
	"fmt"

	"github.com/katalvlaran/mog/hexacode"
	"github.com/katalvlaran/mog/mog"
	"github.com/katalvlaran/mog/perm"
)

// OrderedSextet assigns the six foursomes of a sextet to the hexacode points.
type OrderedSextet struct {
	foursomes [hexacode.Size]mog.Vector
}

// NewOrderedSextet validates that the six vectors (indexed by hexacode
// point index) are tetrads and pairwise disjoint.
// Returns ErrNotSextet otherwise.
func NewOrderedSextet(foursomes [hexacode.Size]mog.Vector) (OrderedSextet, error) {
	var union mog.Vector
	for i, f := range foursomes {
		if f.Weight() != 4 {
			return OrderedSextet{}, fmt.Errorf("%w: foursome %d has weight %d", ErrNotSextet, i, f.Weight())
		}
		if !union.Disjoint(f) {
			return OrderedSextet{}, fmt.Errorf("%w: foursome %d overlaps an earlier one", ErrNotSextet, i)
		}
		union = union.Or(f)
	}
	return OrderedSextet{foursomes: foursomes}, nil
}

// MustOrderedSextet is NewOrderedSextet for data already known to be a
// sextet, such as CompleteSextet output. It panics otherwise.
func MustOrderedSextet(foursomes [hexacode.Size]mog.Vector) OrderedSextet {
	s, err := NewOrderedSextet(foursomes)
	if err != nil {
		panic(err)
	}
	return s
}

// StandardSextet is the sextet of MOG columns, column h at hexacode point h.
func StandardSextet() OrderedSextet {
	var fs [hexacode.Size]mog.Vector
	for i, h := range hexacode.Points() {
		fs[i] = mog.Column(h)
	}
	return OrderedSextet{foursomes: fs}
}

// OrderedSextet completes the tetrad v to its sextet, ordered as
// CompleteSextet returns it (descending Compare order).
func (c *Code) OrderedSextet(v mog.Vector) (OrderedSextet, error) {
	fs, err := c.CompleteSextet(v)
	if err != nil {
		return OrderedSextet{}, err
	}
	return MustOrderedSextet(fs), nil
}

// Foursome returns the tetrad at h.
func (s OrderedSextet) Foursome(h hexacode.Point) mog.Vector { return s.foursomes[h.Index()] }

// Foursomes returns the six tetrads by hexacode point index.
func (s OrderedSextet) Foursomes() [hexacode.Size]mog.Vector { return s.foursomes }

// FoursomeOf returns the hexacode point whose tetrad contains p.
func (s OrderedSextet) FoursomeOf(p mog.Point) hexacode.Point {
	for _, h := range hexacode.Points() {
		if s.foursomes[h.Index()].Has(p) {
			return h
		}
	}
	panic(fmt.Sprintf("golay: point %v in no foursome", p))
}

// Permute moves the foursome at h to σ(h).
func (s OrderedSextet) Permute(sigma perm.Permutation[hexacode.Point]) OrderedSextet {
	var out OrderedSextet
	for _, h := range hexacode.Points() {
		out.foursomes[sigma.Apply(h).Index()] = s.foursomes[h.Index()]
	}
	return out
}

// Equal reports whether both sextets have the same foursome at every point.
func (s OrderedSextet) Equal(o OrderedSextet) bool { return s.foursomes == o.foursomes }
