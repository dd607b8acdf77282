package hexacode

import "fmt"

// Side selects one column of a pair.
type Side uint8

// Sides of a pair.
const (
	Left Side = iota
	Right
)

// Flip returns the other side.
func (s Side) Flip() Side { return 1 - s }

// Index implements enum.Enumerable.
func (s Side) Index() int { return int(s) }

// Cardinality implements enum.Enumerable.
func (Side) Cardinality() int { return 2 }

// FromIndex implements enum.Enumerable.
func (Side) FromIndex(i int) Side { return Side(i) }

func (s Side) String() string {
	if s == Left {
		return "L"
	}
	return "R"
}

// Pair selects one of the three column pairs.
type Pair uint8

// Pairs, left to right.
const (
	LeftPair Pair = iota
	MiddlePair
	RightPair
)

// Index implements enum.Enumerable.
func (p Pair) Index() int { return int(p) }

// Cardinality implements enum.Enumerable.
func (Pair) Cardinality() int { return 3 }

// FromIndex implements enum.Enumerable.
func (Pair) FromIndex(i int) Pair { return Pair(i) }

func (p Pair) String() string {
	switch p {
	case LeftPair:
		return "Left"
	case MiddlePair:
		return "Middle"
	case RightPair:
		return "Right"
	}
	return fmt.Sprintf("hexacode.Pair(%d)", uint8(p))
}

// Point is one of the six hexacode coordinates.
type Point struct {
	Side Side
	Pair Pair
}

// Size is the number of hexacode coordinates.
const Size = 6

// Index implements enum.Enumerable: side + 2·pair.
func (h Point) Index() int { return int(h.Side) + 2*int(h.Pair) }

// Cardinality implements enum.Enumerable.
func (Point) Cardinality() int { return Size }

// FromIndex implements enum.Enumerable.
func (Point) FromIndex(i int) Point {
	return Point{Side: Side(i % 2), Pair: Pair(i / 2)}
}

// Sibling returns the other point of the same pair.
func (h Point) Sibling() Point { return Point{Side: h.Side.Flip(), Pair: h.Pair} }

// Adjacent reports whether h and o are distinct points of the same pair.
func (h Point) Adjacent(o Point) bool { return h.Pair == o.Pair && h.Side != o.Side }

func (h Point) String() string { return fmt.Sprintf("%s%s", h.Pair, h.Side) }

// Points returns the six points in canonical order.
func Points() []Point {
	var zero Point
	out := make([]Point, Size)
	for i := range out {
		out[i] = zero.FromIndex(i)
	}
	return out
}
