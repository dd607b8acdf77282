package f4

import (
	"fmt"
	"strings"
)

// Point is an element of GF(4).
type Point uint8

// The four field elements, numbered by their canonical index.
const (
	Zero Point = iota
	One
	Alpha
	Beta
)

// Order is the number of elements of the field.
const Order = 4

// logTable[x] is k with Alpha^k == x for x != Zero.
var logTable = [Order]int{0, 0, 1, 2}

// expTable[k] is Alpha^k.
var expTable = [3]Point{One, Alpha, Beta}

// Elements returns Zero, One, Alpha, Beta in canonical order.
func Elements() []Point {
	return []Point{Zero, One, Alpha, Beta}
}

// Index implements enum.Enumerable.
func (x Point) Index() int { return int(x) }

// Cardinality implements enum.Enumerable.
func (Point) Cardinality() int { return Order }

// FromIndex implements enum.Enumerable.
func (Point) FromIndex(i int) Point { return Point(i) }

// Add returns x + y.
func (x Point) Add(y Point) Point { return x ^ y }

// Neg returns -x, which is x itself in characteristic 2.
func (x Point) Neg() Point { return x }

// Mul returns x · y.
func (x Point) Mul(y Point) Point {
	if x == Zero || y == Zero {
		return Zero
	}
	return expTable[(logTable[x]+logTable[y])%3]
}

// Inverse returns x⁻¹, or ErrNoInverse when x is Zero.
func (x Point) Inverse() (Point, error) {
	if x == Zero {
		return Zero, ErrNoInverse
	}
	return expTable[(3-logTable[x])%3], nil
}

// Div returns x / y, or ErrNoInverse when y is Zero.
func (x Point) Div(y Point) (Point, error) {
	inv, err := y.Inverse()
	if err != nil {
		return Zero, err
	}
	return x.Mul(inv), nil
}

// Pow returns x^n for n >= 0. Pow(0) is One, including for Zero.
func (x Point) Pow(n int) Point {
	r := One
	for i := 0; i < n; i++ {
		r = r.Mul(x)
	}
	return r
}

// Conjugate applies the Frobenius automorphism x ↦ x².
func (x Point) Conjugate() Point {
	switch x {
	case Alpha:
		return Beta
	case Beta:
		return Alpha
	default:
		return x
	}
}

// IsValid reports whether x is one of the four field elements.
func (x Point) IsValid() bool { return x < Order }

// String renders 0, 1, ω and ω̄.
func (x Point) String() string {
	switch x {
	case Zero:
		return "0"
	case One:
		return "1"
	case Alpha:
		return "ω"
	case Beta:
		return "ω̄"
	}
	return fmt.Sprintf("f4.Point(%d)", uint8(x))
}

// Parse reads a field element. Accepted spellings:
//
//	Zero:  "0"
//	One:   "1"
//	Alpha: "a", "w", "ω", "alpha"
//	Beta:  "b", "W", "ω̄", "beta"
func Parse(s string) (Point, error) {
	switch strings.TrimSpace(s) {
	case "0", "zero", "Zero":
		return Zero, nil
	case "1", "one", "One":
		return One, nil
	case "a", "w", "ω", "alpha", "Alpha":
		return Alpha, nil
	case "b", "W", "ω̄", "beta", "Beta":
		return Beta, nil
	}
	return Zero, fmt.Errorf("%w: %q", ErrParse, s)
}
