// Package hexacode provides the six-point coordinate space of the MOG
// columns and GF(4)-valued vectors over it.
//
// The six points are three pairs (Left, Middle, Right), each with a Left and
// a Right side. Numbering is fixed:
//
//	index = side + 2·pair
//
//	  0 1   2 3   4 5
//	  L R   L R   L R      side
//	  Left  Middle Right   pair
//
// The hexacode itself is the [6,3,4] code over GF(4) of words
//
//	(a, b, c, φ(1), φ(ω), φ(ω̄)),  φ(t) = a·t² + b·t + c
//
// Words lists its 64 elements and IsWord tests membership. Translations by
// hexacode words and scalar multiplication are exactly the per-column label
// moves that keep a MOG labelling valid, which is why golay.Labelling.AddVector
// takes a Vector.
package hexacode
