// Package mog models the 24 points of the Miracle Octad Generator and the
// binary vectors (subsets) over them.
//
// A Point is a (column, row) pair: the column is a hexacode.Point and the row
// is an f4.Point. The canonical numbering is
//
//	index = column + 6·row
//
//	       col: 0  1   2  3   4  5
//	  row 0 :   0  1   2  3   4  5
//	  row 1 :   6  7   8  9  10 11
//	  row ω :  12 13  14 15  16 17
//	  row ω̄ :  18 19  20 21  22 23
//
// A Vector is a 24-bit subset indicator stored in a uint32 (bit i ↔ point
// with index i). Vectors are plain values: compare with ==, combine with
// Xor/And/Or. Compare gives the deterministic total order used for
// tie-breaking (lexicographic over canonical index, a set point beats an
// unset one).
package mog
