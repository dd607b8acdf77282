// Package mog is a small finite-algebra engine for the Miracle Octad
// Generator picture of the extended binary Golay code.
//
// What is in the box?
//
//	• GF(4) arithmetic and the hexacode over it
//	• The 24 MOG points, 24-bit vectors and their canonical order
//	• The Golay code: membership, octad and sextet completion, decoding
//	• Permutations over any enumerable point type, with cycle notation
//	• Ordered sextets, their labellings, and completion of a partial
//	  labelling from four hand-placed labels
//
// Everything is organised in leaf-first subpackages:
//
//	enum/      the Enumerable contract and dense total maps
//	f4/        the field with four elements
//	hexacode/  the six hexacode coordinates, vectors and the 64 words
//	mog/       MOG points and vectors
//	perm/      Permutation[T] and sparse transported permutations
//	golay/     the code, ordered sextets, labellings and seed completion
//	labelling/ partial labellings: classification, allowed labels, completion
//	cmd/mog    a command-line front end
//
// The MOG grid, columns left to right and rows top to bottom:
//
//	 0  1 |  2  3 |  4  5
//	 6  7 |  8  9 | 10 11
//	12 13 | 14 15 | 16 17
//	18 19 | 20 21 | 22 23
//
// Point i sits in column i%6 (a hexacode point) and row i/6 (an F4 label).
//
//	go get github.com/katalvlaran/mog
package mog
