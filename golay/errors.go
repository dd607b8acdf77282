package golay

import "errors"

// Sentinel errors for golay operations. Match with errors.Is.
var (
	// ErrInvalidWeight indicates a vector of the wrong weight for the operation
	// (5 for CompleteOctad, 4 for CompleteSextet).
	ErrInvalidWeight = errors.New("golay: invalid weight")

	// ErrNotSextet indicates six vectors that are not pairwise-disjoint tetrads.
	ErrNotSextet = errors.New("golay: vectors do not form a sextet")

	// ErrNotLabelling indicates a labelling where some foursome does not carry
	// each field element exactly once.
	ErrNotLabelling = errors.New("golay: not a labelling of the sextet")

	// ErrBadAnchors indicates anchor points outside the foursomes required by
	// CompleteLabelling.
	ErrBadAnchors = errors.New("golay: anchor points do not match the sextet")

	// ErrUniqueNearest is returned by NearestSextet when the vector has a unique
	// nearest codeword and therefore determines no sextet.
	ErrUniqueNearest = errors.New("golay: vector has a unique nearest codeword")
)
