// Package golay implements the extended binary Golay code on the 24 MOG
// points, together with ordered sextets and their labellings.
//
// The code:
//
//   - is spanned by a fixed basis of 12 MOG pictures (five column pairs, three
//     "row value" patterns and four hexacode-scored patterns);
//   - is materialized once as its 4096 codewords;
//   - has weight distribution {0:1, 8:759, 12:2576, 16:759, 24:1} and
//     minimum distance 8, so every 5-set lies in exactly one octad
//     (the Steiner system S(5,8,24)).
//
// Default returns the process-wide instance, built lazily on first use under
// sync.OnceValue and never mutated afterwards; it is safe for concurrent
// readers. Construction verifies the codeword count and weight spectrum and
// panics if they are wrong, which can only happen if the fixed basis data is
// corrupted.
//
// Operations:
//
//	IsCodeword(v), IsOctad(v)     // O(1) set membership
//	CompleteOctad(v)              // |v| = 5 → the unique octad ⊇ v
//	CompleteSextet(v)             // |v| = 4 → the six tetrads of its sextet
//	NearestCodeword(v)            // Unique{codeword, d ≤ 3} or Six{codewords at d = 4}
//	IsAutomorphism(σ)             // σ maps every basis vector into the code
//	CompleteLabelling(...)        // the unique labelling through four anchors
//
// Wrong input weights are reported as ErrInvalidWeight; invariant violations
// of the fixed mathematics panic.
//
// An OrderedSextet assigns the six tetrads ("foursomes") of a sextet to the
// six hexacode points. A Labelling further assigns an F4 label to every
// point so that each foursome carries each label once, and so that the map
// p ↦ (foursome(p), label(p)) is an automorphism of the code.
package golay
