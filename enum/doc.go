// Package enum defines the single integration contract shared by every point
// type of the library: a finite set with a fixed, dense numbering.
//
// A type T is Enumerable when the methods of its zero value describe the
// whole universe of T:
//
//	Cardinality() int   // N, the number of values of T
//	FromIndex(i int) T  // bijection 0..N-1 → T
//	Index() int         // inverse bijection T → 0..N-1
//
// MOG vector bits, grid cells and permutation storage are keyed by the
// numbering, so every implementation fixes it by hand.
//
// On top of the contract the package provides:
//
//   - All and Cardinality: canonical enumeration of a universe;
//   - Map[K,V]: a total function K→V stored as a dense slice.
//
// Map values are immutable: With returns a modified copy.
package enum
