// Package labelling classifies partial labellings of an ordered sextet and
// completes them to the unique full labelling they determine.
//
// A Partial is an ordered sextet plus an optional F4 label on each of the 24
// points. Its State is recomputed from the full set of labels on every call;
// there is no incremental state:
//
//	Underset: consistent, but not yet enough labels to fix a labelling
//	Perfect:  exactly the shape below, which extends uniquely
//	Overset:  no labelling is consistent with the labels (or too many)
//
// The Perfect shape, up to moving foursomes around:
//
//	x x  z -  - -
//	- y  - -  - -
//	- -  - -  - -
//	- -  - -  - -
//
// one foursome T1 with a single label x, the other foursome T2 of its pair
// with labels x and y (x ≠ y, any positions), and one foursome of another
// pair with a single label z.
//
// AllowedLabels tries every label on every point and keeps the ones that do
// not make the state Overset.
//
// Complete moves the anchors into the canonical slots, asks
// golay.Code.CompleteLabelling for the labelling with anchors 0,0,1,z/(x+y),
// rescales by x+y, adds the hexacode word (x x 0 0 x x) so the anchors read
// x,x,y,z, and moves the foursomes back.
package labelling
