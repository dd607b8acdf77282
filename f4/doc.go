// Package f4 implements arithmetic in GF(4), the field with four elements
// {0, 1, ω, ω̄}, written here as Zero, One, Alpha and Beta.
//
// Representation:
//
//	Zero=0, One=1, Alpha=2, Beta=3
//
// With this numbering addition is the XOR of the indices (characteristic 2,
// every element is its own additive inverse), and the non-zero elements form
// the cyclic group One → Alpha → Beta → One under multiplication by Alpha.
//
// Operations:
//
//	Add, Mul, Div      // closed-form tables, total except Div by Zero
//	Inverse            // ErrNoInverse for Zero (recoverable, never panics)
//	Conjugate          // x ↦ x², swaps Alpha and Beta, fixes Zero and One
//	Pow                // repeated multiplication, Pow(0) == One
//
// Point implements enum.Enumerable, so F4 values can key enum.Map and
// perm.Permutation directly.
package f4
