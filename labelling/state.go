package labelling

import (
	"fmt"

	"github.com/katalvlaran/mog/f4"
	"github.com/katalvlaran/mog/hexacode"
)

// Kind is the classification of a partial labelling.
type Kind int

const (
	Underset Kind = iota
	Perfect
	Overset
)

func (k Kind) String() string {
	switch k {
	case Underset:
		return "Underset"
	case Perfect:
		return "Perfect"
	case Overset:
		return "Overset"
	}
	return fmt.Sprintf("labelling.Kind(%d)", int(k))
}

// State is the result of Partial.State. The remaining fields are only
// meaningful when Kind == Perfect.
type State struct {
	Kind Kind

	// X labels the single-label foursome T1 and one point of T2; Y ≠ X is
	// the other label of T2; Z is the label in the third foursome.
	X, Y, Z f4.Point

	// Pair holds T1 and T2; Side is the side of T1 in it.
	Pair hexacode.Pair
	Side hexacode.Side

	// Third is the foursome holding Z.
	Third hexacode.Point
}

// T1 returns the foursome with the single label X.
func (s State) T1() hexacode.Point { return hexacode.Point{Side: s.Side, Pair: s.Pair} }

// T2 returns the foursome with the labels X and Y.
func (s State) T2() hexacode.Point { return s.T1().Sibling() }

func (s State) String() string {
	if s.Kind != Perfect {
		return s.Kind.String()
	}
	return fmt.Sprintf("Perfect{x=%v y=%v z=%v pair=%v side=%v third=%v}", s.X, s.Y, s.Z, s.Pair, s.Side, s.Third)
}
