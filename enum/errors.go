package enum

import "errors"

// ErrOutOfRange indicates an index outside 0..Cardinality()-1.
var ErrOutOfRange = errors.New("enum: index out of range")
