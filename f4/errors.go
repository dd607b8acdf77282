package f4

import "errors"

var (
	// ErrNoInverse is returned when Zero is inverted or used as a divisor.
	ErrNoInverse = errors.New("f4: zero has no multiplicative inverse")

	// ErrParse indicates a string that does not name a field element.
	ErrParse = errors.New("f4: unrecognised field element")
)
