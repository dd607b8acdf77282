package perm

import "errors"

var (
	// ErrNotInjective is returned by FromFunc when two points share an image.
	ErrNotInjective = errors.New("perm: mapping is not injective")

	// ErrRepeatedElement is returned by NewCycle when an element is listed twice.
	ErrRepeatedElement = errors.New("perm: cycle repeats an element")
)
