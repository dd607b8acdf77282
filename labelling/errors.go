package labelling

import "errors"

// ErrNotPerfect is returned by Complete when the state is not Perfect.
var ErrNotPerfect = errors.New("labelling: partial labelling does not determine a unique completion")
