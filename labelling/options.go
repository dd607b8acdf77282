package labelling

import "github.com/katalvlaran/mog/golay"

// Option configures Complete.
type Option func(*Options)

// Options holds the Complete configuration.
type Options struct {
	// Code is the Golay code used for the seed completion; golay.Default()
	// when nil.
	Code *golay.Code

	// CheckPrecondition makes Complete return ErrNotPerfect for a state that
	// is not Perfect. Default true.
	CheckPrecondition bool
}

// DefaultOptions returns the shared code with the precondition check on.
func DefaultOptions() Options {
	return Options{Code: nil, CheckPrecondition: true}
}

// WithCode completes against c instead of golay.Default(). A nil c is ignored.
func WithCode(c *golay.Code) Option {
	return func(o *Options) {
		if c != nil {
			o.Code = c
		}
	}
}

// WithoutPrecondition skips the Perfect check. Calling Complete on a state
// that is not Perfect is then a programmer error and panics.
func WithoutPrecondition() Option {
	return func(o *Options) { o.CheckPrecondition = false }
}
