package spark

// Option configures Sparkify and Render.
type Option func(*renderOptions)

type renderOptions struct {
	min, max       float64
	hasMin, hasMax bool
}

// WithMin fixes the bottom of the range instead of deriving it from the data.
func WithMin(v float64) Option {
	return func(o *renderOptions) {
		o.min = v
		o.hasMin = true
	}
}

// WithMax fixes the top of the range instead of deriving it from the data.
func WithMax(v float64) Option {
	return func(o *renderOptions) {
		o.max = v
		o.hasMax = true
	}
}

// WithRange fixes both ends of the range. Callers may pass an inverted or
// zero-width range.
func WithRange(lo, hi float64) Option {
	return func(o *renderOptions) {
		WithMin(lo)(o)
		WithMax(hi)(o)
	}
}

func applyOptions(opts []Option) renderOptions {
	var o renderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Ranged reports whether any option pins an end of the range.
func Ranged(opts ...Option) bool {
	o := applyOptions(opts)
	return o.hasMin || o.hasMax
}
