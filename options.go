package lineart

// Option configures ambient behavior of a generator call. Parameter
// records carry the geometry; options carry everything that must not
// influence it, such as progress reporting.
//
// Example:
//
//	set, err := flow.FlowField(cfg, lineart.WithProgress(func(f float64) {
//	    fmt.Printf("\r%3.0f%%", f*100)
//	}))
type Option func(*Options)

// Options holds the resolved ambient settings of one generator call.
type Options struct {
	// Progress receives fractions in [0, 1]. May be nil.
	Progress Progress

	// ProgressEvery is the number of inner-loop work units between
	// progress reports. Values < 1 mean 1.
	ProgressEvery int
}

// DefaultProgressEvery is the reporting interval used when none is set.
const DefaultProgressEvery = 64

// ResolveOptions applies opts over the defaults.
func ResolveOptions(opts ...Option) Options {
	o := Options{ProgressEvery: DefaultProgressEvery}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.ProgressEvery < 1 {
		o.ProgressEvery = 1
	}
	return o
}

// WithProgress sets the progress callback.
func WithProgress(p Progress) Option {
	return func(o *Options) {
		o.Progress = p
	}
}

// WithProgressEvery sets how many work units pass between progress reports.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		o.ProgressEvery = n
	}
}
