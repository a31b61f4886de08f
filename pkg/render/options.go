package render

// RenderOptions describe per-call data a renderer may need.
type RenderOptions struct {
	// Index positions an enumerated block, e.g. the third tracked item in a
	// list. It is not stored on the bag, so one bag can be rendered under
	// several indices.
	Index int
	// HasIndex reports whether Index was supplied.
	HasIndex bool
}

// Option mutates RenderOptions.
type Option func(*RenderOptions)

// WithIndex sets the enumeration index.
func WithIndex(index int) Option {
	return func(o *RenderOptions) {
		o.Index = index
		o.HasIndex = true
	}
}

// NewRenderOptions applies opts over zero options.
func NewRenderOptions(opts ...Option) RenderOptions {
	var o RenderOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
