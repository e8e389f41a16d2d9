package turtlemode

// IndentOptions holds options for indentation inference and reformatting.
type IndentOptions struct {
	Config *Config
}

// Option is a function that configures IndentOptions.
type Option func(*IndentOptions)

// WithIndentWidth sets the number of columns in one indentation unit.
func WithIndentWidth(width int) Option {
	return func(opts *IndentOptions) {
		cfg := *opts.Config
		cfg.IndentWidth = width
		opts.Config = &cfg
	}
}

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *IndentOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// indentWidth returns the effective unit size; non-positive widths
// fall back to the default.
func (o *IndentOptions) indentWidth() int {
	if o.Config == nil || o.Config.IndentWidth <= 0 {
		return DefaultIndentWidth
	}
	return o.Config.IndentWidth
}

// defaultIndentOptions returns the default options.
func defaultIndentOptions() *IndentOptions {
	return &IndentOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *IndentOptions {
	options := defaultIndentOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
