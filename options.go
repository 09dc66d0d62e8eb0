package blockify

// ParseOptions holds options for message parsing.
type ParseOptions struct {
	CitationSnippets bool
	Config           *RenderConfig
}

// Option is a function that configures ParseOptions.
type Option func(*ParseOptions)

// WithCitationSnippets sets whether citations carry a plain-text snippet of
// the line surrounding the matched link. Enabled by default.
func WithCitationSnippets(enable bool) Option {
	return func(opts *ParseOptions) {
		opts.CitationSnippets = enable
	}
}

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ParseOptions) {
		opts.Config = config
	}
}

// defaultParseOptions returns the default parse options.
func defaultParseOptions() *ParseOptions {
	return &ParseOptions{
		CitationSnippets: true,
		Config:           DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ParseOptions {
	options := defaultParseOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.Config == nil {
		options.Config = DefaultConfig()
	}
	return options
}
