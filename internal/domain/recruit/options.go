package recruit

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMaxCandidates caps a single generation request.
func WithMaxCandidates(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxCandidates = max
		}
	}
}

// WithIDSource replaces the durable identity source, e.g. for tests.
func WithIDSource(src func() string) Option {
	return func(e *Engine) {
		if src != nil {
			e.idSource = src
		}
	}
}
