package extract

const (
	// DefaultMaxDepth bounds bracket nesting during substring scanning so that
	// adversarial input cannot force unbounded work.
	DefaultMaxDepth = 64
)

// Options control the extraction cascade. The zero value is not meaningful;
// use [ExtractJSON] with functional options instead.
type Options struct {
	// Lenient enables the heuristic repair step (trailing commas, unbalanced
	// brackets, unquoted keys) when stricter strategies fail.
	Lenient bool
	// CodeBlocks enables extraction from fenced markdown code blocks.
	CodeBlocks bool
	// MaxDepth bounds bracket nesting during substring scanning.
	MaxDepth int
}

// Option configures the extraction cascade.
type Option func(*Options)

// WithLenient toggles the lenient repair step. Enabled by default.
func WithLenient(enabled bool) Option {
	return func(o *Options) { o.Lenient = enabled }
}

// WithCodeBlocks toggles extraction from fenced code blocks. Enabled by default.
func WithCodeBlocks(enabled bool) Option {
	return func(o *Options) { o.CodeBlocks = enabled }
}

// WithMaxDepth overrides [DefaultMaxDepth]. Values below one are ignored.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth >= 1 {
			o.MaxDepth = depth
		}
	}
}

func defaultOptions() Options {
	return Options{Lenient: true, CodeBlocks: true, MaxDepth: DefaultMaxDepth}
}
