package slogobs

import (
	"io"
	"log/slog"
	"os"

	"github.com/siftlabs/sift/providers/observability"
)

// Provider is an [observability.Logger] backed by log/slog.
type Provider struct {
	logger *slog.Logger
}

// New creates a slog-backed logger. Without options, output goes to stderr
// in text format at the level read from the environment (SIFT_LOG_LEVEL,
// falling back to LOG_LEVEL, defaulting to info).
func New(opts ...Option) *Provider {
	cfg := config{
		output: os.Stderr,
		format: GetFormatFromEnv(),
		level:  GetLevelFromEnv(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger != nil {
		return &Provider{logger: cfg.logger}
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var handler slog.Handler
	if cfg.format == FormatJSON {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	return &Provider{logger: slog.New(handler)}
}

// Option configures [New].
type Option func(*config)

type config struct {
	output io.Writer
	format Format
	level  slog.Level
	logger *slog.Logger
}

// WithOutput redirects log output. Defaults to stderr.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithFormat selects the output format. Defaults to the environment, then text.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithLevel sets the minimum log level. Defaults to the environment, then info.
func WithLevel(level slog.Level) Option {
	return func(c *config) { c.level = level }
}

// WithLogger bypasses handler construction and wraps an existing slog.Logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func (p *Provider) Debug(msg string, attrs ...observability.Attribute) {
	p.logger.Debug(msg, args(attrs)...)
}

func (p *Provider) Info(msg string, attrs ...observability.Attribute) {
	p.logger.Info(msg, args(attrs)...)
}

func (p *Provider) Warn(msg string, attrs ...observability.Attribute) {
	p.logger.Warn(msg, args(attrs)...)
}

func (p *Provider) Error(msg string, attrs ...observability.Attribute) {
	p.logger.Error(msg, args(attrs)...)
}

func args(attrs []observability.Attribute) []any {
	out := make([]any, 0, len(attrs)*2)
	for _, a := range attrs {
		out = append(out, a.Key, a.Value)
	}
	return out
}
