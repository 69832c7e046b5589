package response

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/siftlabs/sift/core/extract"
	"github.com/siftlabs/sift/core/schema"
	"github.com/siftlabs/sift/internal/utils"
	"github.com/siftlabs/sift/providers/observability"
)

// Metadata describes how a result was produced.
type Metadata struct {
	// ExtractionMethod is a descriptive classification of the raw input's
	// superficial shape ("direct", "code-block", "substring", …). It is
	// cosmetic metadata for logs and diagnostics, not a behavioural input:
	// it does not necessarily name the cascade step that actually succeeded.
	ExtractionMethod string
	// Validated reports whether schema validation ran.
	Validated bool
	// Warnings collects validator coercion and default-application notes.
	Warnings []string
}

// Result is the envelope returned by [Parse] and [ParseAs].
// Success is true exactly when Data is populated and Err is nil.
type Result[T any] struct {
	Success  bool
	Data     T
	Err      *extract.ParseError
	RawInput string
	Metadata Metadata
}

// Option configures a [Parse] call.
type Option func(*config)

type config struct {
	schema        schema.Schema
	extractOpts   []extract.Option
	applyDefaults bool
	transform     func(any) (any, error)
	observer      observability.Logger
}

// WithSchema validates the extracted value against s before returning it.
func WithSchema(s schema.Schema) Option {
	return func(c *config) { c.schema = s }
}

// WithExtractOptions forwards options to the JSON extraction cascade.
func WithExtractOptions(opts ...extract.Option) Option {
	return func(c *config) { c.extractOpts = append(c.extractOpts, opts...) }
}

// WithoutDefaults disables default application during schema validation.
func WithoutDefaults() Option {
	return func(c *config) { c.applyDefaults = false }
}

// WithTransform post-processes the validated value. A transform that returns
// an error or panics produces a failure envelope with metadata preserved.
func WithTransform(fn func(any) (any, error)) Option {
	return func(c *config) { c.transform = fn }
}

// WithObserver wires a logger that receives debug events for the extraction
// outcome and warn events for validator coercions.
func WithObserver(logger observability.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.observer = logger
		}
	}
}

// Parse runs the full pipeline on a raw provider response: extract a JSON
// value, optionally validate and coerce it against a schema, optionally
// transform it. Every failure is reported through the envelope; Parse never
// panics and has no error return.
func Parse(input string, opts ...Option) Result[any] {
	cfg := config{applyDefaults: true, observer: observability.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	meta := Metadata{ExtractionMethod: classifyExtraction(input)}

	value, err := extract.ExtractJSON(input, cfg.extractOpts...)
	if err != nil {
		pe, _ := extract.AsParseError(err)
		cfg.observer.Debug("extraction failed", observability.Error(err))
		return failure[any](input, meta, pe)
	}
	cfg.observer.Debug("extracted value", observability.String("method", meta.ExtractionMethod))

	if cfg.schema != nil {
		var vopts []schema.Option
		if !cfg.applyDefaults {
			vopts = append(vopts, schema.WithoutDefaults())
		}
		vres := schema.Validate(value, cfg.schema, vopts...)
		meta.Validated = true
		meta.Warnings = vres.Warnings
		if len(vres.Warnings) > 0 {
			cfg.observer.Warn("validation coercions applied", observability.Int("count", len(vres.Warnings)))
		}
		if !vres.Valid {
			pe := &extract.ParseError{
				Code:     extract.CodeSchemaMismatch,
				Message:  joinErrors(vres.Errors),
				Position: -1,
				Context:  utils.ErrorContext(input),
			}
			cfg.observer.Debug("validation failed", observability.Error(pe))
			return failure[any](input, meta, pe)
		}
		value = vres.Data
	}

	if cfg.transform != nil {
		out, terr := safeTransform(cfg.transform, value)
		if terr != nil {
			pe := &extract.ParseError{
				Code:     extract.CodeUnexpectedFormat,
				Message:  fmt.Sprintf("transform failed: %v", terr),
				Position: -1,
			}
			return failure[any](input, meta, pe)
		}
		value = out
	}

	return Result[any]{Success: true, Data: value, RawInput: input, Metadata: meta}
}

// ParseAs runs [Parse] and decodes the resulting value into T. When T is a
// struct or map type the validated value is round-tripped through JSON, so
// field names follow the usual `json` struct tags. Decode failure produces a
// failure envelope rather than an error.
func ParseAs[T any](input string, opts ...Option) Result[T] {
	r := Parse(input, opts...)
	if !r.Success {
		return retype[T](r)
	}

	var data T
	if direct, ok := r.Data.(T); ok {
		data = direct
	} else {
		encoded, err := json.Marshal(r.Data)
		if err == nil {
			err = json.Unmarshal(encoded, &data)
		}
		if err != nil {
			pe := &extract.ParseError{
				Code:     extract.CodeInvalidType,
				Message:  fmt.Sprintf("cannot decode value into %T: %v", data, err),
				Position: -1,
			}
			return failure[T](input, r.Metadata, pe)
		}
	}
	return Result[T]{Success: true, Data: data, RawInput: input, Metadata: r.Metadata}
}

// classifyExtraction inspects the superficial shape of the raw input. The
// result is cosmetic; see [Metadata.ExtractionMethod].
func classifyExtraction(raw string) string {
	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		return "none"
	case gjson.Valid(trimmed):
		return "direct"
	case strings.Contains(trimmed, "```"):
		return "code-block"
	case strings.IndexAny(trimmed, "{[") >= 0:
		return "substring"
	default:
		return "unknown"
	}
}

func joinErrors(errs []schema.Error) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return strings.Join(parts, "; ")
}

func safeTransform(fn func(any) (any, error), value any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(value)
}

func failure[T any](input string, meta Metadata, pe *extract.ParseError) Result[T] {
	return Result[T]{Err: pe, RawInput: input, Metadata: meta}
}

func retype[T any, S any](r Result[S]) Result[T] {
	return Result[T]{Err: r.Err, RawInput: r.RawInput, Metadata: r.Metadata}
}
