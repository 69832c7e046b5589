package response

import (
	"github.com/siftlabs/sift/core/extract"
	"github.com/siftlabs/sift/core/schema"
)

// ParseArray parses a response expected to be an array of itemSchema values.
// It is schema-shape sugar over [Parse].
func ParseArray(input string, itemSchema schema.Schema, opts ...Option) Result[[]any] {
	arrSchema := &schema.Array{Items: itemSchema}
	r := Parse(input, append([]Option{WithSchema(arrSchema)}, opts...)...)
	if !r.Success {
		return retype[[]any](r)
	}
	items, _ := r.Data.([]any)
	return Result[[]any]{Success: true, Data: items, RawInput: r.RawInput, Metadata: r.Metadata}
}

// ParseObject parses a response expected to be an object with the given
// declared properties, of which required must be present.
func ParseObject(input string, properties map[string]schema.Schema, required []string, opts ...Option) Result[map[string]any] {
	objSchema := &schema.Object{Properties: properties, Required: required}
	r := Parse(input, append([]Option{WithSchema(objSchema)}, opts...)...)
	if !r.Success {
		return retype[map[string]any](r)
	}
	obj, _ := r.Data.(map[string]any)
	return Result[map[string]any]{Success: true, Data: obj, RawInput: r.RawInput, Metadata: r.Metadata}
}

// ParseField parses a response as an object and extracts the single named
// field from it. Parse failures pass through unchanged; a missing field is a
// validation failure because the field is implicitly required.
func ParseField(input, field string, fieldSchema schema.Schema, opts ...Option) Result[any] {
	r := ParseObject(input, map[string]schema.Schema{field: fieldSchema}, []string{field}, opts...)
	if !r.Success {
		return retype[any](r)
	}
	value, ok := r.Data[field]
	if !ok {
		// Unreachable when validation ran, kept as a guard for nil schemas.
		pe := &extract.ParseError{
			Code:     extract.CodeMissingRequiredField,
			Message:  "field " + field + " missing from parsed object",
			Position: -1,
		}
		return failure[any](input, r.Metadata, pe)
	}
	return Result[any]{Success: true, Data: value, RawInput: r.RawInput, Metadata: r.Metadata}
}
