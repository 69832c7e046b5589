package schema

// Kind identifies a schema variant.
type Kind string

const (
	KindObject  Kind = "object"
	KindArray   Kind = "array"
	KindString  Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Schema is the declarative descriptor for an expected value shape. It is a
// closed union: the only implementations are [*Object], [*Array], [*String],
// [*Number] and [*Boolean]. Schemas are read-only per invocation; callers
// typically declare them once as literals and reuse them across calls.
type Schema interface {
	// Kind reports which variant this schema is.
	Kind() Kind

	// defaultValue returns the declared default, if any. Closing the
	// interface over an unexported method keeps the union sealed.
	defaultValue() (any, bool)
}

// Object describes a JSON object with declared properties. Properties not
// declared in the schema pass through validation unchanged; the schema is not
// closed or strict.
type Object struct {
	Properties map[string]Schema
	// Required lists property names that must be present. A missing required
	// property with a declared default is filled in rather than rejected.
	Required []string
	Default  any
}

func (*Object) Kind() Kind { return KindObject }

func (s *Object) defaultValue() (any, bool) { return s.Default, s.Default != nil }

// Array describes a JSON array whose items share one schema.
type Array struct {
	Items Schema
	// AllowSingleValueAsArray wraps a bare value as a one-element array
	// instead of rejecting it, with a warning.
	AllowSingleValueAsArray bool
	// AllowNumericToStringArray coerces numeric items to strings when Items
	// is a string schema, with a warning per item.
	AllowNumericToStringArray bool
	Default                   any
}

func (*Array) Kind() Kind { return KindArray }

func (s *Array) defaultValue() (any, bool) { return s.Default, s.Default != nil }

// String describes a JSON string with optional enum and length constraints.
// A MaxLength of zero means unbounded.
type String struct {
	Enum      []string
	MinLength int
	MaxLength int
	Default   any
}

func (*String) Kind() Kind { return KindString }

func (s *String) defaultValue() (any, bool) { return s.Default, s.Default != nil }

// Number describes a JSON number with optional enum and bound constraints.
// Bounds are pointers because zero is a meaningful bound.
type Number struct {
	Enum    []float64
	Minimum *float64
	Maximum *float64
	Default any
}

func (*Number) Kind() Kind { return KindNumber }

func (s *Number) defaultValue() (any, bool) { return s.Default, s.Default != nil }

// Boolean describes a JSON boolean.
type Boolean struct {
	Default any
}

func (*Boolean) Kind() Kind { return KindBoolean }

func (s *Boolean) defaultValue() (any, bool) { return s.Default, s.Default != nil }
