package schema

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/siftlabs/sift/internal/utils"
)

// Error is a single hard validation failure.
type Error struct {
	// Path locates the offending value, JSON-Pointer style (e.g. /items/2).
	Path     string
	Message  string
	Expected string
	Actual   string
}

// Result is the outcome of a [Validate] call. Valid is true exactly when
// Errors is empty; Data is populated only when Valid. Warnings record every
// coercion and applied default so that lossy conversions stay auditable.
type Result struct {
	Valid    bool
	Data     any
	Errors   []Error
	Warnings []string
}

// Option configures a [Validate] call.
type Option func(*validator)

// WithoutDefaults disables the application of declared defaults to missing
// or null values. Used by [TypeGuard], where a guard must judge the value as
// given rather than the value as it could be repaired.
func WithoutDefaults() Option {
	return func(v *validator) { v.applyDefaults = false }
}

// Validate recursively checks data against s, coercing loosely-matching
// values and applying declared defaults. It never panics and has no error
// return: hard failures are collected in [Result.Errors], soft issues in
// [Result.Warnings]. The input value is not mutated; coercions and defaults
// are applied to a copy.
func Validate(data any, s Schema, opts ...Option) Result {
	v := &validator{applyDefaults: true}
	for _, opt := range opts {
		opt(v)
	}
	out := v.walk(data, s, "")
	res := Result{Valid: len(v.errors) == 0, Errors: v.errors, Warnings: v.warnings}
	if res.Valid {
		res.Data = out
	}
	return res
}

type validator struct {
	applyDefaults bool
	errors        []Error
	warnings      []string
}

func (v *validator) walk(data any, s Schema, path string) any {
	if s == nil {
		return data
	}
	if data == nil {
		if v.applyDefaults {
			if def, ok := s.defaultValue(); ok {
				v.warnf("applied default at %s", at(path))
				return def
			}
		}
		// Pass through; a required-check at the parent catches it.
		return nil
	}

	switch sc := s.(type) {
	case *Object:
		return v.walkObject(data, sc, path)
	case *Array:
		return v.walkArray(data, sc, path)
	case *String:
		return v.walkString(data, sc, path)
	case *Number:
		return v.walkNumber(data, sc, path)
	case *Boolean:
		if _, ok := data.(bool); !ok {
			v.typeError(path, KindBoolean, data)
		}
		return data
	default:
		return data
	}
}

func (v *validator) walkObject(data any, sc *Object, path string) any {
	m, ok := data.(map[string]any)
	if !ok {
		v.typeError(path, KindObject, data)
		return data
	}

	// Undeclared properties pass through unchanged; the schema is not closed.
	out := make(map[string]any, len(m))
	for k, val := range m {
		out[k] = val
	}

	for name, prop := range sc.Properties {
		child := path + "/" + name
		if val, present := out[name]; present {
			out[name] = v.walk(val, prop, child)
		} else if v.applyDefaults {
			if def, ok := prop.defaultValue(); ok {
				out[name] = def
				v.warnf("applied default at %s", child)
			}
		}
	}

	for _, name := range sc.Required {
		if val, present := out[name]; !present || val == nil {
			expected := "any"
			if prop, declared := sc.Properties[name]; declared && prop != nil {
				expected = string(prop.Kind())
			}
			v.errors = append(v.errors, Error{
				Path:     at(path + "/" + name),
				Message:  fmt.Sprintf("missing required field %q", name),
				Expected: expected,
				Actual:   "undefined",
			})
		}
	}
	return out
}

func (v *validator) walkArray(data any, sc *Array, path string) any {
	arr, ok := data.([]any)
	if !ok {
		if !sc.AllowSingleValueAsArray {
			v.typeError(path, KindArray, data)
			return data
		}
		v.warnf("wrapped single value as array at %s", at(path))
		arr = []any{data}
	}

	out := make([]any, len(arr))
	for i, item := range arr {
		child := fmt.Sprintf("%s/%d", path, i)
		if sc.AllowNumericToStringArray {
			if _, wantString := sc.Items.(*String); wantString {
				if n, isNum := item.(float64); isNum {
					item = formatNumber(n)
					v.warnf("coerced number to string at %s", child)
				}
			}
		}
		out[i] = v.walk(item, sc.Items, child)
	}
	return out
}

func (v *validator) walkString(data any, sc *String, path string) any {
	var str string
	switch val := data.(type) {
	case string:
		str = val
	case []any:
		parts := make([]string, len(val))
		for i, e := range val {
			parts[i] = stringify(e)
		}
		str = strings.Join(parts, " ")
		v.warnf("coerced array to string at %s", at(path))
	case float64:
		str = formatNumber(val)
		v.warnf("coerced number to string at %s", at(path))
	default:
		v.typeError(path, KindString, data)
		return data
	}

	if len(sc.Enum) > 0 && !slices.Contains(sc.Enum, str) {
		v.errors = append(v.errors, Error{
			Path:     at(path),
			Message:  fmt.Sprintf("value %q is not one of the allowed values", str),
			Expected: "one of [" + strings.Join(sc.Enum, ", ") + "]",
			Actual:   str,
		})
		return data
	}
	if sc.MinLength > 0 && len(str) < sc.MinLength {
		v.constraintError(path, fmt.Sprintf("string shorter than minimum length %d", sc.MinLength), str)
		return data
	}
	if sc.MaxLength > 0 && len(str) > sc.MaxLength {
		v.constraintError(path, fmt.Sprintf("string longer than maximum length %d", sc.MaxLength), str)
		return data
	}
	return str
}

func (v *validator) walkNumber(data any, sc *Number, path string) any {
	var num float64
	switch val := data.(type) {
	case float64:
		num = val
	case []any:
		if len(val) == 0 {
			v.typeError(path, KindNumber, data)
			return data
		}
		switch first := val[0].(type) {
		case float64:
			num = first
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
			if err != nil {
				v.typeError(path, KindNumber, data)
				return data
			}
			num = parsed
		default:
			v.typeError(path, KindNumber, data)
			return data
		}
		v.warnf("coerced array to number at %s", at(path))
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			v.typeError(path, KindNumber, data)
			return data
		}
		num = parsed
		v.warnf("coerced string to number at %s", at(path))
	default:
		v.typeError(path, KindNumber, data)
		return data
	}

	if len(sc.Enum) > 0 && !slices.Contains(sc.Enum, num) {
		v.errors = append(v.errors, Error{
			Path:     at(path),
			Message:  fmt.Sprintf("value %s is not one of the allowed values", formatNumber(num)),
			Expected: "one of the enum values",
			Actual:   formatNumber(num),
		})
		return data
	}
	if sc.Minimum != nil && num < *sc.Minimum {
		v.constraintError(path, fmt.Sprintf("number below minimum %s", formatNumber(*sc.Minimum)), formatNumber(num))
		return data
	}
	if sc.Maximum != nil && num > *sc.Maximum {
		v.constraintError(path, fmt.Sprintf("number above maximum %s", formatNumber(*sc.Maximum)), formatNumber(num))
		return data
	}
	return num
}

func (v *validator) typeError(path string, want Kind, got any) {
	v.errors = append(v.errors, Error{
		Path:     at(path),
		Message:  fmt.Sprintf("expected %s, got %s", want, typeName(got)),
		Expected: string(want),
		Actual:   typeName(got),
	})
}

func (v *validator) constraintError(path, message, actual string) {
	v.errors = append(v.errors, Error{Path: at(path), Message: message, Actual: actual})
}

func (v *validator) warnf(format string, args ...any) {
	v.warnings = append(v.warnings, fmt.Sprintf(format, args...))
}

// at maps the empty root path to "/" for display.
func at(path string) string {
	if path == "" {
		return "/"
	}
	return path
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return formatNumber(val)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return "null"
	default:
		return utils.ToString(val)
	}
}
