package schema

import (
	"reflect"
	"strconv"
	"strings"
)

// FromType derives a schema from the Go type T, so that callers who model
// their expected provider output as a struct do not have to hand-write a
// schema literal.
//
// Mapping rules: structs and maps become [Object], slices and arrays become
// [Array], strings become [String], numeric kinds become [Number], bools
// become [Boolean]. Field names follow the `json` struct tag; fields tagged
// `json:"-"` are skipped. A field is required when it is neither a pointer
// nor tagged omitempty, or when its `jsonschema` tag says "required".
// The `jsonschema` tag additionally supports "enum=x" (repeatable) and
// "default=x" entries on string and numeric fields.
//
// Recursive types are cut off with an open object schema, since the schema
// language has no reference mechanism.
func FromType[T any]() Schema {
	return fromType(reflect.TypeFor[T](), make(map[reflect.Type]bool))
}

func fromType(t reflect.Type, visiting map[reflect.Type]bool) Schema {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if visiting[t] {
			return &Object{}
		}
		visiting[t] = true
		defer delete(visiting, t)
		return structSchema(t, visiting)

	case reflect.Map:
		return &Object{}

	case reflect.Slice, reflect.Array:
		return &Array{Items: fromType(t.Elem(), visiting)}

	case reflect.String:
		return &String{}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return &Number{}

	case reflect.Bool:
		return &Boolean{}

	default:
		// Interfaces and anything else validate as "no constraint".
		return nil
	}
}

func structSchema(t reflect.Type, visiting map[reflect.Type]bool) Schema {
	obj := &Object{Properties: make(map[string]Schema, t.NumField())}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		fieldName := field.Name
		isOmitEmpty := false
		if jsonTag != "" {
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				if jsonTag[:commaIdx] != "" {
					fieldName = jsonTag[:commaIdx]
				}
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema := fromType(field.Type, visiting)
		requiredByTag := applyTag(field.Tag.Get("jsonschema"), fieldSchema)
		obj.Properties[fieldName] = fieldSchema

		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || requiredByTag {
			obj.Required = append(obj.Required, fieldName)
		}
	}
	return obj
}

// applyTag interprets a `jsonschema` struct tag against an already-derived
// field schema and reports whether the tag marks the field required.
func applyTag(tag string, s Schema) bool {
	if tag == "" || s == nil {
		return false
	}
	required := false
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "required":
			required = true
		case strings.HasPrefix(part, "enum="):
			addEnum(s, strings.TrimPrefix(part, "enum="))
		case strings.HasPrefix(part, "default="):
			setDefault(s, strings.TrimPrefix(part, "default="))
		}
	}
	return required
}

func addEnum(s Schema, value string) {
	switch sc := s.(type) {
	case *String:
		sc.Enum = append(sc.Enum, value)
	case *Number:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			sc.Enum = append(sc.Enum, f)
		}
	}
}

func setDefault(s Schema, value string) {
	switch sc := s.(type) {
	case *String:
		sc.Default = value
	case *Number:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			sc.Default = f
		}
	case *Boolean:
		if b, err := strconv.ParseBool(value); err == nil {
			sc.Default = b
		}
	}
}
