package response

import (
	"reflect"
	"testing"

	"github.com/siftlabs/sift/core/extract"
	"github.com/siftlabs/sift/core/schema"
)

func TestParseArray(t *testing.T) {
	r := ParseArray(`["a", "b", 3]`, &schema.String{})

	if !r.Success {
		t.Fatalf("ParseArray() failed: %v", r.Err)
	}
	want := []any{"a", "b", "3"}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("ParseArray() data = %v, want %v", r.Data, want)
	}
}

func TestParseArray_WrapsSingleValue(t *testing.T) {
	// ParseArray wraps the item schema itself; single-value wrapping is an
	// opt-in the caller must request through the full Parse API.
	r := ParseArray(`"lonely"`, &schema.String{})
	if r.Success {
		t.Fatal("ParseArray() should reject a bare value without the wrap flag")
	}

	wrapping := Parse(`"lonely"`, WithSchema(&schema.Array{
		Items:                   &schema.String{},
		AllowSingleValueAsArray: true,
	}))
	if !wrapping.Success {
		t.Fatalf("Parse() with wrap flag failed: %v", wrapping.Err)
	}
	if !reflect.DeepEqual(wrapping.Data, []any{"lonely"}) {
		t.Errorf("Parse() data = %v, want the wrapped value", wrapping.Data)
	}
}

func TestParseObject(t *testing.T) {
	props := map[string]schema.Schema{
		"title": &schema.String{},
		"done":  &schema.Boolean{},
	}

	r := ParseObject(`{"title": "ship it", "done": false}`, props, []string{"title"})
	if !r.Success {
		t.Fatalf("ParseObject() failed: %v", r.Err)
	}
	if r.Data["title"] != "ship it" {
		t.Errorf("title = %v", r.Data["title"])
	}

	missing := ParseObject(`{"done": true}`, props, []string{"title"})
	if missing.Success {
		t.Fatal("ParseObject() should fail on a missing required property")
	}
	if missing.Err.Code != extract.CodeSchemaMismatch {
		t.Errorf("err code = %s, want %s", missing.Err.Code, extract.CodeSchemaMismatch)
	}
}

func TestParseField(t *testing.T) {
	r := ParseField(`{"answer": "42", "noise": true}`, "answer", &schema.Number{})

	if !r.Success {
		t.Fatalf("ParseField() failed: %v", r.Err)
	}
	if r.Data != float64(42) {
		t.Errorf("ParseField() data = %v, want coerced 42", r.Data)
	}
}

func TestParseField_Missing(t *testing.T) {
	r := ParseField(`{"noise": true}`, "answer", &schema.Number{})

	if r.Success {
		t.Fatal("ParseField() should fail when the field is absent")
	}
	if r.Err.Code != extract.CodeSchemaMismatch {
		t.Errorf("err code = %s, want %s", r.Err.Code, extract.CodeSchemaMismatch)
	}
}
