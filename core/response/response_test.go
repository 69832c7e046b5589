package response

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/siftlabs/sift/core/extract"
	"github.com/siftlabs/sift/core/schema"
)

func personSchema() schema.Schema {
	return &schema.Object{
		Properties: map[string]schema.Schema{
			"name": &schema.String{},
			"age":  &schema.Number{},
		},
		Required: []string{"name"},
	}
}

func TestParse_DirectJSON(t *testing.T) {
	r := Parse(`{"name": "Alice", "age": 30}`, WithSchema(personSchema()))

	if !r.Success {
		t.Fatalf("Parse() failed: %v", r.Err)
	}
	want := map[string]any{"name": "Alice", "age": float64(30)}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("Parse() data = %v, want %v", r.Data, want)
	}
	if r.Metadata.ExtractionMethod != "direct" {
		t.Errorf("extraction method = %q, want direct", r.Metadata.ExtractionMethod)
	}
	if !r.Metadata.Validated {
		t.Error("metadata should report validation ran")
	}
}

func TestParse_MalformedButRecoverable(t *testing.T) {
	input := `{"name": "Alice", age: 5,}`
	r := Parse(input, WithSchema(personSchema()))

	if !r.Success {
		t.Fatalf("Parse() failed: %v", r.Err)
	}
	want := map[string]any{"name": "Alice", "age": float64(5)}
	if !reflect.DeepEqual(r.Data, want) {
		t.Errorf("Parse() data = %v, want %v", r.Data, want)
	}
	if r.RawInput != input {
		t.Errorf("raw input = %q, want the untouched input", r.RawInput)
	}
	if r.Metadata.ExtractionMethod != "substring" {
		t.Errorf("extraction method = %q, want substring", r.Metadata.ExtractionMethod)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	r := Parse("   ")

	if r.Success {
		t.Fatal("Parse() should fail on blank input")
	}
	if r.Err == nil || r.Err.Code != extract.CodeEmptyResponse {
		t.Errorf("Parse() err = %v, want %s", r.Err, extract.CodeEmptyResponse)
	}
	if r.Metadata.ExtractionMethod != "none" {
		t.Errorf("extraction method = %q, want none", r.Metadata.ExtractionMethod)
	}
}

func TestParse_SchemaMismatch(t *testing.T) {
	r := Parse(`{"age": 30}`, WithSchema(personSchema()))

	if r.Success {
		t.Fatal("Parse() should fail when a required field is missing")
	}
	if r.Err.Code != extract.CodeSchemaMismatch {
		t.Errorf("Parse() err code = %s, want %s", r.Err.Code, extract.CodeSchemaMismatch)
	}
	if !strings.Contains(r.Err.Message, "/name") {
		t.Errorf("Parse() err message = %q, want the failing path in it", r.Err.Message)
	}
	if r.Data != nil {
		t.Errorf("Parse() data = %v, want nil on failure", r.Data)
	}
	if !r.Metadata.Validated {
		t.Error("metadata should report validation ran even on failure")
	}
}

func TestParse_CoercionWarnings(t *testing.T) {
	r := Parse(`{"name": "Alice", "age": "30"}`, WithSchema(personSchema()))

	if !r.Success {
		t.Fatalf("Parse() failed: %v", r.Err)
	}
	if got := r.Data.(map[string]any)["age"]; got != float64(30) {
		t.Errorf("age = %v, want coerced float64(30)", got)
	}
	if len(r.Metadata.Warnings) != 1 {
		t.Errorf("warnings = %v, want one coercion note", r.Metadata.Warnings)
	}
}

func TestParse_Transform(t *testing.T) {
	r := Parse(`{"name": "alice"}`, WithTransform(func(v any) (any, error) {
		obj := v.(map[string]any)
		obj["name"] = strings.ToUpper(obj["name"].(string))
		return obj, nil
	}))

	if !r.Success {
		t.Fatalf("Parse() failed: %v", r.Err)
	}
	if got := r.Data.(map[string]any)["name"]; got != "ALICE" {
		t.Errorf("name = %v, want ALICE", got)
	}
}

func TestParse_TransformFailure(t *testing.T) {
	tests := []struct {
		name      string
		transform func(any) (any, error)
	}{
		{
			name:      "returns error",
			transform: func(any) (any, error) { return nil, errors.New("boom") },
		},
		{
			name:      "panics",
			transform: func(any) (any, error) { panic("boom") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Parse(`{"name": "Alice"}`, WithSchema(personSchema()), WithTransform(tt.transform))
			if r.Success {
				t.Fatal("Parse() should fail when the transform does")
			}
			if r.Err.Code != extract.CodeUnexpectedFormat {
				t.Errorf("err code = %s, want %s", r.Err.Code, extract.CodeUnexpectedFormat)
			}
			// The envelope keeps what happened before the transform blew up.
			if !r.Metadata.Validated {
				t.Error("metadata from the validation stage should be preserved")
			}
		})
	}
}

func TestParse_WithoutDefaults(t *testing.T) {
	s := &schema.Object{
		Properties: map[string]schema.Schema{"status": &schema.String{Default: "pending"}},
		Required:   []string{"status"},
	}

	if r := Parse(`{}`, WithSchema(s)); !r.Success {
		t.Errorf("Parse() with defaults should succeed, got %v", r.Err)
	}
	if r := Parse(`{}`, WithSchema(s), WithoutDefaults()); r.Success {
		t.Error("Parse() without defaults should fail on the missing required field")
	}
}

func TestParse_ExtractOptionsForwarded(t *testing.T) {
	r := Parse(`{"name": "Alice",}`, WithExtractOptions(extract.WithLenient(false)))
	if r.Success {
		t.Fatal("Parse() should fail when lenient repair is disabled")
	}
	if r.Err.Code != extract.CodeNoJSONFound {
		t.Errorf("err code = %s, want %s", r.Err.Code, extract.CodeNoJSONFound)
	}
}

type person struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestParseAs_Struct(t *testing.T) {
	r := ParseAs[person](`{"name": "Alice", "age": 30}`, WithSchema(personSchema()))

	if !r.Success {
		t.Fatalf("ParseAs() failed: %v", r.Err)
	}
	if r.Data != (person{Name: "Alice", Age: 30}) {
		t.Errorf("ParseAs() data = %+v", r.Data)
	}
}

func TestParseAs_DecodeFailure(t *testing.T) {
	r := ParseAs[int](`{"name": "Alice"}`)

	if r.Success {
		t.Fatal("ParseAs() should fail decoding an object into int")
	}
	if r.Err.Code != extract.CodeInvalidType {
		t.Errorf("err code = %s, want %s", r.Err.Code, extract.CodeInvalidType)
	}
}

func TestParseAs_FailurePassesThrough(t *testing.T) {
	r := ParseAs[person]("")

	if r.Success {
		t.Fatal("ParseAs() should propagate the extraction failure")
	}
	if r.Err.Code != extract.CodeEmptyResponse {
		t.Errorf("err code = %s, want %s", r.Err.Code, extract.CodeEmptyResponse)
	}
}

func TestClassifyExtraction(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "none"},
		{input: `{"a": 1}`, want: "direct"},
		{input: "```json\n{\"a\": 1,}\n```", want: "code-block"},
		{input: `text {"a": 1,} text`, want: "substring"},
		{input: "plain prose only", want: "unknown"},
	}

	for _, tt := range tests {
		if got := classifyExtraction(tt.input); got != tt.want {
			t.Errorf("classifyExtraction(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
