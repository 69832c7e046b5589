package extract

import (
	"errors"
	"fmt"
)

// Error codes (exported consts for IDE completion and type safety by convention)
const (
	CodeEmptyResponse        = "EMPTY_RESPONSE"
	CodeNoJSONFound          = "NO_JSON_FOUND"
	CodeInvalidJSON          = "INVALID_JSON"
	CodeSchemaMismatch       = "SCHEMA_MISMATCH"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"
	CodeInvalidType          = "INVALID_TYPE"
	CodeUnexpectedFormat     = "UNEXPECTED_FORMAT"
)

// ParseError describes why a raw response could not be turned into a value.
// It is the only error type produced by this package.
type ParseError struct {
	// Code is one of the codes listed above.
	Code    string
	Message string
	// Position is the byte offset in the input where the problem was
	// detected, or -1 when unknown.
	Position int
	// Context carries a bounded excerpt of the offending input. Best-effort.
	Context string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s (input: %q)", e.Code, e.Message, e.Context)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AsParseError extracts a *ParseError from an error using errors.As internally.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func newParseError(code, message string, position int, context string) *ParseError {
	return &ParseError{Code: code, Message: message, Position: position, Context: context}
}
