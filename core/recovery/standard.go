package recovery

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/siftlabs/sift/core/response"
	"github.com/siftlabs/sift/core/schema"
)

// StandardStrategies returns the default salvage chain, always exactly three
// strategies in this fixed order:
//
//  1. "lenient-parse" — the full parse pipeline with lenient extraction and
//     schema validation. Narrowest and most trustworthy.
//  2. "partial-array" — item-by-item recovery of a malformed or truncated
//     array, keeping only items that pass the type guard.
//  3. "json-substring" — the naive first-'['-to-last-']' span, which must
//     parse as-is with no repair and be a non-empty array. Most permissive
//     about where the data sits, least permissive about its content.
//
// s validates the whole-array shape for lenient parsing; guard judges
// individual items for partial recovery. Either may be nil to skip that
// filtering.
func StandardStrategies(s schema.Schema, guard func(any) bool) []Strategy {
	return []Strategy{
		{
			Name: "lenient-parse",
			Attempt: func(raw string) ([]any, error) {
				var opts []response.Option
				if s != nil {
					opts = append(opts, response.WithSchema(s))
				}
				r := response.Parse(raw, opts...)
				if !r.Success {
					return nil, r.Err
				}
				items, ok := r.Data.([]any)
				if !ok {
					return nil, errors.New("parsed value is not an array")
				}
				return items, nil
			},
		},
		{
			Name: "partial-array",
			Attempt: func(raw string) ([]any, error) {
				recovered, _ := response.RecoverPartialArray(raw, guard)
				return recovered, nil
			},
		},
		{
			Name: "json-substring",
			Attempt: func(raw string) ([]any, error) {
				start := strings.Index(raw, "[")
				end := strings.LastIndex(raw, "]")
				if start < 0 || end <= start {
					return nil, errors.New("no bracketed span found")
				}
				span := raw[start : end+1]
				if !gjson.Valid(span) {
					return nil, errors.New("bracketed span is not valid JSON")
				}
				parsed := gjson.Parse(span)
				if !parsed.IsArray() {
					return nil, errors.New("bracketed span is not an array")
				}
				items, _ := parsed.Value().([]any)
				if len(items) == 0 {
					return nil, errors.New("bracketed span is an empty array")
				}
				return items, nil
			},
		},
	}
}
