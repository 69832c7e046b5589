package extract

import "strings"

// ExtractArrayItems is a best-effort extractor for truncated or malformed
// arrays. Starting at the first '[' in the input, it parses top-level items
// one at a time (objects, arrays, strings, and number/boolean/null literals)
// and stops the moment an item is malformed or truncated, returning only the
// items parsed so far.
//
// The return value distinguishes "no array" from "empty array": when the
// input contains no '[' at all the result is nil, otherwise it is a non-nil
// slice that may be empty. A maxDepth of zero or below falls back to
// [DefaultMaxDepth].
func ExtractArrayItems(input string, maxDepth int) []any {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	start := strings.IndexByte(input, '[')
	if start < 0 {
		return nil
	}

	items := []any{}
	i := start + 1
	for {
		i = skipWhitespace(input, i)
		if i >= len(input) || input[i] == ']' {
			return items
		}

		var raw string
		switch c := input[i]; c {
		case '{', '[':
			end, ok := scanBalanced(input, i, maxDepth)
			if !ok {
				return items
			}
			raw, i = input[i:end], end
		case '"':
			end, ok := scanString(input, i)
			if !ok {
				return items
			}
			raw, i = input[i:end], end
		default:
			// Bare literal: number, boolean or null. Runs until the next
			// top-level separator.
			j := i
			for j < len(input) && input[j] != ',' && input[j] != ']' {
				j++
			}
			raw, i = strings.TrimSpace(input[i:j]), j
			if raw == "" {
				return items
			}
		}

		v, err := parseJSON(raw)
		if err != nil {
			return items
		}
		items = append(items, v)

		i = skipWhitespace(input, i)
		if i >= len(input) || input[i] != ',' {
			return items
		}
		i++
	}
}

// scanString scans a JSON string literal starting at the opening quote and
// returns the index one past the closing quote.
func scanString(s string, start int) (int, bool) {
	escaped := false
	for i := start + 1; i < len(s); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch s[i] {
		case '\\':
			escaped = true
		case '"':
			return i + 1, true
		}
	}
	return 0, false
}

func skipWhitespace(s string, i int) int {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			i++
		default:
			return i
		}
	}
	return i
}
