package extract

import (
	"regexp"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/siftlabs/sift/internal/utils"
)

// fenceRe matches one fenced markdown code block, with or without a language
// identifier after the opening backticks.
var fenceRe = regexp.MustCompile("(?s)```(?:[a-zA-Z0-9_-]+)?[ \t]*\r?\n?(.*?)```")

// ExtractJSON turns a raw provider response into a parsed JSON value. It
// applies a cascade of strategies, first success wins:
//
//  1. Direct parse of the trimmed input.
//  2. Fenced code block (```json ... ``` or generic ``` ... ```).
//  3. Bracket-matched substring scan from the first '{' or '['.
//  4. Lenient heuristic repair, only when [WithLenient] is enabled.
//
// Blank input yields a [*ParseError] with [CodeEmptyResponse]; any other
// failure yields [CodeNoJSONFound] carrying the leading characters of the
// input as context.
func ExtractJSON(input string, opts ...Option) (any, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, newParseError(CodeEmptyResponse, "response is empty", -1, "")
	}

	// Strategy 1: the whole input is already valid JSON.
	if v, err := parseJSON(trimmed); err == nil {
		return v, nil
	}

	// Strategy 2: fenced code blocks, in order of appearance.
	if o.CodeBlocks {
		for _, inner := range fencedBlocks(trimmed) {
			if v, err := parseJSON(inner); err == nil {
				return v, nil
			}
		}
	}

	// Strategy 3: bracket-matched substring. The candidate survives into the
	// repair step even when the scan finds no matching close.
	candidate := trimmed
	if start := findJSONStart(trimmed); start >= 0 {
		if end, ok := scanBalanced(trimmed, start, o.MaxDepth); ok {
			candidate = trimmed[start:end]
			if v, err := parseJSON(candidate); err == nil {
				return v, nil
			}
		} else {
			candidate = trimmed[start:]
		}
	}

	// Strategy 4: lenient repair of the best candidate found so far.
	if o.Lenient {
		if v, ok := repairAndParse(candidate); ok {
			return v, nil
		}
	}

	return nil, newParseError(CodeNoJSONFound, "no parseable JSON found in response", -1, utils.ErrorContext(trimmed))
}

// parseJSON decodes a complete JSON document into its generic representation.
// Trailing non-whitespace garbage after the document is rejected.
func parseJSON(s string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// fencedBlocks returns the trimmed inner content of every fenced code block
// in s, in order of appearance.
func fencedBlocks(s string) []string {
	matches := fenceRe.FindAllStringSubmatch(s, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		inner := strings.TrimSpace(m[1])
		if inner != "" {
			blocks = append(blocks, inner)
		}
	}
	return blocks
}

// findJSONStart returns the index of the first '{' or '[' in s, or -1.
func findJSONStart(s string) int {
	return strings.IndexAny(s, "{[")
}

// scanBalanced scans forward from an opening bracket at start, tracking
// nesting depth while skipping string-literal contents and escape sequences.
// It returns the index one past the matching close. The scan fails when the
// input is truncated, brackets are mismatched, or nesting exceeds maxDepth.
func scanBalanced(s string, start, maxDepth int) (int, bool) {
	stack := make([]byte, 0, 8)
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		c := s[i]

		if escaped {
			escaped = false
			continue
		}

		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
			if len(stack) > maxDepth {
				return 0, false
			}
		case '}', ']':
			if len(stack) == 0 {
				return 0, false
			}
			top := stack[len(stack)-1]
			if (top == '{' && c == '}') || (top == '[' && c == ']') {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return i + 1, true
				}
			} else {
				return 0, false
			}
		}
	}
	return 0, false
}
