package extract

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	trailingComma = regexp.MustCompile(`,\s*([\]}])`)
	bareKey       = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
)

// repairAndParse applies targeted heuristic repairs to a JSON candidate and
// reparses it. When the targeted repairs are not enough it falls back to the
// general-purpose jsonrepair library before giving up.
func repairAndParse(candidate string) (any, bool) {
	repaired := repairJSON(candidate)
	if v, err := parseJSON(repaired); err == nil {
		return v, true
	}
	if fixed, err := jsonrepair.JSONRepair(candidate); err == nil {
		if v, err2 := parseJSON(fixed); err2 == nil {
			return v, true
		}
	}
	return nil, false
}

// repairJSON applies the targeted repairs, in order: trailing commas before a
// closing bracket, missing closing brackets inferred from open/close counts,
// single-to-double quote substitution when no double quote is present, and
// quoting of simple bare object keys.
func repairJSON(s string) string {
	s = stripTrailingCommas(s)
	s = balanceBrackets(s)
	if !strings.Contains(s, `"`) {
		s = strings.ReplaceAll(s, "'", `"`)
	}
	s = quoteBareKeys(s)
	return s
}

// stripTrailingCommas removes commas that directly precede a closing ']' or
// '}' (ignoring whitespace between the two).
func stripTrailingCommas(s string) string {
	return trailingComma.ReplaceAllString(s, "$1")
}

// balanceBrackets appends the closing brackets implied by unmatched opens.
// The count is deliberately naive about string contents; the heuristic
// matches how truncated provider output usually looks, where the cut happens
// between values rather than inside them.
func balanceBrackets(s string) string {
	stack := make([]byte, 0, 8)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			stack = append(stack, s[i])
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s)
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// quoteBareKeys rewrites `key:` into `"key":` after a '{' or ','. The
// heuristic can misfire on prose that merely resembles key:value inside a
// string value; callers opting into lenient mode accept that trade-off.
func quoteBareKeys(s string) string {
	return bareKey.ReplaceAllString(s, `$1"$2"$3`)
}
