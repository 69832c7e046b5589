package prose

import (
	"regexp"
	"strings"
)

// DefaultErrorPatterns are the refusal/apology markers matched by
// [LooksLikeError] when the caller supplies none. Matching is
// case-insensitive substring containment.
var DefaultErrorPatterns = []string{
	"i'm sorry",
	"i am sorry",
	"i apologize",
	"i apologise",
	"i cannot",
	"i can't",
	"as an ai",
	"unable to assist",
	"unable to help",
	"cannot fulfill",
}

// quotePairs lists the wrapping quote styles removed by [StripQuotes]:
// ASCII double and single quotes plus their typographic counterparts.
var quotePairs = [][2]string{
	{`"`, `"`},
	{`'`, `'`},
	{"“", "”"}, // “ ”
	{"‘", "’"}, // ‘ ’
}

var langIDRe = regexp.MustCompile(`^[a-zA-Z0-9_+-]+$`)

// StripQuotes removes one matching pair of leading/trailing quotation marks.
// Both ends must carry the same pair; asymmetric quoting is left untouched.
func StripQuotes(s string) string {
	for _, pair := range quotePairs {
		opening, closing := pair[0], pair[1]
		if len(s) >= len(opening)+len(closing) && strings.HasPrefix(s, opening) && strings.HasSuffix(s, closing) {
			return strings.TrimSpace(s[len(opening) : len(s)-len(closing)])
		}
	}
	return s
}

// StripCodeBlocks removes one layer of markdown code fencing. A fenced block
// may carry a bare language identifier on its first line, which is discarded.
// A single-line answer wrapped in inline backticks is unwrapped too.
func StripCodeBlocks(s string) string {
	if strings.HasPrefix(s, "```") && strings.HasSuffix(s, "```") && len(s) >= 6 {
		inner := s[3 : len(s)-3]
		if nl := strings.IndexByte(inner, '\n'); nl >= 0 {
			first := strings.TrimSpace(inner[:nl])
			if first != "" && langIDRe.MatchString(first) {
				inner = inner[nl+1:]
			}
		}
		return strings.TrimSpace(inner)
	}
	if len(s) >= 2 && strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") && !strings.Contains(s, "\n") {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}

// LooksLikeError reports whether text reads like a refusal or apology
// instead of an answer. Patterns default to [DefaultErrorPatterns].
func LooksLikeError(text string, patterns ...string) bool {
	if len(patterns) == 0 {
		patterns = DefaultErrorPatterns
	}
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// ExtractFirstParagraph returns the first blank-line-delimited block of text.
func ExtractFirstParagraph(s string) string {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	for _, block := range strings.Split(normalized, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// preambleRes are the lead-in phrases models prepend to an answer. They are
// stripped sequentially from the start of the text, so stacked phrasing like
// "Sure! Here's the summary: ..." collapses in one pass.
var preambleRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(sure|certainly|of course|absolutely|okay|ok)[,!.:]*\s+`),
	regexp.MustCompile(`(?i)^here('s| is| are)\b[^:\n]*:\s*`),
	regexp.MustCompile(`(?i)^(the|your) (answer|result|response|summary|text) (is|follows):?\s*`),
	regexp.MustCompile(`(?i)^as requested[,:]?\s*`),
	regexp.MustCompile(`(?i)^i('ve| have) (summarized|summarised|rewritten|translated)\b[^:\n]*:\s*`),
}

// RemovePreamble strips the known lead-in phrases from the start of text.
func RemovePreamble(text string) string {
	out := strings.TrimSpace(text)
	for _, re := range preambleRes {
		out = strings.TrimSpace(re.ReplaceAllString(out, ""))
	}
	return out
}
