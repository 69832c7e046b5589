package prose

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// Result is the outcome of a [Normalize] call.
type Result struct {
	Text string
	// WasError reports that the text matched a refusal/apology pattern.
	WasError bool
	// UsedFallback reports that the original text replaced a refusal.
	UsedFallback bool
	Warnings     []string
}

// Option configures a [Normalize] call.
type Option func(*config)

type config struct {
	originalText  string
	stripQuotes   bool
	stripFences   bool
	detectErrors  bool
	convertHTML   bool
	errorPatterns []string
}

// WithOriginalText supplies a known-good text to fall back to when the
// response turns out to be a refusal.
func WithOriginalText(text string) Option {
	return func(c *config) { c.originalText = text }
}

// WithQuoteStripping toggles removal of one matching pair of wrapping
// quotation marks. Enabled by default.
func WithQuoteStripping(enabled bool) Option {
	return func(c *config) { c.stripQuotes = enabled }
}

// WithCodeBlockStripping toggles removal of one layer of code fencing.
// Enabled by default.
func WithCodeBlockStripping(enabled bool) Option {
	return func(c *config) { c.stripFences = enabled }
}

// WithErrorDetection toggles refusal-pattern matching. Enabled by default.
func WithErrorDetection(enabled bool) Option {
	return func(c *config) { c.detectErrors = enabled }
}

// WithErrorPatterns replaces the default refusal patterns.
func WithErrorPatterns(patterns ...string) Option {
	return func(c *config) { c.errorPatterns = patterns }
}

// WithHTMLConversion enables converting an HTML-shaped answer to Markdown
// before error detection. Disabled by default.
func WithHTMLConversion(enabled bool) Option {
	return func(c *config) { c.convertHTML = enabled }
}

// Normalize cleans up a plain-text provider response: trim, strip one
// matching pair of wrapping quotes, strip one layer of code fencing, then
// match the result against refusal patterns. On a refusal match with an
// original text supplied, the original replaces the refusal and the result
// is marked as having used the fallback; without a fallback the refusal text
// is kept, since nothing safer exists.
func Normalize(raw string, opts ...Option) Result {
	cfg := config{stripQuotes: true, stripFences: true, detectErrors: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	res := Result{}
	text := strings.TrimSpace(raw)

	if cfg.stripQuotes {
		text = StripQuotes(text)
	}
	if cfg.stripFences {
		text = StripCodeBlocks(text)
	}
	if cfg.convertHTML && looksLikeHTML(text) {
		converted, err := htmltomarkdown.ConvertString(text)
		if err != nil {
			res.Warnings = append(res.Warnings, "html to markdown conversion failed: "+err.Error())
		} else {
			text = strings.TrimSpace(converted)
			res.Warnings = append(res.Warnings, "converted html answer to markdown")
		}
	}

	if cfg.detectErrors && LooksLikeError(text, cfg.errorPatterns...) {
		res.WasError = true
		if cfg.originalText != "" {
			text = cfg.originalText
			res.UsedFallback = true
		}
	}

	res.Text = text
	return res
}

// looksLikeHTML is a cheap shape check, not a parser: it only decides
// whether running the Markdown converter is worth it.
func looksLikeHTML(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range []string{"<!doctype", "<html", "<body", "<p>", "<div", "<ul>", "<ol>", "<h1", "<h2", "<h3", "<table", "<br"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
