// Package prose normalises plain-text (non-JSON) provider responses. Models
// habitually wrap an answer in quotation marks or a code fence, preface it
// with lead-in phrases, or reply with an apology instead of an answer; this
// package strips the wrapping and detects refusal-style responses so that a
// caller can fall back to a previously known-good text.
//
// The main entry point is [Normalize]; the individual steps are exported as
// [StripQuotes], [StripCodeBlocks], [LooksLikeError], [ExtractFirstParagraph]
// and [RemovePreamble] for callers who need only one of them.
package prose
